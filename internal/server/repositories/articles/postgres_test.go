package articles

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/articlegate/internal/common"
	"github.com/dmitrijs2005/articlegate/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	createQuery = `(?s)^INSERT\s+INTO\s+articles\s*\(name,\s*price\)\s*VALUES\s*\(\$1,\s*\$2\)\s*RETURNING\s+id\s*$`
	getQuery    = `(?s)^SELECT\s+id,\s*name,\s*price\s+FROM\s+articles\s+WHERE\s+id\s*=\s*\$1\s*$`
	listQuery   = `(?s)^SELECT\s+id,\s*name,\s*price\s+FROM\s+articles\s+ORDER\s+BY\s+id\s*$`
	updateQuery = `(?s)^UPDATE\s+articles\s+SET\s+name\s*=\s*\$1,\s*price\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$3\s*$`
	deleteQuery = `(?s)^DELETE\s+FROM\s+articles\s+WHERE\s+id\s*=\s*\$1\s*$`
)

func TestCreate_AssignsID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(createQuery).
		WithArgs("pen", 1.5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	got, err := repo.Create(context.Background(), &models.Article{Name: "pen", Price: 1.5})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("expected store-assigned id 7, got %d", got.ID)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getQuery).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestList_ReturnsAllRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "price"}).
		AddRow(int64(1), "pen", 1.5).
		AddRow(int64(2), "notebook", 3.25)
	mock.ExpectQuery(listQuery).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "pen" || got[1].Price != 3.25 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestList_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQuery).WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(updateQuery).
		WithArgs("pen", 2.0, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Update(context.Background(), &models.Article{ID: 1, Name: "pen", Price: 2.0})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Price != 2.0 {
		t.Fatalf("unexpected article: %+v", got)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(updateQuery).
		WithArgs("pen", 2.0, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), &models.Article{ID: 99, Name: "pen", Price: 2.0})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQuery).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQuery).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestUpdate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(updateQuery).
		WithArgs("pen", 2.0, int64(1)).
		WillReturnError(errors.New("db down"))

	_, err := repo.Update(context.Background(), &models.Article{ID: 1, Name: "pen", Price: 2.0})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
