package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/articlegate/internal/common"
)

func (a *App) List(ctx context.Context) error {
	articles, err := a.api.ListArticles(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(a.out, "No articles yet")
		return nil
	}

	for _, item := range articles {
		fmt.Fprintf(a.out, "%d\t%s\t%.2f\n", item.ID, item.Name, item.Price)
	}
	return nil
}

func (a *App) Show(ctx context.Context) error {
	id, err := GetInt(a.reader, "Enter article id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	article, err := a.api.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintln(a.out, "No such article")
		} else {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "%d\t%s\t%.2f\n", article.ID, article.Name, article.Price)
	return nil
}

func (a *App) Add(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter article name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	price, err := GetFloat(a.reader, "Enter price", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	article, err := a.api.CreateArticle(ctx, name, price)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Created article %d\n", article.ID)
	return nil
}

func (a *App) Update(ctx context.Context) error {
	id, err := GetInt(a.reader, "Enter article id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	name, err := GetSimpleText(a.reader, "Enter new name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	price, err := GetFloat(a.reader, "Enter new price", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	article, err := a.api.UpdateArticle(ctx, id, name, price)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintln(a.out, "No such article")
		} else {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Updated article %d\n", article.ID)
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	id, err := GetInt(a.reader, "Enter article id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if err := a.api.DeleteArticle(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintln(a.out, "No such article")
		} else {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
		return err
	}

	fmt.Fprintln(a.out, "Deleted")
	return nil
}
