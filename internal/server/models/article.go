package models

// Article is a resource record gated behind bearer authentication.
// The ID is assigned by the store on insert.
type Article struct {
	ID    int64
	Name  string
	Price float64
}
