package db

// Product is a row of the products table.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
}
