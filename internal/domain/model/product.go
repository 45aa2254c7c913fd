package model

// Product is a catalog entry. Stock is decremented only by successful
// checkouts and replenished by administrative restock; it never goes negative.
type Product struct {
	ID    int64
	Name  string
	Price float64
	Stock int64
}

// CartItem is one row of a customer's cart: a product and its quantity.
type CartItem struct {
	UserID    int64
	ProductID int64
	Quantity  int64
}
