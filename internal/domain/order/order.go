package order

// Order is the projected read shape of an order document. Orders are
// read-only through this API; products line items and the order date are
// opaque pass-through values owned by the ordering system.
type Order struct {
	UserID      string  `bson:"user_id" json:"user_id"`
	Products    any     `bson:"products" json:"products"`
	TotalAmount float64 `bson:"totalAmount" json:"totalAmount"`
	OrderDate   any     `bson:"orderDate" json:"orderDate"`
	Status      string  `bson:"status" json:"status"`
}

// Filter holds the optional search predicates. user_id matches exactly.
type Filter struct {
	UserID *string
}
