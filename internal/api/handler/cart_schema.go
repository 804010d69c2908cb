package handler

// cartItemRequest names a product and the requested quantity. Used both for
// adding an item and for setting the quantity of an existing line.
type cartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
}
