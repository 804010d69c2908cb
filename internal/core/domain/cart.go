package domain

import "errors"

var ErrCartNotFound = errors.New("cart not found")
var ErrCartItemNotFound = errors.New("product not found in cart")

// CartItem references a product and the desired quantity.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart holds one user's pending items. Adding a product that is already
// present merges quantities instead of appending a duplicate line.
type Cart struct {
	Username string     `json:"username"`
	Items    []CartItem `json:"items"`
}

// Find returns the index of the item for productID, or -1.
func (c *Cart) Find(productID string) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
