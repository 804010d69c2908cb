package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/taskhive/internal/core/domain"
	"github.com/taskhive/taskhive/internal/core/ports"
)

// CartHandler serves the authenticated user's shopping cart.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// AddItem handles POST /cart/add/ - puts a quantity of a product in the
// caller's cart, merging with any existing line.
//
// @Summary      Add an item to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      cartItemRequest  true  "Product and quantity"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /cart/add/ [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	product, err := h.service.AddItem(c.Request().Context(), username, ports.CartItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Added %d of product %s to cart.", req.Quantity, product.Name),
	})
}

// GetCart handles GET /cart/ - the caller's cart, empty when none exists.
//
// @Summary      View the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Cart
// @Failure      401  {object}  errorResponse
// @Router       /cart/ [get]
func (h *CartHandler) GetCart(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	cart, err := h.service.GetCart(c.Request().Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// UpdateItem handles PUT /cart/ - sets the quantity of a line already in
// the caller's cart.
//
// @Summary      Update an item's quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      cartItemRequest  true  "Product and new quantity"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /cart/ [put]
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	product, err := h.service.UpdateItem(c.Request().Context(), username, ports.CartItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Updated quantity for product %s to %d.", product.Name, req.Quantity),
	})
}

// RemoveItem handles DELETE /cart/:product_id - drops one line from the cart.
//
// @Summary      Remove an item from the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        product_id  path      string  true  "Product ID"
// @Success      200         {object}  messageResponse
// @Failure      401         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /cart/{product_id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	productID := c.Param("product_id")
	if err := h.service.RemoveItem(c.Request().Context(), username, productID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Product %s removed from cart.", productID),
	})
}

// Clear handles DELETE /cart/ - removes the caller's cart entirely.
//
// @Summary      Clear the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /cart/ [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Clear(c.Request().Context(), username); err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Cart is already empty or not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Cart cleared successfully."})
}
