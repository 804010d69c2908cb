package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/taskhive/internal/core/ports"
)

// ProductHandler serves the product catalog: public browsing plus
// admin-only management under /admin.
type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

type productRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Stock       int     `json:"stock"       validate:"required,gt=0"`
}

// Add handles POST /admin/add_product/. Admin only.
//
// @Summary      Add a product (admin only)
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/add_product/ [post]
func (h *ProductHandler) Add(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.AddProduct(c.Request().Context(), ports.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Get handles GET /products/:product_id. Public.
//
// @Summary      Get a product by ID
// @Tags         products
// @Produce      json
// @Param        product_id  path      string  true  "Product ID"
// @Success      200         {object}  domain.Product
// @Failure      404         {object}  errorResponse
// @Router       /products/{product_id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.GetProduct(c.Request().Context(), c.Param("product_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// List handles GET /products/. Public.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /products/ [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Update handles PUT /admin/products/:product_id. Admin only.
//
// @Summary      Update a product (admin only)
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        product_id  path      string          true  "Product ID"
// @Param        body        body      productRequest  true  "Replacement product details"
// @Success      200         {object}  domain.Product
// @Failure      401         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      422         {object}  errorResponse
// @Router       /admin/products/{product_id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.UpdateProduct(c.Request().Context(), c.Param("product_id"), ports.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /admin/products/:product_id. Admin only.
//
// @Summary      Delete a product (admin only)
// @Tags         products
// @Security     BearerAuth
// @Param        product_id  path  string  true  "Product ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/products/{product_id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteProduct(c.Request().Context(), c.Param("product_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
