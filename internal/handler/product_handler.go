package handler

import (
	"net/http"

	"github.com/gogostanoev/e-commerce-backend-assignment/internal/service"
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductHandler exposes product operations over REST.
type ProductHandler struct {
	products service.ProductOperations
}

// NewProductHandler creates a ProductHandler.
func NewProductHandler(products service.ProductOperations) *ProductHandler {
	return &ProductHandler{products: products}
}

// ListProducts handles retrieving all products
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.products.ListProducts(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to list products")
	}

	logger.FromContext(c).Info("Products retrieved successfully", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles retrieving a single product by ID
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")

	product, err := h.products.GetProduct(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to get product")
	}
	return c.JSON(http.StatusOK, product)
}

// ListImagesOfProduct handles retrieving the images of one product
func (h *ProductHandler) ListImagesOfProduct(c echo.Context) error {
	id := c.Param("id")

	images, err := h.products.ListImagesOfProduct(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to list product images")
	}
	return c.JSON(http.StatusOK, images)
}

// CreateProduct handles creating a new product
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)

	var req service.CreateProductInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, err)
	}

	log.Info("Product creation request", zap.String("name", req.Name))

	product, err := h.products.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err, "Failed to create product")
	}

	log.Info("Product created successfully", zap.String("product_id", product.ID))
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles updating an existing product
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id := c.Param("id")

	var req service.UpdateProductInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, err)
	}

	product, err := h.products.UpdateProduct(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err, "Failed to update product")
	}

	logger.FromContext(c).Info("Product updated successfully", zap.String("product_id", id))
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles deleting a product and its images
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")

	msg, err := h.products.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to delete product")
	}

	logger.FromContext(c).Info("Product deleted successfully", zap.String("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": msg})
}
