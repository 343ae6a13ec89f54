package handler

import (
	"net/http"

	"github.com/gogostanoev/e-commerce-backend-assignment/internal/service"
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ImageHandler exposes image operations over REST.
type ImageHandler struct {
	images service.ImageOperations
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(images service.ImageOperations) *ImageHandler {
	return &ImageHandler{images: images}
}

// ListImages handles retrieving all images
func (h *ImageHandler) ListImages(c echo.Context) error {
	images, err := h.images.ListImages(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to list images")
	}

	logger.FromContext(c).Info("Images retrieved successfully", zap.Int("count", len(images)))
	return c.JSON(http.StatusOK, images)
}

// GetImage handles retrieving a single image by ID
func (h *ImageHandler) GetImage(c echo.Context) error {
	image, err := h.images.GetImage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, "Failed to get image")
	}
	return c.JSON(http.StatusOK, image)
}

// GetProductOfImage handles retrieving the product an image belongs to
func (h *ImageHandler) GetProductOfImage(c echo.Context) error {
	product, err := h.images.GetProductOfImage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, "Failed to get product of image")
	}
	return c.JSON(http.StatusOK, product)
}

// CreateImage handles attaching a new image to a product
func (h *ImageHandler) CreateImage(c echo.Context) error {
	productID := c.Param("productId")

	var req service.CreateImageInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, err)
	}

	image, err := h.images.CreateImage(c.Request().Context(), req, productID)
	if err != nil {
		return respondError(c, err, "Failed to create image")
	}

	logger.FromContext(c).Info("Image created successfully",
		zap.String("image_id", image.ID),
		zap.String("product_id", productID))
	return c.JSON(http.StatusCreated, image)
}

// UpdateImage handles updating an existing image
func (h *ImageHandler) UpdateImage(c echo.Context) error {
	id := c.Param("id")

	var req service.UpdateImageInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, err)
	}

	image, err := h.images.UpdateImage(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err, "Failed to update image")
	}
	return c.JSON(http.StatusOK, image)
}

// DeleteImage handles deleting an image
func (h *ImageHandler) DeleteImage(c echo.Context) error {
	id := c.Param("id")

	msg, err := h.images.DeleteImage(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to delete image")
	}

	logger.FromContext(c).Info("Image deleted successfully", zap.String("image_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": msg})
}
