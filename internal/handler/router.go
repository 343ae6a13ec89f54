package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the product and image routes on g. Both DELETE routes
// also accept a missing id so the caller gets a 400 instead of a 405.
func RegisterRoutes(g *echo.Group, products *ProductHandler, images *ImageHandler) {
	g.GET("/products", products.ListProducts)
	g.GET("/products/:id", products.GetProduct)
	g.GET("/products/:id/images", products.ListImagesOfProduct)
	g.POST("/products", products.CreateProduct)
	g.PUT("/products/:id", products.UpdateProduct)
	g.DELETE("/products", products.DeleteProduct)
	g.DELETE("/products/:id", products.DeleteProduct)

	g.GET("/images", images.ListImages)
	g.GET("/images/:id", images.GetImage)
	g.GET("/images/:id/product", images.GetProductOfImage)
	g.POST("/images/:productId", images.CreateImage)
	g.PUT("/images/:id", images.UpdateImage)
	g.DELETE("/images", images.DeleteImage)
	g.DELETE("/images/:id", images.DeleteImage)
}
