package graphql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogostanoev/e-commerce-backend-assignment/internal/model"
	"github.com/gogostanoev/e-commerce-backend-assignment/internal/service"
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/apperror"
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/logger"

	gql "github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

type resolver struct {
	products service.ProductOperations
	images   service.ImageOperations
}

// errInternal replaces unclassified errors in responses.
var errInternal = errors.New("internal server error")

// fail passes classified errors through. Anything else is logged and hidden
// behind errInternal.
func fail(ctx context.Context, op string, err error) error {
	if errors.Is(err, apperror.ErrNotFound) || errors.Is(err, apperror.ErrInvalidInput) {
		return err
	}
	logger.FromStdContext(ctx).Error("GraphQL resolver failed", zap.String("operation", op), zap.Error(err))
	return errInternal
}

// --- Queries ---

func (r *resolver) listProducts(p gql.ResolveParams) (interface{}, error) {
	products, err := r.products.ListProducts(p.Context)
	if err != nil {
		return nil, fail(p.Context, "products", err)
	}
	return products, nil
}

func (r *resolver) getProduct(p gql.ResolveParams) (interface{}, error) {
	product, err := r.products.GetProduct(p.Context, stringArg(p.Args, "id"))
	if err != nil {
		return nil, fail(p.Context, "product", err)
	}
	return product, nil
}

func (r *resolver) listImages(p gql.ResolveParams) (interface{}, error) {
	images, err := r.images.ListImages(p.Context)
	if err != nil {
		return nil, fail(p.Context, "images", err)
	}
	return images, nil
}

func (r *resolver) getImage(p gql.ResolveParams) (interface{}, error) {
	image, err := r.images.GetImage(p.Context, stringArg(p.Args, "id"))
	if err != nil {
		return nil, fail(p.Context, "image", err)
	}
	return image, nil
}

// --- Relations ---

// productImages reuses preloaded images and loads them otherwise.
func (r *resolver) productImages(p gql.ResolveParams) (interface{}, error) {
	product, err := asProduct(p.Source)
	if err != nil {
		return nil, err
	}
	if product.Images != nil {
		return product.Images, nil
	}

	images, err := r.products.ListImagesOfProduct(p.Context, product.ID)
	if err != nil {
		return nil, fail(p.Context, "Product.images", err)
	}
	return images, nil
}

// imageProduct reuses a preloaded owner and loads it otherwise.
func (r *resolver) imageProduct(p gql.ResolveParams) (interface{}, error) {
	image, err := asImage(p.Source)
	if err != nil {
		return nil, err
	}
	if image.Product != nil {
		return image.Product, nil
	}

	product, err := r.images.GetProductOfImage(p.Context, image.ID)
	if err != nil {
		return nil, fail(p.Context, "Image.product", err)
	}
	return product, nil
}

// --- Mutations ---

func (r *resolver) createProduct(p gql.ResolveParams) (interface{}, error) {
	in := mapArg(p.Args, "product")
	input := service.CreateProductInput{
		Name:   stringArg(in, "name"),
		Price:  floatField(in, "price"),
		Status: stringArg(in, "status"),
	}

	product, err := r.products.CreateProduct(p.Context, input)
	if err != nil {
		return nil, fail(p.Context, "createProduct", err)
	}
	return product, nil
}

func (r *resolver) updateProduct(p gql.ResolveParams) (interface{}, error) {
	in := mapArg(p.Args, "product")
	input := service.UpdateProductInput{
		Name:   stringField(in, "name"),
		Price:  floatField(in, "price"),
		Status: stringField(in, "status"),
	}

	product, err := r.products.UpdateProduct(p.Context, stringArg(p.Args, "id"), input)
	if err != nil {
		return nil, fail(p.Context, "updateProduct", err)
	}
	return product, nil
}

func (r *resolver) deleteProduct(p gql.ResolveParams) (interface{}, error) {
	msg, err := r.products.DeleteProduct(p.Context, stringArg(p.Args, "id"))
	if err != nil {
		return nil, fail(p.Context, "deleteProduct", err)
	}
	return msg, nil
}

func (r *resolver) createImage(p gql.ResolveParams) (interface{}, error) {
	in := mapArg(p.Args, "image")
	input := service.CreateImageInput{
		URL:      stringArg(in, "url"),
		Priority: intField(in, "priority"),
	}

	image, err := r.images.CreateImage(p.Context, input, stringArg(p.Args, "productId"))
	if err != nil {
		return nil, fail(p.Context, "createImage", err)
	}
	return image, nil
}

func (r *resolver) updateImage(p gql.ResolveParams) (interface{}, error) {
	in := mapArg(p.Args, "image")
	input := service.UpdateImageInput{
		URL:      stringField(in, "url"),
		Priority: intField(in, "priority"),
	}

	image, err := r.images.UpdateImage(p.Context, stringArg(p.Args, "id"), input)
	if err != nil {
		return nil, fail(p.Context, "updateImage", err)
	}
	return image, nil
}

func (r *resolver) deleteImage(p gql.ResolveParams) (interface{}, error) {
	msg, err := r.images.DeleteImage(p.Context, stringArg(p.Args, "id"))
	if err != nil {
		return nil, fail(p.Context, "deleteImage", err)
	}
	return msg, nil
}

// --- Argument helpers ---

func asProduct(src interface{}) (*model.Product, error) {
	switch v := src.(type) {
	case *model.Product:
		return v, nil
	case model.Product:
		return &v, nil
	default:
		return nil, fmt.Errorf("unexpected product source %T", src)
	}
}

func asImage(src interface{}) (*model.Image, error) {
	switch v := src.(type) {
	case *model.Image:
		return v, nil
	case model.Image:
		return &v, nil
	default:
		return nil, fmt.Errorf("unexpected image source %T", src)
	}
}

func mapArg(args map[string]interface{}, key string) map[string]interface{} {
	m, _ := args[key].(map[string]interface{})
	return m
}

func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

// Optional fields are nil when the client left them out or sent null.

func stringField(args map[string]interface{}, key string) *string {
	s, ok := args[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func floatField(args map[string]interface{}, key string) *float64 {
	switch v := args[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	default:
		return nil
	}
}

func intField(args map[string]interface{}, key string) *int {
	switch v := args[key].(type) {
	case int:
		return &v
	case float64:
		i := int(v)
		return &i
	default:
		return nil
	}
}
