package graphql

import (
	"github.com/gogostanoev/e-commerce-backend-assignment/internal/service"

	gql "github.com/graphql-go/graphql"
)

// NewSchema builds the catalog schema on top of the two service capabilities.
func NewSchema(products service.ProductOperations, images service.ImageOperations) (gql.Schema, error) {
	r := &resolver{products: products, images: images}

	var productType, imageType *gql.Object

	productType = gql.NewObject(gql.ObjectConfig{
		Name: "Product",
		Fields: gql.FieldsThunk(func() gql.Fields {
			return gql.Fields{
				"id":     &gql.Field{Type: gql.NewNonNull(gql.ID)},
				"name":   &gql.Field{Type: gql.NewNonNull(gql.String)},
				"price":  &gql.Field{Type: gql.NewNonNull(gql.Float)},
				"status": &gql.Field{Type: gql.NewNonNull(gql.String)},
				"images": &gql.Field{
					Type:    gql.NewList(imageType),
					Resolve: r.productImages,
				},
			}
		}),
	})

	imageType = gql.NewObject(gql.ObjectConfig{
		Name: "Image",
		Fields: gql.FieldsThunk(func() gql.Fields {
			return gql.Fields{
				"id":       &gql.Field{Type: gql.NewNonNull(gql.ID)},
				"url":      &gql.Field{Type: gql.NewNonNull(gql.String)},
				"priority": &gql.Field{Type: gql.NewNonNull(gql.Int)},
				"product": &gql.Field{
					Type:    gql.NewNonNull(productType),
					Resolve: r.imageProduct,
				},
			}
		}),
	})

	createProductInput := gql.NewInputObject(gql.InputObjectConfig{
		Name: "CreateProductInput",
		Fields: gql.InputObjectConfigFieldMap{
			"name":   &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"price":  &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.Float)},
			"status": &gql.InputObjectFieldConfig{Type: gql.String},
		},
	})

	updateProductInput := gql.NewInputObject(gql.InputObjectConfig{
		Name: "UpdateProductInput",
		Fields: gql.InputObjectConfigFieldMap{
			"name":   &gql.InputObjectFieldConfig{Type: gql.String},
			"price":  &gql.InputObjectFieldConfig{Type: gql.Float},
			"status": &gql.InputObjectFieldConfig{Type: gql.String},
		},
	})

	createImageInput := gql.NewInputObject(gql.InputObjectConfig{
		Name: "CreateImageInput",
		Fields: gql.InputObjectConfigFieldMap{
			"url":      &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"priority": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.Int)},
		},
	})

	updateImageInput := gql.NewInputObject(gql.InputObjectConfig{
		Name: "UpdateImageInput",
		Fields: gql.InputObjectConfigFieldMap{
			"url":      &gql.InputObjectFieldConfig{Type: gql.String},
			"priority": &gql.InputObjectFieldConfig{Type: gql.Int},
		},
	})

	idArg := gql.FieldConfigArgument{
		"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
	}

	query := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"products": &gql.Field{
				Type:    gql.NewNonNull(gql.NewList(gql.NewNonNull(productType))),
				Resolve: r.listProducts,
			},
			"product": &gql.Field{
				Type:    gql.NewNonNull(productType),
				Args:    idArg,
				Resolve: r.getProduct,
			},
			"images": &gql.Field{
				Type:    gql.NewNonNull(gql.NewList(gql.NewNonNull(imageType))),
				Resolve: r.listImages,
			},
			"image": &gql.Field{
				Type:    gql.NewNonNull(imageType),
				Args:    idArg,
				Resolve: r.getImage,
			},
		},
	})

	mutation := gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			"createProduct": &gql.Field{
				Type: gql.NewNonNull(productType),
				Args: gql.FieldConfigArgument{
					"product": &gql.ArgumentConfig{Type: gql.NewNonNull(createProductInput)},
				},
				Resolve: r.createProduct,
			},
			"updateProduct": &gql.Field{
				Type: gql.NewNonNull(productType),
				Args: gql.FieldConfigArgument{
					"id":      &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"product": &gql.ArgumentConfig{Type: gql.NewNonNull(updateProductInput)},
				},
				Resolve: r.updateProduct,
			},
			"deleteProduct": &gql.Field{
				Type:    gql.NewNonNull(gql.String),
				Args:    idArg,
				Resolve: r.deleteProduct,
			},
			"createImage": &gql.Field{
				Type: gql.NewNonNull(imageType),
				Args: gql.FieldConfigArgument{
					"image":     &gql.ArgumentConfig{Type: gql.NewNonNull(createImageInput)},
					"productId": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
				},
				Resolve: r.createImage,
			},
			"updateImage": &gql.Field{
				Type: gql.NewNonNull(imageType),
				Args: gql.FieldConfigArgument{
					"id":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"image": &gql.ArgumentConfig{Type: gql.NewNonNull(updateImageInput)},
				},
				Resolve: r.updateImage,
			},
			"deleteImage": &gql.Field{
				Type:    gql.NewNonNull(gql.String),
				Args:    idArg,
				Resolve: r.deleteImage,
			},
		},
	})

	return gql.NewSchema(gql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
