package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/gogostanoev/e-commerce-backend-assignment/internal/model"
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const imageID = "0d1b8f5a-9c2e-4a7b-8e3f-6a5c4b3d2e01"

func newTestImageService(images *mockImageRepository, products *mockProductRepository, opts ...Option) *ImageService {
	return NewImageService(images, products, zap.NewNop(), opts...)
}

func notebookImage() *model.Image {
	return &model.Image{
		ID:        imageID,
		URL:       "https://notebook/image.jpg",
		Priority:  model.DefaultImagePriority,
		ProductID: productID,
	}
}

func imageNotFoundErr(id string) error {
	return fmt.Errorf("image %s: %w", id, apperror.ErrNotFound)
}

// --- ListImages ---

func TestListImages_Success(t *testing.T) {
	images, products := new(mockImageRepository), new(mockProductRepository)
	svc := newTestImageService(images, products)

	img := notebookImage()
	img.Product = notebook()
	images.On("List", mock.Anything, true).Return([]model.Image{*img}, nil)

	result, err := svc.ListImages(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Notebook", result[0].Product.Name)
}

func TestListImages_EmptyIsNotFound(t *testing.T) {
	images, products := new(mockImageRepository), new(mockProductRepository)
	svc := newTestImageService(images, products, WithoutRelations())

	images.On("List", mock.Anything, false).Return([]model.Image{}, nil)

	_, err := svc.ListImages(context.Background())

	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Equal(t, "No images were found.", err.Error())
}

// --- GetImage ---

func TestGetImage_Success(t *testing.T) {
	images, products := new(mockImageRepository), new(mockProductRepository)
	svc := newTestImageService(images, products)

	images.On("GetByID", mock.Anything, imageID, true).Return(notebookImage(), nil)

	img, err := svc.GetImage(context.Background(), imageID)

	require.NoError(t, err)
	assert.Equal(t, "https://notebook/image.jpg", img.URL)
}

func TestGetImage_Errors(t *testing.T) {
	images, products := new(mockImageRepository), new(mockProductRepository)
	svc := newTestImageService(images, products)

	_, err := svc.GetImage(context.Background(), "")
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	images.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)

	images.On("GetByID", mock.Anything, "78", true).Return(nil, imageNotFoundErr("78"))
	_, err = svc.GetImage(context.Background(), "78")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Equal(t, "Image with id 78 not found", err.Error())
}

// --- GetProductOfImage ---

func TestGetProductOfImage_Success(t *testing.T) {
	images, products := new(mockImageRepository), new(mockProductRepository)
	svc := newTestImageService(images, products, WithoutRelations())

	expected := notebook()
	img := notebookImage()
	img.Product = expected
	images.On("GetByID", mock.Anything, imageID, true).Return(img, nil)

	product, err := svc.GetProductOfImage(context.Background(), imageID)

	require.NoError(t, err)
	assert.Equal(t, expected, product)
}

func TestGetProductOfImage_Errors(t *testing.T) {
	images, products := new(mockImageRepository), new(mockProductRepository)
	svc := newTestImageService(images, products)

	_, err := svc.GetProductOfImage(context.Background(), "")
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	images.On("GetByID", mock.Anything, "555", true).Return(nil, imageNotFoundErr("555"))
	_, err = svc.GetProductOfImage(context.Background(), "555")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

// --- CreateImage ---

func TestCreateImage_Success(t *testing.T) {
	images, products := new(mockImageRepository), new(mockProductRepository)
	svc := newTestImageService(images, products)

	product := notebook()
	products.On("GetByID", mock.Anything, productID, true).Return(product, nil)
	images.On("Create", mock.Anything, mock.MatchedBy(func(i *model.Image) bool {
		return i.URL == "good_url" && i.Priority == 1000 && i.ProductID == productID && i.Product == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Image).ID = imageID
	}).Return(nil)

	img, err := svc.CreateImage(context.Background(), CreateImageInput{URL: "good_url", Priority: ptr(1000)}, productID)

	require.NoError(t, err)
	assert.Equal(t, imageID, img.ID)
	assert.Equal(t, "good_url", img.URL)
	assert.Equal(t, 1000, img.Priority)
	assert.Equal(t, product, img.Product)
	images.AssertExpectations(t)
}

func TestCreateImage_ProductNotFound(t *testing.T) {
	images, products := new(mockImageRepository), new(mockProductRepository)
	svc := newTestImageService(images, products)

	products.On("GetByID", mock.Anything, "invalid_product_id", true).Return(nil, notFoundErr("invalid_product_id"))

	_, err := svc.CreateImage(context.Background(), CreateImageInput{URL: "amazing_url", Priority: ptr(1000)}, "invalid_product_id")

	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Equal(t, "Product with ID invalid_product_id not found.", err.Error())
	images.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateImage_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		input     CreateImageInput
		productID string
	}{
		{"empty product id", CreateImageInput{URL: "u", Priority: ptr(1)}, ""},
		{"missing url", CreateImageInput{Priority: ptr(1)}, productID},
		{"missing priority", CreateImageInput{URL: "u"}, productID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images, products := new(mockImageRepository), new(mockProductRepository)
			svc := newTestImageService(images, products)

			_, err := svc.CreateImage(context.Background(), tt.input, tt.productID)

			assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
			products.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
			images.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateImage_OwnerListsNewImage(t *testing.T) {
	images, products := new(mockImageRepository), new(mockProductRepository)
	svc := newTestImageService(images, products)

	products.On("GetByID", mock.Anything, productID, true).Return(notebook(), nil)
	images.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Image).ID = imageID
	}).Return(nil)

	img, err := svc.CreateImage(context.Background(), CreateImageInput{URL: "good_url", Priority: ptr(1000)}, productID)
	require.NoError(t, err)

	require.Len(t, img.Product.Images, 1)
	assert.Equal(t, imageID, img.Product.Images[0].ID)
	assert.Nil(t, img.Product.Images[0].Product)

	raw, err := json.Marshal(img)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"images":null`)
}

func TestCreateImage_WithoutRelationsLeavesOwnerImagesUnloaded(t *testing.T) {
	images, products := new(mockImageRepository), new(mockProductRepository)
	svc := newTestImageService(images, products, WithoutRelations())

	owner := notebook()
	owner.Images = nil
	products.On("GetByID", mock.Anything, productID, false).Return(owner, nil)
	images.On("Create", mock.Anything, mock.Anything).Return(nil)

	img, err := svc.CreateImage(context.Background(), CreateImageInput{URL: "good_url", Priority: ptr(1)}, productID)

	require.NoError(t, err)
	assert.Nil(t, img.Product.Images)
	products.AssertExpectations(t)
}

// --- UpdateImage ---

func TestUpdateImage_Success(t *testing.T) {
	images, products := new(mockImageRepository), new(mockProductRepository)
	svc := newTestImageService(images, products)

	images.On("GetByID", mock.Anything, imageID, false).Return(notebookImage(), nil)
	images.On("Save", mock.Anything, mock.Anything).Return(nil)

	img, err := svc.UpdateImage(context.Background(), imageID, UpdateImageInput{URL: ptr("new_valid_url"), Priority: ptr(1001)})

	require.NoError(t, err)
	assert.Equal(t, "new_valid_url", img.URL)
	assert.Equal(t, 1001, img.Priority)
}

func TestUpdateImage_PartialLeavesOtherFields(t *testing.T) {
	images, products := new(mockImageRepository), new(mockProductRepository)
	svc := newTestImageService(images, products)

	images.On("GetByID", mock.Anything, imageID, false).Return(notebookImage(), nil)
	images.On("Save", mock.Anything, mock.Anything).Return(nil)

	img, err := svc.UpdateImage(context.Background(), imageID, UpdateImageInput{Priority: ptr(0)})

	require.NoError(t, err)
	assert.Equal(t, "https://notebook/image.jpg", img.URL)
	assert.Equal(t, 0, img.Priority)
}

func TestUpdateImage_Errors(t *testing.T) {
	images, products := new(mockImageRepository), new(mockProductRepository)
	svc := newTestImageService(images, products)

	_, err := svc.UpdateImage(context.Background(), "", UpdateImageInput{})
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	_, err = svc.UpdateImage(context.Background(), imageID, UpdateImageInput{URL: ptr("")})
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	images.On("GetByID", mock.Anything, "invalid_image_id", false).Return(nil, imageNotFoundErr("invalid_image_id"))
	_, err = svc.UpdateImage(context.Background(), "invalid_image_id", UpdateImageInput{URL: ptr("new_valid_url")})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	images.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// --- DeleteImage ---

func TestDeleteImage_Success(t *testing.T) {
	images, products := new(mockImageRepository), new(mockProductRepository)
	svc := newTestImageService(images, products)

	images.On("GetByID", mock.Anything, imageID, false).Return(notebookImage(), nil)
	images.On("Delete", mock.Anything, imageID).Return(nil)

	msg, err := svc.DeleteImage(context.Background(), imageID)

	require.NoError(t, err)
	assert.Equal(t, "The image has been successfully deleted.", msg)
}

func TestDeleteImage_Errors(t *testing.T) {
	images, products := new(mockImageRepository), new(mockProductRepository)
	svc := newTestImageService(images, products)

	_, err := svc.DeleteImage(context.Background(), "")
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	images.On("GetByID", mock.Anything, "33", false).Return(nil, imageNotFoundErr("33"))
	_, err = svc.DeleteImage(context.Background(), "33")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	images.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
