package service

import (
	"context"
	"errors"

	"github.com/gogostanoev/e-commerce-backend-assignment/internal/model"
	"github.com/gogostanoev/e-commerce-backend-assignment/internal/repository"
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/apperror"

	"go.uber.org/zap"
)

// ImageService implements ImageOperations. It reads products to attach new
// images to their owner.
type ImageService struct {
	images   repository.ImageRepository
	products repository.ProductRepository
	log      *zap.Logger
	opts     options
}

var _ ImageOperations = (*ImageService)(nil)

// NewImageService creates an image service.
func NewImageService(images repository.ImageRepository, products repository.ProductRepository, log *zap.Logger, opts ...Option) *ImageService {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &ImageService{images: images, products: products, log: log, opts: o}
}

func (s *ImageService) record(operation string, err error) {
	s.opts.metrics.RecordImageOperation(operation, outcome(err))
}

// ListImages returns every image. No images at all is reported as not found.
func (s *ImageService) ListImages(ctx context.Context) (images []model.Image, err error) {
	ctx, span := startSpan(ctx, "ImageService.ListImages", "")
	defer func() { endSpan(span, err); s.record("list", err) }()

	images, err = s.images.List(ctx, s.opts.preload)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, apperror.NotFound("No images were found.")
	}

	s.log.Debug("Images retrieved", zap.Int("count", len(images)))
	return images, nil
}

// GetImage returns the image with the given id.
func (s *ImageService) GetImage(ctx context.Context, id string) (image *model.Image, err error) {
	ctx, span := startSpan(ctx, "ImageService.GetImage", id)
	defer func() { endSpan(span, err); s.record("get", err) }()

	if id == "" {
		return nil, invalidImageID()
	}
	return s.find(ctx, id, s.opts.preload, "Image with id %s not found")
}

// GetProductOfImage returns the product owning the image with the given id.
func (s *ImageService) GetProductOfImage(ctx context.Context, id string) (product *model.Product, err error) {
	ctx, span := startSpan(ctx, "ImageService.GetProductOfImage", id)
	defer func() { endSpan(span, err); s.record("get_product", err) }()

	if id == "" {
		return nil, invalidImageID()
	}
	image, err := s.find(ctx, id, true, "Image with id %s not found")
	if err != nil {
		return nil, err
	}
	if image.Product == nil {
		return nil, apperror.NotFound("Product of image %s not found.", id)
	}
	return image.Product, nil
}

// CreateImage validates and stores a new image owned by productID. When the
// owner was loaded with its images the new image is appended to them.
func (s *ImageService) CreateImage(ctx context.Context, input CreateImageInput, productID string) (image *model.Image, err error) {
	ctx, span := startSpan(ctx, "ImageService.CreateImage", productID)
	defer func() { endSpan(span, err); s.record("create", err) }()

	if productID == "" {
		return nil, invalidProductID()
	}

	if err := validate(input); err != nil {
		return nil, err
	}

	product, err := s.products.GetByID(ctx, productID, s.opts.preload)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NotFound("Product with ID %s not found.", productID)
		}
		return nil, err
	}

	image = &model.Image{
		URL:       input.URL,
		Priority:  *input.Priority,
		ProductID: product.ID,
	}
	if err := s.images.Create(ctx, image); err != nil {
		return nil, err
	}
	if product.Images != nil {
		product.Images = append(product.Images, *image)
	}
	image.Product = product

	s.log.Info("Image created",
		zap.String("image_id", image.ID),
		zap.String("product_id", product.ID),
		zap.Int("priority", image.Priority))
	return image, nil
}

// UpdateImage overwrites the provided fields of an existing image.
func (s *ImageService) UpdateImage(ctx context.Context, id string, input UpdateImageInput) (image *model.Image, err error) {
	ctx, span := startSpan(ctx, "ImageService.UpdateImage", id)
	defer func() { endSpan(span, err); s.record("update", err) }()

	if id == "" {
		return nil, invalidImageID()
	}
	if err := validate(input); err != nil {
		return nil, err
	}

	image, err = s.find(ctx, id, false, "Image with ID %s not found.")
	if err != nil {
		return nil, err
	}

	if input.URL != nil {
		image.URL = *input.URL
	}
	if input.Priority != nil {
		image.Priority = *input.Priority
	}

	if err := s.images.Save(ctx, image); err != nil {
		return nil, err
	}

	s.log.Info("Image updated",
		zap.String("image_id", id),
		zap.Int("priority", image.Priority))
	return image, nil
}

// DeleteImage removes a single image.
func (s *ImageService) DeleteImage(ctx context.Context, id string) (msg string, err error) {
	ctx, span := startSpan(ctx, "ImageService.DeleteImage", id)
	defer func() { endSpan(span, err); s.record("delete", err) }()

	if id == "" {
		return "", invalidImageID()
	}
	if _, err := s.find(ctx, id, false, "Image with id %s not found."); err != nil {
		return "", err
	}
	if err := s.images.Delete(ctx, id); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return "", apperror.NotFound("Image with id %s not found.", id)
		}
		return "", err
	}

	s.log.Info("Image deleted", zap.String("image_id", id))
	return "The image has been successfully deleted.", nil
}

func (s *ImageService) find(ctx context.Context, id string, withProduct bool, notFoundMsg string) (*model.Image, error) {
	image, err := s.images.GetByID(ctx, id, withProduct)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NotFound(notFoundMsg, id)
		}
		return nil, err
	}
	return image, nil
}

func invalidImageID() error {
	return apperror.InvalidInput("Invalid ID, please provide a valid image ID")
}
