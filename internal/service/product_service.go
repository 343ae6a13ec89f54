package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogostanoev/e-commerce-backend-assignment/internal/model"
	"github.com/gogostanoev/e-commerce-backend-assignment/internal/repository"
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/apperror"

	"go.uber.org/zap"
)

// ProductService implements ProductOperations on top of a ProductRepository.
type ProductService struct {
	repo repository.ProductRepository
	log  *zap.Logger
	opts options
}

var _ ProductOperations = (*ProductService)(nil)

// NewProductService creates a product service.
func NewProductService(repo repository.ProductRepository, log *zap.Logger, opts ...Option) *ProductService {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &ProductService{repo: repo, log: log, opts: o}
}

func (s *ProductService) record(operation string, err error) {
	s.opts.metrics.RecordProductOperation(operation, outcome(err))
}

// ListProducts returns every product. An empty catalog is reported as not found.
func (s *ProductService) ListProducts(ctx context.Context) (products []model.Product, err error) {
	ctx, span := startSpan(ctx, "ProductService.ListProducts", "")
	defer func() { endSpan(span, err); s.record("list", err) }()

	products, err = s.repo.List(ctx, s.opts.preload)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperror.NotFound("No products are currently available")
	}

	s.log.Debug("Products retrieved", zap.Int("count", len(products)))
	return products, nil
}

// GetProduct returns the product with the given id.
func (s *ProductService) GetProduct(ctx context.Context, id string) (product *model.Product, err error) {
	ctx, span := startSpan(ctx, "ProductService.GetProduct", id)
	defer func() { endSpan(span, err); s.record("get", err) }()

	if id == "" {
		return nil, invalidProductID()
	}
	return s.find(ctx, id, s.opts.preload, "Product with id %s not found.")
}

// ListImagesOfProduct returns the images owned by the product with the given id.
func (s *ProductService) ListImagesOfProduct(ctx context.Context, id string) (images []model.Image, err error) {
	ctx, span := startSpan(ctx, "ProductService.ListImagesOfProduct", id)
	defer func() { endSpan(span, err); s.record("list_images", err) }()

	if id == "" {
		return nil, invalidProductID()
	}
	product, err := s.find(ctx, id, true, "Product with id %s not found.")
	if err != nil {
		return nil, err
	}
	if product.Images == nil {
		return []model.Image{}, nil
	}
	return product.Images, nil
}

// CreateProduct validates and stores a new product.
func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (product *model.Product, err error) {
	ctx, span := startSpan(ctx, "ProductService.CreateProduct", "")
	defer func() { endSpan(span, err); s.record("create", err) }()

	if err := validate(input); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = model.StatusActive
	}
	product = &model.Product{
		Name:   input.Name,
		Price:  *input.Price,
		Status: status,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	product.Images = []model.Image{}

	s.log.Info("Product created",
		zap.String("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Float64("price", product.Price))
	return product, nil
}

// UpdateProduct overwrites the provided fields of an existing product. The
// returned product carries its images unless relations are resolved lazily.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (product *model.Product, err error) {
	ctx, span := startSpan(ctx, "ProductService.UpdateProduct", id)
	defer func() { endSpan(span, err); s.record("update", err) }()

	if id == "" {
		return nil, invalidProductID()
	}
	if err := validate(input); err != nil {
		return nil, err
	}

	// Loaded images stay on the response; saving skips associations.
	product, err = s.find(ctx, id, s.opts.preload, "Product with ID %s not found.")
	if err != nil {
		return nil, err
	}

	oldPrice := product.Price
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Status != nil {
		product.Status = *input.Status
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.log.Info("Product updated",
		zap.String("product_id", id),
		zap.Float64("old_price", oldPrice),
		zap.Float64("new_price", product.Price),
		zap.String("status", product.Status))
	return product, nil
}

// DeleteProduct removes a product together with its images.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) (msg string, err error) {
	ctx, span := startSpan(ctx, "ProductService.DeleteProduct", id)
	defer func() { endSpan(span, err); s.record("delete", err) }()

	if id == "" {
		return "", invalidProductID()
	}
	if _, err := s.find(ctx, id, false, "Product with id %s not found."); err != nil {
		return "", err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return "", apperror.NotFound("Product with id %s not found.", id)
		}
		return "", err
	}

	s.log.Info("Product deleted", zap.String("product_id", id))
	return fmt.Sprintf("The desired product has been successfully deleted %s", id), nil
}

func (s *ProductService) find(ctx context.Context, id string, withImages bool, notFoundMsg string) (*model.Product, error) {
	product, err := s.repo.GetByID(ctx, id, withImages)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NotFound(notFoundMsg, id)
		}
		return nil, err
	}
	return product, nil
}

func invalidProductID() error {
	return apperror.InvalidInput("Invalid ID, please provide a valid product ID!")
}
