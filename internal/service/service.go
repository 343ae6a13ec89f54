package service

import (
	"context"
	"errors"

	"github.com/gogostanoev/e-commerce-backend-assignment/internal/model"
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/apperror"
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/tracing"
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/validator"
	"github.com/gogostanoev/e-commerce-backend-assignment/prometheus"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ProductOperations is the product capability both transports bind to.
type ProductOperations interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListImagesOfProduct(ctx context.Context, id string) ([]model.Image, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) (string, error)
}

// ImageOperations is the image capability both transports bind to.
type ImageOperations interface {
	ListImages(ctx context.Context) ([]model.Image, error)
	GetImage(ctx context.Context, id string) (*model.Image, error)
	GetProductOfImage(ctx context.Context, id string) (*model.Product, error)
	CreateImage(ctx context.Context, input CreateImageInput, productID string) (*model.Image, error)
	UpdateImage(ctx context.Context, id string, input UpdateImageInput) (*model.Image, error)
	DeleteImage(ctx context.Context, id string) (string, error)
}

// CreateProductInput holds the fields of a new product. Status defaults to
// active when empty.
type CreateProductInput struct {
	Name   string   `json:"name" validate:"required"`
	Price  *float64 `json:"price" validate:"required"`
	Status string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateProductInput holds the fields to overwrite. Nil fields are left
// unchanged; provided fields overwrite even when they hold a zero value.
type UpdateProductInput struct {
	Name   *string  `json:"name" validate:"omitnil,min=1"`
	Price  *float64 `json:"price"`
	Status *string  `json:"status" validate:"omitnil,oneof=active inactive"`
}

// CreateImageInput holds the fields of a new image.
type CreateImageInput struct {
	URL      string `json:"url" validate:"required"`
	Priority *int   `json:"priority" validate:"required"`
}

// UpdateImageInput holds the image fields to overwrite. Nil fields are left
// unchanged.
type UpdateImageInput struct {
	URL      *string `json:"url" validate:"omitnil,min=1"`
	Priority *int    `json:"priority"`
}

// Option configures a service.
type Option func(*options)

type options struct {
	preload bool
	metrics *prometheus.Metrics
}

func defaultOptions() options {
	return options{preload: true}
}

// WithoutRelations stops list and get operations from loading the related
// entities. The GraphQL backend resolves relations per field instead.
func WithoutRelations() Option {
	return func(o *options) { o.preload = false }
}

// WithMetrics records operation outcomes on m.
func WithMetrics(m *prometheus.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

var tracer = tracing.Tracer("github.com/gogostanoev/e-commerce-backend-assignment/internal/service")

func startSpan(ctx context.Context, name, id string) (context.Context, trace.Span) {
	ctx, span := tracer.Start(ctx, name)
	if id != "" {
		span.SetAttributes(attribute.String("catalog.id", id))
	}
	return ctx, span
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return prometheus.OutcomeSuccess
	case errors.Is(err, apperror.ErrInvalidInput):
		return prometheus.OutcomeInvalidInput
	case errors.Is(err, apperror.ErrNotFound):
		return prometheus.OutcomeNotFound
	default:
		return prometheus.OutcomeError
	}
}

func validate(input any) error {
	if err := validator.Validate(input); err != nil {
		return apperror.InvalidInput("%s", err.Error())
	}
	return nil
}
