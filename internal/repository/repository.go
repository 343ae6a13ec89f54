package repository

import (
	"context"
	"fmt"

	"github.com/gogostanoev/e-commerce-backend-assignment/internal/model"
	"github.com/gogostanoev/e-commerce-backend-assignment/pkg/apperror"

	"github.com/google/uuid"
)

// ProductRepository persists products. Lookups of a missing row return an
// error wrapping apperror.ErrNotFound.
type ProductRepository interface {
	List(ctx context.Context, withImages bool) ([]model.Product, error)
	GetByID(ctx context.Context, id string, withImages bool) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Save(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error
}

// ImageRepository persists images. Lookups of a missing row return an error
// wrapping apperror.ErrNotFound.
type ImageRepository interface {
	List(ctx context.Context, withProduct bool) ([]model.Image, error)
	GetByID(ctx context.Context, id string, withProduct bool) (*model.Image, error)
	Create(ctx context.Context, image *model.Image) error
	Save(ctx context.Context, image *model.Image) error
	Delete(ctx context.Context, id string) error
}

// validKey reports whether id can match a uuid primary key. Anything else
// cannot match a row, so it is answered as not found without a round trip.
func validKey(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func notFound(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, apperror.ErrNotFound)
}
