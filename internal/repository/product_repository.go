package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gogostanoev/e-commerce-backend-assignment/internal/model"
	"github.com/gogostanoev/e-commerce-backend-assignment/prometheus"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository stores products through GORM.
type GormProductRepository struct {
	db      *gorm.DB
	metrics *prometheus.Metrics
}

// NewProductRepository creates a product repository. metrics may be nil.
func NewProductRepository(db *gorm.DB, metrics *prometheus.Metrics) *GormProductRepository {
	return &GormProductRepository{db: db, metrics: metrics}
}

var _ ProductRepository = (*GormProductRepository)(nil)

func (r *GormProductRepository) List(ctx context.Context, withImages bool) ([]model.Product, error) {
	defer r.metrics.TrackDBOperation("select")(time.Now())

	query := r.db.WithContext(ctx)
	if withImages {
		query = query.Preload("Images")
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if withImages {
		for i := range products {
			if products[i].Images == nil {
				products[i].Images = []model.Image{}
			}
		}
	}
	return products, nil
}

func (r *GormProductRepository) GetByID(ctx context.Context, id string, withImages bool) (*model.Product, error) {
	if !validKey(id) {
		return nil, notFound("product", id)
	}
	defer r.metrics.TrackDBOperation("select")(time.Now())

	query := r.db.WithContext(ctx)
	if withImages {
		query = query.Preload("Images")
	}

	var product model.Product
	if err := query.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("product", id)
		}
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	// nil means not loaded; an empty slice means no images
	if withImages && product.Images == nil {
		product.Images = []model.Image{}
	}
	return &product, nil
}

// Create inserts the product columns explicitly so zero values such as a
// price of 0 are stored instead of being replaced by column defaults.
func (r *GormProductRepository) Create(ctx context.Context, product *model.Product) error {
	defer r.metrics.TrackDBOperation("insert")(time.Now())

	err := r.db.WithContext(ctx).
		Select("id", "name", "price", "status").
		Create(product).Error
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *GormProductRepository) Save(ctx context.Context, product *model.Product) error {
	defer r.metrics.TrackDBOperation("update")(time.Now())

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(product).Error; err != nil {
		return fmt.Errorf("save product %s: %w", product.ID, err)
	}
	return nil
}

// Delete removes the product row. Its images are removed by the foreign key's
// ON DELETE CASCADE rule.
func (r *GormProductRepository) Delete(ctx context.Context, id string) error {
	if !validKey(id) {
		return notFound("product", id)
	}
	defer r.metrics.TrackDBOperation("delete")(time.Now())

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	if result.Error != nil {
		return fmt.Errorf("delete product %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("product", id)
	}
	return nil
}
