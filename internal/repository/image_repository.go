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

// GormImageRepository stores images through GORM.
type GormImageRepository struct {
	db      *gorm.DB
	metrics *prometheus.Metrics
}

// NewImageRepository creates an image repository. metrics may be nil.
func NewImageRepository(db *gorm.DB, metrics *prometheus.Metrics) *GormImageRepository {
	return &GormImageRepository{db: db, metrics: metrics}
}

var _ ImageRepository = (*GormImageRepository)(nil)

func (r *GormImageRepository) List(ctx context.Context, withProduct bool) ([]model.Image, error) {
	defer r.metrics.TrackDBOperation("select")(time.Now())

	query := r.db.WithContext(ctx)
	if withProduct {
		query = query.Preload("Product")
	}

	var images []model.Image
	if err := query.Find(&images).Error; err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return images, nil
}

func (r *GormImageRepository) GetByID(ctx context.Context, id string, withProduct bool) (*model.Image, error) {
	if !validKey(id) {
		return nil, notFound("image", id)
	}
	defer r.metrics.TrackDBOperation("select")(time.Now())

	query := r.db.WithContext(ctx)
	if withProduct {
		query = query.Preload("Product")
	}

	var image model.Image
	if err := query.First(&image, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("image", id)
		}
		return nil, fmt.Errorf("get image %s: %w", id, err)
	}
	return &image, nil
}

// Create inserts only the image columns: the owning product already exists
// and a priority of 0 must not fall back to the column default.
func (r *GormImageRepository) Create(ctx context.Context, image *model.Image) error {
	defer r.metrics.TrackDBOperation("insert")(time.Now())

	err := r.db.WithContext(ctx).
		Select("id", "url", "priority", "product_id").
		Create(image).Error
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	return nil
}

func (r *GormImageRepository) Save(ctx context.Context, image *model.Image) error {
	defer r.metrics.TrackDBOperation("update")(time.Now())

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(image).Error; err != nil {
		return fmt.Errorf("save image %s: %w", image.ID, err)
	}
	return nil
}

func (r *GormImageRepository) Delete(ctx context.Context, id string) error {
	if !validKey(id) {
		return notFound("image", id)
	}
	defer r.metrics.TrackDBOperation("delete")(time.Now())

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Image{})
	if result.Error != nil {
		return fmt.Errorf("delete image %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("image", id)
	}
	return nil
}
