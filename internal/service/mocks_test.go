package service

import (
	"context"

	"github.com/gogostanoev/e-commerce-backend-assignment/internal/model"

	"github.com/stretchr/testify/mock"
)

// --- Mock Repositories ---

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) List(ctx context.Context, withImages bool) ([]model.Product, error) {
	args := m.Called(ctx, withImages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id string, withImages bool) (*model.Product, error) {
	args := m.Called(ctx, id, withImages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *mockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) Save(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockImageRepository struct {
	mock.Mock
}

func (m *mockImageRepository) List(ctx context.Context, withProduct bool) ([]model.Image, error) {
	args := m.Called(ctx, withProduct)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Image), args.Error(1)
}

func (m *mockImageRepository) GetByID(ctx context.Context, id string, withProduct bool) (*model.Image, error) {
	args := m.Called(ctx, id, withProduct)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Image), args.Error(1)
}

func (m *mockImageRepository) Create(ctx context.Context, image *model.Image) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *mockImageRepository) Save(ctx context.Context, image *model.Image) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *mockImageRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func ptr[T any](v T) *T {
	return &v
}
