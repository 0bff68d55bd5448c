package category

import (
	"context"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/httpx"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	CreateCategory(ctx context.Context, name string) (*Category, []*Category, error)
	GetAllCategories(ctx context.Context) ([]*Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateProductType(ctx context.Context, category, typeName string) (*ProductType, error)
	GetAllProductTypes(ctx context.Context) ([]*ProductType, error)
	GetProductTypesByCategory(ctx context.Context, category string) ([]*ProductType, error)
	DeleteProductType(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateCategory rejects duplicates by exact (case-sensitive) match only.
// It returns the fresh list alongside the new entry because the SPA repaints
// its picker from the create response.
func (s *service) CreateCategory(ctx context.Context, name string) (*Category, []*Category, error) {
	if name == "" {
		return nil, nil, ErrCategoryRequired
	}

	existing, err := s.repo.FindCategoryByName(ctx, name)
	if err != nil {
		return nil, nil, httpx.Wrap(httpx.Internal, "Server error", err)
	}
	if existing != nil {
		return nil, nil, ErrCategoryExists
	}

	cat, err := s.repo.CreateCategory(ctx, name)
	if err != nil {
		return nil, nil, httpx.Wrap(httpx.Internal, "Server error", err)
	}

	all, err := s.repo.GetAllCategories(ctx)
	if err != nil {
		return nil, nil, httpx.Wrap(httpx.Internal, "Server error", err)
	}

	logger.FromCtx(ctx).Info("category created", zap.String("category", name))
	return cat, all, nil
}

func (s *service) GetAllCategories(ctx context.Context) ([]*Category, error) {
	cats, err := s.repo.GetAllCategories(ctx)
	if err != nil {
		return nil, httpx.Wrap(httpx.Dependency, "Server error while fetching categories", err)
	}
	if len(cats) == 0 {
		return nil, ErrNoCategories
	}
	return cats, nil
}

func (s *service) DeleteCategory(ctx context.Context, id string) error {
	existing, err := s.repo.FindCategoryByID(ctx, id)
	if err != nil {
		return httpx.Wrap(httpx.Internal, "Internal server error while deleting category", err)
	}
	if existing == nil {
		return ErrCategoryNotFound
	}

	// No cascade: product types and products referencing this name survive.
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return httpx.Wrap(httpx.Internal, "Internal server error while deleting category", err)
	}
	return nil
}

// CreateProductType requires the referenced category to exist and rejects a
// (category, type) pair that already exists under case-insensitive
// comparison of both fields.
func (s *service) CreateProductType(ctx context.Context, category, typeName string) (*ProductType, error) {
	if category == "" || typeName == "" {
		return nil, ErrTypeFieldsRequired
	}

	cat, err := s.repo.FindCategoryByNameFold(ctx, category)
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Server error", err)
	}
	if cat == nil {
		return nil, ErrCategoryMissing
	}

	existing, err := s.repo.FindProductTypeFold(ctx, category, typeName)
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Server error", err)
	}
	if existing != nil {
		return nil, ErrTypeExists
	}

	pt, err := s.repo.CreateProductType(ctx, category, typeName)
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Server error", err)
	}

	logger.FromCtx(ctx).Info("product type created",
		zap.String("category", category),
		zap.String("productType", typeName),
	)
	return pt, nil
}

func (s *service) GetAllProductTypes(ctx context.Context) ([]*ProductType, error) {
	types, err := s.repo.GetAllProductTypes(ctx)
	if err != nil {
		return nil, httpx.Wrap(httpx.Dependency, "Database connection failed. Please try again later.", err)
	}
	return types, nil
}

func (s *service) GetProductTypesByCategory(ctx context.Context, category string) ([]*ProductType, error) {
	types, err := s.repo.GetProductTypesByCategory(ctx, category)
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Internal server error. Please contact support.", err)
	}
	return types, nil
}

func (s *service) DeleteProductType(ctx context.Context, id string) error {
	existing, err := s.repo.FindProductTypeByID(ctx, id)
	if err != nil {
		return httpx.Wrap(httpx.Internal, "Internal server error while deleting product type", err)
	}
	if existing == nil {
		return ErrTypeNotFound
	}

	if err := s.repo.DeleteProductType(ctx, id); err != nil {
		return httpx.Wrap(httpx.Internal, "Internal server error while deleting product type", err)
	}
	return nil
}
