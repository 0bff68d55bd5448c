package category

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateCategory(ctx context.Context, name string) (*Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) FindCategoryByName(ctx context.Context, name string) (*Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) FindCategoryByNameFold(ctx context.Context, name string) (*Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) FindCategoryByID(ctx context.Context, id string) (*Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) GetAllCategories(ctx context.Context) ([]*Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Category), args.Error(1)
}

func (m *MockRepository) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) CreateProductType(ctx context.Context, category, typeName string) (*ProductType, error) {
	args := m.Called(ctx, category, typeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProductType), args.Error(1)
}

func (m *MockRepository) FindProductTypeFold(ctx context.Context, category, typeName string) (*ProductType, error) {
	args := m.Called(ctx, category, typeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProductType), args.Error(1)
}

func (m *MockRepository) FindProductTypeByID(ctx context.Context, id string) (*ProductType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProductType), args.Error(1)
}

func (m *MockRepository) GetAllProductTypes(ctx context.Context) ([]*ProductType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ProductType), args.Error(1)
}

func (m *MockRepository) GetProductTypesByCategory(ctx context.Context, category string) ([]*ProductType, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ProductType), args.Error(1)
}

func (m *MockRepository) DeleteProductType(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestService_CreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Name", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, _, err := svc.CreateCategory(ctx, "")

		assert.ErrorIs(t, err, ErrCategoryRequired)
	})

	t.Run("Exact Duplicate Rejected", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindCategoryByName", ctx, "Steel").Return(&Category{Name: "Steel"}, nil).Once()

		_, _, err := svc.CreateCategory(ctx, "Steel")

		assert.ErrorIs(t, err, ErrCategoryExists)
		mockRepo.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Case Variant Passes The Exact Check", func(t *testing.T) {
		// category dup detection is exact-match, unlike product types
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		created := &Category{ID: primitive.NewObjectID(), Name: "steel"}
		mockRepo.On("FindCategoryByName", ctx, "steel").Return(nil, nil).Once()
		mockRepo.On("CreateCategory", ctx, "steel").Return(created, nil).Once()
		mockRepo.On("GetAllCategories", ctx).Return([]*Category{{Name: "Steel"}, created}, nil).Once()

		cat, all, err := svc.CreateCategory(ctx, "steel")

		assert.NoError(t, err)
		assert.Equal(t, "steel", cat.Name)
		assert.Len(t, all, 2)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_GetAllCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Is Not Found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetAllCategories", ctx).Return([]*Category{}, nil).Once()

		_, err := svc.GetAllCategories(ctx)

		assert.ErrorIs(t, err, ErrNoCategories)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetAllCategories", ctx).Return([]*Category{{Name: "Steel"}}, nil).Once()

		cats, err := svc.GetAllCategories(ctx)

		assert.NoError(t, err)
		assert.Len(t, cats, 1)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_DeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindCategoryByID", ctx, "deadbeef").Return(nil, nil).Once()

		err := svc.DeleteCategory(ctx, "deadbeef")

		assert.ErrorIs(t, err, ErrCategoryNotFound)
		mockRepo.AssertNotCalled(t, "DeleteCategory", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		id := primitive.NewObjectID().Hex()
		mockRepo.On("FindCategoryByID", ctx, id).Return(&Category{Name: "Steel"}, nil).Once()
		mockRepo.On("DeleteCategory", ctx, id).Return(nil).Once()

		err := svc.DeleteCategory(ctx, id)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_CreateProductType(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Fields", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.CreateProductType(ctx, "", "Rod")
		assert.ErrorIs(t, err, ErrTypeFieldsRequired)

		_, err = svc.CreateProductType(ctx, "Steel", "")
		assert.ErrorIs(t, err, ErrTypeFieldsRequired)
	})

	t.Run("Unknown Category", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindCategoryByNameFold", ctx, "Steel").Return(nil, nil).Once()

		_, err := svc.CreateProductType(ctx, "Steel", "Rod")

		assert.ErrorIs(t, err, ErrCategoryMissing)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Case-Insensitive Duplicate Rejected", func(t *testing.T) {
		// ("Steel","Rod") already exists; ("steel","rod") must be a conflict
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindCategoryByNameFold", ctx, "steel").Return(&Category{Name: "Steel"}, nil).Once()
		mockRepo.On("FindProductTypeFold", ctx, "steel", "rod").Return(&ProductType{Category: "Steel", TypeName: "Rod"}, nil).Once()

		_, err := svc.CreateProductType(ctx, "steel", "rod")

		assert.ErrorIs(t, err, ErrTypeExists)
		mockRepo.AssertNotCalled(t, "CreateProductType", mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		pt := &ProductType{ID: primitive.NewObjectID(), Category: "Steel", TypeName: "Rod"}
		mockRepo.On("FindCategoryByNameFold", ctx, "Steel").Return(&Category{Name: "Steel"}, nil).Once()
		mockRepo.On("FindProductTypeFold", ctx, "Steel", "Rod").Return(nil, nil).Once()
		mockRepo.On("CreateProductType", ctx, "Steel", "Rod").Return(pt, nil).Once()

		created, err := svc.CreateProductType(ctx, "Steel", "Rod")

		assert.NoError(t, err)
		assert.Equal(t, "Rod", created.TypeName)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_DeleteProductType(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindProductTypeByID", ctx, "deadbeef").Return(nil, nil).Once()

		err := svc.DeleteProductType(ctx, "deadbeef")

		assert.ErrorIs(t, err, ErrTypeNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repo Failure Wrapped", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		id := primitive.NewObjectID().Hex()
		mockRepo.On("FindProductTypeByID", ctx, id).Return(&ProductType{}, nil).Once()
		mockRepo.On("DeleteProductType", ctx, id).Return(errors.New("db down")).Once()

		err := svc.DeleteProductType(ctx, id)

		assert.Error(t, err)
		mockRepo.AssertExpectations(t)
	})
}
