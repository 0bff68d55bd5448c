package cart

import (
	"context"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/auth"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/httpx"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/logger"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/product"

	"go.uber.org/zap"
)

type Service interface {
	AddToCart(ctx context.Context, principal *auth.Principal, productID string, quantity int) (*Line, error)
	GetCart(ctx context.Context, userID string) ([]*Line, error)
	RemoveLine(ctx context.Context, principal *auth.Principal, lineID string) error
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

// AddToCart snapshots the product into a new line. The snapshot is the
// contract: a later price or description edit must not change what the user
// already put in their cart.
func (s *service) AddToCart(ctx context.Context, principal *auth.Principal, productID string, quantity int) (*Line, error) {
	if productID == "" || quantity == 0 {
		return nil, ErrMissingFields
	}
	if quantity < MinQuantity {
		return nil, ErrQuantityTooLow
	}

	p, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Failed to add product to cart.", err)
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	line, err := s.repo.Create(ctx, &Line{
		ProductName: p.Name,
		ProductID:   p.ID.Hex(),
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		ProductType: p.ProductType,
		Quantity:    quantity,
		AdminID:     p.AdminID,
		UserID:      principal.ID,
		UserName:    principal.Name,
	})
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Failed to add product to cart.", err)
	}

	logger.FromCtx(ctx).Info("cart line added",
		zap.String("user_id", principal.ID),
		zap.String("product_id", productID),
		zap.Int("quantity", quantity),
	)
	return line, nil
}

func (s *service) GetCart(ctx context.Context, userID string) ([]*Line, error) {
	lines, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Failed to fetch cart.", err)
	}
	return lines, nil
}

// RemoveLine deletes one cart line after confirming the caller owns it.
func (s *service) RemoveLine(ctx context.Context, principal *auth.Principal, lineID string) error {
	if lineID == "" {
		return httpx.E(httpx.Validation, "Cart ID is required")
	}

	line, err := s.repo.FindByID(ctx, lineID)
	if err != nil {
		return httpx.Wrap(httpx.Internal, "Internal server error while deleting cart product", err)
	}
	if line == nil {
		return ErrLineNotFound
	}
	if line.UserID != principal.ID {
		return ErrNotLineOwner
	}

	if err := s.repo.Delete(ctx, lineID); err != nil {
		return httpx.Wrap(httpx.Internal, "Internal server error while deleting cart product", err)
	}
	return nil
}
