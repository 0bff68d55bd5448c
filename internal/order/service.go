package order

import (
	"context"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/auth"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/cart"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/httpx"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	CreateFromCart(ctx context.Context, principal *auth.Principal) (*Order, error)
	GetForPrincipal(ctx context.Context, principal *auth.Principal) ([]*Order, error)
	Summaries(ctx context.Context, principal *auth.Principal) ([]Summary, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	UpdateStatus(ctx context.Context, id, rawStatus string, actor auth.Rank) (*Order, error)
}

type service struct {
	repo     Repository
	cartRepo cart.Repository
}

func NewService(repo Repository, cartRepo cart.Repository) Service {
	return &service{repo: repo, cartRepo: cartRepo}
}

// CreateFromCart snapshots every cart line of the caller into one immutable
// order and clears the cart. If anything fails before the snapshot lands,
// the cart is untouched.
func (s *service) CreateFromCart(ctx context.Context, principal *auth.Principal) (*Order, error) {
	log := logger.FromCtx(ctx)

	lines, err := s.cartRepo.FindByUser(ctx, principal.ID)
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Internal Server Error", err)
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, Item{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Price:       line.Price,
			Description: line.Description,
			Category:    line.Category,
			ProductType: line.ProductType,
			AdminID:     line.AdminID,
		})
	}

	o, err := s.repo.CreateAndClearCart(ctx, &Order{
		UserID:      principal.ID,
		UserName:    principal.Name,
		UserAddress: principal.Address,
		UserNumber:  principal.Number,
		Status:      Status{State: StatePending}.String(),
		Items:       items,
		OrderStatus: wirePending,
	}, principal.ID)
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Internal Server Error", err)
	}

	log.Info("order placed",
		zap.String("order_id", o.ID.Hex()),
		zap.String("user_id", principal.ID),
		zap.Int("items", len(items)),
	)
	return o, nil
}

// GetForPrincipal lists a user's own orders, or every order containing one
// of an admin's items. Master sees nothing here; it has no order history.
func (s *service) GetForPrincipal(ctx context.Context, principal *auth.Principal) ([]*Order, error) {
	var (
		orders []*Order
		err    error
	)
	switch principal.Rank {
	case auth.RankUser:
		orders, err = s.repo.FindByUser(ctx, principal.ID)
	case auth.RankAdmin:
		orders, err = s.repo.FindByAdminItem(ctx, principal.ID)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Internal Server Error", err)
	}
	return orders, nil
}

func (s *service) Summaries(ctx context.Context, principal *auth.Principal) ([]Summary, error) {
	orders, err := s.GetForPrincipal(ctx, principal)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, o.Summarize())
	}
	return summaries, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Order, error) {
	if id == "" {
		return nil, ErrIDRequired
	}

	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Server Error", err)
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// UpdateStatus applies a transition expressed in the legacy free-text form.
// The raw string is classified, checked against the state machine, and
// stored back in canonical legacy rendering so old clients keep parsing it.
func (s *service) UpdateStatus(ctx context.Context, id, rawStatus string, actor auth.Rank) (*Order, error) {
	log := logger.FromCtx(ctx)

	if id == "" || rawStatus == "" {
		return nil, ErrStatusRequired
	}

	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Internal server error while updating order status", err)
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}

	current, ok := Classify(o.Status)
	if !ok {
		current = Status{State: StatePending}
	}
	next, ok := Classify(rawStatus)
	if !ok {
		return nil, ErrUnknownStatus
	}

	if !CanTransition(current.State, next.State) {
		return nil, ErrIllegalTransition
	}

	var cancel *Cancellation
	if next.State == StateCancelled {
		if next.ActorRank == "" {
			next.ActorRank = actor
		}
		cancel = &Cancellation{Reason: next.Reason, ActorRank: next.ActorRank}
	}

	updated, err := s.repo.UpdateStatus(ctx, id, next.String(), cancel)
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Internal server error while updating order status", err)
	}
	if updated == nil {
		return nil, ErrOrderNotFound
	}

	log.Info("order status changed",
		zap.String("order_id", id),
		zap.String("from", o.Status),
		zap.String("to", updated.Status),
	)
	return updated, nil
}
