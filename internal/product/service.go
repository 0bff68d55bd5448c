package product

import (
	"context"
	"io"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/httpx"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/logger"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/media"

	"go.uber.org/zap"
)

type CreateInput struct {
	Name        string
	Price       float64
	Description string
	Category    string
	ProductType string
	AdminID     string
}

type UpdateInput struct {
	ProductID   string
	Name        *string
	Price       *float64
	Description *string
}

type Service interface {
	Create(ctx context.Context, in CreateInput, files []io.Reader) (*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	GetByType(ctx context.Context, productType string) ([]*Product, error)
	Update(ctx context.Context, in UpdateInput) (*Product, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	uploader media.Uploader
}

func NewService(repo Repository, uploader media.Uploader) Service {
	return &service{repo: repo, uploader: uploader}
}

// Create uploads every provided image and requires at least three successes.
// Partial uploads are not rolled back; an orphaned remote image is accepted
// over failing the whole request for cleanup's sake.
func (s *service) Create(ctx context.Context, in CreateInput, files []io.Reader) (*Product, error) {
	log := logger.FromCtx(ctx)

	if in.Name == "" || in.Price == 0 || in.Description == "" || in.Category == "" || in.ProductType == "" {
		return nil, ErrFieldsRequired
	}
	if len(files) == 0 {
		return nil, ErrImagesRequired
	}
	if s.uploader == nil {
		return nil, ErrUploadsDisabled
	}

	var uploaded []string
	for _, f := range files {
		url, err := s.uploader.Upload(ctx, f)
		if err != nil {
			log.Warn("image upload failed", zap.Error(err))
			continue
		}
		uploaded = append(uploaded, url)
	}
	if len(uploaded) < 3 {
		return nil, ErrTooFewImages
	}

	p, err := s.repo.Create(ctx, &Product{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Category:    in.Category,
		ProductType: in.ProductType,
		AdminID:     in.AdminID,
		Image1:      uploaded[0],
		Image2:      uploaded[1],
		Image3:      uploaded[2],
	})
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Internal Server Error", err)
	}

	log.Info("product created",
		zap.String("product_id", p.ID.Hex()),
		zap.String("admin_id", in.AdminID),
	)
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	if id == "" {
		return nil, ErrIDRequired
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Failed to fetch product.", err)
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) GetByType(ctx context.Context, productType string) ([]*Product, error) {
	if productType == "" {
		return nil, httpx.E(httpx.Validation, "Product type is required")
	}

	products, err := s.repo.FindByType(ctx, productType)
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Internal Server Error", err)
	}
	return products, nil
}

// Update mutates only the fields present. Rank is gated at the route; the
// caller being the owning admin is deliberately not required.
func (s *service) Update(ctx context.Context, in UpdateInput) (*Product, error) {
	if in.ProductID == "" {
		return nil, ErrIDRequired
	}

	set := map[string]interface{}{}
	if in.Name != nil {
		set["productName"] = *in.Name
	}
	if in.Price != nil {
		set["productPrice"] = *in.Price
	}
	if in.Description != nil {
		set["productDescription"] = *in.Description
	}
	if len(set) == 0 {
		return nil, httpx.E(httpx.Validation, "No fields to update")
	}

	p, err := s.repo.Update(ctx, in.ProductID, set)
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Internal Server Error", err)
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// Delete removes the hosted images best-effort before the document goes:
// a failed destroy is logged, never fatal.
func (s *service) Delete(ctx context.Context, id string) error {
	log := logger.FromCtx(ctx)

	if id == "" {
		return ErrIDRequired
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return httpx.Wrap(httpx.Internal, "Internal server error while deleting product", err)
	}
	if p == nil {
		return ErrProductNotFound
	}

	if s.uploader != nil {
		for _, url := range p.Images() {
			if url == "" {
				continue
			}
			if err := s.uploader.DestroyByURL(ctx, url); err != nil {
				log.Warn("failed to delete hosted image", zap.String("url", url), zap.Error(err))
			}
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return httpx.Wrap(httpx.Internal, "Internal server error while deleting product", err)
	}

	log.Info("product deleted", zap.String("product_id", id))
	return nil
}
