package reference

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/modamall/backoffice/internal/shared"
)

// sellerSearchLimit caps the registration-form seller autocomplete.
const sellerSearchLimit = 10

// Service provides the registration-form lookup reads.
type Service struct {
	repo Repository
}

// NewService creates a new service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// FormData loads every lookup list the registration form needs. The four
// lists are independent and fetched concurrently. Each list must be seeded;
// an empty one reports its own missing-data kind.
func (s *Service) FormData(ctx context.Context) (*FormData, error) {
	var data FormData

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		originTypes, err := s.repo.ListOriginTypes(ctx)
		if err != nil {
			return fmt.Errorf("list origin types: %w", err)
		}
		if len(originTypes) == 0 {
			return ErrOriginTypeList
		}
		data.OriginTypes = originTypes
		return nil
	})
	g.Go(func() error {
		colors, err := s.repo.ListColors(ctx)
		if err != nil {
			return fmt.Errorf("list colors: %w", err)
		}
		if len(colors) == 0 {
			return ErrColorList
		}
		data.Colors = colors
		return nil
	})
	g.Go(func() error {
		sizes, err := s.repo.ListSizes(ctx)
		if err != nil {
			return fmt.Errorf("list sizes: %w", err)
		}
		if len(sizes) == 0 {
			return ErrSizeList
		}
		data.Sizes = sizes
		return nil
	})
	g.Go(func() error {
		mains, err := s.repo.ListMainCategories(ctx)
		if err != nil {
			return fmt.Errorf("list main categories: %w", err)
		}
		if len(mains) == 0 {
			return ErrMainCategoryList
		}
		for i := range mains {
			subs, err := s.repo.ListSubCategories(ctx, mains[i].ID)
			if err != nil {
				return fmt.Errorf("list sub categories: %w", err)
			}
			if len(subs) == 0 {
				return ErrSubCategoryList
			}
			mains[i].SubCategories = subs
		}
		data.MainCategories = mains
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &data, nil
}

// MainCategories lists the top-level categories for the seller-selected
// branch of the form.
func (s *Service) MainCategories(ctx context.Context) ([]MainCategory, error) {
	mains, err := s.repo.ListMainCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list main categories: %w", err)
	}
	if len(mains) == 0 {
		return nil, ErrMainCategoryList
	}
	return mains, nil
}

// SubCategories lists the leaves of one main category.
func (s *Service) SubCategories(ctx context.Context, mainCategoryID int64) ([]SubCategory, error) {
	subs, err := s.repo.ListSubCategories(ctx, mainCategoryID)
	if err != nil {
		return nil, fmt.Errorf("list sub categories: %w", err)
	}
	if len(subs) == 0 {
		return nil, ErrSubCategoryList
	}
	return subs, nil
}

// SearchSellers matches sellers by name for the admin registration form.
// Sellers cannot search on behalf of others.
func (s *Service) SearchSellers(ctx context.Context, id shared.Identity, name string) ([]SellerSummary, error) {
	if !id.IsAdmin() {
		return nil, ErrSellerSearchDenied
	}
	sellers, err := s.repo.SearchSellers(ctx, name, sellerSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search sellers: %w", err)
	}
	if len(sellers) == 0 {
		return nil, ErrSellerNotFound
	}
	return sellers, nil
}
