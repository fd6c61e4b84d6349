package events

import (
	"context"
	"fmt"

	"github.com/modamall/backoffice/internal/shared"
)

// menuSegments maps a site menu onto the seller attribute types whose
// products may be posted under it.
var menuSegments = map[int64][]int{
	MenuTrend:  {1, 2, 3},
	MenuBrand:  {4, 5, 6},
	MenuBeauty: {7},
}

// Service provides the promotion planning reads.
type Service struct {
	repo Repository
}

// NewService creates a new service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search returns the filtered event listing page.
func (s *Service) Search(ctx context.Context, in SearchInput) (*SearchResult, error) {
	if !shared.ValidPageSize(in.Limit) {
		return nil, ErrInvalidPageSize
	}
	if in.PageNumber < 1 {
		in.PageNumber = 1
	}
	if in.Name != "" && in.Number != nil {
		return nil, ErrEventSearchTwoInput
	}
	if in.Status != "" && in.Status != StatusWait && in.Status != StatusProgress && in.Status != StatusEnd {
		return nil, ErrInvalidStatus
	}
	if (in.RegisterStartDate == nil) != (in.RegisterEndDate == nil) {
		return nil, ErrDateMissingOne
	}
	if in.RegisterStartDate != nil && in.RegisterStartDate.After(*in.RegisterEndDate) {
		return nil, ErrDateInverted
	}

	events, total, err := s.repo.Search(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	if in.Number != nil && total == 0 {
		return nil, ErrEventDoesNotExist
	}
	if events == nil {
		events = []Event{}
	}
	return &SearchResult{TotalCount: total, EventList: events}, nil
}

// PickerProducts returns products postable under the given menu. No match
// is a valid empty page, not an error.
func (s *Service) PickerProducts(ctx context.Context, in PickerInput) (*PickerResult, error) {
	if !shared.ValidPageSize(in.Limit) {
		return nil, ErrInvalidPageSize
	}
	if in.PageNumber < 1 {
		in.PageNumber = 1
	}
	if (in.RegisterStartDate == nil) != (in.RegisterEndDate == nil) {
		return nil, ErrDateMissingOne
	}
	if in.RegisterStartDate != nil && in.RegisterStartDate.After(*in.RegisterEndDate) {
		return nil, ErrDateInverted
	}
	segment, ok := menuSegments[in.MenuID]
	if !ok {
		return nil, ErrInvalidMenu
	}

	products, total, err := s.repo.SearchPickerProducts(ctx, segment, in)
	if err != nil {
		return nil, fmt.Errorf("search picker products: %w", err)
	}
	if products == nil {
		products = []PickerProduct{}
	}
	return &PickerResult{TotalCount: total, ProductList: products}, nil
}

// Categories lists one level of the site category tree selected by the
// filter mode: none lists menus, menu lists a menu's first categories and
// both lists a first category's second categories.
func (s *Service) Categories(ctx context.Context, in CategoryInput) (map[string]any, error) {
	switch in.Filter {
	case FilterNone:
		menus, err := s.repo.ListMenus(ctx)
		if err != nil {
			return nil, fmt.Errorf("list menus: %w", err)
		}
		return map[string]any{"menu_list": menus}, nil

	case FilterMenu:
		if in.MenuID == nil {
			return nil, ErrCategoryMenuMismatch
		}
		exists, err := s.repo.MenuExists(ctx, *in.MenuID)
		if err != nil {
			return nil, fmt.Errorf("check menu: %w", err)
		}
		if !exists {
			return nil, ErrInvalidMenu
		}
		categories, err := s.repo.ListFirstCategories(ctx, *in.MenuID)
		if err != nil {
			return nil, fmt.Errorf("list first categories: %w", err)
		}
		return map[string]any{"first_category_list": categories}, nil

	case FilterBoth:
		if in.MenuID == nil || in.FirstCategoryID == nil {
			return nil, ErrCategoryMenuMismatch
		}
		menuID, err := s.repo.GetFirstCategoryMenu(ctx, *in.FirstCategoryID)
		if err != nil {
			return nil, err
		}
		if menuID != *in.MenuID {
			return nil, ErrCategoryMenuMismatch
		}
		categories, err := s.repo.ListSecondCategories(ctx, *in.FirstCategoryID)
		if err != nil {
			return nil, fmt.Errorf("list second categories: %w", err)
		}
		return map[string]any{"second_category_list": categories}, nil

	default:
		return nil, ErrFilterDoesNotMatch
	}
}
