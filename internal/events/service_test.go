package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	events      []Event
	eventsTotal int

	pickerRows    []PickerProduct
	pickerTotal   int
	pickerSegment []int

	menus      []Menu
	firstCats  map[int64][]Category
	secondCats map[int64][]Category
	catMenus   map[int64]int64
}

func (r *fakeRepo) Search(_ context.Context, _ SearchInput) ([]Event, int, error) {
	return r.events, r.eventsTotal, nil
}

func (r *fakeRepo) SearchPickerProducts(_ context.Context, segment []int, _ PickerInput) ([]PickerProduct, int, error) {
	r.pickerSegment = segment
	return r.pickerRows, r.pickerTotal, nil
}

func (r *fakeRepo) ListMenus(context.Context) ([]Menu, error) { return r.menus, nil }

func (r *fakeRepo) MenuExists(_ context.Context, menuID int64) (bool, error) {
	for _, m := range r.menus {
		if m.ID == menuID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) ListFirstCategories(_ context.Context, menuID int64) ([]Category, error) {
	return r.firstCats[menuID], nil
}

func (r *fakeRepo) GetFirstCategoryMenu(_ context.Context, id int64) (int64, error) {
	menuID, ok := r.catMenus[id]
	if !ok {
		return 0, ErrCategoryDoesNotExist
	}
	return menuID, nil
}

func (r *fakeRepo) ListSecondCategories(_ context.Context, id int64) ([]Category, error) {
	return r.secondCats[id], nil
}

func TestSearchRejectsNameAndNumberTogether(t *testing.T) {
	svc := NewService(&fakeRepo{})

	number := int64(3)
	_, err := svc.Search(context.Background(), SearchInput{Limit: 10, Name: "sale", Number: &number})
	assert.ErrorIs(t, err, ErrEventSearchTwoInput)
}

func TestSearchValidatesFilters(t *testing.T) {
	svc := NewService(&fakeRepo{})
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	_, err := svc.Search(context.Background(), SearchInput{Limit: 15})
	assert.ErrorIs(t, err, ErrInvalidPageSize)

	_, err = svc.Search(context.Background(), SearchInput{Limit: 10, Status: "running"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.Search(context.Background(), SearchInput{Limit: 10, RegisterStartDate: &start})
	assert.ErrorIs(t, err, ErrDateMissingOne)

	_, err = svc.Search(context.Background(), SearchInput{Limit: 10, RegisterStartDate: &end, RegisterEndDate: &start})
	assert.ErrorIs(t, err, ErrDateInverted)
}

func TestSearchUnknownNumber(t *testing.T) {
	svc := NewService(&fakeRepo{})

	number := int64(404)
	_, err := svc.Search(context.Background(), SearchInput{Limit: 10, Number: &number})
	assert.ErrorIs(t, err, ErrEventDoesNotExist)
}

func TestSearchReturnsPage(t *testing.T) {
	repo := &fakeRepo{
		events:      []Event{{ID: 1, Name: "summer sale", Status: StatusProgress}},
		eventsTotal: 12,
	}
	svc := NewService(repo)

	result, err := svc.Search(context.Background(), SearchInput{Limit: 10, Status: StatusProgress})
	require.NoError(t, err)
	assert.Equal(t, 12, result.TotalCount)
	assert.Len(t, result.EventList, 1)
}

func TestPickerProductsSegmentsByMenu(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.PickerProducts(context.Background(), PickerInput{MenuID: MenuTrend, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, repo.pickerSegment)

	_, err = svc.PickerProducts(context.Background(), PickerInput{MenuID: MenuBrand, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, repo.pickerSegment)

	_, err = svc.PickerProducts(context.Background(), PickerInput{MenuID: MenuBeauty, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []int{7}, repo.pickerSegment)
}

func TestPickerProductsValidatesDates(t *testing.T) {
	svc := NewService(&fakeRepo{})
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	_, err := svc.PickerProducts(context.Background(), PickerInput{MenuID: MenuTrend, Limit: 10, RegisterStartDate: &start})
	assert.ErrorIs(t, err, ErrDateMissingOne)

	_, err = svc.PickerProducts(context.Background(), PickerInput{MenuID: MenuTrend, Limit: 10, RegisterStartDate: &end, RegisterEndDate: &start})
	assert.ErrorIs(t, err, ErrDateInverted)
}

func TestPickerProductsUnknownMenu(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.PickerProducts(context.Background(), PickerInput{MenuID: 99, Limit: 10})
	assert.ErrorIs(t, err, ErrInvalidMenu)
}

func TestPickerProductsEmptyPageIsValid(t *testing.T) {
	svc := NewService(&fakeRepo{})

	result, err := svc.PickerProducts(context.Background(), PickerInput{MenuID: MenuBeauty, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, result.TotalCount)
	assert.Empty(t, result.ProductList)
}

func TestCategoriesFilterModes(t *testing.T) {
	repo := &fakeRepo{
		menus:      []Menu{{ID: 4, Name: "trend"}},
		firstCats:  map[int64][]Category{4: {{ID: 10, Name: "tops"}}},
		secondCats: map[int64][]Category{10: {{ID: 100, Name: "shirts"}}},
		catMenus:   map[int64]int64{10: 4},
	}
	svc := NewService(repo)

	result, err := svc.Categories(context.Background(), CategoryInput{Filter: FilterNone})
	require.NoError(t, err)
	assert.Contains(t, result, "menu_list")

	menuID := int64(4)
	result, err = svc.Categories(context.Background(), CategoryInput{Filter: FilterMenu, MenuID: &menuID})
	require.NoError(t, err)
	assert.Contains(t, result, "first_category_list")

	firstID := int64(10)
	result, err = svc.Categories(context.Background(), CategoryInput{Filter: FilterBoth, MenuID: &menuID, FirstCategoryID: &firstID})
	require.NoError(t, err)
	assert.Contains(t, result, "second_category_list")
}

func TestCategoriesValidation(t *testing.T) {
	repo := &fakeRepo{
		menus:    []Menu{{ID: 4, Name: "trend"}},
		catMenus: map[int64]int64{10: 4},
	}
	svc := NewService(repo)

	_, err := svc.Categories(context.Background(), CategoryInput{Filter: "everything"})
	assert.ErrorIs(t, err, ErrFilterDoesNotMatch)

	_, err = svc.Categories(context.Background(), CategoryInput{Filter: FilterMenu})
	assert.ErrorIs(t, err, ErrCategoryMenuMismatch)

	wrongMenu := int64(5)
	firstID := int64(10)
	_, err = svc.Categories(context.Background(), CategoryInput{Filter: FilterBoth, MenuID: &wrongMenu, FirstCategoryID: &firstID})
	assert.ErrorIs(t, err, ErrCategoryMenuMismatch)

	menuID := int64(4)
	missing := int64(77)
	_, err = svc.Categories(context.Background(), CategoryInput{Filter: FilterBoth, MenuID: &menuID, FirstCategoryID: &missing})
	assert.ErrorIs(t, err, ErrCategoryDoesNotExist)
}
