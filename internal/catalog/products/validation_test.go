package products

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateInput() CreateInput {
	return CreateInput{
		SellerID:          1,
		AccountID:         2,
		MainCategoryID:    1,
		SubCategoryID:     2,
		Name:              "Linen shirt",
		Description:       "A shirt",
		DetailInformation: "Long form detail",
		OriginPrice:       10000,
	}
}

func TestNormalizeCreateQuantityDefaults(t *testing.T) {
	in := validCreateInput()

	require.NoError(t, NormalizeCreate(&in))
	assert.Equal(t, 1, in.MinimumQuantity)
	assert.Equal(t, 20, in.MaximumQuantity)
}

func TestNormalizeCreateZeroMaximumBecomesTwenty(t *testing.T) {
	in := validCreateInput()
	in.MinimumQuantity = 5

	require.NoError(t, NormalizeCreate(&in))
	assert.Equal(t, 5, in.MinimumQuantity)
	assert.Equal(t, 20, in.MaximumQuantity)
}

func TestNormalizeCreateQuantityRange(t *testing.T) {
	in := validCreateInput()
	in.MinimumQuantity = 10
	in.MaximumQuantity = 5

	assert.ErrorIs(t, NormalizeCreate(&in), ErrQuantityRange)
}

func TestNormalizeCreateNoticeClearsManufactureFields(t *testing.T) {
	in := validCreateInput()
	maker := "Acme"
	when := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	origin := int64(1)
	in.Manufacturer = &maker
	in.ManufacturingDate = &when
	in.OriginTypeID = &origin

	require.NoError(t, NormalizeCreate(&in))
	assert.Nil(t, in.Manufacturer)
	assert.Nil(t, in.ManufacturingDate)
	assert.Nil(t, in.OriginTypeID)
}

func TestNormalizeCreateNoticeRequiresManufactureFields(t *testing.T) {
	in := validCreateInput()
	in.IsProductNotice = true
	maker := "Acme"
	in.Manufacturer = &maker

	assert.ErrorIs(t, NormalizeCreate(&in), ErrManufactureInfoRequired)
}

func TestNormalizeCreateZeroRateResetsDiscount(t *testing.T) {
	in := validCreateInput()
	in.DiscountedPrice = 8000
	start := time.Now()
	end := start.Add(time.Hour)
	in.DiscountStartDate = &start
	in.DiscountEndDate = &end

	require.NoError(t, NormalizeCreate(&in))
	assert.Equal(t, in.OriginPrice, in.DiscountedPrice)
	assert.Nil(t, in.DiscountStartDate)
	assert.Nil(t, in.DiscountEndDate)
}

func TestNormalizeCreateDiscountChecks(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	t.Run("discounted above origin", func(t *testing.T) {
		in := validCreateInput()
		in.DiscountRate = 10
		in.DiscountedPrice = 11000
		assert.ErrorIs(t, NormalizeCreate(&in), ErrDiscountedExceedsOrigin)
	})

	t.Run("mismatched discounted price", func(t *testing.T) {
		in := validCreateInput()
		in.DiscountRate = 10
		in.DiscountedPrice = 8500
		assert.ErrorIs(t, NormalizeCreate(&in), ErrWrongDiscountedPrice)
	})

	t.Run("one-sided window", func(t *testing.T) {
		in := validCreateInput()
		in.DiscountRate = 10
		in.DiscountedPrice = 9000
		in.DiscountStartDate = &start
		assert.ErrorIs(t, NormalizeCreate(&in), ErrDiscountDateRequired)
	})

	t.Run("open-ended discount keeps empty window", func(t *testing.T) {
		in := validCreateInput()
		in.DiscountRate = 10
		in.DiscountedPrice = 9000
		require.NoError(t, NormalizeCreate(&in))
		assert.Nil(t, in.DiscountStartDate)
		assert.Nil(t, in.DiscountEndDate)
	})

	t.Run("inverted window", func(t *testing.T) {
		in := validCreateInput()
		in.DiscountRate = 10
		in.DiscountedPrice = 9000
		in.DiscountStartDate = &end
		in.DiscountEndDate = &start
		assert.ErrorIs(t, NormalizeCreate(&in), ErrDiscountDateInverted)
	})

	t.Run("valid discount", func(t *testing.T) {
		in := validCreateInput()
		in.DiscountRate = 10
		in.DiscountedPrice = 9000
		in.DiscountStartDate = &start
		in.DiscountEndDate = &end
		require.NoError(t, NormalizeCreate(&in))
	})
}

func TestStoredDiscountRate(t *testing.T) {
	assert.InDelta(t, 0.1, StoredDiscountRate(10), 1e-9)
	assert.Zero(t, StoredDiscountRate(0))
}

func TestValidateSearchDates(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	assert.ErrorIs(t, ValidateSearch(SearchInput{LookupStartDate: &start}), ErrLookupDateRequired)
	assert.ErrorIs(t, ValidateSearch(SearchInput{LookupEndDate: &end}), ErrLookupDateRequired)
	assert.ErrorIs(t, ValidateSearch(SearchInput{LookupStartDate: &end, LookupEndDate: &start}), ErrLookupDateInverted)
	assert.NoError(t, ValidateSearch(SearchInput{LookupStartDate: &start, LookupEndDate: &end}))
}

func TestValidateSearchAttributeTypes(t *testing.T) {
	assert.NoError(t, ValidateSearch(SearchInput{AttributeTypeIDs: []int{1, 7}}))
	assert.ErrorIs(t, ValidateSearch(SearchInput{AttributeTypeIDs: []int{0}}), ErrInvalidSellerAttributeType)
	assert.ErrorIs(t, ValidateSearch(SearchInput{AttributeTypeIDs: []int{8}}), ErrInvalidSellerAttributeType)
}

func TestProductCode(t *testing.T) {
	assert.Equal(t, "P000000000000000042", ProductCode(42))
}

func TestOptionCode(t *testing.T) {
	assert.Equal(t, "42001002", OptionCode(42, 1, 2))
}
