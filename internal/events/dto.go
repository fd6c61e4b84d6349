package events

import "time"

// SearchInput is the validated filter set for the event listing.
type SearchInput struct {
	Name              string
	Number            *int64
	Status            string
	IsExposure        *bool
	RegisterStartDate *time.Time
	RegisterEndDate   *time.Time
	PageNumber        int
	Limit             int
}

// SearchResult is the event listing payload.
type SearchResult struct {
	TotalCount int     `json:"total_count"`
	EventList  []Event `json:"event_list"`
}

// PickerInput is the filter set for the event product picker.
type PickerInput struct {
	MenuID            int64
	ProductName       string
	ProductID         *int64
	SellerName        string
	SellerID          *int64
	MainCategoryID    *int64
	SubCategoryID     *int64
	RegisterStartDate *time.Time
	RegisterEndDate   *time.Time
	PageNumber        int
	Limit             int
}

// PickerResult is the product picker payload. An empty page is a valid
// answer.
type PickerResult struct {
	TotalCount  int             `json:"total_count"`
	ProductList []PickerProduct `json:"product_list"`
}

// Category browser filter modes.
const (
	FilterNone = "none"
	FilterMenu = "menu"
	FilterBoth = "both"
)

// CategoryInput selects which level of the site category tree to list.
type CategoryInput struct {
	Filter          string
	MenuID          *int64
	FirstCategoryID *int64
}
