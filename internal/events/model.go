// Package events implements the read side of the promotion planning
// screens: the event listing, the product picker and the site category
// browser.
package events

import "time"

// Event statuses derived from the schedule relative to the current time.
const (
	StatusWait     = "wait"
	StatusProgress = "progress"
	StatusEnd      = "end"
)

// Site menus that segment sellers by attribute when picking products for an
// event.
const (
	MenuTrend  = 4
	MenuBrand  = 5
	MenuBeauty = 6
)

// Event is one promotion event listing row.
type Event struct {
	ID         int64     `json:"event_number"`
	Name       string    `json:"event_name"`
	Status     string    `json:"event_status"`
	TypeName   string    `json:"event_type"`
	KindName   string    `json:"event_kind"`
	StartDate  time.Time `json:"event_start_date"`
	EndDate    time.Time `json:"event_end_date"`
	IsDisplay  bool      `json:"is_exposure"`
	RegisterAt time.Time `json:"register_date"`
}

// PickerProduct is one row of the event product picker.
type PickerProduct struct {
	ProductID       int64  `json:"product_id"`
	ProductName     string `json:"product_name"`
	ProductCode     string `json:"product_code"`
	SellerName      string `json:"seller_name"`
	SellerAttribute string `json:"seller_attribute_type"`
}

// Menu is one site menu row.
type Menu struct {
	ID   int64  `json:"menu_id"`
	Name string `json:"menu_name"`
}

// Category is one site category row under a menu or a first category.
type Category struct {
	ID   int64  `json:"category_id"`
	Name string `json:"category_name"`
}
