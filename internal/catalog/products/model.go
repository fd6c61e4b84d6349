// Package products implements the product registration workflow and the
// search/detail read side of the seller back-office catalog.
package products

import "time"

const (
	// Product codes are the fixed prefix plus the generated id zero-padded
	// to codeDigits characters.
	productCodePrefix = "P"
	codeDigits        = 18

	// Option codes concatenate the product id with the color and size ids,
	// each zero-padded to optionPadDigits characters.
	optionPadDigits = 3

	defaultMinimumQuantity = 1
	defaultMaximumQuantity = 20

	// MaxImageCount is the most image files one registration accepts.
	MaxImageCount = 5
)

// Product is the catalog product row.
type Product struct {
	ID                int64      `json:"product_id"`
	ProductCode       string     `json:"product_code"`
	SellerID          int64      `json:"seller_id"`
	AccountID         int64      `json:"account_id"`
	IsSale            bool       `json:"is_sale"`
	IsDisplay         bool       `json:"is_display"`
	MainCategoryID    int64      `json:"main_category_id"`
	SubCategoryID     int64      `json:"sub_category_id"`
	IsProductNotice   bool       `json:"is_product_notice"`
	Manufacturer      *string    `json:"manufacturer,omitempty"`
	ManufacturingDate *time.Time `json:"manufacturing_date,omitempty"`
	OriginTypeID      *int64     `json:"product_origin_type_id,omitempty"`
	Name              string     `json:"product_name"`
	Description       string     `json:"description"`
	DetailInformation string     `json:"detail_information"`
	OriginPrice       int64      `json:"origin_price"`
	DiscountRate      float64    `json:"discount_rate"`
	DiscountedPrice   int64      `json:"discounted_price"`
	DiscountStartDate *time.Time `json:"discount_start_date,omitempty"`
	DiscountEndDate   *time.Time `json:"discount_end_date,omitempty"`
	MinimumQuantity   int        `json:"minimum_quantity"`
	MaximumQuantity   int        `json:"maximum_quantity"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Stock is one purchasable option row of a product.
type Stock struct {
	ID            int64  `json:"stock_id"`
	ProductID     int64  `json:"product_id"`
	OptionCode    string `json:"product_option_code"`
	ColorID       int64  `json:"color_id"`
	SizeID        int64  `json:"size_id"`
	Remain        int    `json:"remain"`
	IsStockManage bool   `json:"is_stock_manage"`
}

// ProductImage is one ordered image row. ImageKey stores the blob-store
// object key; public URLs are resolved at render time.
type ProductImage struct {
	ID         int64  `json:"-"`
	ProductID  int64  `json:"-"`
	ImageKey   string `json:"-"`
	OrderIndex int    `json:"order_index"`
}

// History is the append-only snapshot written alongside every product
// creation or update, attributed to the acting account.
type History struct {
	ProductID         int64
	ProductName       string
	IsDisplay         bool
	IsSale            bool
	OriginPrice       int64
	DiscountedPrice   int64
	DiscountRate      float64
	DiscountStartDate *time.Time
	DiscountEndDate   *time.Time
	MinimumQuantity   int
	MaximumQuantity   int
	UpdaterID         int64
}
