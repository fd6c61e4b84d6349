package products

import "time"

// OptionInput is one entry of the options array submitted with a
// registration. IsStockManage arrives as 0 or 1.
type OptionInput struct {
	ColorID       int64 `json:"color"`
	SizeID        int64 `json:"size"`
	Remain        int   `json:"remain"`
	IsStockManage int   `json:"isStockManage"`
}

// ImageFile is one uploaded image: the client file name plus raw content.
type ImageFile struct {
	Filename string
	Data     []byte
}

// CreateInput is the validated shape the write service consumes.
// DiscountRate arrives as the submitted percentage; normalization converts
// it to the stored fraction.
type CreateInput struct {
	SellerID          int64
	AccountID         int64
	IsSale            bool
	IsDisplay         bool
	MainCategoryID    int64
	SubCategoryID     int64
	IsProductNotice   bool
	Manufacturer      *string
	ManufacturingDate *time.Time
	OriginTypeID      *int64
	Name              string
	Description       string
	DetailInformation string
	MinimumQuantity   int
	MaximumQuantity   int
	OriginPrice       int64
	DiscountRate      int
	DiscountedPrice   int64
	DiscountStartDate *time.Time
	DiscountEndDate   *time.Time
	Options           []OptionInput
	Images            []ImageFile
}

// SearchInput is the validated filter set for the product listing.
type SearchInput struct {
	LookupStartDate  *time.Time
	LookupEndDate    *time.Time
	SellerName       string
	SellerID         *int64
	ProductName      string
	ProductID        *int64
	ProductCode      string
	AttributeTypeIDs []int
	IsSale           *bool
	IsDisplay        *bool
	IsDiscount       *bool
	PageNumber       int
	Limit            int
}

// SearchRow is one product listing row as read from storage.
type SearchRow struct {
	UpdatedAt         time.Time
	ImageKey          string
	ProductName       string
	ProductCode       string
	ProductID         int64
	SellerAttribute   string
	SellerName        string
	OriginPrice       int64
	DiscountedPrice   int64
	DiscountRate      float64
	IsSale            bool
	IsDisplay         bool
}

// SearchItem is one formatted product listing entry.
type SearchItem struct {
	UpdatedAt       string `json:"updated_at"`
	ProductImageURL string `json:"product_image_url"`
	ProductName     string `json:"product_name"`
	ProductCode     string `json:"product_code"`
	ProductID       int64  `json:"product_id"`
	SellerAttribute string `json:"seller_attribute_type"`
	SellerName      string `json:"seller_name"`
	OriginPrice     string `json:"origin_price"`
	DiscountedPrice string `json:"discounted_price"`
	DiscountRate    int    `json:"discount_rate"`
	IsSale          bool   `json:"is_sale"`
	IsDisplay       bool   `json:"is_display"`
}

// SearchResult is the listing payload: total match count plus one page.
type SearchResult struct {
	TotalCount  int          `json:"total_count"`
	ProductList []SearchItem `json:"product_list"`
}

// Detail is the joined product record for the detail endpoint.
type Detail struct {
	Product
	SellerName       string  `json:"seller_name"`
	MainCategoryName string  `json:"main_category_name"`
	SubCategoryName  string  `json:"sub_category_name"`
	OriginTypeName   *string `json:"product_origin_type_name"`
}

// DetailImage is one resolved image of the detail payload.
type DetailImage struct {
	ProductImageURL string `json:"product_image_url"`
	OrderIndex      int    `json:"order_index"`
}

// DetailOption is one option row joined with its color and size names.
type DetailOption struct {
	StockID       int64  `json:"stock_id"`
	OptionCode    string `json:"product_option_code"`
	ColorID       int64  `json:"color_id"`
	ColorName     string `json:"color_name"`
	SizeID        int64  `json:"size_id"`
	SizeName      string `json:"size_name"`
	Remain        int    `json:"remain"`
	IsStockManage bool   `json:"is_stock_manage"`
}

// DetailResult is the detail endpoint payload.
type DetailResult struct {
	ProductDetail  Detail         `json:"product_detail"`
	ProductImages  []DetailImage  `json:"product_images"`
	ProductOptions []DetailOption `json:"product_options"`
}
