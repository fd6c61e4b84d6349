package products

import "github.com/modamall/backoffice/internal/platform/httpx"

// Business-rule violations (400).
var (
	ErrQuantityRange           = httpx.BadRequest("compare quantity field check error", "minimum_quantity_cannot_greater_than_maximum_quantity")
	ErrManufactureInfoRequired = httpx.BadRequest("required field is blank", "required_manufacture_information")
	ErrDiscountedExceedsOrigin = httpx.BadRequest("compare price field check error", "discounted_price_cannot_greater_than_origin_price")
	ErrWrongDiscountedPrice    = httpx.BadRequest("compare price field check error", "wrong_discounted_price")
	ErrDiscountDateRequired    = httpx.BadRequest("required field is blank", "required_discount_start_or_end_date")
	ErrDiscountDateInverted    = httpx.BadRequest("start date is greater than end date", "start_date_cannot_greater_than_end_date")

	ErrLookupDateRequired         = httpx.BadRequest("both date field required", "both_date_field_required")
	ErrLookupDateInverted         = httpx.BadRequest("start date is greater than end date", "start_date_is_greater_than_end_date")
	ErrInvalidSellerAttributeType = httpx.BadRequest("invalid seller attribute type", "invalid_seller_attribute_type")
	ErrInvalidPageSize            = httpx.BadRequest("invalid page length", "page_length_must_be_10_20_or_50")
)

// File policy violations (413).
var (
	ErrInvalidFile   = httpx.PayloadTooLarge("invalid file", "invalid_file")
	ErrFileTooLarge  = httpx.PayloadTooLarge("file size too large", "file_size_too_large")
	ErrFileScale     = httpx.PayloadTooLarge("file scale too small, 640 * 720 at least", "file_scale_at_least_640*720")
	ErrFileExtension = httpx.PayloadTooLarge("only allowed jpg type", "only_allowed_jpg_type")
)

// Not-found kinds (404).
var (
	ErrProductNotFound      = httpx.NotFound("product does not exist", "product_does_not_exist")
	ErrProductImageNotFound = httpx.NotFound("product image not exist", "product_image_not_exist")
	ErrStockNotFound        = httpx.NotFound("stock info not exist", "stock_does_not_exist")
)

// Persistence and upload failures (500). Each write step reports its own
// kind so a denied insert is attributable from the response alone.
var (
	ErrCreateProductDenied        = httpx.Internal("product create denied", "unable_to_create_product")
	ErrUpdateProductCodeDenied    = httpx.Internal("product code update denied", "unable_to_update_product_code")
	ErrCreateStockDenied          = httpx.Internal("stock create denied", "unable_to_create_stocks")
	ErrCreateHistoryDenied        = httpx.Internal("product history create denied", "unable_to_create_product_history")
	ErrCreateSalesVolumeDenied    = httpx.Internal("product sales volume create denied", "unable_to_create_product_sales_volumes")
	ErrCreateBookmarkVolumeDenied = httpx.Internal("bookmark volumes create denied", "unable_to_create_bookmark_volumes")
	ErrCreateImageDenied          = httpx.Internal("product image create denied", "unable_to_create_product_image")
	ErrImageUploadFail            = httpx.Internal("image file upload to storage fail", "image_file_upload_fail")
)
