package reference

import "github.com/modamall/backoffice/internal/platform/httpx"

// Tagged errors for missing lookup data and denied seller searches.
var (
	ErrOriginTypeList   = httpx.NotFound("fail to get origin type list", "fail_to_get_origin_type_list")
	ErrColorList        = httpx.NotFound("fail to get color list", "fail_to_get_color_list")
	ErrSizeList         = httpx.NotFound("fail to get size list", "fail_to_get_size_list")
	ErrMainCategoryList = httpx.NotFound("fail to get main category list", "fail_to_get_main_category_list")
	ErrSubCategoryList  = httpx.NotFound("fail to get sub category list", "fail_to_get_sub_category_list")
	ErrSellerNotFound   = httpx.NotFound("seller does not exist", "seller_does_not_exist")

	ErrSellerSearchDenied = httpx.Forbidden("permission denied", "no_permission")
)
