// Package reference serves the lookup data the product registration form
// needs: origin types, colors, sizes, the category tree and the admin-side
// seller search.
package reference

// OriginType is one country-of-origin lookup row.
type OriginType struct {
	ID   int64  `json:"product_origin_type_id"`
	Name string `json:"product_origin_type_name"`
}

// Color is one color lookup row.
type Color struct {
	ID   int64  `json:"color_id"`
	Name string `json:"color_name"`
}

// Size is one size lookup row.
type Size struct {
	ID   int64  `json:"size_id"`
	Name string `json:"size_name"`
}

// SubCategory is one leaf of the category tree.
type SubCategory struct {
	ID   int64  `json:"sub_category_id"`
	Name string `json:"sub_category_name"`
}

// MainCategory is one top-level category with its leaves.
type MainCategory struct {
	ID            int64         `json:"main_category_id"`
	Name          string        `json:"main_category_name"`
	SubCategories []SubCategory `json:"sub_categories"`
}

// SellerSummary is one seller match of the registration-form seller search.
type SellerSummary struct {
	ID            int64  `json:"seller_id"`
	Name          string `json:"seller_name"`
	AttributeType string `json:"seller_attribute_type"`
}

// FormData bundles every lookup list the registration form renders.
type FormData struct {
	OriginTypes    []OriginType   `json:"product_origin_types"`
	Colors         []Color        `json:"colors"`
	Sizes          []Size         `json:"sizes"`
	MainCategories []MainCategory `json:"main_categories"`
}
