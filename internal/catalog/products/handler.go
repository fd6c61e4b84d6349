package products

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/modamall/backoffice/internal/platform/httpx"
	"github.com/modamall/backoffice/internal/shared"
)

// formDateLayouts are the accepted layouts for date fields submitted as
// form values, tried most to least specific.
var formDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// maxRegistrationBytes caps a whole registration submission. Individual
// image limits are enforced separately.
const maxRegistrationBytes = 32 << 20

// Handler wires HTTP endpoints for the product catalog.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers product routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/products", h.handleCreate)
	r.Get("/products", h.handleSearch)
	r.Get("/products/{product_code}", h.handleDetail)
}

type createResponse struct {
	ProductID   int64  `json:"product_id"`
	ProductCode string `json:"product_code"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, httpx.BadRequest("key error", "login_required"))
		return
	}

	if err := r.ParseMultipartForm(maxRegistrationBytes); err != nil {
		httpx.RespondError(w, httpx.BadRequest("key error", "invalid_multipart_form"))
		return
	}

	in, err := h.parseCreateForm(r, id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	productID, productCode, svcErr := h.service.Create(r.Context(), *in)
	if svcErr != nil {
		h.logger.Warn("create product failed",
			slog.Int64("seller_id", in.SellerID), slog.Any("error", svcErr))
		httpx.RespondError(w, svcErr)
		return
	}

	httpx.Created(w, createResponse{ProductID: productID, ProductCode: productCode})
}

func (h *Handler) parseCreateForm(r *http.Request, id shared.Identity) (*CreateInput, *httpx.Error) {
	in := CreateInput{AccountID: id.AccountID}

	if id.IsSeller() {
		in.SellerID = id.AccountID
	} else {
		sellerID, err := requiredInt64(r, "seller_id")
		if err != nil {
			return nil, err
		}
		in.SellerID = sellerID
	}

	var err *httpx.Error
	if in.Name, err = requiredField(r, "product_name"); err != nil {
		return nil, err
	}
	if in.Description, err = requiredField(r, "description"); err != nil {
		return nil, err
	}
	if in.DetailInformation, err = requiredField(r, "detail_information"); err != nil {
		return nil, err
	}
	if in.MainCategoryID, err = requiredInt64(r, "main_category_id"); err != nil {
		return nil, err
	}
	if in.SubCategoryID, err = requiredInt64(r, "sub_category_id"); err != nil {
		return nil, err
	}
	if in.OriginPrice, err = requiredInt64(r, "origin_price"); err != nil {
		return nil, err
	}

	in.IsSale = formBool(r, "is_sale")
	in.IsDisplay = formBool(r, "is_display")
	in.IsProductNotice = formBool(r, "is_product_notice")

	if v := r.FormValue("manufacturer"); v != "" {
		in.Manufacturer = &v
	}
	if t, ok, parseErr := formDate(r, "manufacturing_date"); parseErr != nil {
		return nil, parseErr
	} else if ok {
		in.ManufacturingDate = &t
	}
	if v := r.FormValue("product_origin_type_id"); v != "" {
		n, convErr := strconv.ParseInt(v, 10, 64)
		if convErr != nil {
			return nil, keyError("product_origin_type_id")
		}
		in.OriginTypeID = &n
	}

	in.MinimumQuantity = formInt(r, "minimum_quantity")
	in.MaximumQuantity = formInt(r, "maximum_quantity")
	in.DiscountRate = formInt(r, "discount_rate")

	if v := r.FormValue("discounted_price"); v != "" {
		n, convErr := strconv.ParseInt(v, 10, 64)
		if convErr != nil {
			return nil, keyError("discounted_price")
		}
		in.DiscountedPrice = n
	} else {
		in.DiscountedPrice = in.OriginPrice
	}

	if t, ok, parseErr := formDate(r, "discount_start_date"); parseErr != nil {
		return nil, parseErr
	} else if ok {
		in.DiscountStartDate = &t
	}
	if t, ok, parseErr := formDate(r, "discount_end_date"); parseErr != nil {
		return nil, parseErr
	} else if ok {
		in.DiscountEndDate = &t
	}

	optionsRaw := r.FormValue("options")
	if optionsRaw == "" {
		return nil, keyError("options")
	}
	if jsonErr := json.Unmarshal([]byte(optionsRaw), &in.Options); jsonErr != nil || len(in.Options) == 0 {
		return nil, keyError("options")
	}

	files := r.MultipartForm.File["image_files"]
	if len(files) == 0 {
		return nil, keyError("image_files")
	}
	if len(files) > MaxImageCount {
		return nil, httpx.BadRequest("key error", "too_many_image_files")
	}
	for _, fh := range files {
		f, openErr := fh.Open()
		if openErr != nil {
			return nil, keyError("image_files")
		}
		data, readErr := io.ReadAll(f)
		f.Close()
		if readErr != nil {
			return nil, keyError("image_files")
		}
		in.Images = append(in.Images, ImageFile{Filename: fh.Filename, Data: data})
	}

	return &in, nil
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	id, _ := shared.IdentityFromContext(r.Context())

	in, err := parseSearchQuery(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	result, svcErr := h.service.Search(r.Context(), id, *in)
	if svcErr != nil {
		h.logger.Error("search products", slog.Any("error", svcErr))
		httpx.RespondError(w, svcErr)
		return
	}
	httpx.Success(w, result)
}

func parseSearchQuery(r *http.Request) (*SearchInput, *httpx.Error) {
	q := r.URL.Query()
	in := SearchInput{PageNumber: 1, Limit: shared.AllowedPageSizes[0]}

	if v := q.Get("page_number"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, keyError("page_number")
		}
		in.PageNumber = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, keyError("limit")
		}
		in.Limit = n
	}

	for _, name := range []string{"lookup_start_date", "lookup_end_date"} {
		if v := q.Get(name); v != "" {
			t, ok := parseDateValue(v)
			if !ok {
				return nil, keyError(name)
			}
			if name == "lookup_start_date" {
				in.LookupStartDate = &t
			} else {
				in.LookupEndDate = &t
			}
		}
	}

	in.SellerName = q.Get("seller_name")
	in.ProductName = q.Get("product_name")
	in.ProductCode = q.Get("product_code")

	if v := q.Get("product_id"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, keyError("product_id")
		}
		in.ProductID = &n
	}
	if v := q.Get("seller_id"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, keyError("seller_id")
		}
		in.SellerID = &n
	}

	for _, v := range q["seller_attribute_type_id"] {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, keyError("seller_attribute_type_id")
		}
		in.AttributeTypeIDs = append(in.AttributeTypeIDs, n)
	}

	for _, name := range []string{"is_sale", "is_display", "is_discount"} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, ok := parseBoolValue(v)
		if !ok {
			return nil, keyError(name)
		}
		switch name {
		case "is_sale":
			in.IsSale = &b
		case "is_display":
			in.IsDisplay = &b
		case "is_discount":
			in.IsDiscount = &b
		}
	}

	return &in, nil
}

func (h *Handler) handleDetail(w http.ResponseWriter, r *http.Request) {
	productCode := chi.URLParam(r, "product_code")

	result, err := h.service.Detail(r.Context(), productCode)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.Success(w, result)
}

func keyError(field string) *httpx.Error {
	return httpx.BadRequest("key error", "key_error_"+field)
}

func requiredField(r *http.Request, name string) (string, *httpx.Error) {
	v := r.FormValue(name)
	if v == "" {
		return "", keyError(name)
	}
	return v, nil
}

func requiredInt64(r *http.Request, name string) (int64, *httpx.Error) {
	v := r.FormValue(name)
	if v == "" {
		return 0, keyError(name)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, keyError(name)
	}
	return n, nil
}

func formInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.FormValue(name))
	if err != nil {
		return 0
	}
	return n
}

func formBool(r *http.Request, name string) bool {
	b, _ := parseBoolValue(r.FormValue(name))
	return b
}

func formDate(r *http.Request, name string) (time.Time, bool, *httpx.Error) {
	v := r.FormValue(name)
	if v == "" {
		return time.Time{}, false, nil
	}
	t, ok := parseDateValue(v)
	if !ok {
		return time.Time{}, false, keyError(name)
	}
	return t, true, nil
}

func parseDateValue(v string) (time.Time, bool) {
	for _, layout := range formDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseBoolValue(v string) (bool, bool) {
	switch v {
	case "1", "true", "True":
		return true, true
	case "0", "false", "False", "":
		return false, v != ""
	}
	return false, false
}
