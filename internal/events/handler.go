package events

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/modamall/backoffice/internal/platform/httpx"
	"github.com/modamall/backoffice/internal/shared"
)

var queryDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Handler wires HTTP endpoints for the promotion planning screens.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers event routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/events", h.handleSearch)
	r.Get("/events/products", h.handlePickerProducts)
	r.Get("/events/categories", h.handleCategories)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := SearchInput{PageNumber: 1, Limit: shared.AllowedPageSizes[0], Name: q.Get("event_name")}

	if v := q.Get("event_number"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			httpx.RespondError(w, keyError("event_number"))
			return
		}
		in.Number = &n
	}

	in.Status = q.Get("event_status")

	if v := q.Get("is_exposure"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			httpx.RespondError(w, keyError("is_exposure"))
			return
		}
		in.IsExposure = &b
	}

	for _, name := range []string{"register_start_date", "register_end_date"} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		t, ok := parseQueryDate(v)
		if !ok {
			httpx.RespondError(w, keyError(name))
			return
		}
		if name == "register_start_date" {
			in.RegisterStartDate = &t
		} else {
			in.RegisterEndDate = &t
		}
	}

	var err *httpx.Error
	if in.PageNumber, in.Limit, err = pageParams(q.Get("page_number"), q.Get("limit")); err != nil {
		httpx.RespondError(w, err)
		return
	}

	result, svcErr := h.service.Search(r.Context(), in)
	if svcErr != nil {
		httpx.RespondError(w, svcErr)
		return
	}
	httpx.Success(w, result)
}

func (h *Handler) handlePickerProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	menuID, err := strconv.ParseInt(q.Get("menu_id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, keyError("menu_id"))
		return
	}

	in := PickerInput{
		MenuID:      menuID,
		ProductName: q.Get("product_name"),
		SellerName:  q.Get("seller_name"),
		PageNumber:  1,
		Limit:       shared.AllowedPageSizes[0],
	}

	for _, name := range []string{"product_id", "seller_id", "main_category_id", "sub_category_id"} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		n, convErr := strconv.ParseInt(v, 10, 64)
		if convErr != nil {
			httpx.RespondError(w, keyError(name))
			return
		}
		switch name {
		case "product_id":
			in.ProductID = &n
		case "seller_id":
			in.SellerID = &n
		case "main_category_id":
			in.MainCategoryID = &n
		case "sub_category_id":
			in.SubCategoryID = &n
		}
	}

	for _, name := range []string{"register_start_date", "register_end_date"} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		t, ok := parseQueryDate(v)
		if !ok {
			httpx.RespondError(w, keyError(name))
			return
		}
		if name == "register_start_date" {
			in.RegisterStartDate = &t
		} else {
			in.RegisterEndDate = &t
		}
	}

	var pageErr *httpx.Error
	if in.PageNumber, in.Limit, pageErr = pageParams(q.Get("page_number"), q.Get("limit")); pageErr != nil {
		httpx.RespondError(w, pageErr)
		return
	}

	result, svcErr := h.service.PickerProducts(r.Context(), in)
	if svcErr != nil {
		httpx.RespondError(w, svcErr)
		return
	}
	httpx.Success(w, result)
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := CategoryInput{Filter: q.Get("filter")}

	if v := q.Get("menu_id"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			httpx.RespondError(w, keyError("menu_id"))
			return
		}
		in.MenuID = &n
	}
	if v := q.Get("first_category_id"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			httpx.RespondError(w, keyError("first_category_id"))
			return
		}
		in.FirstCategoryID = &n
	}

	result, err := h.service.Categories(r.Context(), in)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.Success(w, result)
}

func pageParams(page, limit string) (int, int, *httpx.Error) {
	pageNumber, pageLimit := 1, shared.AllowedPageSizes[0]
	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil {
			return 0, 0, keyError("page_number")
		}
		pageNumber = n
	}
	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return 0, 0, keyError("limit")
		}
		pageLimit = n
	}
	return pageNumber, pageLimit, nil
}

func parseQueryDate(v string) (time.Time, bool) {
	for _, layout := range queryDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func keyError(field string) *httpx.Error {
	return httpx.BadRequest("key error", "key_error_"+field)
}
