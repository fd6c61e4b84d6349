package reference

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/modamall/backoffice/internal/platform/httpx"
	"github.com/modamall/backoffice/internal/shared"
)

// Handler wires the registration-form lookup endpoint.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers lookup routes on the provided router. The static
// path takes priority over the product code wildcard.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/products/new", h.handleFormData)
}

// handleFormData branches on the query: seller_name is the admin seller
// autocomplete, main_category_id lists its leaves, seller_id lists the main
// categories for the chosen seller, and no parameter returns the full
// lookup bundle.
func (h *Handler) handleFormData(w http.ResponseWriter, r *http.Request) {
	id, _ := shared.IdentityFromContext(r.Context())
	q := r.URL.Query()

	if name := q.Get("seller_name"); name != "" {
		sellers, err := h.service.SearchSellers(r.Context(), id, name)
		if err != nil {
			httpx.RespondError(w, err)
			return
		}
		httpx.Success(w, map[string]any{"seller_list": sellers})
		return
	}

	if v := q.Get("main_category_id"); v != "" {
		mainCategoryID, convErr := strconv.ParseInt(v, 10, 64)
		if convErr != nil {
			httpx.RespondError(w, httpx.BadRequest("key error", "key_error_main_category_id"))
			return
		}
		subs, err := h.service.SubCategories(r.Context(), mainCategoryID)
		if err != nil {
			httpx.RespondError(w, err)
			return
		}
		httpx.Success(w, map[string]any{"sub_category_list": subs})
		return
	}

	if q.Get("seller_id") != "" {
		mains, err := h.service.MainCategories(r.Context())
		if err != nil {
			httpx.RespondError(w, err)
			return
		}
		httpx.Success(w, map[string]any{"main_category_list": mains})
		return
	}

	data, err := h.service.FormData(r.Context())
	if err != nil {
		h.logger.Error("load registration form data", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Success(w, data)
}
