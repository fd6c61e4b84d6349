package enquiries

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/modamall/backoffice/internal/platform/httpx"
	"github.com/modamall/backoffice/internal/shared"
)

var queryDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Handler wires HTTP endpoints for the customer Q&A screens.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

// MountRoutes registers enquiry routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/enquiries", h.handleSearch)
	r.Delete("/enquiries/{enquiry_id}", h.handleDeleteEnquiry)
	r.Get("/enquiries/{enquiry_id}/answer", h.handleAnswerDetail)
	r.Post("/enquiries/{enquiry_id}/answer", h.handleCreateAnswer)
	r.Put("/enquiries/{enquiry_id}/answer", h.handleUpdateAnswer)
	r.Delete("/enquiries/{enquiry_id}/answer", h.handleDeleteAnswer)
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
		h.logger.Error("search enquiries", slog.Any("error", svcErr))
		httpx.RespondError(w, svcErr)
		return
	}
	httpx.Success(w, result)
}

func parseSearchQuery(r *http.Request) (*SearchInput, *httpx.Error) {
	q := r.URL.Query()
	in := SearchInput{
		PageNumber:       1,
		Limit:            shared.AllowedPageSizes[0],
		ProductName:      q.Get("product_name"),
		SellerName:       q.Get("seller_name"),
		MembershipNumber: q.Get("membership_number"),
	}

	switch q.Get("is_answered") {
	case "":
	case "yes":
		yes := true
		in.IsAnswered = &yes
	case "no":
		no := false
		in.IsAnswered = &no
	default:
		return nil, ErrInvalidAnsweredFilter
	}

	if v := q.Get("product_id"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, keyError("product_id")
		}
		in.ProductID = &n
	}
	if v := q.Get("enquiry_type_id"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, keyError("enquiry_type_id")
		}
		in.TypeID = &n
	}
	if v := q.Get("response_within_days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, keyError("response_within_days")
		}
		in.ResponseWithinDays = &n
	}

	for _, name := range []string{"created_start_date", "created_end_date"} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		t, ok := parseQueryDate(v)
		if !ok {
			return nil, keyError(name)
		}
		if name == "created_start_date" {
			in.CreatedStartDate = &t
		} else {
			in.CreatedEndDate = &t
		}
	}

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

	return &in, nil
}

type answerRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *Handler) handleAnswerDetail(w http.ResponseWriter, r *http.Request) {
	id, _ := shared.IdentityFromContext(r.Context())
	enquiryID, err := enquiryIDParam(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	detail, svcErr := h.service.AnswerDetail(r.Context(), id, enquiryID)
	if svcErr != nil {
		httpx.RespondError(w, svcErr)
		return
	}
	httpx.Success(w, detail)
}

func (h *Handler) handleCreateAnswer(w http.ResponseWriter, r *http.Request) {
	id, _ := shared.IdentityFromContext(r.Context())
	enquiryID, err := enquiryIDParam(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	var req answerRequest
	if decodeErr := httpx.DecodeJSON(r, &req); decodeErr != nil {
		httpx.RespondError(w, keyError("content"))
		return
	}
	if valErr := h.validator.Struct(req); valErr != nil {
		httpx.RespondError(w, keyError("content"))
		return
	}

	answer, svcErr := h.service.CreateAnswer(r.Context(), id, enquiryID, req.Content)
	if svcErr != nil {
		httpx.RespondError(w, svcErr)
		return
	}
	httpx.Created(w, answer)
}

func (h *Handler) handleUpdateAnswer(w http.ResponseWriter, r *http.Request) {
	id, _ := shared.IdentityFromContext(r.Context())
	enquiryID, err := enquiryIDParam(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	var req answerRequest
	if decodeErr := httpx.DecodeJSON(r, &req); decodeErr != nil {
		httpx.RespondError(w, keyError("content"))
		return
	}
	if valErr := h.validator.Struct(req); valErr != nil {
		httpx.RespondError(w, keyError("content"))
		return
	}

	answer, svcErr := h.service.UpdateAnswer(r.Context(), id, enquiryID, req.Content)
	if svcErr != nil {
		httpx.RespondError(w, svcErr)
		return
	}
	httpx.Success(w, answer)
}

func (h *Handler) handleDeleteAnswer(w http.ResponseWriter, r *http.Request) {
	id, _ := shared.IdentityFromContext(r.Context())
	enquiryID, err := enquiryIDParam(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	if svcErr := h.service.DeleteAnswer(r.Context(), id, enquiryID); svcErr != nil {
		httpx.RespondError(w, svcErr)
		return
	}
	httpx.Success(w, nil)
}

func (h *Handler) handleDeleteEnquiry(w http.ResponseWriter, r *http.Request) {
	id, _ := shared.IdentityFromContext(r.Context())
	enquiryID, err := enquiryIDParam(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	if svcErr := h.service.DeleteEnquiry(r.Context(), id, enquiryID); svcErr != nil {
		httpx.RespondError(w, svcErr)
		return
	}
	httpx.Success(w, nil)
}

func enquiryIDParam(r *http.Request) (int64, *httpx.Error) {
	n, err := strconv.ParseInt(chi.URLParam(r, "enquiry_id"), 10, 64)
	if err != nil || n < 1 {
		return 0, keyError("enquiry_id")
	}
	return n, nil
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
