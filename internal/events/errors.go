package events

import "github.com/modamall/backoffice/internal/platform/httpx"

// Tagged errors for the promotion planning screens.
var (
	ErrEventSearchTwoInput = httpx.BadRequest("event search error", "search_event_by_only_one_of_name_and_number")
	ErrDateMissingOne      = httpx.BadRequest("both date field required", "both_date_field_required")
	ErrDateInverted        = httpx.BadRequest("start date is greater than end date", "start_date_is_greater_than_end_date")
	ErrInvalidStatus       = httpx.BadRequest("invalid event status", "event_status_must_be_progress_wait_or_end")
	ErrInvalidPageSize     = httpx.BadRequest("invalid page length", "page_length_must_be_10_20_or_50")
	ErrInvalidMenu         = httpx.BadRequest("invalid menu", "menu_does_not_exist")

	ErrFilterDoesNotMatch   = httpx.BadRequest("filter does not match", "filter_must_be_none_menu_or_both")
	ErrCategoryMenuMismatch = httpx.BadRequest("category menu does not match", "category_does_not_belong_to_menu")
	ErrCategoryDoesNotExist = httpx.NotFound("category does not exist", "category_does_not_exist")
	ErrEventDoesNotExist    = httpx.NotFound("event does not exist", "event_does_not_exist")
)
