package enquiries

import "github.com/modamall/backoffice/internal/platform/httpx"

// Tagged errors for the customer Q&A screens.
var (
	ErrInvalidAnsweredFilter = httpx.BadRequest("invalid is_answered filter", "is_answered_must_be_yes_or_no")
	ErrInvalidPageSize       = httpx.BadRequest("invalid page length", "page_length_must_be_10_20_or_50")
	ErrDateMissingOne        = httpx.BadRequest("both date field required", "both_date_field_required")
	ErrDateInverted          = httpx.BadRequest("start date is greater than end date", "start_date_is_greater_than_end_date")
	ErrAnswerDuplicated      = httpx.BadRequest("answer already registered", "already_answered")
	ErrAnswerContentBlank    = httpx.BadRequest("required field is blank", "required_answer_content")

	ErrEnquiryNotFound = httpx.NotFound("enquiry does not exist", "enquiry_does_not_exist")
	ErrAnswerNotFound  = httpx.NotFound("answer does not exist", "answer_does_not_exist")

	ErrEnquiryAccessDenied = httpx.Forbidden("permission denied", "no_permission")
)
