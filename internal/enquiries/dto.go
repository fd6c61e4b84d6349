package enquiries

import "time"

// SearchInput is the validated filter set for the enquiry listing. Of the
// four subject filters only the first one provided is applied, in the order
// product name, product id, seller name, membership number.
type SearchInput struct {
	IsAnswered         *bool
	ProductName        string
	ProductID          *int64
	SellerName         string
	MembershipNumber   string
	TypeID             *int64
	ResponseWithinDays *int
	CreatedStartDate   *time.Time
	CreatedEndDate     *time.Time
	SellerID           *int64
	PageNumber         int
	Limit              int
}

// SearchResult is the enquiry listing payload.
type SearchResult struct {
	TotalCount  int       `json:"total_count"`
	EnquiryList []Enquiry `json:"enquiry_list"`
}

// AnswerDetail is the answer screen payload: the enquiry plus its answer
// when one exists.
type AnswerDetail struct {
	Enquiry Enquiry `json:"enquiry"`
	Answer  *Answer `json:"answer,omitempty"`
}
