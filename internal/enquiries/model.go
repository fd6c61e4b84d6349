// Package enquiries implements the customer Q&A back-office: the enquiry
// listing and the answer lifecycle.
package enquiries

import "time"

// Enquiry is one customer question joined with its product, seller and the
// answer when one exists.
type Enquiry struct {
	ID               int64      `json:"enquiry_id"`
	TypeName         string     `json:"enquiry_type"`
	ProductID        int64      `json:"product_id"`
	ProductName      string     `json:"product_name"`
	SellerID         int64      `json:"seller_id"`
	SellerName       string     `json:"seller_name"`
	MembershipNumber string     `json:"membership_number"`
	Content          string     `json:"content"`
	IsSecret         bool       `json:"is_secret"`
	CreatedAt        time.Time  `json:"created_at"`
	IsAnswered       bool       `json:"is_answered"`
	AnswerContent    *string    `json:"answer_content,omitempty"`
	AnsweredAt       *time.Time `json:"answered_at,omitempty"`
}

// Answer is one reply row. An enquiry carries at most one live answer,
// enforced by a unique constraint.
type Answer struct {
	ID          int64     `json:"answer_id"`
	EnquiryID   int64     `json:"enquiry_id"`
	Content     string    `json:"content"`
	ResponderID int64     `json:"responder_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
