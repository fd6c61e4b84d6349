package enquiries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modamall/backoffice/internal/shared"
)

// Service provides business logic for the customer Q&A screens.
type Service struct {
	repo Repository
}

// NewService creates a new service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search returns the filtered enquiry listing page. Sellers only ever see
// enquiries against their own products.
func (s *Service) Search(ctx context.Context, id shared.Identity, in SearchInput) (*SearchResult, error) {
	if !shared.ValidPageSize(in.Limit) {
		return nil, ErrInvalidPageSize
	}
	if in.PageNumber < 1 {
		in.PageNumber = 1
	}
	if (in.CreatedStartDate == nil) != (in.CreatedEndDate == nil) {
		return nil, ErrDateMissingOne
	}
	if in.CreatedStartDate != nil && in.CreatedStartDate.After(*in.CreatedEndDate) {
		return nil, ErrDateInverted
	}
	applyFirstSubjectFilter(&in)
	if id.IsSeller() {
		sellerID := id.AccountID
		in.SellerID = &sellerID
		in.SellerName = ""
	}

	enquiries, total, err := s.repo.Search(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("search enquiries: %w", err)
	}
	if enquiries == nil {
		enquiries = []Enquiry{}
	}
	return &SearchResult{TotalCount: total, EnquiryList: enquiries}, nil
}

// applyFirstSubjectFilter keeps only the first provided subject filter, in
// the order product name, product id, seller name, membership number.
func applyFirstSubjectFilter(in *SearchInput) {
	switch {
	case in.ProductName != "":
		in.ProductID = nil
		in.SellerName = ""
		in.MembershipNumber = ""
	case in.ProductID != nil:
		in.SellerName = ""
		in.MembershipNumber = ""
	case in.SellerName != "":
		in.MembershipNumber = ""
	}
}

// AnswerDetail returns the answer screen payload for one enquiry. A missing
// answer is not an error; the screen renders the reply form instead.
func (s *Service) AnswerDetail(ctx context.Context, id shared.Identity, enquiryID int64) (*AnswerDetail, error) {
	enquiry, err := s.access(ctx, id, enquiryID)
	if err != nil {
		return nil, err
	}

	answer, err := s.repo.GetAnswer(ctx, enquiryID)
	if err != nil && !errors.Is(err, ErrAnswerNotFound) {
		return nil, err
	}
	return &AnswerDetail{Enquiry: *enquiry, Answer: answer}, nil
}

// CreateAnswer registers a reply to an enquiry.
func (s *Service) CreateAnswer(ctx context.Context, id shared.Identity, enquiryID int64, content string) (*Answer, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrAnswerContentBlank
	}
	if _, err := s.access(ctx, id, enquiryID); err != nil {
		return nil, err
	}
	return s.repo.InsertAnswer(ctx, enquiryID, content, id.AccountID)
}

// UpdateAnswer rewrites an existing reply.
func (s *Service) UpdateAnswer(ctx context.Context, id shared.Identity, enquiryID int64, content string) (*Answer, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrAnswerContentBlank
	}
	if _, err := s.access(ctx, id, enquiryID); err != nil {
		return nil, err
	}
	return s.repo.UpdateAnswer(ctx, enquiryID, content)
}

// DeleteAnswer removes the reply so the enquiry shows as unanswered again.
func (s *Service) DeleteAnswer(ctx context.Context, id shared.Identity, enquiryID int64) error {
	if _, err := s.access(ctx, id, enquiryID); err != nil {
		return err
	}
	return s.repo.DeleteAnswer(ctx, enquiryID)
}

// DeleteEnquiry removes the enquiry and its reply from every listing.
func (s *Service) DeleteEnquiry(ctx context.Context, id shared.Identity, enquiryID int64) error {
	if _, err := s.access(ctx, id, enquiryID); err != nil {
		return err
	}
	return s.repo.DeleteEnquiry(ctx, enquiryID)
}

// access loads the enquiry and enforces that sellers only touch enquiries
// against their own products.
func (s *Service) access(ctx context.Context, id shared.Identity, enquiryID int64) (*Enquiry, error) {
	enquiry, err := s.repo.GetByID(ctx, enquiryID)
	if err != nil {
		return nil, err
	}
	if id.IsSeller() && enquiry.SellerID != id.AccountID {
		return nil, ErrEnquiryAccessDenied
	}
	return enquiry, nil
}
