package enquiries

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// answerUniqueConstraint guards the one-live-answer-per-enquiry rule.
const answerUniqueConstraint = "uq_enquiry_answers_enquiry_id"

// Repository defines the interface for enquiry persistence.
type Repository interface {
	Search(ctx context.Context, in SearchInput) ([]Enquiry, int, error)
	GetByID(ctx context.Context, enquiryID int64) (*Enquiry, error)
	GetAnswer(ctx context.Context, enquiryID int64) (*Answer, error)
	InsertAnswer(ctx context.Context, enquiryID int64, content string, responderID int64) (*Answer, error)
	UpdateAnswer(ctx context.Context, enquiryID int64, content string) (*Answer, error)
	DeleteAnswer(ctx context.Context, enquiryID int64) error
	DeleteEnquiry(ctx context.Context, enquiryID int64) error
}

// repository implements Repository using pgxpool.
type repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const enquiryColumns = `
	e.id, et.name AS enquiry_type,
	p.id AS product_id, p.name AS product_name,
	s.id AS seller_id, s.name AS seller_name,
	e.membership_number, e.content, e.is_secret, e.created_at,
	a.id IS NOT NULL AS is_answered,
	a.content AS answer_content, a.created_at AS answered_at`

const enquiryJoins = `
	FROM enquiries e
	INNER JOIN enquiry_types et ON et.id = e.enquiry_type_id
	INNER JOIN products p ON p.id = e.product_id
	INNER JOIN sellers s ON s.id = p.seller_id
	LEFT JOIN enquiry_answers a ON a.enquiry_id = e.id AND a.is_deleted = false`

// Search retrieves the filtered enquiry listing page plus the total count.
func (r *repository) Search(ctx context.Context, in SearchInput) ([]Enquiry, int, error) {
	conditions := []string{"e.is_deleted = false"}
	var args []interface{}
	argPos := 1

	if in.SellerID != nil {
		conditions = append(conditions, fmt.Sprintf("s.id = $%d", argPos))
		args = append(args, *in.SellerID)
		argPos++
	}

	if in.IsAnswered != nil {
		if *in.IsAnswered {
			conditions = append(conditions, "a.id IS NOT NULL")
		} else {
			conditions = append(conditions, "a.id IS NULL")
		}
	}

	// Subject filters are mutually exclusive; the caller applies the
	// first-match rule before reaching here.
	switch {
	case in.ProductName != "":
		conditions = append(conditions, fmt.Sprintf("p.name LIKE $%d", argPos))
		args = append(args, "%"+in.ProductName+"%")
		argPos++
	case in.ProductID != nil:
		conditions = append(conditions, fmt.Sprintf("p.id = $%d", argPos))
		args = append(args, *in.ProductID)
		argPos++
	case in.SellerName != "":
		conditions = append(conditions, fmt.Sprintf("s.name LIKE $%d", argPos))
		args = append(args, "%"+in.SellerName+"%")
		argPos++
	case in.MembershipNumber != "":
		conditions = append(conditions, fmt.Sprintf("e.membership_number = $%d", argPos))
		args = append(args, in.MembershipNumber)
		argPos++
	}

	if in.TypeID != nil {
		conditions = append(conditions, fmt.Sprintf("e.enquiry_type_id = $%d", argPos))
		args = append(args, *in.TypeID)
		argPos++
	}

	if in.ResponseWithinDays != nil {
		conditions = append(conditions, fmt.Sprintf("a.created_at >= $%d", argPos))
		args = append(args, time.Now().AddDate(0, 0, -*in.ResponseWithinDays))
		argPos++
	}

	if in.CreatedStartDate != nil && in.CreatedEndDate != nil {
		conditions = append(conditions, fmt.Sprintf("e.created_at BETWEEN $%d AND $%d", argPos, argPos+1))
		args = append(args, *in.CreatedStartDate, *in.CreatedEndDate)
		argPos += 2
	}

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) %s %s`, enquiryJoins, whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		%s
		%s
		ORDER BY e.id DESC
		LIMIT $%d OFFSET $%d
	`, enquiryColumns, enquiryJoins, whereClause, argPos, argPos+1)

	args = append(args, in.Limit, (in.PageNumber-1)*in.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var results []Enquiry
	for rows.Next() {
		var e Enquiry
		err := rows.Scan(
			&e.ID, &e.TypeName, &e.ProductID, &e.ProductName,
			&e.SellerID, &e.SellerName, &e.MembershipNumber,
			&e.Content, &e.IsSecret, &e.CreatedAt,
			&e.IsAnswered, &e.AnswerContent, &e.AnsweredAt,
		)
		if err != nil {
			return nil, 0, err
		}
		results = append(results, e)
	}

	return results, total, rows.Err()
}

// GetByID retrieves one live enquiry.
func (r *repository) GetByID(ctx context.Context, enquiryID int64) (*Enquiry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		%s
		WHERE e.id = $1 AND e.is_deleted = false
	`, enquiryColumns, enquiryJoins)

	var e Enquiry
	err := r.pool.QueryRow(ctx, query, enquiryID).Scan(
		&e.ID, &e.TypeName, &e.ProductID, &e.ProductName,
		&e.SellerID, &e.SellerName, &e.MembershipNumber,
		&e.Content, &e.IsSecret, &e.CreatedAt,
		&e.IsAnswered, &e.AnswerContent, &e.AnsweredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEnquiryNotFound
		}
		return nil, err
	}
	return &e, nil
}

// GetAnswer retrieves the live answer of an enquiry.
func (r *repository) GetAnswer(ctx context.Context, enquiryID int64) (*Answer, error) {
	query := `
		SELECT id, enquiry_id, content, responder_id, created_at, updated_at
		FROM enquiry_answers
		WHERE enquiry_id = $1 AND is_deleted = false
	`
	var a Answer
	err := r.pool.QueryRow(ctx, query, enquiryID).Scan(
		&a.ID, &a.EnquiryID, &a.Content, &a.ResponderID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAnswerNotFound
		}
		return nil, err
	}
	return &a, nil
}

// InsertAnswer registers the reply. A second live answer trips the unique
// constraint and is reported as a duplicate.
func (r *repository) InsertAnswer(ctx context.Context, enquiryID int64, content string, responderID int64) (*Answer, error) {
	query := `
		INSERT INTO enquiry_answers (enquiry_id, content, responder_id)
		VALUES ($1, $2, $3)
		RETURNING id, enquiry_id, content, responder_id, created_at, updated_at
	`
	var a Answer
	err := r.pool.QueryRow(ctx, query, enquiryID, content, responderID).Scan(
		&a.ID, &a.EnquiryID, &a.Content, &a.ResponderID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if isDuplicateAnswer(err) {
			return nil, ErrAnswerDuplicated
		}
		return nil, err
	}
	return &a, nil
}

// isDuplicateAnswer reports whether err is the unique violation raised when
// a second live answer is inserted for the same enquiry.
func isDuplicateAnswer(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.ConstraintName == answerUniqueConstraint
}

// UpdateAnswer rewrites the live answer content.
func (r *repository) UpdateAnswer(ctx context.Context, enquiryID int64, content string) (*Answer, error) {
	query := `
		UPDATE enquiry_answers
		SET content = $1, updated_at = now()
		WHERE enquiry_id = $2 AND is_deleted = false
		RETURNING id, enquiry_id, content, responder_id, created_at, updated_at
	`
	var a Answer
	err := r.pool.QueryRow(ctx, query, content, enquiryID).Scan(
		&a.ID, &a.EnquiryID, &a.Content, &a.ResponderID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAnswerNotFound
		}
		return nil, err
	}
	return &a, nil
}

// DeleteAnswer soft deletes the live answer of an enquiry.
func (r *repository) DeleteAnswer(ctx context.Context, enquiryID int64) error {
	query := `
		UPDATE enquiry_answers
		SET is_deleted = true, updated_at = now()
		WHERE enquiry_id = $1 AND is_deleted = false
	`
	cmdTag, err := r.pool.Exec(ctx, query, enquiryID)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrAnswerNotFound
	}
	return nil
}

// DeleteEnquiry soft deletes the enquiry along with its live answer.
func (r *repository) DeleteEnquiry(ctx context.Context, enquiryID int64) error {
	query := `UPDATE enquiries SET is_deleted = true WHERE id = $1 AND is_deleted = false`
	cmdTag, err := r.pool.Exec(ctx, query, enquiryID)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrEnquiryNotFound
	}

	answerQuery := `
		UPDATE enquiry_answers
		SET is_deleted = true, updated_at = now()
		WHERE enquiry_id = $1 AND is_deleted = false
	`
	_, err = r.pool.Exec(ctx, answerQuery, enquiryID)
	return err
}
