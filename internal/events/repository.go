package events

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines the interface for promotion planning reads.
type Repository interface {
	Search(ctx context.Context, in SearchInput) ([]Event, int, error)
	SearchPickerProducts(ctx context.Context, attributeTypeIDs []int, in PickerInput) ([]PickerProduct, int, error)
	ListMenus(ctx context.Context) ([]Menu, error)
	MenuExists(ctx context.Context, menuID int64) (bool, error)
	ListFirstCategories(ctx context.Context, menuID int64) ([]Category, error)
	GetFirstCategoryMenu(ctx context.Context, firstCategoryID int64) (int64, error)
	ListSecondCategories(ctx context.Context, firstCategoryID int64) ([]Category, error)
}

// repository implements Repository using pgxpool.
type repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// statusCase derives the event status from the schedule at query time.
const statusCase = `
	CASE
		WHEN now() < e.start_date THEN 'wait'
		WHEN now() > e.end_date THEN 'end'
		ELSE 'progress'
	END`

// Search retrieves the filtered event listing page plus the total count.
func (r *repository) Search(ctx context.Context, in SearchInput) ([]Event, int, error) {
	conditions := []string{"e.is_deleted = false"}
	var args []interface{}
	argPos := 1

	if in.Name != "" {
		conditions = append(conditions, fmt.Sprintf("e.name LIKE $%d", argPos))
		args = append(args, "%"+in.Name+"%")
		argPos++
	}

	if in.Number != nil {
		conditions = append(conditions, fmt.Sprintf("e.id = $%d", argPos))
		args = append(args, *in.Number)
		argPos++
	}

	if in.Status != "" {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", statusCase, argPos))
		args = append(args, in.Status)
		argPos++
	}

	if in.IsExposure != nil {
		conditions = append(conditions, fmt.Sprintf("e.is_display = $%d", argPos))
		args = append(args, *in.IsExposure)
		argPos++
	}

	if in.RegisterStartDate != nil && in.RegisterEndDate != nil {
		conditions = append(conditions, fmt.Sprintf("e.created_at BETWEEN $%d AND $%d", argPos, argPos+1))
		args = append(args, *in.RegisterStartDate, *in.RegisterEndDate)
		argPos += 2
	}

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM events e %s`, whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT e.id, e.name, %s AS event_status,
		       et.name AS event_type, ek.name AS event_kind,
		       e.start_date, e.end_date, e.is_display, e.created_at
		FROM events e
		INNER JOIN event_types et ON et.id = e.event_type_id
		INNER JOIN event_kinds ek ON ek.id = e.event_kind_id
		%s
		ORDER BY e.id DESC
		LIMIT $%d OFFSET $%d
	`, statusCase, whereClause, argPos, argPos+1)

	args = append(args, in.Limit, (in.PageNumber-1)*in.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var results []Event
	for rows.Next() {
		var e Event
		err := rows.Scan(
			&e.ID, &e.Name, &e.Status, &e.TypeName, &e.KindName,
			&e.StartDate, &e.EndDate, &e.IsDisplay, &e.RegisterAt,
		)
		if err != nil {
			return nil, 0, err
		}
		results = append(results, e)
	}

	return results, total, rows.Err()
}

// SearchPickerProducts retrieves displayable products of sellers within the
// given attribute segment.
func (r *repository) SearchPickerProducts(ctx context.Context, attributeTypeIDs []int, in PickerInput) ([]PickerProduct, int, error) {
	conditions := []string{
		"p.is_deleted = false",
		"p.is_display = true",
		"s.seller_attribute_type_id = ANY($1)",
	}
	args := []interface{}{attributeTypeIDs}
	argPos := 2

	if in.ProductName != "" {
		conditions = append(conditions, fmt.Sprintf("p.name LIKE $%d", argPos))
		args = append(args, "%"+in.ProductName+"%")
		argPos++
	}

	if in.ProductID != nil {
		conditions = append(conditions, fmt.Sprintf("p.id = $%d", argPos))
		args = append(args, *in.ProductID)
		argPos++
	}

	if in.SellerName != "" {
		conditions = append(conditions, fmt.Sprintf("s.name LIKE $%d", argPos))
		args = append(args, "%"+in.SellerName+"%")
		argPos++
	}

	if in.SellerID != nil {
		conditions = append(conditions, fmt.Sprintf("s.id = $%d", argPos))
		args = append(args, *in.SellerID)
		argPos++
	}

	if in.MainCategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("p.main_category_id = $%d", argPos))
		args = append(args, *in.MainCategoryID)
		argPos++
	}

	if in.SubCategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("p.sub_category_id = $%d", argPos))
		args = append(args, *in.SubCategoryID)
		argPos++
	}

	if in.RegisterStartDate != nil && in.RegisterEndDate != nil {
		conditions = append(conditions, fmt.Sprintf("p.created_at BETWEEN $%d AND $%d", argPos, argPos+1))
		args = append(args, *in.RegisterStartDate, *in.RegisterEndDate)
		argPos += 2
	}

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM products p
		INNER JOIN sellers s ON s.id = p.seller_id
		%s
	`, whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.name, p.product_code,
		       s.name AS seller_name,
		       sat.name AS seller_attribute_type
		FROM products p
		INNER JOIN sellers s ON s.id = p.seller_id
		INNER JOIN seller_attribute_types sat ON sat.id = s.seller_attribute_type_id
		%s
		ORDER BY p.id DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)

	args = append(args, in.Limit, (in.PageNumber-1)*in.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var results []PickerProduct
	for rows.Next() {
		var p PickerProduct
		err := rows.Scan(&p.ProductID, &p.ProductName, &p.ProductCode, &p.SellerName, &p.SellerAttribute)
		if err != nil {
			return nil, 0, err
		}
		results = append(results, p)
	}

	return results, total, rows.Err()
}

// ListMenus retrieves every site menu.
func (r *repository) ListMenus(ctx context.Context) ([]Menu, error) {
	query := `SELECT id, name FROM menus ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menus []Menu
	for rows.Next() {
		var m Menu
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}
	return menus, rows.Err()
}

// MenuExists reports whether menuID is a live site menu.
func (r *repository) MenuExists(ctx context.Context, menuID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM menus WHERE id = $1)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, menuID).Scan(&exists)
	return exists, err
}

// ListFirstCategories retrieves the first-level categories of a menu.
func (r *repository) ListFirstCategories(ctx context.Context, menuID int64) ([]Category, error) {
	query := `SELECT id, name FROM first_categories WHERE menu_id = $1 ORDER BY id`
	rows, err := r.pool.Query(ctx, query, menuID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetFirstCategoryMenu returns the menu a first category belongs to.
func (r *repository) GetFirstCategoryMenu(ctx context.Context, firstCategoryID int64) (int64, error) {
	query := `SELECT menu_id FROM first_categories WHERE id = $1`
	var menuID int64
	err := r.pool.QueryRow(ctx, query, firstCategoryID).Scan(&menuID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrCategoryDoesNotExist
		}
		return 0, err
	}
	return menuID, nil
}

// ListSecondCategories retrieves the second-level categories of a first
// category.
func (r *repository) ListSecondCategories(ctx context.Context, firstCategoryID int64) ([]Category, error) {
	query := `SELECT id, name FROM second_categories WHERE first_category_id = $1 ORDER BY id`
	rows, err := r.pool.Query(ctx, query, firstCategoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
