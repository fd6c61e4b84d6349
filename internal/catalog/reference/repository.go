package reference

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines the interface for registration-form lookup reads.
type Repository interface {
	ListOriginTypes(ctx context.Context) ([]OriginType, error)
	ListColors(ctx context.Context) ([]Color, error)
	ListSizes(ctx context.Context) ([]Size, error)
	ListMainCategories(ctx context.Context) ([]MainCategory, error)
	ListSubCategories(ctx context.Context, mainCategoryID int64) ([]SubCategory, error)
	SearchSellers(ctx context.Context, name string, limit int) ([]SellerSummary, error)
}

// repository implements Repository using pgxpool.
type repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) ListOriginTypes(ctx context.Context) ([]OriginType, error) {
	query := `SELECT id, name FROM product_origin_types ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []OriginType
	for rows.Next() {
		var ot OriginType
		if err := rows.Scan(&ot.ID, &ot.Name); err != nil {
			return nil, err
		}
		list = append(list, ot)
	}
	return list, rows.Err()
}

func (r *repository) ListColors(ctx context.Context) ([]Color, error) {
	query := `SELECT id, name FROM colors ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Color
	for rows.Next() {
		var c Color
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *repository) ListSizes(ctx context.Context) ([]Size, error) {
	query := `SELECT id, name FROM sizes ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Size
	for rows.Next() {
		var s Size
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *repository) ListMainCategories(ctx context.Context) ([]MainCategory, error) {
	query := `SELECT id, name FROM main_categories ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []MainCategory
	for rows.Next() {
		var mc MainCategory
		if err := rows.Scan(&mc.ID, &mc.Name); err != nil {
			return nil, err
		}
		list = append(list, mc)
	}
	return list, rows.Err()
}

func (r *repository) ListSubCategories(ctx context.Context, mainCategoryID int64) ([]SubCategory, error) {
	query := `SELECT id, name FROM sub_categories WHERE main_category_id = $1 ORDER BY id`
	rows, err := r.pool.Query(ctx, query, mainCategoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []SubCategory
	for rows.Next() {
		var sc SubCategory
		if err := rows.Scan(&sc.ID, &sc.Name); err != nil {
			return nil, err
		}
		list = append(list, sc)
	}
	return list, rows.Err()
}

// SearchSellers matches live sellers by name fragment.
func (r *repository) SearchSellers(ctx context.Context, name string, limit int) ([]SellerSummary, error) {
	query := `
		SELECT s.id, s.name, sat.name AS seller_attribute_type
		FROM sellers s
		INNER JOIN seller_attribute_types sat ON sat.id = s.seller_attribute_type_id
		WHERE s.is_deleted = false AND s.name LIKE $1
		ORDER BY s.id
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, "%"+name+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []SellerSummary
	for rows.Next() {
		var s SellerSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.AttributeType); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
