package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/modamall/backoffice/internal/platform/db"
)

// Repository defines the interface for product persistence.
type Repository interface {
	// Read operations
	Search(ctx context.Context, in SearchInput) ([]SearchRow, int, error)
	GetDetailByCode(ctx context.Context, productCode string) (*Detail, error)
	GetImages(ctx context.Context, productID int64) ([]ProductImage, error)
	GetOptions(ctx context.Context, productID int64) ([]DetailOption, error)

	// Write operations (transactional)
	WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error
}

// TxRepository exposes transactional write operations.
type TxRepository interface {
	InsertProduct(ctx context.Context, p Product) (int64, error)
	UpdateProductCode(ctx context.Context, productID int64, productCode string) error
	InsertStock(ctx context.Context, s Stock) (int64, error)
	InsertHistory(ctx context.Context, h History) error
	InitSalesVolume(ctx context.Context, productID int64) error
	InitBookmarkVolume(ctx context.Context, productID int64) error
	InsertImage(ctx context.Context, img ProductImage) (int64, error)
}

// repository implements Repository using pgxpool.
type repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// txRepository implements TxRepository.
type txRepository struct {
	tx pgx.Tx
}

// WithTx wraps callback in a read-committed transaction.
func (r *repository) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &txRepository{tx: tx})
	})
}

// Search retrieves the filtered product listing page plus the total count.
// The representative image per product is the one with the lowest order
// index.
func (r *repository) Search(ctx context.Context, in SearchInput) ([]SearchRow, int, error) {
	conditions := []string{"p.is_deleted = false"}
	var args []interface{}
	argPos := 1

	if in.LookupStartDate != nil && in.LookupEndDate != nil {
		conditions = append(conditions, fmt.Sprintf("p.updated_at BETWEEN $%d AND $%d", argPos, argPos+1))
		args = append(args, *in.LookupStartDate, *in.LookupEndDate)
		argPos += 2
	}

	if in.SellerName != "" {
		conditions = append(conditions, fmt.Sprintf("s.name LIKE $%d", argPos))
		args = append(args, "%"+in.SellerName+"%")
		argPos++
	}

	if in.SellerID != nil {
		conditions = append(conditions, fmt.Sprintf("p.seller_id = $%d", argPos))
		args = append(args, *in.SellerID)
		argPos++
	}

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

	if in.ProductCode != "" {
		conditions = append(conditions, fmt.Sprintf("p.product_code = $%d", argPos))
		args = append(args, in.ProductCode)
		argPos++
	}

	if len(in.AttributeTypeIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("s.seller_attribute_type_id = ANY($%d)", argPos))
		args = append(args, in.AttributeTypeIDs)
		argPos++
	}

	if in.IsSale != nil {
		conditions = append(conditions, fmt.Sprintf("p.is_sale = $%d", argPos))
		args = append(args, *in.IsSale)
		argPos++
	}

	if in.IsDisplay != nil {
		conditions = append(conditions, fmt.Sprintf("p.is_display = $%d", argPos))
		args = append(args, *in.IsDisplay)
		argPos++
	}

	if in.IsDiscount != nil {
		if *in.IsDiscount {
			conditions = append(conditions, "p.discount_rate > 0")
		} else {
			conditions = append(conditions, "p.discount_rate = 0")
		}
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
		SELECT p.updated_at,
		       COALESCE(pi.image_key, '') AS image_key,
		       p.name,
		       p.product_code,
		       p.id,
		       sat.name AS seller_attribute_type,
		       s.name AS seller_name,
		       p.origin_price,
		       p.discounted_price,
		       p.discount_rate,
		       p.is_sale,
		       p.is_display
		FROM products p
		INNER JOIN sellers s ON s.id = p.seller_id
		INNER JOIN seller_attribute_types sat ON sat.id = s.seller_attribute_type_id
		LEFT JOIN LATERAL (
			SELECT image_key
			FROM product_images
			WHERE product_id = p.id AND is_deleted = false
			ORDER BY order_index
			LIMIT 1
		) pi ON true
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

	var results []SearchRow
	for rows.Next() {
		var row SearchRow
		err := rows.Scan(
			&row.UpdatedAt, &row.ImageKey, &row.ProductName, &row.ProductCode,
			&row.ProductID, &row.SellerAttribute, &row.SellerName,
			&row.OriginPrice, &row.DiscountedPrice, &row.DiscountRate,
			&row.IsSale, &row.IsDisplay,
		)
		if err != nil {
			return nil, 0, err
		}
		results = append(results, row)
	}

	return results, total, rows.Err()
}

// GetDetailByCode retrieves the joined product record for one product code.
func (r *repository) GetDetailByCode(ctx context.Context, productCode string) (*Detail, error) {
	query := `
		SELECT p.id, p.product_code, p.seller_id, p.account_id, p.is_sale, p.is_display,
		       p.main_category_id, p.sub_category_id, p.is_product_notice,
		       p.manufacturer, p.manufacturing_date, p.product_origin_type_id,
		       p.name, p.description, p.detail_information,
		       p.origin_price, p.discount_rate, p.discounted_price,
		       p.discount_start_date, p.discount_end_date,
		       p.minimum_quantity, p.maximum_quantity,
		       p.created_at, p.updated_at,
		       s.name AS seller_name,
		       mc.name AS main_category_name,
		       sc.name AS sub_category_name,
		       ot.name AS origin_type_name
		FROM products p
		INNER JOIN sellers s ON s.id = p.seller_id
		INNER JOIN main_categories mc ON mc.id = p.main_category_id
		INNER JOIN sub_categories sc ON sc.id = p.sub_category_id
		LEFT JOIN product_origin_types ot ON ot.id = p.product_origin_type_id
		WHERE p.product_code = $1 AND p.is_deleted = false
	`
	var d Detail
	err := r.pool.QueryRow(ctx, query, productCode).Scan(
		&d.ID, &d.ProductCode, &d.SellerID, &d.AccountID, &d.IsSale, &d.IsDisplay,
		&d.MainCategoryID, &d.SubCategoryID, &d.IsProductNotice,
		&d.Manufacturer, &d.ManufacturingDate, &d.OriginTypeID,
		&d.Name, &d.Description, &d.DetailInformation,
		&d.OriginPrice, &d.DiscountRate, &d.DiscountedPrice,
		&d.DiscountStartDate, &d.DiscountEndDate,
		&d.MinimumQuantity, &d.MaximumQuantity,
		&d.CreatedAt, &d.UpdatedAt,
		&d.SellerName, &d.MainCategoryName, &d.SubCategoryName, &d.OriginTypeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &d, nil
}

// GetImages retrieves the live image rows of a product in display order.
func (r *repository) GetImages(ctx context.Context, productID int64) ([]ProductImage, error) {
	query := `
		SELECT id, product_id, image_key, order_index
		FROM product_images
		WHERE product_id = $1 AND is_deleted = false
		ORDER BY order_index
	`
	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []ProductImage
	for rows.Next() {
		var img ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.ImageKey, &img.OrderIndex); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, ErrProductImageNotFound
	}
	return images, nil
}

// GetOptions retrieves the option rows of a product joined with their color
// and size names.
func (r *repository) GetOptions(ctx context.Context, productID int64) ([]DetailOption, error) {
	query := `
		SELECT st.id, st.product_option_code,
		       st.color_id, c.name AS color_name,
		       st.size_id, sz.name AS size_name,
		       st.remain, st.is_stock_manage
		FROM stocks st
		INNER JOIN colors c ON c.id = st.color_id
		INNER JOIN sizes sz ON sz.id = st.size_id
		WHERE st.product_id = $1 AND st.is_deleted = false
		ORDER BY st.id
	`
	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []DetailOption
	for rows.Next() {
		var opt DetailOption
		err := rows.Scan(
			&opt.StockID, &opt.OptionCode,
			&opt.ColorID, &opt.ColorName,
			&opt.SizeID, &opt.SizeName,
			&opt.Remain, &opt.IsStockManage,
		)
		if err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, ErrStockNotFound
	}
	return options, nil
}
