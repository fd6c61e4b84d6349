package products

import (
	"context"
	"fmt"
)

// denied keeps the write-failure sentinel matchable while carrying the
// database cause in the message.
func denied(op string, cause, sentinel error) error {
	return fmt.Errorf("%s: %v: %w", op, cause, sentinel)
}

// InsertProduct inserts the product row and returns the generated id. The
// product code is written in a second step once the id is known.
func (t *txRepository) InsertProduct(ctx context.Context, p Product) (int64, error) {
	query := `
		INSERT INTO products (
			seller_id, account_id, is_sale, is_display,
			main_category_id, sub_category_id, is_product_notice,
			manufacturer, manufacturing_date, product_origin_type_id,
			name, description, detail_information,
			origin_price, discount_rate, discounted_price,
			discount_start_date, discount_end_date,
			minimum_quantity, maximum_quantity
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		          $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id
	`
	var id int64
	err := t.tx.QueryRow(ctx, query,
		p.SellerID, p.AccountID, p.IsSale, p.IsDisplay,
		p.MainCategoryID, p.SubCategoryID, p.IsProductNotice,
		p.Manufacturer, p.ManufacturingDate, p.OriginTypeID,
		p.Name, p.Description, p.DetailInformation,
		p.OriginPrice, p.DiscountRate, p.DiscountedPrice,
		p.DiscountStartDate, p.DiscountEndDate,
		p.MinimumQuantity, p.MaximumQuantity,
	).Scan(&id)
	if err != nil {
		return 0, denied("insert product", err, ErrCreateProductDenied)
	}
	return id, nil
}

// UpdateProductCode writes the derived product code onto the new row.
func (t *txRepository) UpdateProductCode(ctx context.Context, productID int64, productCode string) error {
	query := `UPDATE products SET product_code = $1 WHERE id = $2`
	cmdTag, err := t.tx.Exec(ctx, query, productCode, productID)
	if err != nil {
		return denied("update product code", err, ErrUpdateProductCodeDenied)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrUpdateProductCodeDenied
	}
	return nil
}

// InsertStock inserts one option row.
func (t *txRepository) InsertStock(ctx context.Context, s Stock) (int64, error) {
	query := `
		INSERT INTO stocks (
			product_id, product_option_code, color_id, size_id, remain, is_stock_manage
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id int64
	err := t.tx.QueryRow(ctx, query,
		s.ProductID, s.OptionCode, s.ColorID, s.SizeID, s.Remain, s.IsStockManage,
	).Scan(&id)
	if err != nil {
		return 0, denied("insert stock", err, ErrCreateStockDenied)
	}
	return id, nil
}

// InsertHistory appends the product snapshot attributed to the acting
// account.
func (t *txRepository) InsertHistory(ctx context.Context, h History) error {
	query := `
		INSERT INTO product_histories (
			product_id, product_name, is_display, is_sale,
			origin_price, discounted_price, discount_rate,
			discount_start_date, discount_end_date,
			minimum_quantity, maximum_quantity, updater_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := t.tx.Exec(ctx, query,
		h.ProductID, h.ProductName, h.IsDisplay, h.IsSale,
		h.OriginPrice, h.DiscountedPrice, h.DiscountRate,
		h.DiscountStartDate, h.DiscountEndDate,
		h.MinimumQuantity, h.MaximumQuantity, h.UpdaterID,
	)
	if err != nil {
		return denied("insert history", err, ErrCreateHistoryDenied)
	}
	return nil
}

// InitSalesVolume seeds the zero sales counter row for a new product.
func (t *txRepository) InitSalesVolume(ctx context.Context, productID int64) error {
	query := `INSERT INTO product_sales_volumes (product_id, sales_count) VALUES ($1, 0)`
	if _, err := t.tx.Exec(ctx, query, productID); err != nil {
		return denied("init sales volume", err, ErrCreateSalesVolumeDenied)
	}
	return nil
}

// InitBookmarkVolume seeds the zero bookmark counter row for a new product.
func (t *txRepository) InitBookmarkVolume(ctx context.Context, productID int64) error {
	query := `INSERT INTO bookmark_volumes (product_id, bookmark_count) VALUES ($1, 0)`
	if _, err := t.tx.Exec(ctx, query, productID); err != nil {
		return denied("init bookmark volume", err, ErrCreateBookmarkVolumeDenied)
	}
	return nil
}

// InsertImage inserts one ordered image row pointing at its blob-store key.
func (t *txRepository) InsertImage(ctx context.Context, img ProductImage) (int64, error) {
	query := `
		INSERT INTO product_images (product_id, image_key, order_index)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	err := t.tx.QueryRow(ctx, query, img.ProductID, img.ImageKey, img.OrderIndex).Scan(&id)
	if err != nil {
		return 0, denied("insert image", err, ErrCreateImageDenied)
	}
	return id, nil
}
