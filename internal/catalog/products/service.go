package products

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/modamall/backoffice/internal/platform/objstore"
	"github.com/modamall/backoffice/internal/shared"
)

// CleanupEnqueuer schedules background removal of blob-store objects that
// were uploaded before their rows failed to commit.
type CleanupEnqueuer interface {
	EnqueueOrphanSweep(ctx context.Context, keys []string) error
}

// Service provides business logic for product registration, search and
// detail reads.
type Service struct {
	logger   *slog.Logger
	repo     Repository
	storage  objstore.Storage
	resolver objstore.URLResolver
	cleanup  CleanupEnqueuer
	printer  *message.Printer
}

// NewService creates a new service.
func NewService(logger *slog.Logger, repo Repository, storage objstore.Storage, resolver objstore.URLResolver) *Service {
	return &Service{
		logger:   logger,
		repo:     repo,
		storage:  storage,
		resolver: resolver,
		printer:  message.NewPrinter(language.English),
	}
}

// SetCleanupEnqueuer sets the background cleanup client. Without one,
// failed uploads rely on the synchronous best-effort delete alone.
func (s *Service) SetCleanupEnqueuer(c CleanupEnqueuer) {
	s.cleanup = c
}

// Create runs the registration workflow: normalize, then within one
// transaction insert the product, derive its code, insert options, snapshot
// history, seed the counter rows, and finally validate and upload the
// images. A failure at any step rolls back every row and best-effort
// deletes any blobs already uploaded.
func (s *Service) Create(ctx context.Context, in CreateInput) (int64, string, error) {
	if err := NormalizeCreate(&in); err != nil {
		return 0, "", err
	}
	for _, img := range in.Images {
		if err := CheckImageFile(img); err != nil {
			return 0, "", err
		}
	}

	var (
		productID   int64
		productCode string
		uploaded    []string
	)
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx TxRepository) error {
		id, err := tx.InsertProduct(ctx, Product{
			SellerID:          in.SellerID,
			AccountID:         in.AccountID,
			IsSale:            in.IsSale,
			IsDisplay:         in.IsDisplay,
			MainCategoryID:    in.MainCategoryID,
			SubCategoryID:     in.SubCategoryID,
			IsProductNotice:   in.IsProductNotice,
			Manufacturer:      in.Manufacturer,
			ManufacturingDate: in.ManufacturingDate,
			OriginTypeID:      in.OriginTypeID,
			Name:              in.Name,
			Description:       in.Description,
			DetailInformation: in.DetailInformation,
			OriginPrice:       in.OriginPrice,
			DiscountRate:      StoredDiscountRate(in.DiscountRate),
			DiscountedPrice:   in.DiscountedPrice,
			DiscountStartDate: in.DiscountStartDate,
			DiscountEndDate:   in.DiscountEndDate,
			MinimumQuantity:   in.MinimumQuantity,
			MaximumQuantity:   in.MaximumQuantity,
		})
		if err != nil {
			return err
		}
		productID = id

		productCode = ProductCode(id)
		if err := tx.UpdateProductCode(ctx, id, productCode); err != nil {
			return err
		}

		for _, opt := range in.Options {
			stock := Stock{
				ProductID:     id,
				OptionCode:    OptionCode(id, opt.ColorID, opt.SizeID),
				ColorID:       opt.ColorID,
				SizeID:        opt.SizeID,
				Remain:        opt.Remain,
				IsStockManage: opt.IsStockManage == 1,
			}
			if _, err := tx.InsertStock(ctx, stock); err != nil {
				return err
			}
		}

		if err := tx.InsertHistory(ctx, History{
			ProductID:         id,
			ProductName:       in.Name,
			IsDisplay:         in.IsDisplay,
			IsSale:            in.IsSale,
			OriginPrice:       in.OriginPrice,
			DiscountedPrice:   in.DiscountedPrice,
			DiscountRate:      StoredDiscountRate(in.DiscountRate),
			DiscountStartDate: in.DiscountStartDate,
			DiscountEndDate:   in.DiscountEndDate,
			MinimumQuantity:   in.MinimumQuantity,
			MaximumQuantity:   in.MaximumQuantity,
			UpdaterID:         in.AccountID,
		}); err != nil {
			return err
		}

		if err := tx.InitSalesVolume(ctx, id); err != nil {
			return err
		}
		if err := tx.InitBookmarkVolume(ctx, id); err != nil {
			return err
		}

		for i, img := range in.Images {
			key := imageKey(in.SellerID, id, productCode, img.Filename)
			if _, err := s.storage.Upload(ctx, img.Data, key); err != nil {
				return fmt.Errorf("upload image %q: %w", img.Filename, ErrImageUploadFail)
			}
			uploaded = append(uploaded, key)
			if _, err := tx.InsertImage(ctx, ProductImage{
				ProductID:  id,
				ImageKey:   key,
				OrderIndex: i + 1,
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		s.discardUploads(ctx, uploaded)
		return 0, "", err
	}

	return productID, productCode, nil
}

// discardUploads removes blobs whose rows never committed. Deletes are
// best-effort; anything left is handed to the background sweep.
func (s *Service) discardUploads(ctx context.Context, keys []string) {
	var remaining []string
	for _, key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.Warn("delete orphan image", slog.String("key", key), slog.Any("error", err))
			remaining = append(remaining, key)
		}
	}
	if len(remaining) > 0 && s.cleanup != nil {
		if err := s.cleanup.EnqueueOrphanSweep(ctx, remaining); err != nil {
			s.logger.Error("enqueue orphan sweep", slog.Any("error", err))
		}
	}
}

// Search returns the filtered product listing page. Sellers are always
// pinned to their own products regardless of the submitted seller filters.
func (s *Service) Search(ctx context.Context, id shared.Identity, in SearchInput) (*SearchResult, error) {
	if !shared.ValidPageSize(in.Limit) {
		return nil, ErrInvalidPageSize
	}
	if in.PageNumber < 1 {
		in.PageNumber = 1
	}
	if err := ValidateSearch(in); err != nil {
		return nil, err
	}
	if id.IsSeller() {
		sellerID := id.AccountID
		in.SellerID = &sellerID
		in.SellerName = ""
	}

	rows, total, err := s.repo.Search(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}

	items := make([]SearchItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, SearchItem{
			UpdatedAt:       row.UpdatedAt.Format("2006-01-02 15:04:05"),
			ProductImageURL: s.resolver.Resolve(row.ImageKey),
			ProductName:     row.ProductName,
			ProductCode:     row.ProductCode,
			ProductID:       row.ProductID,
			SellerAttribute: row.SellerAttribute,
			SellerName:      row.SellerName,
			OriginPrice:     s.printer.Sprintf("%d", row.OriginPrice),
			DiscountedPrice: s.printer.Sprintf("%d", row.DiscountedPrice),
			DiscountRate:    int(math.Round(row.DiscountRate * 100)),
			IsSale:          row.IsSale,
			IsDisplay:       row.IsDisplay,
		})
	}

	return &SearchResult{TotalCount: total, ProductList: items}, nil
}

// Detail returns the full product record with resolved image URLs and
// option rows.
func (s *Service) Detail(ctx context.Context, productCode string) (*DetailResult, error) {
	detail, err := s.repo.GetDetailByCode(ctx, productCode)
	if err != nil {
		return nil, err
	}

	images, err := s.repo.GetImages(ctx, detail.ID)
	if err != nil {
		return nil, err
	}
	options, err := s.repo.GetOptions(ctx, detail.ID)
	if err != nil {
		return nil, err
	}

	resolved := make([]DetailImage, 0, len(images))
	for _, img := range images {
		resolved = append(resolved, DetailImage{
			ProductImageURL: s.resolver.Resolve(img.ImageKey),
			OrderIndex:      img.OrderIndex,
		})
	}

	return &DetailResult{
		ProductDetail:  *detail,
		ProductImages:  resolved,
		ProductOptions: options,
	}, nil
}

// ProductCode derives the public code from the generated row id.
func ProductCode(productID int64) string {
	return fmt.Sprintf("%s%0*d", productCodePrefix, codeDigits, productID)
}

// OptionCode concatenates the product id with the zero-padded color and
// size ids.
func OptionCode(productID, colorID, sizeID int64) string {
	return fmt.Sprintf("%d%0*d%0*d", productID, optionPadDigits, colorID, optionPadDigits, sizeID)
}

func imageKey(sellerID, productID int64, productCode, filename string) string {
	ext := ""
	if i := strings.LastIndex(filename, "."); i >= 0 {
		ext = strings.ToLower(filename[i:])
	}
	return fmt.Sprintf("sellers/%d/products/%d/images/%s-%s%s",
		sellerID, productID, productCode, uuid.NewString(), ext)
}
