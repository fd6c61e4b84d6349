package products

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modamall/backoffice/internal/platform/objstore"
	"github.com/modamall/backoffice/internal/shared"
)

// fakeRepo simulates the transactional repository: writes are staged during
// WithTx and kept only when the callback succeeds.
type fakeRepo struct {
	searchRows  []SearchRow
	searchTotal int
	searchInput SearchInput
	detail      *Detail
	images      []ProductImage
	options     []DetailOption

	committed  *fakeTx
	failInsert error
	failImage  error
}

type fakeTx struct {
	repo      *fakeRepo
	product   Product
	productID int64
	code      string
	stocks    []Stock
	history   []History
	sales     []int64
	bookmarks []int64
	imgs      []ProductImage
}

func (r *fakeRepo) Search(_ context.Context, in SearchInput) ([]SearchRow, int, error) {
	r.searchInput = in
	return r.searchRows, r.searchTotal, nil
}

func (r *fakeRepo) GetDetailByCode(_ context.Context, code string) (*Detail, error) {
	if r.detail == nil || r.detail.ProductCode != code {
		return nil, ErrProductNotFound
	}
	return r.detail, nil
}

func (r *fakeRepo) GetImages(_ context.Context, _ int64) ([]ProductImage, error) {
	if len(r.images) == 0 {
		return nil, ErrProductImageNotFound
	}
	return r.images, nil
}

func (r *fakeRepo) GetOptions(_ context.Context, _ int64) ([]DetailOption, error) {
	if len(r.options) == 0 {
		return nil, ErrStockNotFound
	}
	return r.options, nil
}

func (r *fakeRepo) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	tx := &fakeTx{repo: r}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	r.committed = tx
	return nil
}

func (t *fakeTx) InsertProduct(_ context.Context, p Product) (int64, error) {
	if t.repo.failInsert != nil {
		return 0, t.repo.failInsert
	}
	t.product = p
	t.productID = 7
	return t.productID, nil
}

func (t *fakeTx) UpdateProductCode(_ context.Context, _ int64, code string) error {
	t.code = code
	return nil
}

func (t *fakeTx) InsertStock(_ context.Context, s Stock) (int64, error) {
	t.stocks = append(t.stocks, s)
	return int64(len(t.stocks)), nil
}

func (t *fakeTx) InsertHistory(_ context.Context, h History) error {
	t.history = append(t.history, h)
	return nil
}

func (t *fakeTx) InitSalesVolume(_ context.Context, id int64) error {
	t.sales = append(t.sales, id)
	return nil
}

func (t *fakeTx) InitBookmarkVolume(_ context.Context, id int64) error {
	t.bookmarks = append(t.bookmarks, id)
	return nil
}

func (t *fakeTx) InsertImage(_ context.Context, img ProductImage) (int64, error) {
	if t.repo.failImage != nil {
		return 0, t.repo.failImage
	}
	t.imgs = append(t.imgs, img)
	return int64(len(t.imgs)), nil
}

type fakeStorage struct {
	uploads []string
	deletes []string
	failDel bool
}

func (s *fakeStorage) Upload(_ context.Context, _ []byte, key string) (string, error) {
	s.uploads = append(s.uploads, key)
	return key, nil
}

func (s *fakeStorage) Delete(_ context.Context, key string) error {
	if s.failDel {
		return errors.New("unreachable")
	}
	s.deletes = append(s.deletes, key)
	return nil
}

type fakeCleanup struct {
	keys []string
}

func (c *fakeCleanup) EnqueueOrphanSweep(_ context.Context, keys []string) error {
	c.keys = append(c.keys, keys...)
	return nil
}

func newTestService(repo *fakeRepo, storage *fakeStorage) *Service {
	return NewService(discardTestLogger(), repo, storage, objstore.NewURLResolver("https://img.example.com"))
}

func createInputWithOptions(t *testing.T) CreateInput {
	in := validCreateInput()
	in.Options = []OptionInput{
		{ColorID: 1, SizeID: 2, Remain: 100, IsStockManage: 1},
		{ColorID: 3, SizeID: 4},
	}
	in.Images = []ImageFile{
		{Filename: "front.jpg", Data: encodeJPEG(t, 640, 720)},
		{Filename: "back.jpg", Data: encodeJPEG(t, 700, 900)},
	}
	return in
}

func TestCreateWorkflow(t *testing.T) {
	repo := &fakeRepo{}
	storage := &fakeStorage{}
	svc := newTestService(repo, storage)

	id, code, err := svc.Create(context.Background(), createInputWithOptions(t))
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, "P000000000000000007", code)

	tx := repo.committed
	require.NotNil(t, tx)
	assert.Equal(t, code, tx.code)

	require.Len(t, tx.stocks, 2)
	assert.Equal(t, "7001002", tx.stocks[0].OptionCode)
	assert.Equal(t, "7003004", tx.stocks[1].OptionCode)
	assert.True(t, tx.stocks[0].IsStockManage)

	require.Len(t, tx.history, 1)
	assert.Equal(t, int64(2), tx.history[0].UpdaterID)

	assert.Equal(t, []int64{7}, tx.sales)
	assert.Equal(t, []int64{7}, tx.bookmarks)

	require.Len(t, tx.imgs, 2)
	assert.Equal(t, 1, tx.imgs[0].OrderIndex)
	assert.Equal(t, 2, tx.imgs[1].OrderIndex)
	for _, img := range tx.imgs {
		assert.True(t, strings.HasPrefix(img.ImageKey, "sellers/1/products/7/images/"+code+"-"))
		assert.True(t, strings.HasSuffix(img.ImageKey, ".jpg"))
	}
	assert.Len(t, storage.uploads, 2)
	assert.Empty(t, storage.deletes)
}

func TestCreateRejectsBadImageBeforeWriting(t *testing.T) {
	repo := &fakeRepo{}
	storage := &fakeStorage{}
	svc := newTestService(repo, storage)

	in := createInputWithOptions(t)
	in.Images[1].Data = encodePNG(t, 640, 720)

	_, _, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrFileExtension)
	assert.Nil(t, repo.committed)
	assert.Empty(t, storage.uploads)
}

func TestCreateImageRowFailureDiscardsUploads(t *testing.T) {
	repo := &fakeRepo{failImage: ErrCreateImageDenied}
	storage := &fakeStorage{}
	svc := newTestService(repo, storage)

	_, _, err := svc.Create(context.Background(), createInputWithOptions(t))
	assert.ErrorIs(t, err, ErrCreateImageDenied)
	assert.Nil(t, repo.committed)
	require.Len(t, storage.uploads, 1)
	assert.Equal(t, storage.uploads, storage.deletes)
}

func TestCreateUnreachableStoreEnqueuesSweep(t *testing.T) {
	repo := &fakeRepo{failImage: ErrCreateImageDenied}
	storage := &fakeStorage{failDel: true}
	svc := newTestService(repo, storage)
	cleanup := &fakeCleanup{}
	svc.SetCleanupEnqueuer(cleanup)

	_, _, err := svc.Create(context.Background(), createInputWithOptions(t))
	assert.ErrorIs(t, err, ErrCreateImageDenied)
	assert.Equal(t, storage.uploads, cleanup.keys)
}

func TestSearchRejectsBadPageSize(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeStorage{})

	_, err := svc.Search(context.Background(), shared.Identity{PermissionTypeID: shared.PermissionAdmin}, SearchInput{Limit: 25})
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestSearchPinsSeller(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeStorage{})

	other := int64(99)
	_, err := svc.Search(context.Background(), shared.Identity{
		AccountID:        5,
		PermissionTypeID: shared.PermissionSeller,
	}, SearchInput{Limit: 10, SellerID: &other, SellerName: "someone else"})
	require.NoError(t, err)

	require.NotNil(t, repo.searchInput.SellerID)
	assert.Equal(t, int64(5), *repo.searchInput.SellerID)
	assert.Empty(t, repo.searchInput.SellerName)
}

func TestSearchFormatsListing(t *testing.T) {
	repo := &fakeRepo{
		searchRows: []SearchRow{{
			UpdatedAt:       time.Date(2025, 8, 1, 10, 30, 0, 0, time.UTC),
			ImageKey:        "sellers/1/products/7/images/a.jpg",
			ProductName:     "Linen shirt",
			ProductCode:     "P000000000000000007",
			ProductID:       7,
			SellerAttribute: "shopping mall",
			SellerName:      "modamall",
			OriginPrice:     1234567,
			DiscountedPrice: 1111110,
			DiscountRate:    0.1,
			IsSale:          true,
		}},
		searchTotal: 41,
	}
	svc := newTestService(repo, &fakeStorage{})

	result, err := svc.Search(context.Background(), shared.Identity{PermissionTypeID: shared.PermissionAdmin}, SearchInput{Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, 41, result.TotalCount)
	require.Len(t, result.ProductList, 1)
	item := result.ProductList[0]
	assert.Equal(t, "2025-08-01 10:30:00", item.UpdatedAt)
	assert.Equal(t, "https://img.example.com/sellers/1/products/7/images/a.jpg", item.ProductImageURL)
	assert.Equal(t, "1,234,567", item.OriginPrice)
	assert.Equal(t, "1,111,110", item.DiscountedPrice)
	assert.Equal(t, 10, item.DiscountRate)
}

func TestDetailResolvesImages(t *testing.T) {
	repo := &fakeRepo{
		detail: &Detail{
			Product:    Product{ID: 7, ProductCode: "P000000000000000007", Name: "Linen shirt"},
			SellerName: "modamall",
		},
		images: []ProductImage{{ImageKey: "sellers/1/products/7/images/a.jpg", OrderIndex: 1}},
		options: []DetailOption{{
			StockID: 1, OptionCode: "7001002", ColorName: "black", SizeName: "M", Remain: 3,
		}},
	}
	svc := newTestService(repo, &fakeStorage{})

	result, err := svc.Detail(context.Background(), "P000000000000000007")
	require.NoError(t, err)
	assert.Equal(t, "modamall", result.ProductDetail.SellerName)
	require.Len(t, result.ProductImages, 1)
	assert.Equal(t, "https://img.example.com/sellers/1/products/7/images/a.jpg", result.ProductImages[0].ProductImageURL)
	assert.Len(t, result.ProductOptions, 1)
}

func TestDetailUnknownCode(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeStorage{})

	_, err := svc.Detail(context.Background(), "P000000000000000099")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
