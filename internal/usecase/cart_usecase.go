package usecase

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/logging"
	"storefront/internal/metrics"
	"storefront/internal/usecase/interfaces"
)

var (
	ErrInvalidProduct = errors.New("invalid product")
)

const purchaseRecordTimeout = 10 * time.Second

// ICartUseCase is the only writer of the persisted cart.
type ICartUseCase interface {
	Lines(ctx context.Context) ([]entities.CartLine, error)
	AddToCart(ctx context.Context, product entities.Product) ([]entities.CartLine, error)
	CompletePurchase(ctx context.Context) (*entities.PurchaseRecord, error)
	Subscribe(fn func([]entities.CartLine)) (unsubscribe func())
}

// CartReader is what the checkout needs from the cart.
type CartReader interface {
	Lines(ctx context.Context) ([]entities.CartLine, error)
}

type CartUseCase struct {
	mu       sync.Mutex
	repo     interfaces.ICartRepository
	recorder interfaces.IPurchaseRecorder
	subs     subscribers[[]entities.CartLine]
	wg       sync.WaitGroup
	log      *slog.Logger
}

var _ ICartUseCase = (*CartUseCase)(nil)
var _ CartReader = (*CartUseCase)(nil)

func NewCartUseCase(repo interfaces.ICartRepository, recorder interfaces.IPurchaseRecorder) *CartUseCase {
	return &CartUseCase{
		repo:     repo,
		recorder: recorder,
		log:      logging.New("cart"),
	}
}

func (u *CartUseCase) Lines(ctx context.Context) ([]entities.CartLine, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.repo.Load(ctx)
}

// AddToCart bumps the quantity of an existing line or appends a new one.
func (u *CartUseCase) AddToCart(ctx context.Context, product entities.Product) ([]entities.CartLine, error) {
	product.ID = strings.TrimSpace(product.ID)
	if product.ID == "" || product.Price < 0 {
		return nil, ErrInvalidProduct
	}

	u.mu.Lock()
	lines, err := u.repo.Load(ctx)
	if err != nil {
		u.mu.Unlock()
		return nil, err
	}

	idx := slices.IndexFunc(lines, func(l entities.CartLine) bool { return l.Product.ID == product.ID })
	if idx >= 0 {
		lines[idx].Quantity++
	} else {
		lines = append(lines, entities.CartLine{Product: product, Quantity: 1})
	}

	if err := u.repo.Save(ctx, lines); err != nil {
		u.mu.Unlock()
		return nil, err
	}
	u.mu.Unlock()

	u.log.Info("[cart][usecase] product added", "product_id", product.ID, "lines", len(lines))
	u.subs.notify(slices.Clone(lines))
	return lines, nil
}

// CompletePurchase empties the cart after a successful payment and hands the
// purchase to the recorder without waiting for it. An empty cart is a no-op.
func (u *CartUseCase) CompletePurchase(ctx context.Context) (*entities.PurchaseRecord, error) {
	u.mu.Lock()
	lines, err := u.repo.Load(ctx)
	if err != nil {
		u.mu.Unlock()
		return nil, err
	}
	if len(lines) == 0 {
		u.mu.Unlock()
		return nil, nil
	}
	if err := u.repo.Clear(ctx); err != nil {
		u.mu.Unlock()
		return nil, err
	}
	u.mu.Unlock()

	record := entities.PurchaseRecord{
		Total:    LineTotal(lines),
		Products: make([]entities.PurchasedProduct, 0, len(lines)),
	}
	for _, l := range lines {
		record.Products = append(record.Products, entities.PurchasedProduct{ID: l.Product.ID, Quantity: l.Quantity})
	}

	u.log.Info("[cart][usecase] purchase completed", "total", record.Total, "lines", len(lines))
	u.subs.notify([]entities.CartLine{})
	u.recordAsync(ctx, record)
	return &record, nil
}

func (u *CartUseCase) Subscribe(fn func([]entities.CartLine)) func() {
	return u.subs.add(fn)
}

// Wait blocks until in-flight purchase recordings finished.
func (u *CartUseCase) Wait() {
	u.wg.Wait()
}

func (u *CartUseCase) recordAsync(ctx context.Context, record entities.PurchaseRecord) {
	if u.recorder == nil {
		return
	}
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), purchaseRecordTimeout)
	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		defer cancel()
		if err := u.recorder.Record(rctx, record); err != nil {
			metrics.PurchasesRecorded.WithLabelValues(metrics.OutcomeFailure).Inc()
			u.log.Warn("[cart][usecase] purchase record failed", "error", err.Error())
			return
		}
		metrics.PurchasesRecorded.WithLabelValues(metrics.OutcomeSuccess).Inc()
	}()
}
