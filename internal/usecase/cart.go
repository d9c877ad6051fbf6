package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/order"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"
)

const cartBlobKey = "cart"

// CartView is the read model handed to the presentation layer. Totals are
// computed on every read, never accumulated.
type CartView struct {
	Items    []cart.LineItem
	Offers   []cart.AppliedOffer
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

type CartCommands interface {
	AddItem(ctx context.Context, product catalog.Product) (*CartView, error)
	SetQuantity(ctx context.Context, id string, quantity int) (*CartView, error)
	RemoveItem(ctx context.Context, id string) (*CartView, error)
	Clear(ctx context.Context) error
	Checkout(ctx context.Context) (*order.Order, error)
}

type CartQueries interface {
	GetCart(ctx context.Context) *CartView
}

// CartStore owns the authoritative line-item list. Every mutation is followed
// synchronously by a full reconciliation pass over the surviving regular
// items, and the whole state is replaced with the engine's output; derived
// offer items and the ledger have no lifecycle of their own. The mutex
// serializes mutations so each pass runs to completion before the next.
type CartStore struct {
	mu     sync.Mutex
	items  []cart.LineItem
	offers []cart.AppliedOffer

	blobs    shared.BlobStore
	clk      clock.Clock
	recorder shared.Recorder
	logger   *slog.Logger
}

func NewCartStore(blobs shared.BlobStore, clk clock.Clock, recorder shared.Recorder, logger *slog.Logger) *CartStore {
	s := &CartStore{
		blobs:    blobs,
		clk:      clk,
		recorder: recorder,
		logger:   logger,
	}
	s.restore(context.Background())
	return s
}

// restore loads the persisted cart and reconciles it from scratch, so any
// stale derived entries in the blob are regenerated. A missing or
// undecodable blob yields an empty cart, never an error.
func (s *CartStore) restore(ctx context.Context) {
	payload, err := s.blobs.Load(ctx, cartBlobKey)
	if err != nil {
		s.logger.Warn("failed to load cart, starting empty", "error", err)
		return
	}
	if payload == nil {
		return
	}

	var items []cart.LineItem
	if err := json.Unmarshal(payload, &items); err != nil {
		s.logger.Warn("cart blob corrupted, starting empty", "error", err)
		return
	}

	result := cart.Reconcile(items)
	s.items = result.Cart
	s.offers = result.Offers
}

func (s *CartStore) AddItem(ctx context.Context, product catalog.Product) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	regular := s.regularItems()
	found := false
	for i := range regular {
		if regular[i].ID == product.ID {
			regular[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		item, err := cart.NewLineItem(product, 1)
		if err != nil {
			return nil, err
		}
		regular = append(regular, item)
	}

	s.applyAndPersist(ctx, regular, "add")
	return s.viewLocked(), nil
}

func (s *CartStore) SetQuantity(ctx context.Context, id string, quantity int) (*CartView, error) {
	if quantity <= 0 {
		// Setting quantity to zero is strictly equivalent to removal.
		return s.RemoveItem(ctx, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	regular := s.regularItems()
	found := false
	for i := range regular {
		if regular[i].ID == id {
			regular[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, errs.Mark(errs.New("no cart item with id "+id), errs.ErrItemNotFound)
	}

	s.applyAndPersist(ctx, regular, "set_quantity")
	return s.viewLocked(), nil
}

func (s *CartStore) RemoveItem(ctx context.Context, id string) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	regular := s.regularItems()
	kept := regular[:0]
	found := false
	for _, li := range regular {
		if li.ID == id {
			found = true
			continue
		}
		kept = append(kept, li)
	}
	if !found {
		return nil, errs.Mark(errs.New("no cart item with id "+id), errs.ErrItemNotFound)
	}

	s.applyAndPersist(ctx, kept, "remove")
	return s.viewLocked(), nil
}

// Clear empties everything unconditionally; reconciling an empty set is
// always empty, so no pass is run.
func (s *CartStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearLocked(ctx)
	return nil
}

func (s *CartStore) Checkout(ctx context.Context) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ord, err := order.NewOrder(s.items, s.offers, s.clk.Now())
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(ord)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode order")
	}
	if err := s.blobs.Save(ctx, orderBlobKey(ord.ID.String()), payload); err != nil {
		return nil, errs.Wrap(err, "failed to persist order")
	}

	s.clearLocked(ctx)
	s.recorder.CartMutation("checkout")
	return ord, nil
}

func (s *CartStore) GetCart(_ context.Context) *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// applyAndPersist runs the full reconciliation pass over the given regular
// items, swaps the store state with the result, and saves it. Persistence
// failure is logged and ignored: it risks losing state across restarts, not
// corrupting the in-memory invariants.
func (s *CartStore) applyAndPersist(ctx context.Context, regular []cart.LineItem, op string) {
	result := cart.Reconcile(regular)
	s.items = result.Cart
	s.offers = result.Offers

	s.recorder.CartMutation(op)
	for _, li := range result.Cart {
		if li.IsOffer {
			s.recorder.OfferApplied(string(li.OfferType))
		}
	}

	s.persist(ctx)
}

func (s *CartStore) clearLocked(ctx context.Context) {
	s.items = nil
	s.offers = nil
	s.persist(ctx)
}

func (s *CartStore) persist(ctx context.Context) {
	items := s.items
	if items == nil {
		items = []cart.LineItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		s.logger.Warn("failed to encode cart", "error", err)
		return
	}
	if err := s.blobs.Save(ctx, cartBlobKey, payload); err != nil {
		s.logger.Warn("failed to save cart", "error", err)
	}
}

func (s *CartStore) regularItems() []cart.LineItem {
	regular := make([]cart.LineItem, 0, len(s.items))
	for _, li := range s.items {
		if !li.IsOffer {
			regular = append(regular, li)
		}
	}
	return regular
}

func (s *CartStore) viewLocked() *CartView {
	items := make([]cart.LineItem, len(s.items))
	copy(items, s.items)
	offers := make([]cart.AppliedOffer, len(s.offers))
	copy(offers, s.offers)

	subtotal := cart.Subtotal(items)
	discount := decimal.Zero
	for _, o := range offers {
		discount = discount.Add(o.Discount)
	}

	return &CartView{
		Items:    items,
		Offers:   offers,
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount),
	}
}

func orderBlobKey(id string) string {
	return "order:" + id
}
