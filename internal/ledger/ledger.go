// Package ledger owns the authoritative free-to-sell stock count per product.
// Reservations earmark stock for pending orders without touching the public
// stock figure; only Commit turns a reservation into a permanent decrement.
package ledger

import (
	"sort"
	"sync"

	"github.com/StefanMagureanu25/AWBD/internal/entities"
)

type productStock struct {
	mu       sync.Mutex
	stock    int
	reserved int
}

func (p *productStock) available() int {
	return p.stock - p.reserved
}

// StockLedger serializes reserve/release/commit per product. The outer map
// lock is held only for lookups, so operations on different products do not
// block each other.
type StockLedger struct {
	mu       sync.RWMutex
	products map[string]*productStock
}

func New() *StockLedger {
	return &StockLedger{
		products: make(map[string]*productStock),
	}
}

// Load seeds a product's stock level, dropping any reservations. Used at
// startup before pending orders re-reserve their lines.
func (l *StockLedger) Load(productID string, stock int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.products[productID] = &productStock{stock: stock}
}

func (l *StockLedger) get(productID string) (*productStock, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.products[productID]
	return p, ok
}

// Reserve earmarks quantity units if enough stock is free to sell.
func (l *StockLedger) Reserve(productID string, quantity int) error {
	if quantity <= 0 {
		return entities.ErrInvalidQuantity
	}
	p, ok := l.get(productID)
	if !ok {
		return entities.ErrProductNotFound
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.available() < quantity {
		return &entities.InsufficientStockError{
			ProductID: productID,
			Available: p.available(),
			Requested: quantity,
		}
	}
	p.reserved += quantity
	return nil
}

// Release undoes a prior reservation, up to the amount reserved.
func (l *StockLedger) Release(productID string, quantity int) error {
	if quantity <= 0 {
		return entities.ErrInvalidQuantity
	}
	p, ok := l.get(productID)
	if !ok {
		return entities.ErrProductNotFound
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if quantity > p.reserved {
		return entities.ErrOverRelease
	}
	p.reserved -= quantity
	return nil
}

// Commit converts a reservation into a permanent stock decrement and returns
// the new stock level for the caller to persist.
func (l *StockLedger) Commit(productID string, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, entities.ErrInvalidQuantity
	}
	p, ok := l.get(productID)
	if !ok {
		return 0, entities.ErrProductNotFound
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if quantity > p.reserved {
		return 0, entities.ErrReservationNotFound
	}
	p.reserved -= quantity
	p.stock -= quantity
	return p.stock, nil
}

func (l *StockLedger) Available(productID string) (int, error) {
	p, ok := l.get(productID)
	if !ok {
		return 0, entities.ErrProductNotFound
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.available(), nil
}

func (l *StockLedger) StockLevel(productID string) (int, error) {
	p, ok := l.get(productID)
	if !ok {
		return 0, entities.ErrProductNotFound
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stock, nil
}

// SetStock overrides a product's stock level for restocks and admin edits.
// Existing reservations are kept, clamped to the new level.
func (l *StockLedger) SetStock(productID string, stock int) error {
	if stock < 0 {
		return entities.ErrInvalidQuantity
	}

	l.mu.Lock()
	p, ok := l.products[productID]
	if !ok {
		l.products[productID] = &productStock{stock: stock}
		l.mu.Unlock()
		return nil
	}
	l.mu.Unlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.stock = stock
	if p.reserved > stock {
		p.reserved = stock
	}
	return nil
}

// CommitAll commits every line of a confirming order. Products are locked in
// a stable order and validated before any mutation, so a failing line leaves
// the ledger untouched. Returns the new stock level per product.
func (l *StockLedger) CommitAll(items []entities.OrderItem) (map[string]int, error) {
	quantities, order, err := l.collect(items)
	if err != nil {
		return nil, err
	}

	locked := l.lockAll(order)
	defer unlockAll(locked)

	for _, id := range order {
		if quantities[id] > locked[id].reserved {
			return nil, entities.ErrReservationNotFound
		}
	}

	levels := make(map[string]int, len(order))
	for _, id := range order {
		p := locked[id]
		p.reserved -= quantities[id]
		p.stock -= quantities[id]
		levels[id] = p.stock
	}
	return levels, nil
}

// ReleaseAll releases every line of a cancelled pending order, all or nothing.
func (l *StockLedger) ReleaseAll(items []entities.OrderItem) error {
	quantities, order, err := l.collect(items)
	if err != nil {
		return err
	}

	locked := l.lockAll(order)
	defer unlockAll(locked)

	for _, id := range order {
		if quantities[id] > locked[id].reserved {
			return entities.ErrOverRelease
		}
	}
	for _, id := range order {
		locked[id].reserved -= quantities[id]
	}
	return nil
}

// Uncommit reverses a CommitAll whose accompanying persistence failed,
// restoring both the stock level and the reservations.
func (l *StockLedger) Uncommit(items []entities.OrderItem) error {
	quantities, order, err := l.collect(items)
	if err != nil {
		return err
	}

	locked := l.lockAll(order)
	defer unlockAll(locked)

	for _, id := range order {
		p := locked[id]
		p.stock += quantities[id]
		p.reserved += quantities[id]
	}
	return nil
}

// collect folds items into per-product quantities plus a sorted product list,
// verifying every product is known before any lock is taken.
func (l *StockLedger) collect(items []entities.OrderItem) (map[string]int, []string, error) {
	quantities := make(map[string]int, len(items))
	for _, item := range items {
		qty := item.Quantity.Int()
		if qty <= 0 {
			return nil, nil, entities.ErrInvalidQuantity
		}
		quantities[item.ProductID] += qty
	}

	order := make([]string, 0, len(quantities))
	for id := range quantities {
		if _, ok := l.get(id); !ok {
			return nil, nil, entities.ErrProductNotFound
		}
		order = append(order, id)
	}
	sort.Strings(order)
	return quantities, order, nil
}

// lockAll locks the listed products in sorted order to keep multi-product
// operations deadlock free.
func (l *StockLedger) lockAll(order []string) map[string]*productStock {
	locked := make(map[string]*productStock, len(order))
	for _, id := range order {
		p, _ := l.get(id)
		p.mu.Lock()
		locked[id] = p
	}
	return locked
}

func unlockAll(locked map[string]*productStock) {
	for _, p := range locked {
		p.mu.Unlock()
	}
}
