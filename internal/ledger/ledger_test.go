package ledger_test

import (
	"sync"
	"testing"

	"github.com/StefanMagureanu25/AWBD/internal/entities"
	"github.com/StefanMagureanu25/AWBD/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(t *testing.T, productID string, qty int) entities.OrderItem {
	t.Helper()
	q, err := entities.NewQuantity(qty)
	require.NoError(t, err)
	return entities.OrderItem{ID: "item-" + productID, ProductID: productID, Quantity: q}
}

func TestStockLedger_Reserve(t *testing.T) {
	l := ledger.New()
	l.Load("product-1", 10)

	require.NoError(t, l.Reserve("product-1", 4))

	available, err := l.Available("product-1")
	require.NoError(t, err)
	assert.Equal(t, 6, available)

	// reservations do not touch the stock level
	stock, err := l.StockLevel("product-1")
	require.NoError(t, err)
	assert.Equal(t, 10, stock)
}

func TestStockLedger_Reserve_Insufficient(t *testing.T) {
	l := ledger.New()
	l.Load("product-1", 5)
	require.NoError(t, l.Reserve("product-1", 3))

	err := l.Reserve("product-1", 3)

	var stockErr *entities.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "product-1", stockErr.ProductID)
	assert.Equal(t, 2, stockErr.Available)
	assert.Equal(t, 3, stockErr.Requested)

	// failed reserve leaves the ledger untouched
	available, err := l.Available("product-1")
	require.NoError(t, err)
	assert.Equal(t, 2, available)
}

func TestStockLedger_Reserve_Errors(t *testing.T) {
	l := ledger.New()
	l.Load("product-1", 5)

	assert.ErrorIs(t, l.Reserve("product-1", 0), entities.ErrInvalidQuantity)
	assert.ErrorIs(t, l.Reserve("product-1", -2), entities.ErrInvalidQuantity)
	assert.ErrorIs(t, l.Reserve("missing", 1), entities.ErrProductNotFound)
}

func TestStockLedger_Release(t *testing.T) {
	l := ledger.New()
	l.Load("product-1", 10)
	require.NoError(t, l.Reserve("product-1", 4))

	require.NoError(t, l.Release("product-1", 3))

	available, err := l.Available("product-1")
	require.NoError(t, err)
	assert.Equal(t, 9, available)

	assert.ErrorIs(t, l.Release("product-1", 2), entities.ErrOverRelease)
	assert.ErrorIs(t, l.Release("missing", 1), entities.ErrProductNotFound)
}

func TestStockLedger_Commit(t *testing.T) {
	l := ledger.New()
	l.Load("product-1", 10)
	require.NoError(t, l.Reserve("product-1", 4))

	level, err := l.Commit("product-1", 4)
	require.NoError(t, err)
	assert.Equal(t, 6, level)

	stock, err := l.StockLevel("product-1")
	require.NoError(t, err)
	assert.Equal(t, 6, stock)

	available, err := l.Available("product-1")
	require.NoError(t, err)
	assert.Equal(t, 6, available)
}

func TestStockLedger_Commit_WithoutReservation(t *testing.T) {
	l := ledger.New()
	l.Load("product-1", 10)

	_, err := l.Commit("product-1", 1)
	assert.ErrorIs(t, err, entities.ErrReservationNotFound)
}

func TestStockLedger_SetStock(t *testing.T) {
	l := ledger.New()
	l.Load("product-1", 10)
	require.NoError(t, l.Reserve("product-1", 8))

	// restock keeps reservations
	require.NoError(t, l.SetStock("product-1", 20))
	available, err := l.Available("product-1")
	require.NoError(t, err)
	assert.Equal(t, 12, available)

	// shrinking below the reserved amount clamps the reservation
	require.NoError(t, l.SetStock("product-1", 5))
	available, err = l.Available("product-1")
	require.NoError(t, err)
	assert.Equal(t, 0, available)

	// unknown products are created
	require.NoError(t, l.SetStock("product-2", 7))
	available, err = l.Available("product-2")
	require.NoError(t, err)
	assert.Equal(t, 7, available)

	assert.ErrorIs(t, l.SetStock("product-1", -1), entities.ErrInvalidQuantity)
}

func TestStockLedger_Load_DropsReservations(t *testing.T) {
	l := ledger.New()
	l.Load("product-1", 10)
	require.NoError(t, l.Reserve("product-1", 5))

	l.Load("product-1", 10)

	available, err := l.Available("product-1")
	require.NoError(t, err)
	assert.Equal(t, 10, available)
}

func TestStockLedger_CommitAll(t *testing.T) {
	l := ledger.New()
	l.Load("product-1", 10)
	l.Load("product-2", 5)
	require.NoError(t, l.Reserve("product-1", 3))
	require.NoError(t, l.Reserve("product-2", 2))

	levels, err := l.CommitAll([]entities.OrderItem{
		item(t, "product-1", 3),
		item(t, "product-2", 2),
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"product-1": 7, "product-2": 3}, levels)
}

func TestStockLedger_CommitAll_PartialReservationFails(t *testing.T) {
	l := ledger.New()
	l.Load("product-1", 10)
	l.Load("product-2", 5)
	require.NoError(t, l.Reserve("product-1", 3))
	// product-2 has nothing reserved

	_, err := l.CommitAll([]entities.OrderItem{
		item(t, "product-1", 3),
		item(t, "product-2", 2),
	})
	assert.ErrorIs(t, err, entities.ErrReservationNotFound)

	// nothing was committed
	stock, err := l.StockLevel("product-1")
	require.NoError(t, err)
	assert.Equal(t, 10, stock)
	available, err := l.Available("product-1")
	require.NoError(t, err)
	assert.Equal(t, 7, available)
}

func TestStockLedger_ReleaseAll(t *testing.T) {
	l := ledger.New()
	l.Load("product-1", 10)
	l.Load("product-2", 5)
	require.NoError(t, l.Reserve("product-1", 3))
	require.NoError(t, l.Reserve("product-2", 2))

	require.NoError(t, l.ReleaseAll([]entities.OrderItem{
		item(t, "product-1", 3),
		item(t, "product-2", 2),
	}))

	available, err := l.Available("product-1")
	require.NoError(t, err)
	assert.Equal(t, 10, available)
	available, err = l.Available("product-2")
	require.NoError(t, err)
	assert.Equal(t, 5, available)
}

func TestStockLedger_Uncommit(t *testing.T) {
	l := ledger.New()
	l.Load("product-1", 10)
	require.NoError(t, l.Reserve("product-1", 4))

	items := []entities.OrderItem{item(t, "product-1", 4)}
	_, err := l.CommitAll(items)
	require.NoError(t, err)

	require.NoError(t, l.Uncommit(items))

	stock, err := l.StockLevel("product-1")
	require.NoError(t, err)
	assert.Equal(t, 10, stock)
	available, err := l.Available("product-1")
	require.NoError(t, err)
	assert.Equal(t, 6, available)

	// the restored reservation can still be committed
	levels, err := l.CommitAll(items)
	require.NoError(t, err)
	assert.Equal(t, 6, levels["product-1"])
}

// TestStockLedger_LastUnitRace pits two buyers against the final unit. Exactly
// one reservation must win, and the loser sees available 0.
func TestStockLedger_LastUnitRace(t *testing.T) {
	l := ledger.New()
	l.Load("product-1", 1)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = l.Reserve("product-1", 1)
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		if err == nil {
			won++
			continue
		}
		lost++
		var stockErr *entities.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 0, stockErr.Available)
		assert.Equal(t, 1, stockErr.Requested)
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)

	// winner checks out, the shelf is empty for good
	level, err := l.Commit("product-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, level)
}

func TestStockLedger_ConcurrentReserveRelease(t *testing.T) {
	l := ledger.New()
	l.Load("product-1", 100)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := l.Reserve("product-1", 2); err == nil {
				assert.NoError(t, l.Release("product-1", 2))
			}
		}()
	}
	wg.Wait()

	available, err := l.Available("product-1")
	require.NoError(t, err)
	assert.Equal(t, 100, available)
	stock, err := l.StockLevel("product-1")
	require.NoError(t, err)
	assert.Equal(t, 100, stock)
}
