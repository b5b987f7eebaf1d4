package repository

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/inventory-api/internal/domain"
	"github.com/vietanh2810/inventory-api/internal/repository/dao"
)

// fakeItemDAO keeps rows in memory and only commits the callback's changes when it
// succeeds, like the gorm transaction in dao.ItemDAO.
type fakeItemDAO struct {
	items  map[uint]dao.Item
	ledger []dao.Transaction
	nextID uint
	err    error
}

func newFakeItemDAO(items ...dao.Item) *fakeItemDAO {
	f := &fakeItemDAO{items: map[uint]dao.Item{}}
	for _, item := range items {
		f.nextID++
		item.ID = f.nextID
		f.items[item.ID] = item
	}
	return f
}

func (f *fakeItemDAO) Insert(_ context.Context, item dao.Item) (dao.Item, error) {
	if f.err != nil {
		return dao.Item{}, f.err
	}
	f.nextID++
	item.ID = f.nextID
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeItemDAO) FindByID(_ context.Context, id uint) (dao.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return dao.Item{}, dao.ErrItemNotFound
	}
	return item, nil
}

func (f *fakeItemDAO) Find(_ context.Context, filter dao.ItemFilter) ([]dao.Item, error) {
	var found []dao.Item
	for id := uint(1); id <= f.nextID; id++ {
		if item, ok := f.items[id]; ok && (filter.Location == "" || item.Location == filter.Location) {
			found = append(found, item)
		}
	}
	return found, f.err
}

func (f *fakeItemDAO) UpdateQuantity(_ context.Context, id uint, adjust dao.AdjustFunc) (dao.Item, dao.Transaction, error) {
	item, ok := f.items[id]
	if !ok {
		return dao.Item{}, dao.Transaction{}, dao.ErrItemNotFound
	}

	entry, err := adjust(&item)
	if err != nil {
		return dao.Item{}, dao.Transaction{}, err
	}

	entry.ID = uint(len(f.ledger) + 1)
	entry.ItemID = item.ID
	f.items[id] = item
	f.ledger = append(f.ledger, entry)
	return item, entry, nil
}

func (f *fakeItemDAO) ReplaceAll(_ context.Context, items []dao.Item, history dao.HistoryFunc) (int, error) {
	staged := newFakeItemDAO()
	for _, item := range items {
		staged.nextID++
		item.ID = staged.nextID
		entries, err := history(&item)
		if err != nil {
			return 0, err
		}
		staged.items[item.ID] = item
		staged.ledger = append(staged.ledger, entries...)
	}

	*f = *staged
	return len(items), nil
}

func TestItemRepository_CreateAndFind(t *testing.T) {
	repo := NewItemRepository(newFakeItemDAO())
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Item{Name: "Apple iPad Air", Description: "256GB", Quantity: 30, Price: 74999, Location: "Target - Electronics"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestItemRepository_Create_Error(t *testing.T) {
	fake := newFakeItemDAO()
	fake.err = errors.New("connection refused")
	repo := NewItemRepository(fake)

	_, err := repo.Create(context.Background(), domain.Item{Name: "x"})
	assert.ErrorContains(t, err, "r.dao.Insert -> connection refused")
}

func TestItemRepository_AdjustQuantity(t *testing.T) {
	fake := newFakeItemDAO(dao.Item{Name: "widget", Quantity: 10, Price: 1000, Location: "A"})
	repo := NewItemRepository(fake)
	ctx := context.Background()

	item, transaction, err := repo.AdjustQuantity(ctx, 1, -3, "walk-in")
	require.NoError(t, err)
	assert.Equal(t, 7, item.Quantity)
	assert.Equal(t, domain.TransactionSale, transaction.Type)
	assert.Equal(t, -3, transaction.QuantityChange)
	assert.Equal(t, int64(1000), transaction.PriceAtTime)
	assert.Equal(t, "A", transaction.Location)
	assert.Equal(t, "walk-in", transaction.Notes)
	assert.Equal(t, uint(1), transaction.ItemID)

	_, _, err = repo.AdjustQuantity(ctx, 1, -20, "too many")
	assert.ErrorIs(t, err, ErrInsufficientQuantity)
	assert.Equal(t, 7, fake.items[1].Quantity)
	assert.Len(t, fake.ledger, 1)

	_, _, err = repo.AdjustQuantity(ctx, 2, 1, "")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestItemRepository_ReplaceAll(t *testing.T) {
	fake := newFakeItemDAO(dao.Item{Name: "stale", Quantity: 1})
	repo := NewItemRepository(fake)

	added, err := repo.ReplaceAll(context.Background(), []domain.Item{
		{Name: "big", Quantity: 10, Price: 100, Location: "A"},
		{Name: "small", Quantity: 5, Price: 200, Location: "B"},
	}, func(item domain.Item) []domain.Adjustment {
		var adjustments []domain.Adjustment
		if item.Quantity > 5 {
			adjustments = append(adjustments, domain.Adjustment{QuantityChange: -2, Notes: "Initial Sale"})
		}
		return append(adjustments, domain.Adjustment{QuantityChange: 5, Notes: "Initial Stock"})
	})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	assert.Equal(t, 13, fake.items[1].Quantity)
	assert.Equal(t, 10, fake.items[2].Quantity)
	require.Len(t, fake.ledger, 3)
	assert.Equal(t, "SALE", fake.ledger[0].Type)
	assert.Equal(t, "RESTOCK", fake.ledger[1].Type)
	assert.Equal(t, "RESTOCK", fake.ledger[2].Type)
}

func TestItemRepository_ReplaceAll_RejectsImpossibleHistory(t *testing.T) {
	fake := newFakeItemDAO(dao.Item{Name: "kept", Quantity: 1})
	repo := NewItemRepository(fake)

	_, err := repo.ReplaceAll(context.Background(), []domain.Item{{Name: "empty", Quantity: 0}}, func(domain.Item) []domain.Adjustment {
		return []domain.Adjustment{{QuantityChange: -2, Notes: "Initial Sale"}}
	})
	assert.ErrorIs(t, err, ErrInsufficientQuantity)
	assert.Equal(t, "kept", fake.items[1].Name)
}

func TestItemRepository_AdjustQuantity_OutOfRange(t *testing.T) {
	fake := newFakeItemDAO(dao.Item{Name: "widget", Quantity: 10, Price: 1000, Location: "A"})
	repo := NewItemRepository(fake)
	ctx := context.Background()

	_, _, err := repo.AdjustQuantity(ctx, 1, math.MaxInt, "bulk")
	assert.ErrorIs(t, err, ErrQuantityOutOfRange)

	_, _, err = repo.AdjustQuantity(ctx, 1, math.MaxInt/100, "bulk")
	assert.ErrorIs(t, err, ErrQuantityOutOfRange)

	assert.Equal(t, 10, fake.items[1].Quantity)
	assert.Empty(t, fake.ledger)
}
