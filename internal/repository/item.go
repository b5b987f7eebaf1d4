package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/inventory-api/internal/domain"
	"github.com/vietanh2810/inventory-api/internal/repository/dao"
)

var (
	ErrItemNotFound         = dao.ErrItemNotFound
	ErrInsufficientQuantity = domain.ErrInsufficientQuantity
	ErrInvalidTransaction   = domain.ErrInvalidTransaction
	ErrQuantityOutOfRange   = domain.ErrQuantityOutOfRange
)

type ItemDAO interface {
	Insert(ctx context.Context, item dao.Item) (dao.Item, error)
	FindByID(ctx context.Context, id uint) (dao.Item, error)
	Find(ctx context.Context, filter dao.ItemFilter) ([]dao.Item, error)
	UpdateQuantity(ctx context.Context, id uint, adjust dao.AdjustFunc) (dao.Item, dao.Transaction, error)
	ReplaceAll(ctx context.Context, items []dao.Item, history dao.HistoryFunc) (int, error)
}

type ItemRepository struct {
	dao ItemDAO
}

func NewItemRepository(dao ItemDAO) *ItemRepository {
	return &ItemRepository{
		dao: dao,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(item))
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uint) (domain.Item, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ItemRepository) Find(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	found, err := r.dao.Find(ctx, dao.ItemFilter{
		Location: filter.Location,
		Offset:   filter.Skip,
		Limit:    filter.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.Find -> %w", err)
	}

	items := make([]domain.Item, len(found))
	for i, item := range found {
		items[i] = r.daoToDomain(item)
	}

	return items, nil
}

// AdjustQuantity applies the domain quantity rule to the locked item row and persists the
// resulting ledger entry in the same database transaction.
func (r *ItemRepository) AdjustQuantity(ctx context.Context, id uint, quantityChange int, notes string) (domain.Item, domain.Transaction, error) {
	updated, entry, err := r.dao.UpdateQuantity(ctx, id, func(locked *dao.Item) (dao.Transaction, error) {
		item := r.daoToDomain(*locked)

		transaction, err := item.AdjustQuantity(quantityChange, notes)
		if err != nil {
			return dao.Transaction{}, err
		}

		locked.Quantity = item.Quantity

		return domainToDaoTransaction(transaction), nil
	})
	if err != nil {
		return domain.Item{}, domain.Transaction{}, fmt.Errorf("r.dao.UpdateQuantity -> %w", err)
	}

	return r.daoToDomain(updated), daoToDomainTransaction(entry), nil
}

// ReplaceAll resets the store to items. Each entry of history is applied to the freshly
// inserted item through the same rule as AdjustQuantity.
func (r *ItemRepository) ReplaceAll(ctx context.Context, items []domain.Item, history func(item domain.Item) []domain.Adjustment) (int, error) {
	daoItems := make([]dao.Item, len(items))
	for i, item := range items {
		daoItems[i] = r.domainToDao(item)
	}

	added, err := r.dao.ReplaceAll(ctx, daoItems, func(inserted *dao.Item) ([]dao.Transaction, error) {
		item := r.daoToDomain(*inserted)

		var entries []dao.Transaction
		for _, adjustment := range history(item) {
			transaction, err := item.AdjustQuantity(adjustment.QuantityChange, adjustment.Notes)
			if err != nil {
				return nil, fmt.Errorf("item %q: %w", item.Name, err)
			}
			entries = append(entries, domainToDaoTransaction(transaction))
		}

		inserted.Quantity = item.Quantity

		return entries, nil
	})
	if err != nil {
		return 0, fmt.Errorf("r.dao.ReplaceAll -> %w", err)
	}

	return added, nil
}

func (r *ItemRepository) domainToDao(item domain.Item) dao.Item {
	return dao.Item{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Quantity:    item.Quantity,
		Price:       item.Price,
		Location:    item.Location,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func (r *ItemRepository) daoToDomain(item dao.Item) domain.Item {
	return domain.Item{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Quantity:    item.Quantity,
		Price:       item.Price,
		Location:    item.Location,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
