package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrItemNotFound = errors.New("item not found")
)

type Item struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"index;not null"`
	Description string
	Quantity    int    `gorm:"not null;default:0"`
	Price       int64  `gorm:"not null"` // minor units
	Location    string `gorm:"index;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ItemFilter struct {
	Location string
	Offset   int
	Limit    int
}

// AdjustFunc mutates a locked item in place and returns the ledger entry to append.
// Returning an error aborts the surrounding transaction.
type AdjustFunc func(item *Item) (Transaction, error)

// HistoryFunc builds the ledger entries for a freshly inserted seed item. It may change
// the item's quantity to match the entries it returns.
type HistoryFunc func(item *Item) ([]Transaction, error)

type ItemDAO struct {
	db *gorm.DB
}

func NewItemDAO(db *gorm.DB) *ItemDAO {
	return &ItemDAO{
		db: db,
	}
}

func (d *ItemDAO) Insert(ctx context.Context, item Item) (Item, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		return Item{}, result.Error
	}

	return item, nil
}

func (d *ItemDAO) FindByID(ctx context.Context, id uint) (Item, error) {
	var item Item

	result := d.db.WithContext(ctx).First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Item{}, ErrItemNotFound
		}

		return Item{}, result.Error
	}

	return item, nil
}

func (d *ItemDAO) Find(ctx context.Context, filter ItemFilter) ([]Item, error) {
	items := []Item{}

	query := d.db.WithContext(ctx).Model(&Item{})
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}

	result := query.Order("id ASC").Offset(filter.Offset).Limit(filter.Limit).Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// UpdateQuantity locks the item row, lets adjust decide the new quantity and the ledger
// entry, then writes both in the same database transaction.
func (d *ItemDAO) UpdateQuantity(ctx context.Context, id uint, adjust AdjustFunc) (Item, Transaction, error) {
	var (
		item  Item
		entry Transaction
	)

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, id)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}

			return result.Error
		}

		var err error
		entry, err = adjust(&item)
		if err != nil {
			return err
		}

		item.UpdatedAt = tx.NowFunc()
		result = tx.Model(&Item{ID: item.ID}).Updates(map[string]interface{}{
			"quantity":   item.Quantity,
			"updated_at": item.UpdatedAt,
		})
		if result.Error != nil {
			return result.Error
		}

		entry.ItemID = item.ID

		return insertTransaction(tx, &entry)
	})
	if err != nil {
		return Item{}, Transaction{}, err
	}

	return item, entry, nil
}

// ReplaceAll wipes the ledger and the catalog, then inserts items together with the
// history built for each of them. Everything happens in one database transaction.
func (d *ItemDAO) ReplaceAll(ctx context.Context, items []Item, history HistoryFunc) (int, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := wipe.Delete(&Transaction{}).Error; err != nil {
			return err
		}
		if err := wipe.Delete(&Item{}).Error; err != nil {
			return err
		}

		for i := range items {
			item := &items[i]
			if err := tx.Create(item).Error; err != nil {
				return err
			}

			entries, err := history(item)
			if err != nil {
				return err
			}

			for j := range entries {
				entries[j].ItemID = item.ID
				if err := insertTransaction(tx, &entries[j]); err != nil {
					return err
				}
			}

			if err := tx.Model(item).Update("quantity", item.Quantity).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(items), nil
}
