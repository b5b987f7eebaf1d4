package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Transaction struct {
	ID             uint   `gorm:"primaryKey"`
	ItemID         uint   `gorm:"index;not null"`
	Type           string `gorm:"column:transaction_type;not null"` // "SALE", "RESTOCK", ...
	QuantityChange int    `gorm:"not null"`
	PriceAtTime    int64  `gorm:"not null"`
	Location       string `gorm:"index;not null"`
	Notes          string
	Timestamp      time.Time `gorm:"index;not null;autoCreateTime"`
}

func (Transaction) TableName() string {
	return "transactions"
}

type TransactionFilter struct {
	Location  string
	StartDate *time.Time
	EndDate   *time.Time
	Offset    int
	Limit     int
}

type TransactionTotals struct {
	Type  string `gorm:"column:transaction_type"`
	Count int64  `gorm:"column:count"`
	Value int64  `gorm:"column:value"`
}

type TransactionDAO struct {
	db *gorm.DB
}

func NewTransactionDAO(db *gorm.DB) *TransactionDAO {
	return &TransactionDAO{
		db: db,
	}
}

func (d *TransactionDAO) Find(ctx context.Context, filter TransactionFilter) ([]Transaction, error) {
	transactions := []Transaction{}

	result := d.filtered(ctx, filter).
		Order("id ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&transactions)
	if result.Error != nil {
		return nil, result.Error
	}

	return transactions, nil
}

// Summarize aggregates the ledger per transaction type. Pagination fields of the filter
// are ignored.
func (d *TransactionDAO) Summarize(ctx context.Context, filter TransactionFilter) ([]TransactionTotals, error) {
	var totals []TransactionTotals

	result := d.filtered(ctx, filter).
		Select("transaction_type, COUNT(*) AS count, COALESCE(SUM(quantity_change * price_at_time), 0) AS value").
		Group("transaction_type").
		Scan(&totals)
	if result.Error != nil {
		return nil, result.Error
	}

	return totals, nil
}

func (d *TransactionDAO) filtered(ctx context.Context, filter TransactionFilter) *gorm.DB {
	query := d.db.WithContext(ctx).Model(&Transaction{})
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.StartDate != nil {
		query = query.Where("timestamp >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("timestamp <= ?", *filter.EndDate)
	}

	return query
}

func insertTransaction(tx *gorm.DB, entry *Transaction) error {
	result := tx.Create(entry)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.ForeignKeyViolation {
			return ErrItemNotFound
		}

		return result.Error
	}

	return nil
}
