package domain

import (
	"errors"
	"time"
)

var ErrInvalidTransaction = errors.New("transaction type does not match quantity change")

type TransactionType string

const (
	TransactionSale    TransactionType = "SALE"
	TransactionRestock TransactionType = "RESTOCK"
)

// TransactionTypeFor infers the ledger type from the sign of a quantity change.
func TransactionTypeFor(quantityChange int) TransactionType {
	if quantityChange < 0 {
		return TransactionSale
	}

	return TransactionRestock
}

type Transaction struct {
	ID             uint            `json:"id"`
	ItemID         uint            `json:"item_id"`
	Type           TransactionType `json:"transaction_type"`
	QuantityChange int             `json:"quantity_change"`
	PriceAtTime    int64           `json:"price_at_time"`
	Location       string          `json:"location"`
	Notes          string          `json:"notes"`
	Timestamp      time.Time       `json:"timestamp"`
}

// Value is the signed worth of the transaction in minor units.
func (t Transaction) Value() int64 {
	return int64(t.QuantityChange) * t.PriceAtTime
}

func (t Transaction) IsValid() bool {
	switch t.Type {
	case TransactionSale:
		return t.QuantityChange < 0
	case TransactionRestock:
		return t.QuantityChange > 0
	}

	// Other types are recorded as-is.
	return t.Type != ""
}

type TransactionFilter struct {
	Location  string
	StartDate *time.Time
	EndDate   *time.Time
	Skip      int
	Limit     int
}
