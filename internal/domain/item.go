package domain

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInsufficientQuantity = errors.New("insufficient quantity")
	ErrQuantityOutOfRange   = errors.New("quantity change out of range")
)

type Item struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Price       int64     `json:"price"` // minor units
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AdjustQuantity applies quantityChange to the item and returns the ledger entry that
// records it. The item is left untouched when an error is returned.
func (i *Item) AdjustQuantity(quantityChange int, notes string) (Transaction, error) {
	if quantityChange > 0 && i.Quantity > math.MaxInt-quantityChange {
		return Transaction{}, ErrQuantityOutOfRange
	}

	newQuantity := i.Quantity + quantityChange
	if newQuantity < 0 {
		return Transaction{}, ErrInsufficientQuantity
	}

	// The ledger value of the entry must fit in int64 minor units.
	if i.Price > 0 && absInt64(int64(quantityChange)) > math.MaxInt64/i.Price {
		return Transaction{}, ErrQuantityOutOfRange
	}

	transaction := Transaction{
		ItemID:         i.ID,
		Type:           TransactionTypeFor(quantityChange),
		QuantityChange: quantityChange,
		PriceAtTime:    i.Price,
		Location:       i.Location,
		Notes:          notes,
	}
	if !transaction.IsValid() {
		return Transaction{}, ErrInvalidTransaction
	}

	i.Quantity = newQuantity

	return transaction, nil
}

// Adjustment is a requested quantity change that has not been applied yet.
type Adjustment struct {
	QuantityChange int
	Notes          string
}

type ItemFilter struct {
	Location string
	Skip     int
	Limit    int
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
