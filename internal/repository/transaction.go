package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/inventory-api/internal/domain"
	"github.com/vietanh2810/inventory-api/internal/repository/dao"
)

type TransactionDAO interface {
	Find(ctx context.Context, filter dao.TransactionFilter) ([]dao.Transaction, error)
	Summarize(ctx context.Context, filter dao.TransactionFilter) ([]dao.TransactionTotals, error)
}

type TransactionRepository struct {
	dao TransactionDAO
}

func NewTransactionRepository(dao TransactionDAO) *TransactionRepository {
	return &TransactionRepository{
		dao: dao,
	}
}

func (r *TransactionRepository) Find(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	found, err := r.dao.Find(ctx, filterToDao(filter))
	if err != nil {
		return nil, fmt.Errorf("r.dao.Find -> %w", err)
	}

	transactions := make([]domain.Transaction, len(found))
	for i, transaction := range found {
		transactions[i] = daoToDomainTransaction(transaction)
	}

	return transactions, nil
}

func (r *TransactionRepository) Summarize(ctx context.Context, filter domain.TransactionFilter) ([]domain.TransactionTotals, error) {
	found, err := r.dao.Summarize(ctx, filterToDao(filter))
	if err != nil {
		return nil, fmt.Errorf("r.dao.Summarize -> %w", err)
	}

	totals := make([]domain.TransactionTotals, len(found))
	for i, total := range found {
		totals[i] = domain.TransactionTotals{
			Type:  domain.TransactionType(total.Type),
			Count: total.Count,
			Value: total.Value,
		}
	}

	return totals, nil
}

func filterToDao(filter domain.TransactionFilter) dao.TransactionFilter {
	return dao.TransactionFilter{
		Location:  filter.Location,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Offset:    filter.Skip,
		Limit:     filter.Limit,
	}
}

func domainToDaoTransaction(t domain.Transaction) dao.Transaction {
	return dao.Transaction{
		ID:             t.ID,
		ItemID:         t.ItemID,
		Type:           string(t.Type),
		QuantityChange: t.QuantityChange,
		PriceAtTime:    t.PriceAtTime,
		Location:       t.Location,
		Notes:          t.Notes,
		Timestamp:      t.Timestamp,
	}
}

func daoToDomainTransaction(t dao.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:             t.ID,
		ItemID:         t.ItemID,
		Type:           domain.TransactionType(t.Type),
		QuantityChange: t.QuantityChange,
		PriceAtTime:    t.PriceAtTime,
		Location:       t.Location,
		Notes:          t.Notes,
		Timestamp:      t.Timestamp,
	}
}
