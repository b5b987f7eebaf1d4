package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vietanh2810/inventory-api/internal/domain"
)

type TransactionRepository interface {
	Find(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
	Summarize(ctx context.Context, filter domain.TransactionFilter) ([]domain.TransactionTotals, error)
}

type TransactionService struct {
	repo TransactionRepository
}

func NewTransactionService(repo TransactionRepository) *TransactionService {
	return &TransactionService{
		repo: repo,
	}
}

func (s *TransactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	transactions, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return transactions, nil
}

// GenerateReport aggregates the ledger between start and end, both inclusive.
func (s *TransactionService) GenerateReport(ctx context.Context, start, end time.Time, location *string) (domain.Report, error) {
	filter := domain.TransactionFilter{
		StartDate: &start,
		EndDate:   &end,
	}
	if location != nil {
		filter.Location = *location
	}

	totals, err := s.repo.Summarize(ctx, filter)
	if err != nil {
		return domain.Report{}, fmt.Errorf("s.repo.Summarize -> %w", err)
	}

	return domain.NewReport(start, end, location, totals), nil
}
