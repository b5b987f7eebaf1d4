package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/inventory-api/internal/domain"
)

type mockItemRepository struct {
	mock.Mock
}

func (m *mockItemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *mockItemRepository) FindByID(ctx context.Context, id uint) (domain.Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *mockItemRepository) Find(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]domain.Item)
	return items, args.Error(1)
}

func (m *mockItemRepository) AdjustQuantity(ctx context.Context, id uint, quantityChange int, notes string) (domain.Item, domain.Transaction, error) {
	args := m.Called(ctx, id, quantityChange, notes)
	return args.Get(0).(domain.Item), args.Get(1).(domain.Transaction), args.Error(2)
}

func (m *mockItemRepository) ReplaceAll(ctx context.Context, items []domain.Item, history func(item domain.Item) []domain.Adjustment) (int, error) {
	args := m.Called(ctx, items, history)
	return args.Int(0), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishTransaction(ctx context.Context, transaction domain.Transaction) error {
	return m.Called(ctx, transaction).Error(0)
}

type mockTransactionRepository struct {
	mock.Mock
}

func (m *mockTransactionRepository) Find(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	transactions, _ := args.Get(0).([]domain.Transaction)
	return transactions, args.Error(1)
}

func (m *mockTransactionRepository) Summarize(ctx context.Context, filter domain.TransactionFilter) ([]domain.TransactionTotals, error) {
	args := m.Called(ctx, filter)
	totals, _ := args.Get(0).([]domain.TransactionTotals)
	return totals, args.Error(1)
}
