package v1

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/inventory-api/internal/domain"
)

type mockItemService struct {
	mock.Mock
}

func (m *mockItemService) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *mockItemService) GetItem(ctx context.Context, id uint) (domain.Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *mockItemService) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]domain.Item)
	return items, args.Error(1)
}

func (m *mockItemService) AdjustQuantity(ctx context.Context, id uint, quantityChange int, notes string) (domain.Item, error) {
	args := m.Called(ctx, id, quantityChange, notes)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *mockItemService) InitializeRetailData(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	transactions, _ := args.Get(0).([]domain.Transaction)
	return transactions, args.Error(1)
}

func (m *mockTransactionService) GenerateReport(ctx context.Context, start, end time.Time, location *string) (domain.Report, error) {
	args := m.Called(ctx, start, end, location)
	return args.Get(0).(domain.Report), args.Error(1)
}
