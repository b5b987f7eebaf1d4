package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vietanh2810/inventory-api/internal/domain"
	"github.com/vietanh2810/inventory-api/internal/repository"
)

var (
	ErrItemNotFound         = repository.ErrItemNotFound
	ErrInsufficientQuantity = repository.ErrInsufficientQuantity
	ErrInvalidTransaction   = repository.ErrInvalidTransaction
	ErrQuantityOutOfRange   = repository.ErrQuantityOutOfRange
)

type ItemRepository interface {
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	FindByID(ctx context.Context, id uint) (domain.Item, error)
	Find(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error)
	AdjustQuantity(ctx context.Context, id uint, quantityChange int, notes string) (domain.Item, domain.Transaction, error)
	ReplaceAll(ctx context.Context, items []domain.Item, history func(item domain.Item) []domain.Adjustment) (int, error)
}

type Publisher interface {
	PublishTransaction(ctx context.Context, transaction domain.Transaction) error
}

type ItemService struct {
	repo      ItemRepository
	publisher Publisher
}

func NewItemService(repo ItemRepository, publisher Publisher) *ItemService {
	return &ItemService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *ItemService) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ItemService) GetItem(ctx context.Context, id uint) (domain.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return item, nil
}

func (s *ItemService) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	items, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return items, nil
}

// AdjustQuantity changes the stock of an item and records the ledger entry for it. The
// event for the entry is published only after both writes have committed.
func (s *ItemService) AdjustQuantity(ctx context.Context, id uint, quantityChange int, notes string) (domain.Item, error) {
	item, transaction, err := s.repo.AdjustQuantity(ctx, id, quantityChange, notes)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.AdjustQuantity -> %w", err)
	}

	if err = s.publisher.PublishTransaction(ctx, transaction); err != nil {
		zap.L().Error("failed to publish transaction event",
			zap.Uint("item_id", item.ID),
			zap.Uint("transaction_id", transaction.ID),
			zap.Error(err),
		)
	}

	return item, nil
}

// InitializeRetailData wipes every item and transaction and loads the demonstration catalog.
func (s *ItemService) InitializeRetailData(ctx context.Context) (int, error) {
	added, err := s.repo.ReplaceAll(ctx, retailCatalog(), seedHistory)
	if err != nil {
		return 0, fmt.Errorf("s.repo.ReplaceAll -> %w", err)
	}

	zap.L().Info("retail data initialized", zap.Int("items_added", added))

	return added, nil
}
