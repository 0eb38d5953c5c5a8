package usecase

import (
	"context"
	"encoding/json"

	"immo-media/internal/entity"
	"immo-media/internal/repo/cache"

	"github.com/stretchr/testify/mock"
)

type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) Create(ctx context.Context, media *entity.Media) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *MockMediaRepository) GetByBienID(ctx context.Context, bienID string) ([]*entity.Media, error) {
	args := m.Called(ctx, bienID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Media), args.Error(1)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetByReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateStatus(ctx context.Context, reference string, status entity.TransactionStatus) (*entity.Transaction, bool, error) {
	args := m.Called(ctx, reference, status)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entity.Transaction), args.Bool(1), args.Error(2)
}

type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) Put(ctx context.Context, key string, data []byte, contentType string) (*entity.StoredObject, error) {
	args := m.Called(ctx, key, data, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StoredObject), args.Error(1)
}

func (m *MockMediaStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) Collect(ctx context.Context, req entity.CollectRequest) (*entity.CollectResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CollectResult), args.Error(1)
}

func (m *MockPaymentProvider) CheckStatus(ctx context.Context, reference string) (json.RawMessage, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

type MockMediaListCache struct {
	mock.Mock
}

func (m *MockMediaListCache) Get(ctx context.Context, bienID string) (cache.Lookup, error) {
	args := m.Called(ctx, bienID)
	return args.Get(0).(cache.Lookup), args.Error(1)
}

func (m *MockMediaListCache) Set(ctx context.Context, bienID string, generation int64, media []*entity.Media) error {
	args := m.Called(ctx, bienID, generation, media)
	return args.Error(0)
}

func (m *MockMediaListCache) Invalidate(ctx context.Context, bienID string) error {
	args := m.Called(ctx, bienID)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(routingKey string, event map[string]interface{}) error {
	args := m.Called(routingKey, event)
	return args.Error(0)
}
