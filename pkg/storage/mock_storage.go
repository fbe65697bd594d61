package storage

import (
	"context"

	"github.com/fadedpez/aetheria/pkg/entities"
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of Store
type MockStore struct {
	mock.Mock
}

// NewMockStore creates a new mock store
func NewMockStore(t mock.TestingT) *MockStore {
	m := &MockStore{}
	m.Test(t)
	return m
}

// Load mocks the Load method
func (m *MockStore) Load(ctx context.Context) (*entities.WalletState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WalletState), args.Error(1)
}

// Save mocks the Save method
func (m *MockStore) Save(ctx context.Context, state *entities.WalletState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

// Close mocks the Close method
func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
