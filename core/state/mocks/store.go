package mocks

import (
	"context"

	"github.com/avensia/inriver-bynder/core/state"
	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of state.Store
type Store struct {
	mock.Mock
}

func (m *Store) AllForConnector(ctx context.Context, connectorID string) ([]state.ConnectorState, error) {
	args := m.Called(ctx, connectorID)
	if states, ok := args.Get(0).([]state.ConnectorState); ok {
		return states, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Add(ctx context.Context, s *state.ConnectorState) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *Store) Update(ctx context.Context, s *state.ConnectorState) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *Store) Delete(ctx context.Context, ids []uint) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}
