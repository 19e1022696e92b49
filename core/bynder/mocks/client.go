package mocks

import (
	"context"

	"github.com/avensia/inriver-bynder/core/bynder"
	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of bynder.Client
type Client struct {
	mock.Mock
}

func (m *Client) AssetByID(ctx context.Context, id string) (*bynder.Asset, error) {
	args := m.Called(ctx, id)
	if asset, ok := args.Get(0).(*bynder.Asset); ok {
		return asset, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Assets(ctx context.Context, query string, page, limit int) (*bynder.AssetCollection, error) {
	args := m.Called(ctx, query, page, limit)
	if collection, ok := args.Get(0).(*bynder.AssetCollection); ok {
		return collection, args.Error(1)
	}
	return nil, args.Error(1)
}
