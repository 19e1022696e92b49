package mocks

import (
	"context"

	"github.com/avensia/inriver-bynder/core/inriver"
	"github.com/stretchr/testify/mock"
)

// Service is a mock implementation of inriver.Service
type Service struct {
	mock.Mock
}

func (m *Service) FindByUniqueValue(ctx context.Context, fieldTypeID, value string) (*inriver.Entity, error) {
	args := m.Called(ctx, fieldTypeID, value)
	if entity, ok := args.Get(0).(*inriver.Entity); ok {
		return entity, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Service) CreateEntity(ctx context.Context, entity *inriver.Entity) (*inriver.Entity, error) {
	args := m.Called(ctx, entity)
	if created, ok := args.Get(0).(*inriver.Entity); ok {
		return created, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Service) UpdateEntity(ctx context.Context, entity *inriver.Entity) (*inriver.Entity, error) {
	args := m.Called(ctx, entity)
	if updated, ok := args.Get(0).(*inriver.Entity); ok {
		return updated, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Service) LinkTypesFor(ctx context.Context, entityTypeID string) ([]inriver.LinkType, error) {
	args := m.Called(ctx, entityTypeID)
	if linkTypes, ok := args.Get(0).([]inriver.LinkType); ok {
		return linkTypes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Service) LinkExists(ctx context.Context, sourceID, targetID int, linkTypeID string) (bool, error) {
	args := m.Called(ctx, sourceID, targetID, linkTypeID)
	return args.Bool(0), args.Error(1)
}

func (m *Service) AddLink(ctx context.Context, link inriver.Link) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}
