package state

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Store defines persistence for connector watermarks.
type Store interface {
	// AllForConnector returns every state row for a connector, oldest first.
	AllForConnector(ctx context.Context, connectorID string) ([]ConnectorState, error)
	// Add persists a new state row.
	Add(ctx context.Context, s *ConnectorState) error
	// Update persists changes to an existing state row.
	Update(ctx context.Context, s *ConnectorState) error
	// Delete removes state rows by id.
	Delete(ctx context.Context, ids []uint) error
}

// NewStore creates a GORM-backed store and migrates its table.
func NewStore(db *gorm.DB) (Store, error) {
	if err := db.AutoMigrate(&ConnectorState{}); err != nil {
		return nil, fmt.Errorf("failed to migrate connector state table: %w", err)
	}
	return &gormStore{db: db}, nil
}

type gormStore struct {
	db *gorm.DB
}

func (g *gormStore) AllForConnector(ctx context.Context, connectorID string) ([]ConnectorState, error) {
	var states []ConnectorState
	err := g.db.WithContext(ctx).
		Where("connector_id = ?", connectorID).
		Order("created ASC").
		Find(&states).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load connector states: %w", err)
	}
	return states, nil
}

func (g *gormStore) Add(ctx context.Context, s *ConnectorState) error {
	if err := g.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("failed to add connector state: %w", err)
	}
	return nil
}

func (g *gormStore) Update(ctx context.Context, s *ConnectorState) error {
	if err := g.db.WithContext(ctx).Save(s).Error; err != nil {
		return fmt.Errorf("failed to update connector state: %w", err)
	}
	return nil
}

func (g *gormStore) Delete(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := g.db.WithContext(ctx).Delete(&ConnectorState{}, ids).Error; err != nil {
		return fmt.Errorf("failed to delete connector states: %w", err)
	}
	return nil
}
