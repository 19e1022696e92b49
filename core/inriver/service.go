package inriver

import "context"

// Service defines the entity store operations consumed by the engine.
// Lookups return (nil, nil) when no entity matches; errors are transport or
// platform failures only.
type Service interface {
	// FindByUniqueValue resolves an entity by a unique field value.
	FindByUniqueValue(ctx context.Context, fieldTypeID, value string) (*Entity, error)
	// CreateEntity persists a new entity and returns it with its id set.
	CreateEntity(ctx context.Context, entity *Entity) (*Entity, error)
	// UpdateEntity persists changes to an existing entity.
	UpdateEntity(ctx context.Context, entity *Entity) (*Entity, error)
	// LinkTypesFor returns all link types whose source or target is the
	// given entity kind, ordered by Index.
	LinkTypesFor(ctx context.Context, entityTypeID string) ([]LinkType, error)
	// LinkExists reports whether a relation with the exact triple exists.
	LinkExists(ctx context.Context, sourceID, targetID int, linkTypeID string) (bool, error)
	// AddLink creates a new relation.
	AddLink(ctx context.Context, link Link) error
}
