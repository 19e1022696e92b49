package sync

import (
	"context"
	"fmt"

	"github.com/avensia/inriver-bynder/core/inriver"
)

// LinkOutcome describes the result of a link attempt. None of the outcomes
// are errors: an absent related entity or a model without a fitting link
// type is normal during partial imports.
type LinkOutcome int

const (
	// LinkSourceNotFound means no entity matched the lookup value.
	LinkSourceNotFound LinkOutcome = iota
	// LinkNoLinkType means the model defines no relation from the source's
	// kind to the target's kind.
	LinkNoLinkType
	// LinkAlreadyExists means the exact relation triple already exists.
	LinkAlreadyExists
	// LinkCreated means a new relation was established.
	LinkCreated
)

func (o LinkOutcome) String() string {
	switch o {
	case LinkSourceNotFound:
		return "source not found"
	case LinkNoLinkType:
		return "no link type configured"
	case LinkAlreadyExists:
		return "already linked"
	case LinkCreated:
		return "linked"
	default:
		return fmt.Sprintf("unknown outcome %d", int(o))
	}
}

// EntityLinker establishes relations between resources and the entities
// referenced in their filenames, never creating duplicates. Link removal is
// intentionally out of its scope.
type EntityLinker struct {
	store inriver.Service
}

// NewEntityLinker creates a linker on top of the entity store.
func NewEntityLinker(store inriver.Service) *EntityLinker {
	return &EntityLinker{store: store}
}

// LinkIfAbsent resolves the source entity by unique value and links it to
// the target unless the relation already exists. The resolved source is
// returned for reporting when one was found.
func (l *EntityLinker) LinkIfAbsent(ctx context.Context, fieldTypeID, value string, target *inriver.Entity) (LinkOutcome, *inriver.Entity, error) {
	source, err := l.store.FindByUniqueValue(ctx, fieldTypeID, value)
	if err != nil {
		return LinkSourceNotFound, nil, fmt.Errorf("lookup %s=%q failed: %w", fieldTypeID, value, err)
	}
	if source == nil {
		return LinkSourceNotFound, nil, nil
	}

	linkType, err := l.inboundLinkType(ctx, source, target)
	if err != nil {
		return LinkNoLinkType, source, err
	}
	if linkType == nil {
		return LinkNoLinkType, source, nil
	}

	exists, err := l.store.LinkExists(ctx, source.ID, target.ID, linkType.ID)
	if err != nil {
		return LinkAlreadyExists, source, err
	}
	if exists {
		return LinkAlreadyExists, source, nil
	}

	err = l.store.AddLink(ctx, inriver.Link{
		SourceEntityID: source.ID,
		TargetEntityID: target.ID,
		LinkTypeID:     linkType.ID,
	})
	if err != nil {
		return LinkCreated, source, err
	}
	return LinkCreated, source, nil
}

// inboundLinkType selects the first link type (by model order) pointing at
// the target's kind whose origin matches the source's kind.
func (l *EntityLinker) inboundLinkType(ctx context.Context, source, target *inriver.Entity) (*inriver.LinkType, error) {
	linkTypes, err := l.store.LinkTypesFor(ctx, target.TypeID)
	if err != nil {
		return nil, err
	}
	for _, lt := range linkTypes {
		if lt.TargetEntityTypeID != target.TypeID {
			continue
		}
		if lt.SourceEntityTypeID == source.TypeID {
			return &lt, nil
		}
	}
	return nil, nil
}
