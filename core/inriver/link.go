package inriver

// LinkType describes a relationship kind between two entity kinds.
type LinkType struct {
	ID                 string `json:"id"`
	SourceEntityTypeID string `json:"sourceEntityTypeId"`
	TargetEntityTypeID string `json:"targetEntityTypeId"`
	// Index orders link types when several share a target kind.
	Index int `json:"index"`
}

// Link is a relation between two persisted entities.
// The (source, target, link type) triple is unique in the store.
type Link struct {
	SourceEntityID int    `json:"sourceEntityId"`
	TargetEntityID int    `json:"targetEntityId"`
	LinkTypeID     string `json:"linkTypeId"`
}
