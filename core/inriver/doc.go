// Package inriver implements the entity store collaborator: the subset of
// the inRiver PIM remoting surface the connector needs.
//
// Entities are dynamic field bags addressed by field type id; the engine
// relies on Service for unique-value lookup, create/update persistence and
// relationship management. The REST client is deliberately thin: the wire
// format is the platform's concern, the engine only consumes the Service
// contract.
package inriver
