package inriver

// Well-known model identifiers used by the connector.
const (
	// EntityTypeResource is the entity kind reconciled from assets.
	EntityTypeResource = "Resource"

	// FieldResourceBynderID holds the external asset id (uniqueness key).
	FieldResourceBynderID = "ResourceBynderId"
	// FieldResourceBynderIDHash holds the asset id hash for CDN URL re-creation.
	FieldResourceBynderIDHash = "ResourceBynderIdHash"
	// FieldResourceBynderDownloadState signals the binary download worker.
	FieldResourceBynderDownloadState = "ResourceBynderDownloadState"
	// FieldResourceFilename holds the collision-proofed filename.
	FieldResourceFilename = "ResourceFilename"
	// FieldResourceType holds the asset media kind.
	FieldResourceType = "ResourceType"
)

// Download states stored in FieldResourceBynderDownloadState.
const (
	StateTodo  = "Todo"
	StateDone  = "Done"
	StateError = "Error"
)

// LocaleString holds translated values keyed by locale code (e.g. "de-DE").
type LocaleString map[string]string

// Entity is a PIM record: a field bag addressed by field type id.
// A zero ID marks a new entity pending creation.
type Entity struct {
	ID     int            `json:"id"`
	TypeID string         `json:"entityTypeId"`
	Fields map[string]any `json:"fields"`
}

// NewEntity creates an empty entity of the given kind.
func NewEntity(typeID string) *Entity {
	return &Entity{
		TypeID: typeID,
		Fields: make(map[string]any),
	}
}

// IsNew reports whether the entity has not been persisted yet.
func (e *Entity) IsNew() bool {
	return e.ID == 0
}

// Field returns the value stored for the field type id, or nil.
func (e *Entity) Field(fieldTypeID string) any {
	if e.Fields == nil {
		return nil
	}
	return e.Fields[fieldTypeID]
}

// SetField stores a value in the field bag.
func (e *Entity) SetField(fieldTypeID string, value any) {
	if e.Fields == nil {
		e.Fields = make(map[string]any)
	}
	e.Fields[fieldTypeID] = value
}

// LocaleField returns the field content as a LocaleString, converting from
// the generic map representation JSON decoding produces. The second return
// is false when the field holds a non-localized value.
func (e *Entity) LocaleField(fieldTypeID string) (LocaleString, bool) {
	switch v := e.Field(fieldTypeID).(type) {
	case nil:
		return nil, true
	case LocaleString:
		return v, true
	case map[string]string:
		return LocaleString(v), true
	case map[string]any:
		ls := make(LocaleString, len(v))
		for locale, value := range v {
			if s, ok := value.(string); ok {
				ls[locale] = s
			}
		}
		return ls, true
	default:
		return nil, false
	}
}
