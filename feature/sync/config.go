package sync

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/avensia/inriver-bynder/core/inriver"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Config holds the raw engine configuration as loaded from the environment.
type Config struct {
	// ConnectorID identifies this connector's watermark.
	ConnectorID string `mapstructure:"connector_id" default:"bynder"`
	// ScheduledTime is the daily full-sync time as "HH:MM". Empty or
	// malformed values disable the full-sync cutoff.
	ScheduledTime string `mapstructure:"scheduled_time" default:""`
	// AssetQuery is the raw media filter query (e.g. "type=image&tags=PIM").
	AssetQuery string `mapstructure:"asset_query" default:"type=image"`
	// PageSize bounds the asset pages fetched per request.
	PageSize int `mapstructure:"page_size" default:"100"`
	// FilenamePattern is a named-capture regular expression applied to the
	// original filename of every asset.
	FilenamePattern string `mapstructure:"filename_pattern" default:"^(?P<ProductNumber>[0-9a-zA-Z]+)_(?P<ResourcePosition>[0-9]+)"`
	// FilenameFields is a JSON object classifying capture groups, e.g.
	// {"ProductNumber":{"fieldTypeId":"ProductNumber","role":"related"},
	//  "ResourcePosition":{"fieldTypeId":"ResourcePosition","role":"resource"}}
	FilenameFields string `mapstructure:"filename_fields" default:""`
	// PropertyMap is a JSON object mapping metaproperty names to field
	// mappings, e.g. {"color":{"fieldTypeId":"ResourceColor","cvlMapping":{"blue":"BLAU"}}}
	PropertyMap string `mapstructure:"property_map" default:""`
	// ResourceFields lists additional recognized resource field type ids
	// (comma separated) beyond the built-in ones.
	ResourceFields string `mapstructure:"resource_fields" default:"ResourcePosition"`
}

// FieldRole classifies a capture group.
type FieldRole string

const (
	// RoleResource writes the captured value directly onto the resource.
	RoleResource FieldRole = "resource"
	// RoleRelated uses the captured value to look up a related entity.
	RoleRelated FieldRole = "related"
)

// PatternField classifies one capture group of the filename pattern.
type PatternField struct {
	// FieldTypeID is the target field written (resource role) or the unique
	// field looked up on the related entity (related role).
	FieldTypeID string `json:"fieldTypeId"`
	// Role selects between the two behaviors.
	Role FieldRole `json:"role"`
	// LookupFieldTypeID optionally overrides the field used for the
	// related-entity lookup; defaults to FieldTypeID.
	LookupFieldTypeID string `json:"lookupFieldTypeId,omitempty"`
}

// PropertyMapping maps one metaproperty onto a resource field.
type PropertyMapping struct {
	// FieldTypeID is the target field.
	FieldTypeID string `json:"fieldTypeId"`
	// CvlMapping maps local CVL keys to their remote representations. When
	// the remote value appears here, the matching local keys win over any
	// locale handling.
	CvlMapping map[string]string `json:"cvlMapping,omitempty"`
	// Locale writes the value into a localized-string container under this
	// locale (e.g. "de-DE") instead of overwriting the field.
	Locale string `json:"locale,omitempty"`
}

// Schedule is a parsed daily full-sync time.
type Schedule struct {
	Hour   int
	Minute int
}

// Settings is the compiled, validated engine configuration. All parsing
// happens once at load time; the engine never re-derives configuration per
// asset.
type Settings struct {
	ConnectorID string
	// Schedule is nil when full sync is disabled by configuration.
	Schedule  *Schedule
	AssetQuery string
	PageSize   int

	Pattern       *regexp.Regexp
	PatternFields map[string]PatternField
	Properties    map[string]PropertyMapping

	resourceFields map[string]struct{}
}

// builtinResourceFields are always recognized on the Resource kind.
var builtinResourceFields = []string{
	inriver.FieldResourceBynderID,
	inriver.FieldResourceBynderIDHash,
	inriver.FieldResourceBynderDownloadState,
	inriver.FieldResourceFilename,
	inriver.FieldResourceType,
}

// Compile validates the raw configuration and resolves it into Settings.
// Recoverable problems (malformed schedule, property map, locales) degrade
// with a logged error instead of failing the load; a filename pattern that
// does not compile is fatal because the engine cannot run without it.
func Compile(cfg Config, logger *zap.Logger) (*Settings, error) {
	if cfg.ConnectorID == "" {
		return nil, fmt.Errorf("sync connector id must not be empty")
	}

	pattern, err := regexp.Compile(cfg.FilenamePattern)
	if err != nil {
		return nil, fmt.Errorf("invalid filename pattern: %w", err)
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	s := &Settings{
		ConnectorID:    cfg.ConnectorID,
		Schedule:       parseSchedule(cfg.ScheduledTime, logger),
		AssetQuery:     cfg.AssetQuery,
		PageSize:       pageSize,
		Pattern:        pattern,
		PatternFields:  parsePatternFields(cfg.FilenameFields, pattern, logger),
		Properties:     parsePropertyMap(cfg.PropertyMap, logger),
		resourceFields: make(map[string]struct{}),
	}

	for _, id := range builtinResourceFields {
		s.resourceFields[id] = struct{}{}
	}
	for _, id := range strings.Split(cfg.ResourceFields, ",") {
		if id = strings.TrimSpace(id); id != "" {
			s.resourceFields[id] = struct{}{}
		}
	}

	// Resource-role extraction targets and property targets must belong to
	// the recognized resource schema; catching this at load keeps field id
	// typos from silently writing junk fields per asset.
	for group, field := range s.PatternFields {
		if field.Role == RoleResource && !s.RecognizesResourceField(field.FieldTypeID) {
			return nil, fmt.Errorf("filename group %q targets unrecognized resource field %q", group, field.FieldTypeID)
		}
	}
	for property, mapping := range s.Properties {
		if !s.RecognizesResourceField(mapping.FieldTypeID) {
			return nil, fmt.Errorf("property %q targets unrecognized resource field %q", property, mapping.FieldTypeID)
		}
	}

	return s, nil
}

// RecognizesResourceField reports whether the field id belongs to the
// resource schema.
func (s *Settings) RecognizesResourceField(fieldTypeID string) bool {
	_, ok := s.resourceFields[fieldTypeID]
	return ok
}

// parseSchedule parses "HH:MM". Anything malformed disables full sync.
func parseSchedule(raw string, logger *zap.Logger) *Schedule {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		logger.Error("Malformed scheduled time, full sync disabled", zap.String("scheduled_time", raw))
		return nil
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		logger.Error("Malformed scheduled time, full sync disabled", zap.String("scheduled_time", raw))
		return nil
	}
	return &Schedule{Hour: hour, Minute: minute}
}

// parsePatternFields decodes the capture group classification. When the
// configuration is empty, groups default to resource fields named after
// themselves so a pattern alone remains usable; an unparseable value
// degrades to that same default with a logged error.
func parsePatternFields(raw string, pattern *regexp.Regexp, logger *zap.Logger) map[string]PatternField {
	fields := make(map[string]PatternField)

	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &fields); err != nil {
			logger.Error("Unparseable filename field map, using defaults", zap.Error(err))
			fields = make(map[string]PatternField)
		}
	}

	if len(fields) == 0 {
		for _, name := range pattern.SubexpNames() {
			if name == "" {
				continue
			}
			role := RoleResource
			if !strings.HasPrefix(name, "Resource") {
				// Groups addressing other entity kinds are lookups.
				role = RoleRelated
			}
			fields[name] = PatternField{FieldTypeID: name, Role: role}
		}
	}

	for name, field := range fields {
		if field.LookupFieldTypeID == "" {
			field.LookupFieldTypeID = field.FieldTypeID
			fields[name] = field
		}
	}

	return fields
}

// parsePropertyMap decodes the property map. An unparseable value degrades
// to an empty map with a logged error so a run still imports assets, just
// without metaproperty mapping. Locales are validated and canonicalized.
func parsePropertyMap(raw string, logger *zap.Logger) map[string]PropertyMapping {
	mappings := make(map[string]PropertyMapping)
	if raw == "" {
		return mappings
	}
	if err := json.Unmarshal([]byte(raw), &mappings); err != nil {
		logger.Error("Unparseable property map, metaproperty mapping disabled", zap.Error(err))
		return make(map[string]PropertyMapping)
	}

	for property, mapping := range mappings {
		if mapping.Locale == "" {
			continue
		}
		tag, err := language.Parse(mapping.Locale)
		if err != nil {
			logger.Error("Invalid locale in property map, treating value as plain",
				zap.String("property", property), zap.String("locale", mapping.Locale))
			mapping.Locale = ""
		} else {
			mapping.Locale = tag.String()
		}
		mappings[property] = mapping
	}

	return mappings
}
