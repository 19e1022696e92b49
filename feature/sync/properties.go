package sync

import (
	"sort"
	"strings"

	"github.com/avensia/inriver-bynder/core/inriver"
)

// PropertyMapper writes asset metaproperties onto resource fields.
//
// Only properties present in both the asset and the configured map are
// considered; everything else is ignored. Per mapped property the first
// value wins, and resolution follows a fixed order: controlled vocabulary,
// then locale, then plain copy. CVL resolution comes first because a plain
// copy would store a foreign-system code where a local CVL key is expected.
type PropertyMapper struct {
	mappings map[string]PropertyMapping
}

// NewPropertyMapper creates a mapper from compiled settings.
func NewPropertyMapper(settings *Settings) *PropertyMapper {
	return &PropertyMapper{mappings: settings.Properties}
}

// Enabled reports whether any property mappings are configured.
func (p *PropertyMapper) Enabled() bool {
	return len(p.mappings) > 0
}

// Apply mutates the entity's field bag from the asset's properties.
func (p *PropertyMapper) Apply(entity *inriver.Entity, properties map[string][]string) {
	for property, mapping := range p.mappings {
		values, ok := properties[property]
		if !ok || len(values) == 0 || values[0] == "" {
			continue
		}
		value := values[0]

		if keys := p.cvlKeysFor(mapping, value); len(keys) > 0 {
			// One remote value may map to several local keys; the sorted
			// join keeps repeated runs byte-identical.
			entity.SetField(mapping.FieldTypeID, strings.Join(keys, ";"))
			continue
		}

		if mapping.Locale != "" {
			ls, ok := entity.LocaleField(mapping.FieldTypeID)
			if !ok || ls == nil {
				// Existing non-localized content is replaced by a fresh
				// container; other locales in an existing one survive.
				ls = make(inriver.LocaleString)
			}
			ls[mapping.Locale] = value
			entity.SetField(mapping.FieldTypeID, ls)
			continue
		}

		entity.SetField(mapping.FieldTypeID, value)
	}
}

// cvlKeysFor returns the sorted local CVL keys whose remote value equals the
// asset's value, or nil when the value is not part of the vocabulary.
func (p *PropertyMapper) cvlKeysFor(mapping PropertyMapping, value string) []string {
	if len(mapping.CvlMapping) == 0 {
		return nil
	}
	var keys []string
	for local, remote := range mapping.CvlMapping {
		if remote == value {
			keys = append(keys, local)
		}
	}
	sort.Strings(keys)
	return keys
}
