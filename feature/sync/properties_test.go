package sync

import (
	"testing"

	"github.com/avensia/inriver-bynder/core/inriver"

	"github.com/stretchr/testify/assert"
)

func TestPropertyMapper_Apply(t *testing.T) {
	t.Run("CVL Beats Locale", func(t *testing.T) {
		// Both a vocabulary and a locale are configured; a value that is
		// part of the vocabulary must resolve to local keys, not to a
		// localized-string write.
		settings := testSettings(t, Config{
			ResourceFields: "ResourcePosition,ResourceColor",
			PropertyMap:    `{"color": {"fieldTypeId": "ResourceColor", "cvlMapping": {"blue": "BLAU"}, "locale": "de-DE"}}`,
		})
		mapper := NewPropertyMapper(settings)

		entity := inriver.NewEntity(inriver.EntityTypeResource)
		mapper.Apply(entity, map[string][]string{"color": {"BLAU"}})

		assert.Equal(t, "blue", entity.Field("ResourceColor"))
	})

	t.Run("CVL Joins All Matching Keys Sorted", func(t *testing.T) {
		settings := testSettings(t, Config{
			ResourceFields: "ResourcePosition,ResourceColor",
			PropertyMap:    `{"color": {"fieldTypeId": "ResourceColor", "cvlMapping": {"navy": "BLAU", "blue": "BLAU", "red": "ROT"}}}`,
		})
		mapper := NewPropertyMapper(settings)

		entity := inriver.NewEntity(inriver.EntityTypeResource)
		mapper.Apply(entity, map[string][]string{"color": {"BLAU"}})

		assert.Equal(t, "blue;navy", entity.Field("ResourceColor"))
	})

	t.Run("Locale Write Preserves Other Locales", func(t *testing.T) {
		settings := testSettings(t, Config{
			ResourceFields: "ResourcePosition,ResourceDescription",
			PropertyMap:    `{"description": {"fieldTypeId": "ResourceDescription", "locale": "de-DE"}}`,
		})
		mapper := NewPropertyMapper(settings)

		entity := inriver.NewEntity(inriver.EntityTypeResource)
		entity.SetField("ResourceDescription", inriver.LocaleString{"en-US": "blue shoe"})

		mapper.Apply(entity, map[string][]string{"description": {"blauer Schuh"}})

		ls, ok := entity.LocaleField("ResourceDescription")
		assert.True(t, ok)
		assert.Equal(t, inriver.LocaleString{
			"en-US": "blue shoe",
			"de-DE": "blauer Schuh",
		}, ls)
	})

	t.Run("Raw Copy Overwrites", func(t *testing.T) {
		settings := testSettings(t, Config{
			ResourceFields: "ResourcePosition,ResourceSeason",
			PropertyMap:    `{"season": {"fieldTypeId": "ResourceSeason"}}`,
		})
		mapper := NewPropertyMapper(settings)

		entity := inriver.NewEntity(inriver.EntityTypeResource)
		entity.SetField("ResourceSeason", "old value")

		mapper.Apply(entity, map[string][]string{"season": {"SS26"}})

		assert.Equal(t, "SS26", entity.Field("ResourceSeason"))
	})

	t.Run("Unmapped Properties Ignored", func(t *testing.T) {
		settings := testSettings(t, Config{
			ResourceFields: "ResourcePosition,ResourceSeason",
			PropertyMap:    `{"season": {"fieldTypeId": "ResourceSeason"}}`,
		})
		mapper := NewPropertyMapper(settings)

		entity := inriver.NewEntity(inriver.EntityTypeResource)
		mapper.Apply(entity, map[string][]string{"photographer": {"someone"}})

		assert.Nil(t, entity.Field("ResourceSeason"))
		assert.NotContains(t, entity.Fields, "photographer")
	})

	t.Run("First Value Wins, Empty Skipped", func(t *testing.T) {
		settings := testSettings(t, Config{
			ResourceFields: "ResourcePosition,ResourceSeason,ResourceColor",
			PropertyMap: `{
				"season": {"fieldTypeId": "ResourceSeason"},
				"color":  {"fieldTypeId": "ResourceColor"}
			}`,
		})
		mapper := NewPropertyMapper(settings)

		entity := inriver.NewEntity(inriver.EntityTypeResource)
		mapper.Apply(entity, map[string][]string{
			"season": {"SS26", "AW26"},
			"color":  {},
		})

		assert.Equal(t, "SS26", entity.Field("ResourceSeason"))
		assert.Nil(t, entity.Field("ResourceColor"))
	})
}
