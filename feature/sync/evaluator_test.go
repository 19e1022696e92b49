package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testSettings(t *testing.T, cfg Config) *Settings {
	t.Helper()
	if cfg.ConnectorID == "" {
		cfg.ConnectorID = "bynder"
	}
	if cfg.FilenamePattern == "" {
		cfg.FilenamePattern = `^(?P<ProductNumber>[0-9a-zA-Z]+)_(?P<ResourcePosition>[0-9]+)`
	}
	if cfg.ResourceFields == "" {
		cfg.ResourceFields = "ResourcePosition"
	}
	if cfg.AssetQuery == "" {
		cfg.AssetQuery = "type=image"
	}
	settings, err := Compile(cfg, zap.NewNop())
	require.NoError(t, err)
	return settings
}

func TestFilenameEvaluator_Evaluate(t *testing.T) {
	settings := testSettings(t, Config{
		FilenameFields: `{
			"ProductNumber":    {"fieldTypeId": "ProductNumber", "role": "related"},
			"ResourcePosition": {"fieldTypeId": "ResourcePosition", "role": "resource"}
		}`,
	})
	evaluator := NewFilenameEvaluator(settings)

	t.Run("Matching Filename", func(t *testing.T) {
		result := evaluator.Evaluate("ABC123_2.jpg")

		assert.True(t, result.Matched)
		assert.Equal(t, map[string]string{"ResourcePosition": "2"}, result.ResourceFields)
		assert.Equal(t, map[string]string{"ProductNumber": "ABC123"}, result.RelatedFields)
	})

	t.Run("Non Matching Filename", func(t *testing.T) {
		result := evaluator.Evaluate("no-match")

		assert.False(t, result.Matched)
		assert.Empty(t, result.ResourceFields)
		assert.Empty(t, result.RelatedFields)
	})

	t.Run("Deterministic", func(t *testing.T) {
		first := evaluator.Evaluate("XYZ9_7.png")
		second := evaluator.Evaluate("XYZ9_7.png")

		assert.Equal(t, first, second)
	})
}

func TestFilenameEvaluator_UnclassifiedGroupsIgnored(t *testing.T) {
	settings := testSettings(t, Config{
		FilenamePattern: `^(?P<ProductNumber>[0-9a-zA-Z]+)_(?P<Unused>[a-z]+)_(?P<ResourcePosition>[0-9]+)`,
		FilenameFields: `{
			"ProductNumber":    {"fieldTypeId": "ProductNumber", "role": "related"},
			"ResourcePosition": {"fieldTypeId": "ResourcePosition", "role": "resource"}
		}`,
	})
	evaluator := NewFilenameEvaluator(settings)

	result := evaluator.Evaluate("ABC123_image_4.jpg")

	assert.True(t, result.Matched)
	assert.Equal(t, map[string]string{"ResourcePosition": "4"}, result.ResourceFields)
	assert.Equal(t, map[string]string{"ProductNumber": "ABC123"}, result.RelatedFields)
	assert.NotContains(t, result.ResourceFields, "Unused")
}

func TestFilenameEvaluator_LookupFieldOverride(t *testing.T) {
	settings := testSettings(t, Config{
		FilenameFields: `{
			"ProductNumber": {"fieldTypeId": "ProductNumber", "role": "related", "lookupFieldTypeId": "ItemNumber"}
		}`,
	})
	evaluator := NewFilenameEvaluator(settings)

	result := evaluator.Evaluate("ABC123_2.jpg")

	assert.True(t, result.Matched)
	assert.Equal(t, map[string]string{"ItemNumber": "ABC123"}, result.RelatedFields)
}
