package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avensia/inriver-bynder/core/bynder"
	byndermocks "github.com/avensia/inriver-bynder/core/bynder/mocks"
	"github.com/avensia/inriver-bynder/core/inriver"
	inrivermocks "github.com/avensia/inriver-bynder/core/inriver/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAssetID = "73843ABB-B585-40C3-A9E217C9C06CD23C"

func testAsset(fileName string, modified time.Time) *bynder.Asset {
	asset := &bynder.Asset{
		ID:           testAssetID,
		IDHash:       "a87d4efa6677a8d9",
		Type:         bynder.AssetTypeImage,
		DateModified: modified,
	}
	if fileName != "" {
		asset.MediaItems = []bynder.MediaItem{
			{Type: "web", FileName: "web_" + fileName},
			{Type: "original", FileName: fileName},
		}
	}
	return asset
}

func persistedResource(id int) *inriver.Entity {
	entity := inriver.NewEntity(inriver.EntityTypeResource)
	entity.ID = id
	return entity
}

func newTestWorker(t *testing.T, assets *byndermocks.Client, store *inrivermocks.Service) *Worker {
	t.Helper()
	settings := testSettings(t, Config{
		FilenameFields: `{
			"ProductNumber":    {"fieldTypeId": "ProductNumber", "role": "related"},
			"ResourcePosition": {"fieldTypeId": "ResourcePosition", "role": "resource"}
		}`,
	})
	return NewWorker(assets, store, settings, zap.NewNop())
}

func TestWorker_Reconcile_CreatesNewResource(t *testing.T) {
	modified := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	assets := new(byndermocks.Client)
	assets.On("AssetByID", mock.Anything, testAssetID).Return(testAsset("ABC123_2.jpg", modified), nil)

	store := new(inrivermocks.Service)
	store.On("FindByUniqueValue", mock.Anything, inriver.FieldResourceBynderID, testAssetID).Return(nil, nil)
	store.On("CreateEntity", mock.Anything, mock.Anything).Return(persistedResource(100), nil)
	store.On("FindByUniqueValue", mock.Anything, "ProductNumber", "ABC123").Return(nil, nil)

	outcome, err := newTestWorker(t, assets, store).Reconcile(context.Background(), testAssetID, nil)
	require.NoError(t, err)

	assert.False(t, outcome.Skipped)
	assert.True(t, outcome.Created)
	assert.Equal(t, 100, outcome.EntityID)

	// Verify the seeded and extracted fields on the entity sent to Create.
	created := store.Calls[1].Arguments.Get(1).(*inriver.Entity)
	assert.Equal(t, testAssetID, created.Field(inriver.FieldResourceBynderID))
	assert.Equal(t, testAssetID+"_ABC123_2.jpg", created.Field(inriver.FieldResourceFilename))
	assert.Equal(t, inriver.StateTodo, created.Field(inriver.FieldResourceBynderDownloadState))
	assert.Equal(t, "2", created.Field("ResourcePosition"))
	assert.Equal(t, "a87d4efa6677a8d9", created.Field(inriver.FieldResourceBynderIDHash))
	assert.Equal(t, "image", created.Field(inriver.FieldResourceType))
}

func TestWorker_Reconcile_IsIdempotent(t *testing.T) {
	modified := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	product := inriver.NewEntity("Product")
	product.ID = 42

	existing := inriver.NewEntity(inriver.EntityTypeResource)
	existing.ID = 100
	existing.SetField(inriver.FieldResourceBynderID, testAssetID)

	assets := new(byndermocks.Client)
	assets.On("AssetByID", mock.Anything, testAssetID).Return(testAsset("ABC123_2.jpg", modified), nil)

	store := new(inrivermocks.Service)
	store.On("FindByUniqueValue", mock.Anything, inriver.FieldResourceBynderID, testAssetID).Return(nil, nil).Once()
	store.On("CreateEntity", mock.Anything, mock.Anything).Return(persistedResource(100), nil).Once()
	store.On("FindByUniqueValue", mock.Anything, inriver.FieldResourceBynderID, testAssetID).Return(existing, nil)
	store.On("UpdateEntity", mock.Anything, mock.Anything).Return(existing, nil)
	store.On("FindByUniqueValue", mock.Anything, "ProductNumber", "ABC123").Return(product, nil)
	store.On("LinkTypesFor", mock.Anything, inriver.EntityTypeResource).Return(productResourceLinkTypes, nil)
	store.On("LinkExists", mock.Anything, 42, 100, "ProductResource").Return(false, nil).Once()
	store.On("LinkExists", mock.Anything, 42, 100, "ProductResource").Return(true, nil)
	store.On("AddLink", mock.Anything, mock.Anything).Return(nil).Once()

	worker := newTestWorker(t, assets, store)

	first, err := worker.Reconcile(context.Background(), testAssetID, nil)
	require.NoError(t, err)
	assert.True(t, first.Created)

	second, err := worker.Reconcile(context.Background(), testAssetID, nil)
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.EntityID, second.EntityID)

	// One entity, one link, no matter how often the same asset arrives.
	store.AssertNumberOfCalls(t, "CreateEntity", 1)
	store.AssertNumberOfCalls(t, "AddLink", 1)
}

func TestWorker_Reconcile_SkipConditions(t *testing.T) {
	threshold := time.Date(2026, 3, 14, 6, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		asset     *bynder.Asset
		threshold *time.Time
		reason    string
	}{
		{
			name:      "Below Incremental Threshold",
			asset:     testAsset("ABC123_2.jpg", threshold.Add(-time.Hour)),
			threshold: &threshold,
			reason:    "not modified since",
		},
		{
			name:   "Filename Does Not Match Pattern",
			asset:  testAsset("no-match", time.Now()),
			reason: "does not match the filename pattern",
		},
		{
			name:   "Missing Original Media Item",
			asset:  testAsset("", time.Now()),
			reason: "no original media item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assets := new(byndermocks.Client)
			assets.On("AssetByID", mock.Anything, testAssetID).Return(tt.asset, nil)

			store := new(inrivermocks.Service)

			outcome, err := newTestWorker(t, assets, store).Reconcile(context.Background(), testAssetID, tt.threshold)
			require.NoError(t, err)

			assert.True(t, outcome.Skipped)
			assert.Contains(t, outcome.Reason, tt.reason)

			// Skips must not touch the entity store at all.
			store.AssertNotCalled(t, "FindByUniqueValue", mock.Anything, mock.Anything, mock.Anything)
			store.AssertNotCalled(t, "CreateEntity", mock.Anything, mock.Anything)
			store.AssertNotCalled(t, "UpdateEntity", mock.Anything, mock.Anything)
			store.AssertNotCalled(t, "AddLink", mock.Anything, mock.Anything)
		})
	}
}

func TestWorker_Reconcile_ModifiedAtThresholdIsProcessed(t *testing.T) {
	threshold := time.Date(2026, 3, 14, 6, 0, 0, 0, time.UTC)

	assets := new(byndermocks.Client)
	assets.On("AssetByID", mock.Anything, testAssetID).Return(testAsset("ABC123_2.jpg", threshold), nil)

	store := new(inrivermocks.Service)
	store.On("FindByUniqueValue", mock.Anything, inriver.FieldResourceBynderID, testAssetID).Return(nil, nil)
	store.On("CreateEntity", mock.Anything, mock.Anything).Return(persistedResource(1), nil)
	store.On("FindByUniqueValue", mock.Anything, "ProductNumber", "ABC123").Return(nil, nil)

	outcome, err := newTestWorker(t, assets, store).Reconcile(context.Background(), testAssetID, &threshold)
	require.NoError(t, err)
	assert.False(t, outcome.Skipped)
}

func TestWorker_Reconcile_FetchFailurePropagates(t *testing.T) {
	assets := new(byndermocks.Client)
	assets.On("AssetByID", mock.Anything, testAssetID).Return(nil, bynder.ErrNotFound)

	store := new(inrivermocks.Service)

	outcome, err := newTestWorker(t, assets, store).Reconcile(context.Background(), testAssetID, nil)

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, bynder.ErrNotFound)
}

func TestWorker_Reconcile_LinkFailureDoesNotAbort(t *testing.T) {
	settings := testSettings(t, Config{
		FilenamePattern: `^(?P<ProductNumber>[0-9a-zA-Z]+)-(?P<ItemNumber>[0-9a-zA-Z]+)_(?P<ResourcePosition>[0-9]+)`,
		FilenameFields: `{
			"ProductNumber":    {"fieldTypeId": "ProductNumber", "role": "related"},
			"ItemNumber":       {"fieldTypeId": "ItemNumber", "role": "related"},
			"ResourcePosition": {"fieldTypeId": "ResourcePosition", "role": "resource"}
		}`,
	})

	item := inriver.NewEntity("Item")
	item.ID = 7

	assets := new(byndermocks.Client)
	assets.On("AssetByID", mock.Anything, testAssetID).Return(testAsset("ABC-X1_2.jpg", time.Now()), nil)

	store := new(inrivermocks.Service)
	store.On("FindByUniqueValue", mock.Anything, inriver.FieldResourceBynderID, testAssetID).Return(nil, nil)
	store.On("CreateEntity", mock.Anything, mock.Anything).Return(persistedResource(100), nil)
	// ItemNumber lookup sorts before ProductNumber and fails hard.
	store.On("FindByUniqueValue", mock.Anything, "ItemNumber", "X1").Return(nil, errors.New("store unavailable"))
	store.On("FindByUniqueValue", mock.Anything, "ProductNumber", "ABC").Return(item, nil)
	store.On("LinkTypesFor", mock.Anything, inriver.EntityTypeResource).Return([]inriver.LinkType{
		{ID: "ItemResource", SourceEntityTypeID: "Item", TargetEntityTypeID: inriver.EntityTypeResource},
	}, nil)
	store.On("LinkExists", mock.Anything, 7, 100, "ItemResource").Return(false, nil)
	store.On("AddLink", mock.Anything, mock.Anything).Return(nil)

	worker := NewWorker(assets, store, settings, zap.NewNop())

	outcome, err := worker.Reconcile(context.Background(), testAssetID, nil)
	require.NoError(t, err)

	// The failed ItemNumber lookup is reported but the ProductNumber link
	// still happened.
	assert.False(t, outcome.Skipped)
	store.AssertNumberOfCalls(t, "AddLink", 1)
}
