package sync

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/avensia/inriver-bynder/core/bynder"
	"github.com/avensia/inriver-bynder/core/inriver"

	"go.uber.org/zap"
)

// Outcome reports what happened to a single asset.
type Outcome struct {
	AssetID string `json:"assetId"`
	// Skipped is true when the asset was filtered out without any entity
	// mutation; Reason explains why.
	Skipped bool   `json:"skipped"`
	Reason  string `json:"reason,omitempty"`
	// EntityID is the persisted resource id when the asset was applied.
	EntityID int  `json:"entityId,omitempty"`
	Created  bool `json:"created,omitempty"`
	// Messages is a human-readable account of the applied steps.
	Messages []string `json:"messages"`
}

// skipped builds a no-mutation outcome.
func skipped(assetID, reason string) *Outcome {
	return &Outcome{
		AssetID:  assetID,
		Skipped:  true,
		Reason:   reason,
		Messages: []string{reason},
	}
}

// Worker reconciles one remote asset into one resource entity.
type Worker struct {
	assets     bynder.Client
	store      inriver.Service
	evaluator  *FilenameEvaluator
	properties *PropertyMapper
	linker     *EntityLinker
	logger     *zap.Logger
}

// NewWorker creates a worker with its three engine components.
func NewWorker(assets bynder.Client, store inriver.Service, settings *Settings, logger *zap.Logger) *Worker {
	return &Worker{
		assets:     assets,
		store:      store,
		evaluator:  NewFilenameEvaluator(settings),
		properties: NewPropertyMapper(settings),
		linker:     NewEntityLinker(store),
		logger:     logger,
	}
}

// Reconcile fetches the asset and creates or updates its resource entity.
// A non-nil threshold makes the run incremental: assets not modified since
// the threshold are skipped. Errors are provider/store failures only; skip
// conditions produce an Outcome with Skipped set.
func (w *Worker) Reconcile(ctx context.Context, assetID string, threshold *time.Time) (*Outcome, error) {
	asset, err := w.assets.AssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch asset %s: %w", assetID, err)
	}

	originalFileName := asset.OriginalFileName()
	if originalFileName == "" {
		// Hard data error for this asset: without a filename there is
		// nothing to evaluate. The run continues.
		w.logger.Warn("Asset has no original media item", zap.String("asset_id", assetID))
		return skipped(assetID, "asset has no original media item"), nil
	}

	if threshold != nil && asset.DateModified.Before(*threshold) {
		return skipped(assetID, fmt.Sprintf("'%s' not modified since %s", originalFileName, threshold.Format(time.RFC3339))), nil
	}

	evaluation := w.evaluator.Evaluate(originalFileName)
	if !evaluation.Matched {
		// Deliberate filter: filenames without structured identity are not
		// imported.
		return skipped(assetID, fmt.Sprintf("'%s' does not match the filename pattern", originalFileName)), nil
	}

	entity, err := w.store.FindByUniqueValue(ctx, inriver.FieldResourceBynderID, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up resource for asset %s: %w", assetID, err)
	}
	if entity == nil {
		entity = inriver.NewEntity(inriver.EntityTypeResource)
		entity.SetField(inriver.FieldResourceBynderID, assetID)
		// DAM filenames are not globally unique; the asset id prefix
		// collision-proofs the filename. Set only on creation.
		entity.SetField(inriver.FieldResourceFilename, fmt.Sprintf("%s_%s", assetID, originalFileName))
	}

	// Any metadata touch invalidates the cached binary: signal the
	// downstream download worker for new and existing resources alike.
	entity.SetField(inriver.FieldResourceBynderDownloadState, inriver.StateTodo)

	for fieldTypeID, value := range evaluation.ResourceFields {
		entity.SetField(fieldTypeID, value)
	}

	entity.SetField(inriver.FieldResourceBynderIDHash, asset.IDHash)
	entity.SetField(inriver.FieldResourceType, string(asset.Type))

	if w.properties.Enabled() {
		w.properties.Apply(entity, asset.Properties)
	}

	created := entity.IsNew()
	if created {
		entity, err = w.store.CreateEntity(ctx, entity)
	} else {
		entity, err = w.store.UpdateEntity(ctx, entity)
	}
	if err != nil {
		// Nothing after a failed persistence may rely on the entity id.
		return nil, fmt.Errorf("failed to persist resource for asset %s: %w", assetID, err)
	}

	var report strings.Builder
	if created {
		fmt.Fprintf(&report, "Resource %d added", entity.ID)
	} else {
		fmt.Fprintf(&report, "Resource %d updated", entity.ID)
	}

	w.linkRelatedEntities(ctx, evaluation.RelatedFields, entity, &report)

	return &Outcome{
		AssetID:  assetID,
		EntityID: entity.ID,
		Created:  created,
		Messages: []string{report.String()},
	}, nil
}

// linkRelatedEntities links every related entity found in the filename.
// A failure for one field must not abort the others, so store errors are
// logged and reported but swallowed here.
func (w *Worker) linkRelatedEntities(ctx context.Context, relatedFields map[string]string, entity *inriver.Entity, report *strings.Builder) {
	fieldTypeIDs := make([]string, 0, len(relatedFields))
	for fieldTypeID := range relatedFields {
		fieldTypeIDs = append(fieldTypeIDs, fieldTypeID)
	}
	sort.Strings(fieldTypeIDs)

	for _, fieldTypeID := range fieldTypeIDs {
		value := relatedFields[fieldTypeID]

		outcome, source, err := w.linker.LinkIfAbsent(ctx, fieldTypeID, value, entity)
		if err != nil {
			w.logger.Warn("Linking related entity failed",
				zap.String("field_type_id", fieldTypeID),
				zap.String("value", value),
				zap.Error(err))
			fmt.Fprintf(report, "; linking %s=%s failed: %v", fieldTypeID, value, err)
			continue
		}

		switch outcome {
		case LinkSourceNotFound:
			fmt.Fprintf(report, "; no entity found for %s=%s", fieldTypeID, value)
		case LinkNoLinkType:
			fmt.Fprintf(report, "; no link type for %s entity %d", source.TypeID, source.ID)
		case LinkAlreadyExists:
			fmt.Fprintf(report, "; %s entity %d already linked", source.TypeID, source.ID)
		case LinkCreated:
			fmt.Fprintf(report, "; %s entity %d found and linked", source.TypeID, source.ID)
		}
	}
}
