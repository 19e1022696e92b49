// Package sync implements the reconciliation engine between the Bynder DAM
// and the inRiver PIM.
//
// # Architecture
//
// The engine consists of five components, leaf first:
//
//  1. FilenameEvaluator: parses an asset's original filename against a
//     configured named-capture pattern, producing typed field assignments.
//
//  2. PropertyMapper: maps asset metaproperties onto resource fields using
//     a configured property map (controlled vocabulary, localized string,
//     or plain copy).
//
//  3. EntityLinker: resolves related entities referenced by filename fields
//     and establishes relations without duplicates.
//
//  4. Worker: creates or updates one resource entity per asset, combining
//     the three components above. Skips (below threshold, pattern mismatch,
//     missing original file) are outcomes, not errors.
//
//  5. Scheduler: owns the persisted watermark, decides full vs incremental
//     sync, pages through the asset collection, and advances the watermark
//     only after every page succeeded.
//
// # Idempotence
//
// Re-running with the same watermark and remote data creates no duplicate
// entities (lookup by external id) and no duplicate links (triple check in
// the linker), so interrupted runs can safely be retried from the unchanged
// watermark.
package sync
