// Package notification accepts push messages from the DAM and turns them
// into single-asset reconciliations.
//
// Messages are modeled as a tagged union keyed by subject: only subjects
// with a known schema are decoded, and only media subjects trigger work.
// Transport-level concerns of the push channel (signatures, subscription
// handshakes) are outside this package; it consumes already-delivered
// message bodies.
package notification
