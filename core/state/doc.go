// Package state persists the synchronization watermark.
//
// Exactly one logical watermark exists per connector id: the timestamp the
// last successful run started at, stored as a JSON-encoded payload so an
// empty payload can mean "never ran". The scheduler reads it at the start
// of every run and advances it only after a fully successful run.
package state
