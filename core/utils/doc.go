// Package utils provides loose-typed conversion helpers.
//
// Entity field bags store values as `any` (strings, numbers, locale maps),
// so readers use these helpers instead of scattering type switches around
// the codebase.
package utils
