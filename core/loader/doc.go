// Package loader provides a small feature registry.
//
// Each feature bundles its service and HTTP handler; the serve command
// registers all enabled features and loads them onto the Fiber app in one
// place instead of wiring routes ad hoc.
package loader
