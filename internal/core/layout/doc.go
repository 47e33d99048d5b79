// Package layout turns a workflow graph definition into positioned nodes and
// typed edges for a renderer.
//
// The pipeline runs in four stages:
//
//	records → ProjectStatuses → Traverse → Position → FilterEdges
//
// Every stage is a pure function. The only value carried between runs is
// the canvas size, which grows monotonically so that a status-only change
// never makes the drawing jump; holding it is the caller's job (see the
// session package).
package layout
