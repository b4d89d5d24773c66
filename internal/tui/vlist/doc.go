// Package vlist provides a virtualized list for Bubble Tea views.
//
// Only the rows that intersect the viewport are rendered. Rows may differ in
// height; the list estimates positions from an average row height that is
// refined every time rows are rendered and measured. Until the first render
// the estimate is the default row height, so callers that need exact
// positioning should correct after a render pass.
//
// Scroll positions and heights are measured in terminal lines.
package vlist
