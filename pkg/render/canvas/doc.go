// Package canvas turns a business model and its connection graph into a
// positioned, colored canvas [Model] ready for serialization.
//
// # Pipeline
//
//	doc ──► connect.Build ──► canvas.Build ──► sink.RenderSVG
//
// [Build] assigns segment colors, places one sticky per entity in its
// block and stacks one rectangle per connected segment behind the sticky.
// Everything it needs comes from an explicit [Config]; there is no package
// state beyond the read-only defaults.
//
// # Stacking
//
// An entity connected to segments [S1 S2 S3] produces three layers. Layer
// 0 takes S1's color and sits at the grid cell; layer k is shifted
// k*StackOffset right and down. Layer 0 is the front-most rectangle, so
// serializers draw layers in reverse. The label belongs to layer 0.
//
// Each block's grid reserves room for its deepest stack: the pitch is the
// cell size plus (n-1)*StackOffset plus StickyGap, so back layers never
// reach a neighbouring sticky.
//
// An orphan (no connected segment) gets exactly one layer in the orphan
// color.
//
// # Failure Semantics
//
// Build only fails for a nil document or an invalid [Config]. Overflowing
// blocks, long labels and dangling references degrade the picture, never
// the call; overflow is recorded on the [Block] for callers that care.
package canvas
