// Package layout computes the fixed geometry of a Business Model Canvas.
//
// The canvas is split into a header strip, a grid of nine blocks and a
// footer strip. The grid has five equal columns:
//
//	+------+-------+------+-------+------+
//	|      |  KA   |      |  CR   |      |
//	|  KP  +-------+  VP  +-------+  CS  |   75% of grid height
//	|      |  KR   |      |  CH   |      |
//	+------+-------+--+---+-------+------+
//	|      Cost       |     Revenue      |   25% of grid height
//	+-----------------+------------------+
//
// Every block has a label band at the top and an interior, inset by a
// fixed padding, in which stickies are placed on a uniform [Grid].
//
// Nothing in this package knows about documents or segments: it deals in
// rectangles, cell indexes and text lines only. Geometry never fails;
// content that does not fit simply extends past the block.
package layout
