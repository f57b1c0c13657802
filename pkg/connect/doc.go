// Package connect computes which customer segments every entity of a
// business model ultimately serves.
//
// [Build] walks a [model.Document] in a fixed sequence of stages:
//
//  1. seed: every customer segment is connected to itself
//  2. direct: fits, channels and customer relationships take the segments
//     they target
//  3. proposition: value propositions take the union of the fits that
//     target them
//  4. proposition-bridged: revenue streams take their source segments plus
//     the sets of the propositions they target; key resources and key
//     activities take the sets of the propositions they target
//  5. resource-bridged: key partnerships and costs take the sets of the
//     resources and activities they target
//
// A stage only reads sets produced by strictly earlier stages, so a single
// pass is enough and no fixed-point iteration is needed.
//
// Within a set, segments appear in the order their contributing entities are
// declared in the document, without duplicates. References to identifiers
// that do not exist are not traversed; they are reported by
// [Graph.Dangling] and never cause Build to fail.
package connect
