// Package model defines the typed business-model document rendered by bmcanvas.
//
// A [Document] is an ordered collection of entity sections, one per [Kind]:
// customer segments, value propositions, fits, channels, customer
// relationships, revenue streams, key resources, key activities, key
// partnerships and costs. Every entity carries a globally unique identifier
// whose prefix names its kind (for example "cs-" for customer segments).
//
// # Identifiers
//
// Each kind has its own identifier type ([SegmentID], [PropositionID], ...),
// so a segment identifier cannot be compared with a proposition identifier
// without an explicit conversion. Identifiers convert to the kind-tagged
// [Ref], which is the key used by the connection graph.
//
// # Relations
//
// Entities point at other entities through relation bundles stored under the
// "for" (targets) and "from" (sources) fields. [Relations] lists, per kind,
// which fields are traversed and which kinds they may name. [Entity.Links]
// flattens an entity's bundles into typed [Link] values in declaration order.
//
// Documents are treated as immutable once decoded: nothing in bmcanvas
// modifies a Document after loading it.
package model
