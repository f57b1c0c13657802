// Package io loads business-model documents and exports connection maps.
//
// # Document Format
//
// Documents are YAML (or JSON) objects with one optional list per entity
// section. Every entity needs an "id" whose prefix names its kind; relation
// bundles live under "for" (targets) and "from" (sources):
//
//	version: "2"
//	meta:
//	  name: Bike Sharing
//	customer_segments:
//	  - id: cs-commuters
//	    name: Commuters
//	value_propositions:
//	  - id: vp-cheap-rides
//	    name: Cheap rides
//	fits:
//	  - id: fit-commute
//	    for:
//	      value_propositions: [vp-cheap-rides]
//	      customer_segments: [cs-commuters]
//	revenue_streams:
//	  - id: rs-fees
//	    from:
//	      customer_segments: [cs-commuters]
//	    for:
//	      value_propositions: [vp-cheap-rides]
//
// # Import
//
// [ImportFile] reads a path (".yaml", ".yml", ".json" or "-" for stdin),
// [ReadYAML] and [ReadJSON] read from any io.Reader. All three reject
// structurally malformed input with an INVALID_DOCUMENT error (see
// [Validate]): unknown keys, wrong value shapes, missing identifiers,
// identifiers with the wrong kind prefix, identifiers declared twice, and
// version 1 documents that have not been migrated.
//
// References between entities are not checked here. A reference to a missing
// identifier is a diagnostic reported by the connection graph, not a reason
// to reject the document.
//
// # Export
//
// [WriteConnections] serializes a computed connection map as JSON, listing
// every entity with its ordered segment identifiers plus any dangling
// references.
package io
