package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/bmcanvas/pkg/connect"
	"github.com/matzehuels/bmcanvas/pkg/model"
)

type connections struct {
	Title    string       `json:"title"`
	Entities []connection `json:"entities"`
	Dangling []dangling   `json:"dangling,omitempty"`
}

type connection struct {
	ID       string            `json:"id"`
	Kind     string            `json:"kind"`
	Label    string            `json:"label"`
	Segments []model.SegmentID `json:"segments"`
}

type dangling struct {
	From  string      `json:"from"`
	Field model.Field `json:"field"`
	To    string      `json:"to"`
}

// WriteConnections encodes the connection map of doc as indented JSON.
// Entities appear in declaration order; orphans have an empty segment list.
func WriteConnections(w io.Writer, doc *model.Document, g *connect.Graph) error {
	out := connections{Title: doc.Title(), Entities: []connection{}}

	labels := make(map[model.Ref]string)
	for _, e := range doc.All() {
		if _, ok := labels[e.Ref()]; !ok {
			labels[e.Ref()] = e.Label()
		}
	}
	for _, ref := range g.Refs() {
		segs := g.Segments(ref)
		if segs == nil {
			segs = connect.SegmentSet{}
		}
		out.Entities = append(out.Entities, connection{
			ID:       ref.ID,
			Kind:     ref.Kind.String(),
			Label:    labels[ref],
			Segments: segs,
		})
	}
	for _, d := range g.Dangling() {
		out.Dangling = append(out.Dangling, dangling{From: d.From.ID, Field: d.Field, To: d.To.ID})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportConnections writes the connection map of doc to a JSON file at path.
func ExportConnections(doc *model.Document, g *connect.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteConnections(f, doc, g)
}
