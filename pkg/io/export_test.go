package io

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/bmcanvas/pkg/connect"
	"github.com/matzehuels/bmcanvas/pkg/model"
)

func TestWriteConnections(t *testing.T) {
	doc := &model.Document{
		Meta:         model.Meta{Name: "Demo"},
		Segments:     []model.Segment{{ID: "cs-1", Name: "Students"}},
		Propositions: []model.Proposition{{ID: "vp-1"}},
		Channels: []model.Channel{{ID: "ch-1", For: model.Bundle{
			Segments: []model.SegmentID{"cs-1", "cs-gone"},
		}}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteConnections(&buf, doc, connect.Build(doc)))

	var got connections
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "Demo", got.Title)
	require.Len(t, got.Entities, 3)
	assert.Equal(t, connection{ID: "cs-1", Kind: "customer segment", Label: "Students", Segments: []model.SegmentID{"cs-1"}}, got.Entities[0])
	assert.Equal(t, "vp-1", got.Entities[1].ID)
	assert.Empty(t, got.Entities[1].Segments)
	assert.Equal(t, []model.SegmentID{"cs-1"}, got.Entities[2].Segments)
	assert.Equal(t, []dangling{{From: "ch-1", Field: model.FieldFor, To: "cs-gone"}}, got.Dangling)
}

func TestWriteConnectionsOrphanListIsEmptyNotNull(t *testing.T) {
	doc := &model.Document{Propositions: []model.Proposition{{ID: "vp-1"}}}
	var buf bytes.Buffer
	require.NoError(t, WriteConnections(&buf, doc, connect.Build(doc)))
	assert.Contains(t, buf.String(), `"segments": []`)
}

func TestExportConnections(t *testing.T) {
	doc := &model.Document{Segments: []model.Segment{{ID: "cs-1"}}}
	path := filepath.Join(t.TempDir(), "connections.json")
	require.NoError(t, ExportConnections(doc, connect.Build(doc), path))
	assert.FileExists(t, path)
}
