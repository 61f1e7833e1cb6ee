package miro

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStickyNoteWireShape(t *testing.T) {
	var calls int
	var gotMethod, gotPath string
	var gotBody map[string]any
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"sn1","type":"sticky_note","data":{"content":"hello"},"position":{"x":10,"y":20}}`))
	})

	item, err := client.CreateStickyNote(context.Background(), "b1", ItemRequest{
		Data:     map[string]any{"content": "hello"},
		Position: &Position{X: 10, Y: 20},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls, "exactly one remote call")
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/boards/b1/sticky_notes", gotPath)

	data, ok := gotBody["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hello", data["content"])

	position, ok := gotBody["position"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(10), position["x"])
	assert.Equal(t, float64(20), position["y"])

	// Fields left unset must not appear in the wire body.
	assert.NotContains(t, gotBody, "style")
	assert.NotContains(t, gotBody, "geometry")
	assert.NotContains(t, gotBody, "parent")

	assert.Equal(t, "sn1", item.ID)
	assert.Equal(t, "sticky_note", item.Type)
}

func TestTypedItemEndpoints(t *testing.T) {
	tests := []struct {
		name     string
		call     func(ctx context.Context, c Client) error
		wantPath string
	}{
		{
			name: "shape",
			call: func(ctx context.Context, c Client) error {
				_, err := c.CreateShape(ctx, "b1", ItemRequest{Data: map[string]any{"shape": "rectangle"}})
				return err
			},
			wantPath: "/boards/b1/shapes",
		},
		{
			name: "text",
			call: func(ctx context.Context, c Client) error {
				_, err := c.CreateText(ctx, "b1", ItemRequest{Data: map[string]any{"content": "title"}})
				return err
			},
			wantPath: "/boards/b1/texts",
		},
		{
			name: "card",
			call: func(ctx context.Context, c Client) error {
				_, err := c.CreateCard(ctx, "b1", ItemRequest{Data: map[string]any{"title": "task"}})
				return err
			},
			wantPath: "/boards/b1/cards",
		},
		{
			name: "app card",
			call: func(ctx context.Context, c Client) error {
				_, err := c.CreateAppCard(ctx, "b1", ItemRequest{Data: map[string]any{"title": "task"}})
				return err
			},
			wantPath: "/boards/b1/app_cards",
		},
		{
			name: "frame",
			call: func(ctx context.Context, c Client) error {
				_, err := c.CreateFrame(ctx, "b1", ItemRequest{Data: map[string]any{"title": "Sprint 12"}})
				return err
			},
			wantPath: "/boards/b1/frames",
		},
		{
			name: "embed",
			call: func(ctx context.Context, c Client) error {
				_, err := c.CreateEmbed(ctx, "b1", ItemRequest{Data: map[string]any{"url": "https://example.com"}})
				return err
			},
			wantPath: "/boards/b1/embeds",
		},
		{
			name: "image",
			call: func(ctx context.Context, c Client) error {
				_, err := c.CreateImage(ctx, "b1", ItemRequest{Data: map[string]any{"url": "https://example.com/x.png"}})
				return err
			},
			wantPath: "/boards/b1/images",
		},
		{
			name: "document",
			call: func(ctx context.Context, c Client) error {
				_, err := c.CreateDocument(ctx, "b1", ItemRequest{Data: map[string]any{"url": "https://example.com/x.pdf"}})
				return err
			},
			wantPath: "/boards/b1/documents",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id":"i1","type":"x"}`))
			})

			require.NoError(t, tt.call(context.Background(), client))
			assert.Equal(t, tt.wantPath, gotPath)
		})
	}
}

func TestListItemsTypeFilterIsOneCall(t *testing.T) {
	var calls int
	var gotType, gotParent string
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotType = r.URL.Query().Get("type")
		gotParent = r.URL.Query().Get("parent_item_id")
		_, _ = w.Write([]byte(`{"data":[{"id":"i1","type":"sticky_note"}],"size":1}`))
	})

	page, err := client.ListItems(context.Background(), "b1", ListItemsParams{
		Type:         "sticky_note",
		ParentItemID: "frame-1",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "sticky_note", gotType)
	assert.Equal(t, "frame-1", gotParent)
	assert.Equal(t, page.Size, len(page.Data))
}

func TestUpdateItemPatchesGenericResource(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id":"i1","type":"shape","position":{"x":5,"y":6}}`))
	})

	item, err := client.UpdateItem(context.Background(), "b1", "i1", ItemRequest{
		Position: &Position{X: 5, Y: 6},
	})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/boards/b1/items/i1", gotPath)
	assert.Equal(t, 5.0, item.Position.X)
}
