package miro

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachDetachTag(t *testing.T) {
	var gotMethod, gotPath, gotTagID string
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotTagID = r.URL.Query().Get("tag_id")
		w.WriteHeader(http.StatusNoContent)
	})
	ctx := context.Background()

	require.NoError(t, client.AttachTag(ctx, "b1", "i1", "t1"))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/boards/b1/items/i1", gotPath)
	assert.Equal(t, "t1", gotTagID)

	require.NoError(t, client.DetachTag(ctx, "b1", "i1", "t1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/boards/b1/items/i1", gotPath)
	assert.Equal(t, "t1", gotTagID)
}

func TestListItemTagsUnwrapsTagsField(t *testing.T) {
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/boards/b1/items/i1/tags", r.URL.Path)
		_, _ = w.Write([]byte(`{"tags":[{"id":"t1","title":"urgent","fillColor":"red"},{"id":"t2","title":"later"}]}`))
	})

	tags, err := client.ListItemTags(context.Background(), "b1", "i1")

	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "urgent", tags[0].Title)
	assert.Equal(t, "red", tags[0].FillColor)
}

func TestListItemTagsEmptyBody(t *testing.T) {
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	tags, err := client.ListItemTags(context.Background(), "b1", "i1")

	require.NoError(t, err)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestListItemsByTag(t *testing.T) {
	var gotTagID string
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotTagID = r.URL.Query().Get("tag_id")
		_, _ = w.Write([]byte(`{"data":[{"id":"i1","type":"card"}],"size":1,"cursor":"more"}`))
	})

	page, err := client.ListItemsByTag(context.Background(), "b1", "t1", PageParams{Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, "t1", gotTagID)
	assert.Equal(t, 1, page.Size)
	assert.True(t, page.HasMore())
}

func TestCreateGroupBody(t *testing.T) {
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/boards/b1/groups", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"g1","data":{"items":["i1","i2"]}}`))
	})

	group, err := client.CreateGroup(context.Background(), "b1", []string{"i1", "i2"})

	require.NoError(t, err)
	assert.Equal(t, "g1", group.ID)
	assert.Equal(t, []string{"i1", "i2"}, group.Data.Items)
}
