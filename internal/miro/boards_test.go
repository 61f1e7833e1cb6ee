package miro

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBoardsPagination(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id":"b1","name":"Roadmap"},
				{"id":"b2","name":"Retro"},
				{"id":"b3","name":"Design"}
			],
			"total": 3,
			"size": 3
		}`))
	})

	page, err := client.ListBoards(context.Background(), ListBoardsParams{
		PageParams: PageParams{Limit: 5},
		TeamID:     "team-1",
		Query:      "roadmap",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, gotQuery["limit"])
	assert.Equal(t, []string{"team-1"}, gotQuery["team_id"])
	assert.Equal(t, []string{"roadmap"}, gotQuery["query"])
	assert.Len(t, page.Data, 3)
	assert.Equal(t, len(page.Data), page.Size)
	assert.False(t, page.HasMore())
}

func TestListBoardsClampsLimit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit string
	}{
		{"zero defaults", 0, "20"},
		{"negative defaults", -3, "1"},
		{"over max clamps", 500, "100"},
		{"in range passes through", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
				got = r.URL.Query().Get("limit")
				_, _ = w.Write([]byte(`{"data":[],"size":0}`))
			})

			_, err := client.ListBoards(context.Background(), ListBoardsParams{
				PageParams: PageParams{Limit: tt.limit},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, got)
		})
	}
}

func TestListBoardsCursorPassedThrough(t *testing.T) {
	var gotCursor string
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotCursor = r.URL.Query().Get("cursor")
		_, _ = w.Write([]byte(`{"data":[{"id":"b9","name":"More"}],"size":1,"cursor":"next-opaque"}`))
	})

	page, err := client.ListBoards(context.Background(), ListBoardsParams{
		PageParams: PageParams{Cursor: "opaque%token=="},
	})

	require.NoError(t, err)
	assert.Equal(t, "opaque%token==", gotCursor)
	assert.True(t, page.HasMore())
	assert.Equal(t, "next-opaque", page.Cursor)
}

func TestCreateBoard(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"b-new","name":"Planning","viewLink":"https://miro.com/app/board/b-new"}`))
	})

	board, err := client.CreateBoard(context.Background(), BoardRequest{
		Name:        "Planning",
		Description: "Q3 planning board",
	})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/boards", gotPath)
	assert.Equal(t, "Planning", gotBody["name"])
	assert.Equal(t, "Q3 planning board", gotBody["description"])
	assert.Equal(t, "b-new", board.ID)
}

func TestCopyBoardUsesCopyFromQuery(t *testing.T) {
	var gotMethod, gotCopyFrom string
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotCopyFrom = r.URL.Query().Get("copy_from")
		_, _ = w.Write([]byte(`{"id":"b-copy","name":"Copy of Roadmap"}`))
	})

	board, err := client.CopyBoard(context.Background(), "b-src", BoardRequest{Name: "Copy of Roadmap"})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "b-src", gotCopyFrom)
	assert.Equal(t, "b-copy", board.ID)
}
