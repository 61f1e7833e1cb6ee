package miro

import (
	"context"
	"net/url"
)

// ListBoards lists boards visible to the token's user, optionally filtered
// by team, owner, free-text query, and sort order.
func (c *httpClient) ListBoards(ctx context.Context, params ListBoardsParams) (*Page[Board], error) {
	q := url.Values{}
	params.encode(q)
	if params.TeamID != "" {
		q.Set("team_id", params.TeamID)
	}
	if params.Query != "" {
		q.Set("query", params.Query)
	}
	if params.Owner != "" {
		q.Set("owner", params.Owner)
	}
	if params.Sort != "" {
		q.Set("sort", params.Sort)
	}
	return listPage[Board](ctx, c, "/boards", q)
}

func (c *httpClient) GetBoard(ctx context.Context, boardID string) (*Board, error) {
	var board Board
	if err := c.get(ctx, boardPath(boardID), nil, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

func (c *httpClient) CreateBoard(ctx context.Context, req BoardRequest) (*Board, error) {
	var board Board
	if err := c.post(ctx, "/boards", nil, req, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

func (c *httpClient) UpdateBoard(ctx context.Context, boardID string, req BoardRequest) (*Board, error) {
	var board Board
	if err := c.patch(ctx, boardPath(boardID), req, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

func (c *httpClient) DeleteBoard(ctx context.Context, boardID string) error {
	return c.delete(ctx, boardPath(boardID))
}

// CopyBoard duplicates an existing board. The request body may override the
// copy's name and description.
func (c *httpClient) CopyBoard(ctx context.Context, sourceBoardID string, req BoardRequest) (*Board, error) {
	q := url.Values{}
	q.Set("copy_from", sourceBoardID)
	var board Board
	if err := c.put(ctx, "/boards", q, req, &board); err != nil {
		return nil, err
	}
	return &board, nil
}
