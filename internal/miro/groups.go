package miro

import (
	"context"
	"net/url"
)

func (c *httpClient) ListGroups(ctx context.Context, boardID string, params PageParams) (*Page[Group], error) {
	q := url.Values{}
	params.encode(q)
	return listPage[Group](ctx, c, boardPath(boardID, "groups"), q)
}

func (c *httpClient) GetGroup(ctx context.Context, boardID, groupID string) (*Group, error) {
	var group Group
	if err := c.get(ctx, boardPath(boardID, "groups", url.PathEscape(groupID)), nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *httpClient) CreateGroup(ctx context.Context, boardID string, itemIDs []string) (*Group, error) {
	body := struct {
		Data GroupData `json:"data"`
	}{Data: GroupData{Items: itemIDs}}
	var group Group
	if err := c.post(ctx, boardPath(boardID, "groups"), nil, body, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *httpClient) ListGroupItems(ctx context.Context, boardID, groupID string, params PageParams) (*Page[Item], error) {
	q := url.Values{}
	params.encode(q)
	return listPage[Item](ctx, c, boardPath(boardID, "groups", url.PathEscape(groupID), "items"), q)
}

// Ungroup dissolves a group without deleting its member items.
func (c *httpClient) Ungroup(ctx context.Context, boardID, groupID string) error {
	return c.delete(ctx, boardPath(boardID, "groups", url.PathEscape(groupID)))
}
