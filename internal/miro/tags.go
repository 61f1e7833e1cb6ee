package miro

import (
	"context"
	"net/http"
	"net/url"
)

func (c *httpClient) ListTags(ctx context.Context, boardID string, params PageParams) (*Page[Tag], error) {
	q := url.Values{}
	params.encode(q)
	return listPage[Tag](ctx, c, boardPath(boardID, "tags"), q)
}

func (c *httpClient) GetTag(ctx context.Context, boardID, tagID string) (*Tag, error) {
	var tag Tag
	if err := c.get(ctx, boardPath(boardID, "tags", url.PathEscape(tagID)), nil, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (c *httpClient) CreateTag(ctx context.Context, boardID string, req TagRequest) (*Tag, error) {
	var tag Tag
	if err := c.post(ctx, boardPath(boardID, "tags"), nil, req, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (c *httpClient) UpdateTag(ctx context.Context, boardID, tagID string, req TagRequest) (*Tag, error) {
	var tag Tag
	if err := c.patch(ctx, boardPath(boardID, "tags", url.PathEscape(tagID)), req, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (c *httpClient) DeleteTag(ctx context.Context, boardID, tagID string) error {
	return c.delete(ctx, boardPath(boardID, "tags", url.PathEscape(tagID)))
}

// AttachTag associates a tag with a card-like item. The tag is passed as a
// query parameter per the remote API's contract; the response is empty.
func (c *httpClient) AttachTag(ctx context.Context, boardID, itemID, tagID string) error {
	q := url.Values{}
	q.Set("tag_id", tagID)
	return c.post(ctx, boardPath(boardID, "items", url.PathEscape(itemID)), q, nil, nil)
}

func (c *httpClient) DetachTag(ctx context.Context, boardID, itemID, tagID string) error {
	q := url.Values{}
	q.Set("tag_id", tagID)
	return c.do(ctx, http.MethodDelete, boardPath(boardID, "items", url.PathEscape(itemID)), q, nil, nil)
}

// ListItemTags returns the tags attached to one item. The endpoint is not
// paginated; the remote API wraps the result in a "tags" field.
func (c *httpClient) ListItemTags(ctx context.Context, boardID, itemID string) ([]Tag, error) {
	var out struct {
		Tags []Tag `json:"tags"`
	}
	if err := c.get(ctx, boardPath(boardID, "items", url.PathEscape(itemID), "tags"), nil, &out); err != nil {
		return nil, err
	}
	if out.Tags == nil {
		out.Tags = []Tag{}
	}
	return out.Tags, nil
}

func (c *httpClient) ListItemsByTag(ctx context.Context, boardID, tagID string, params PageParams) (*Page[Item], error) {
	q := url.Values{}
	params.encode(q)
	q.Set("tag_id", tagID)
	return listPage[Item](ctx, c, boardPath(boardID, "items"), q)
}
