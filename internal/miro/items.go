package miro

import (
	"context"
	"net/url"
)

// ListItems lists board items, optionally narrowed by item type or parent
// frame. The type filter is applied server-side; this is still one call.
func (c *httpClient) ListItems(ctx context.Context, boardID string, params ListItemsParams) (*Page[Item], error) {
	q := url.Values{}
	params.encode(q)
	if params.Type != "" {
		q.Set("type", params.Type)
	}
	if params.ParentItemID != "" {
		q.Set("parent_item_id", params.ParentItemID)
	}
	return listPage[Item](ctx, c, boardPath(boardID, "items"), q)
}

func (c *httpClient) GetItem(ctx context.Context, boardID, itemID string) (*Item, error) {
	var item Item
	if err := c.get(ctx, boardPath(boardID, "items", url.PathEscape(itemID)), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem patches the generic item resource; useful for repositioning an
// item or moving it into a frame regardless of its type.
func (c *httpClient) UpdateItem(ctx context.Context, boardID, itemID string, req ItemRequest) (*Item, error) {
	var item Item
	if err := c.patch(ctx, boardPath(boardID, "items", url.PathEscape(itemID)), req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *httpClient) DeleteItem(ctx context.Context, boardID, itemID string) error {
	return c.delete(ctx, boardPath(boardID, "items", url.PathEscape(itemID)))
}

// createItem and updateItem implement the shared wire contract of all typed
// item endpoints; only the resource segment differs per kind.
func (c *httpClient) createItem(ctx context.Context, boardID, resource string, req ItemRequest) (*Item, error) {
	var item Item
	if err := c.post(ctx, boardPath(boardID, resource), nil, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *httpClient) updateItem(ctx context.Context, boardID, resource, itemID string, req ItemRequest) (*Item, error) {
	var item Item
	if err := c.patch(ctx, boardPath(boardID, resource, url.PathEscape(itemID)), req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *httpClient) CreateStickyNote(ctx context.Context, boardID string, req ItemRequest) (*Item, error) {
	return c.createItem(ctx, boardID, "sticky_notes", req)
}

func (c *httpClient) UpdateStickyNote(ctx context.Context, boardID, itemID string, req ItemRequest) (*Item, error) {
	return c.updateItem(ctx, boardID, "sticky_notes", itemID, req)
}

func (c *httpClient) CreateShape(ctx context.Context, boardID string, req ItemRequest) (*Item, error) {
	return c.createItem(ctx, boardID, "shapes", req)
}

func (c *httpClient) UpdateShape(ctx context.Context, boardID, itemID string, req ItemRequest) (*Item, error) {
	return c.updateItem(ctx, boardID, "shapes", itemID, req)
}

func (c *httpClient) CreateText(ctx context.Context, boardID string, req ItemRequest) (*Item, error) {
	return c.createItem(ctx, boardID, "texts", req)
}

func (c *httpClient) UpdateText(ctx context.Context, boardID, itemID string, req ItemRequest) (*Item, error) {
	return c.updateItem(ctx, boardID, "texts", itemID, req)
}

func (c *httpClient) CreateCard(ctx context.Context, boardID string, req ItemRequest) (*Item, error) {
	return c.createItem(ctx, boardID, "cards", req)
}

func (c *httpClient) UpdateCard(ctx context.Context, boardID, itemID string, req ItemRequest) (*Item, error) {
	return c.updateItem(ctx, boardID, "cards", itemID, req)
}

func (c *httpClient) CreateAppCard(ctx context.Context, boardID string, req ItemRequest) (*Item, error) {
	return c.createItem(ctx, boardID, "app_cards", req)
}

func (c *httpClient) UpdateAppCard(ctx context.Context, boardID, itemID string, req ItemRequest) (*Item, error) {
	return c.updateItem(ctx, boardID, "app_cards", itemID, req)
}

func (c *httpClient) CreateFrame(ctx context.Context, boardID string, req ItemRequest) (*Item, error) {
	return c.createItem(ctx, boardID, "frames", req)
}

func (c *httpClient) UpdateFrame(ctx context.Context, boardID, itemID string, req ItemRequest) (*Item, error) {
	return c.updateItem(ctx, boardID, "frames", itemID, req)
}

func (c *httpClient) CreateEmbed(ctx context.Context, boardID string, req ItemRequest) (*Item, error) {
	return c.createItem(ctx, boardID, "embeds", req)
}

func (c *httpClient) CreateImage(ctx context.Context, boardID string, req ItemRequest) (*Item, error) {
	return c.createItem(ctx, boardID, "images", req)
}

func (c *httpClient) CreateDocument(ctx context.Context, boardID string, req ItemRequest) (*Item, error) {
	return c.createItem(ctx, boardID, "documents", req)
}
