package miro

import (
	"context"
	"net/url"
)

func (c *httpClient) ListConnectors(ctx context.Context, boardID string, params PageParams) (*Page[Connector], error) {
	q := url.Values{}
	params.encode(q)
	return listPage[Connector](ctx, c, boardPath(boardID, "connectors"), q)
}

func (c *httpClient) GetConnector(ctx context.Context, boardID, connectorID string) (*Connector, error) {
	var connector Connector
	if err := c.get(ctx, boardPath(boardID, "connectors", url.PathEscape(connectorID)), nil, &connector); err != nil {
		return nil, err
	}
	return &connector, nil
}

func (c *httpClient) CreateConnector(ctx context.Context, boardID string, req ConnectorRequest) (*Connector, error) {
	var connector Connector
	if err := c.post(ctx, boardPath(boardID, "connectors"), nil, req, &connector); err != nil {
		return nil, err
	}
	return &connector, nil
}

func (c *httpClient) UpdateConnector(ctx context.Context, boardID, connectorID string, req ConnectorRequest) (*Connector, error) {
	var connector Connector
	if err := c.patch(ctx, boardPath(boardID, "connectors", url.PathEscape(connectorID)), req, &connector); err != nil {
		return nil, err
	}
	return &connector, nil
}

func (c *httpClient) DeleteConnector(ctx context.Context, boardID, connectorID string) error {
	return c.delete(ctx, boardPath(boardID, "connectors", url.PathEscape(connectorID)))
}
