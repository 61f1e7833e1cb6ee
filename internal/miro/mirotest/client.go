// Package mirotest provides a configurable mock of the miro.Client
// interface for tool handler tests. Each method delegates to an optional
// function field and records the call; unstubbed methods return an error so
// tests fail loudly instead of silently succeeding on the wrong code path.
package mirotest

import (
	"context"
	"fmt"
	"sync"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/miro"
)

// Client is a mock miro.Client. Zero value is usable; set the function
// fields for the methods the test exercises.
type Client struct {
	mu    sync.Mutex
	calls []string

	ListBoardsFunc  func(ctx context.Context, params miro.ListBoardsParams) (*miro.Page[miro.Board], error)
	GetBoardFunc    func(ctx context.Context, boardID string) (*miro.Board, error)
	CreateBoardFunc func(ctx context.Context, req miro.BoardRequest) (*miro.Board, error)
	UpdateBoardFunc func(ctx context.Context, boardID string, req miro.BoardRequest) (*miro.Board, error)
	DeleteBoardFunc func(ctx context.Context, boardID string) error
	CopyBoardFunc   func(ctx context.Context, sourceBoardID string, req miro.BoardRequest) (*miro.Board, error)

	ListBoardMembersFunc  func(ctx context.Context, boardID string, params miro.PageParams) (*miro.Page[miro.BoardMember], error)
	GetBoardMemberFunc    func(ctx context.Context, boardID, memberID string) (*miro.BoardMember, error)
	ShareBoardFunc        func(ctx context.Context, boardID string, req miro.ShareRequest) (*miro.Page[miro.BoardMember], error)
	UpdateBoardMemberFunc func(ctx context.Context, boardID, memberID, role string) (*miro.BoardMember, error)
	RemoveBoardMemberFunc func(ctx context.Context, boardID, memberID string) error

	ListItemsFunc  func(ctx context.Context, boardID string, params miro.ListItemsParams) (*miro.Page[miro.Item], error)
	GetItemFunc    func(ctx context.Context, boardID, itemID string) (*miro.Item, error)
	UpdateItemFunc func(ctx context.Context, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error)
	DeleteItemFunc func(ctx context.Context, boardID, itemID string) error

	CreateStickyNoteFunc func(ctx context.Context, boardID string, req miro.ItemRequest) (*miro.Item, error)
	UpdateStickyNoteFunc func(ctx context.Context, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error)
	CreateShapeFunc      func(ctx context.Context, boardID string, req miro.ItemRequest) (*miro.Item, error)
	UpdateShapeFunc      func(ctx context.Context, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error)
	CreateTextFunc       func(ctx context.Context, boardID string, req miro.ItemRequest) (*miro.Item, error)
	UpdateTextFunc       func(ctx context.Context, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error)
	CreateCardFunc       func(ctx context.Context, boardID string, req miro.ItemRequest) (*miro.Item, error)
	UpdateCardFunc       func(ctx context.Context, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error)
	CreateAppCardFunc    func(ctx context.Context, boardID string, req miro.ItemRequest) (*miro.Item, error)
	UpdateAppCardFunc    func(ctx context.Context, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error)
	CreateFrameFunc      func(ctx context.Context, boardID string, req miro.ItemRequest) (*miro.Item, error)
	UpdateFrameFunc      func(ctx context.Context, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error)
	CreateEmbedFunc      func(ctx context.Context, boardID string, req miro.ItemRequest) (*miro.Item, error)
	CreateImageFunc      func(ctx context.Context, boardID string, req miro.ItemRequest) (*miro.Item, error)
	CreateDocumentFunc   func(ctx context.Context, boardID string, req miro.ItemRequest) (*miro.Item, error)

	ListConnectorsFunc  func(ctx context.Context, boardID string, params miro.PageParams) (*miro.Page[miro.Connector], error)
	GetConnectorFunc    func(ctx context.Context, boardID, connectorID string) (*miro.Connector, error)
	CreateConnectorFunc func(ctx context.Context, boardID string, req miro.ConnectorRequest) (*miro.Connector, error)
	UpdateConnectorFunc func(ctx context.Context, boardID, connectorID string, req miro.ConnectorRequest) (*miro.Connector, error)
	DeleteConnectorFunc func(ctx context.Context, boardID, connectorID string) error

	ListTagsFunc       func(ctx context.Context, boardID string, params miro.PageParams) (*miro.Page[miro.Tag], error)
	GetTagFunc         func(ctx context.Context, boardID, tagID string) (*miro.Tag, error)
	CreateTagFunc      func(ctx context.Context, boardID string, req miro.TagRequest) (*miro.Tag, error)
	UpdateTagFunc      func(ctx context.Context, boardID, tagID string, req miro.TagRequest) (*miro.Tag, error)
	DeleteTagFunc      func(ctx context.Context, boardID, tagID string) error
	AttachTagFunc      func(ctx context.Context, boardID, itemID, tagID string) error
	DetachTagFunc      func(ctx context.Context, boardID, itemID, tagID string) error
	ListItemTagsFunc   func(ctx context.Context, boardID, itemID string) ([]miro.Tag, error)
	ListItemsByTagFunc func(ctx context.Context, boardID, tagID string, params miro.PageParams) (*miro.Page[miro.Item], error)

	ListGroupsFunc     func(ctx context.Context, boardID string, params miro.PageParams) (*miro.Page[miro.Group], error)
	GetGroupFunc       func(ctx context.Context, boardID, groupID string) (*miro.Group, error)
	CreateGroupFunc    func(ctx context.Context, boardID string, itemIDs []string) (*miro.Group, error)
	ListGroupItemsFunc func(ctx context.Context, boardID, groupID string, params miro.PageParams) (*miro.Page[miro.Item], error)
	UngroupFunc        func(ctx context.Context, boardID, groupID string) error
}

var _ miro.Client = (*Client)(nil)

func (c *Client) record(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, name)
}

// Calls returns the names of the client methods invoked, in order.
func (c *Client) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

// CallCount returns the total number of client method invocations.
func (c *Client) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func errUnstubbed(name string) error {
	return fmt.Errorf("mirotest: unexpected call to %s", name)
}

func (c *Client) ListBoards(ctx context.Context, params miro.ListBoardsParams) (*miro.Page[miro.Board], error) {
	c.record("ListBoards")
	if c.ListBoardsFunc == nil {
		return nil, errUnstubbed("ListBoards")
	}
	return c.ListBoardsFunc(ctx, params)
}

func (c *Client) GetBoard(ctx context.Context, boardID string) (*miro.Board, error) {
	c.record("GetBoard")
	if c.GetBoardFunc == nil {
		return nil, errUnstubbed("GetBoard")
	}
	return c.GetBoardFunc(ctx, boardID)
}

func (c *Client) CreateBoard(ctx context.Context, req miro.BoardRequest) (*miro.Board, error) {
	c.record("CreateBoard")
	if c.CreateBoardFunc == nil {
		return nil, errUnstubbed("CreateBoard")
	}
	return c.CreateBoardFunc(ctx, req)
}

func (c *Client) UpdateBoard(ctx context.Context, boardID string, req miro.BoardRequest) (*miro.Board, error) {
	c.record("UpdateBoard")
	if c.UpdateBoardFunc == nil {
		return nil, errUnstubbed("UpdateBoard")
	}
	return c.UpdateBoardFunc(ctx, boardID, req)
}

func (c *Client) DeleteBoard(ctx context.Context, boardID string) error {
	c.record("DeleteBoard")
	if c.DeleteBoardFunc == nil {
		return errUnstubbed("DeleteBoard")
	}
	return c.DeleteBoardFunc(ctx, boardID)
}

func (c *Client) CopyBoard(ctx context.Context, sourceBoardID string, req miro.BoardRequest) (*miro.Board, error) {
	c.record("CopyBoard")
	if c.CopyBoardFunc == nil {
		return nil, errUnstubbed("CopyBoard")
	}
	return c.CopyBoardFunc(ctx, sourceBoardID, req)
}

func (c *Client) ListBoardMembers(ctx context.Context, boardID string, params miro.PageParams) (*miro.Page[miro.BoardMember], error) {
	c.record("ListBoardMembers")
	if c.ListBoardMembersFunc == nil {
		return nil, errUnstubbed("ListBoardMembers")
	}
	return c.ListBoardMembersFunc(ctx, boardID, params)
}

func (c *Client) GetBoardMember(ctx context.Context, boardID, memberID string) (*miro.BoardMember, error) {
	c.record("GetBoardMember")
	if c.GetBoardMemberFunc == nil {
		return nil, errUnstubbed("GetBoardMember")
	}
	return c.GetBoardMemberFunc(ctx, boardID, memberID)
}

func (c *Client) ShareBoard(ctx context.Context, boardID string, req miro.ShareRequest) (*miro.Page[miro.BoardMember], error) {
	c.record("ShareBoard")
	if c.ShareBoardFunc == nil {
		return nil, errUnstubbed("ShareBoard")
	}
	return c.ShareBoardFunc(ctx, boardID, req)
}

func (c *Client) UpdateBoardMember(ctx context.Context, boardID, memberID, role string) (*miro.BoardMember, error) {
	c.record("UpdateBoardMember")
	if c.UpdateBoardMemberFunc == nil {
		return nil, errUnstubbed("UpdateBoardMember")
	}
	return c.UpdateBoardMemberFunc(ctx, boardID, memberID, role)
}

func (c *Client) RemoveBoardMember(ctx context.Context, boardID, memberID string) error {
	c.record("RemoveBoardMember")
	if c.RemoveBoardMemberFunc == nil {
		return errUnstubbed("RemoveBoardMember")
	}
	return c.RemoveBoardMemberFunc(ctx, boardID, memberID)
}

func (c *Client) ListItems(ctx context.Context, boardID string, params miro.ListItemsParams) (*miro.Page[miro.Item], error) {
	c.record("ListItems")
	if c.ListItemsFunc == nil {
		return nil, errUnstubbed("ListItems")
	}
	return c.ListItemsFunc(ctx, boardID, params)
}

func (c *Client) GetItem(ctx context.Context, boardID, itemID string) (*miro.Item, error) {
	c.record("GetItem")
	if c.GetItemFunc == nil {
		return nil, errUnstubbed("GetItem")
	}
	return c.GetItemFunc(ctx, boardID, itemID)
}

func (c *Client) UpdateItem(ctx context.Context, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error) {
	c.record("UpdateItem")
	if c.UpdateItemFunc == nil {
		return nil, errUnstubbed("UpdateItem")
	}
	return c.UpdateItemFunc(ctx, boardID, itemID, req)
}

func (c *Client) DeleteItem(ctx context.Context, boardID, itemID string) error {
	c.record("DeleteItem")
	if c.DeleteItemFunc == nil {
		return errUnstubbed("DeleteItem")
	}
	return c.DeleteItemFunc(ctx, boardID, itemID)
}

func (c *Client) CreateStickyNote(ctx context.Context, boardID string, req miro.ItemRequest) (*miro.Item, error) {
	c.record("CreateStickyNote")
	if c.CreateStickyNoteFunc == nil {
		return nil, errUnstubbed("CreateStickyNote")
	}
	return c.CreateStickyNoteFunc(ctx, boardID, req)
}

func (c *Client) UpdateStickyNote(ctx context.Context, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error) {
	c.record("UpdateStickyNote")
	if c.UpdateStickyNoteFunc == nil {
		return nil, errUnstubbed("UpdateStickyNote")
	}
	return c.UpdateStickyNoteFunc(ctx, boardID, itemID, req)
}

func (c *Client) CreateShape(ctx context.Context, boardID string, req miro.ItemRequest) (*miro.Item, error) {
	c.record("CreateShape")
	if c.CreateShapeFunc == nil {
		return nil, errUnstubbed("CreateShape")
	}
	return c.CreateShapeFunc(ctx, boardID, req)
}

func (c *Client) UpdateShape(ctx context.Context, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error) {
	c.record("UpdateShape")
	if c.UpdateShapeFunc == nil {
		return nil, errUnstubbed("UpdateShape")
	}
	return c.UpdateShapeFunc(ctx, boardID, itemID, req)
}

func (c *Client) CreateText(ctx context.Context, boardID string, req miro.ItemRequest) (*miro.Item, error) {
	c.record("CreateText")
	if c.CreateTextFunc == nil {
		return nil, errUnstubbed("CreateText")
	}
	return c.CreateTextFunc(ctx, boardID, req)
}

func (c *Client) UpdateText(ctx context.Context, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error) {
	c.record("UpdateText")
	if c.UpdateTextFunc == nil {
		return nil, errUnstubbed("UpdateText")
	}
	return c.UpdateTextFunc(ctx, boardID, itemID, req)
}

func (c *Client) CreateCard(ctx context.Context, boardID string, req miro.ItemRequest) (*miro.Item, error) {
	c.record("CreateCard")
	if c.CreateCardFunc == nil {
		return nil, errUnstubbed("CreateCard")
	}
	return c.CreateCardFunc(ctx, boardID, req)
}

func (c *Client) UpdateCard(ctx context.Context, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error) {
	c.record("UpdateCard")
	if c.UpdateCardFunc == nil {
		return nil, errUnstubbed("UpdateCard")
	}
	return c.UpdateCardFunc(ctx, boardID, itemID, req)
}

func (c *Client) CreateAppCard(ctx context.Context, boardID string, req miro.ItemRequest) (*miro.Item, error) {
	c.record("CreateAppCard")
	if c.CreateAppCardFunc == nil {
		return nil, errUnstubbed("CreateAppCard")
	}
	return c.CreateAppCardFunc(ctx, boardID, req)
}

func (c *Client) UpdateAppCard(ctx context.Context, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error) {
	c.record("UpdateAppCard")
	if c.UpdateAppCardFunc == nil {
		return nil, errUnstubbed("UpdateAppCard")
	}
	return c.UpdateAppCardFunc(ctx, boardID, itemID, req)
}

func (c *Client) CreateFrame(ctx context.Context, boardID string, req miro.ItemRequest) (*miro.Item, error) {
	c.record("CreateFrame")
	if c.CreateFrameFunc == nil {
		return nil, errUnstubbed("CreateFrame")
	}
	return c.CreateFrameFunc(ctx, boardID, req)
}

func (c *Client) UpdateFrame(ctx context.Context, boardID, itemID string, req miro.ItemRequest) (*miro.Item, error) {
	c.record("UpdateFrame")
	if c.UpdateFrameFunc == nil {
		return nil, errUnstubbed("UpdateFrame")
	}
	return c.UpdateFrameFunc(ctx, boardID, itemID, req)
}

func (c *Client) CreateEmbed(ctx context.Context, boardID string, req miro.ItemRequest) (*miro.Item, error) {
	c.record("CreateEmbed")
	if c.CreateEmbedFunc == nil {
		return nil, errUnstubbed("CreateEmbed")
	}
	return c.CreateEmbedFunc(ctx, boardID, req)
}

func (c *Client) CreateImage(ctx context.Context, boardID string, req miro.ItemRequest) (*miro.Item, error) {
	c.record("CreateImage")
	if c.CreateImageFunc == nil {
		return nil, errUnstubbed("CreateImage")
	}
	return c.CreateImageFunc(ctx, boardID, req)
}

func (c *Client) CreateDocument(ctx context.Context, boardID string, req miro.ItemRequest) (*miro.Item, error) {
	c.record("CreateDocument")
	if c.CreateDocumentFunc == nil {
		return nil, errUnstubbed("CreateDocument")
	}
	return c.CreateDocumentFunc(ctx, boardID, req)
}

func (c *Client) ListConnectors(ctx context.Context, boardID string, params miro.PageParams) (*miro.Page[miro.Connector], error) {
	c.record("ListConnectors")
	if c.ListConnectorsFunc == nil {
		return nil, errUnstubbed("ListConnectors")
	}
	return c.ListConnectorsFunc(ctx, boardID, params)
}

func (c *Client) GetConnector(ctx context.Context, boardID, connectorID string) (*miro.Connector, error) {
	c.record("GetConnector")
	if c.GetConnectorFunc == nil {
		return nil, errUnstubbed("GetConnector")
	}
	return c.GetConnectorFunc(ctx, boardID, connectorID)
}

func (c *Client) CreateConnector(ctx context.Context, boardID string, req miro.ConnectorRequest) (*miro.Connector, error) {
	c.record("CreateConnector")
	if c.CreateConnectorFunc == nil {
		return nil, errUnstubbed("CreateConnector")
	}
	return c.CreateConnectorFunc(ctx, boardID, req)
}

func (c *Client) UpdateConnector(ctx context.Context, boardID, connectorID string, req miro.ConnectorRequest) (*miro.Connector, error) {
	c.record("UpdateConnector")
	if c.UpdateConnectorFunc == nil {
		return nil, errUnstubbed("UpdateConnector")
	}
	return c.UpdateConnectorFunc(ctx, boardID, connectorID, req)
}

func (c *Client) DeleteConnector(ctx context.Context, boardID, connectorID string) error {
	c.record("DeleteConnector")
	if c.DeleteConnectorFunc == nil {
		return errUnstubbed("DeleteConnector")
	}
	return c.DeleteConnectorFunc(ctx, boardID, connectorID)
}

func (c *Client) ListTags(ctx context.Context, boardID string, params miro.PageParams) (*miro.Page[miro.Tag], error) {
	c.record("ListTags")
	if c.ListTagsFunc == nil {
		return nil, errUnstubbed("ListTags")
	}
	return c.ListTagsFunc(ctx, boardID, params)
}

func (c *Client) GetTag(ctx context.Context, boardID, tagID string) (*miro.Tag, error) {
	c.record("GetTag")
	if c.GetTagFunc == nil {
		return nil, errUnstubbed("GetTag")
	}
	return c.GetTagFunc(ctx, boardID, tagID)
}

func (c *Client) CreateTag(ctx context.Context, boardID string, req miro.TagRequest) (*miro.Tag, error) {
	c.record("CreateTag")
	if c.CreateTagFunc == nil {
		return nil, errUnstubbed("CreateTag")
	}
	return c.CreateTagFunc(ctx, boardID, req)
}

func (c *Client) UpdateTag(ctx context.Context, boardID, tagID string, req miro.TagRequest) (*miro.Tag, error) {
	c.record("UpdateTag")
	if c.UpdateTagFunc == nil {
		return nil, errUnstubbed("UpdateTag")
	}
	return c.UpdateTagFunc(ctx, boardID, tagID, req)
}

func (c *Client) DeleteTag(ctx context.Context, boardID, tagID string) error {
	c.record("DeleteTag")
	if c.DeleteTagFunc == nil {
		return errUnstubbed("DeleteTag")
	}
	return c.DeleteTagFunc(ctx, boardID, tagID)
}

func (c *Client) AttachTag(ctx context.Context, boardID, itemID, tagID string) error {
	c.record("AttachTag")
	if c.AttachTagFunc == nil {
		return errUnstubbed("AttachTag")
	}
	return c.AttachTagFunc(ctx, boardID, itemID, tagID)
}

func (c *Client) DetachTag(ctx context.Context, boardID, itemID, tagID string) error {
	c.record("DetachTag")
	if c.DetachTagFunc == nil {
		return errUnstubbed("DetachTag")
	}
	return c.DetachTagFunc(ctx, boardID, itemID, tagID)
}

func (c *Client) ListItemTags(ctx context.Context, boardID, itemID string) ([]miro.Tag, error) {
	c.record("ListItemTags")
	if c.ListItemTagsFunc == nil {
		return nil, errUnstubbed("ListItemTags")
	}
	return c.ListItemTagsFunc(ctx, boardID, itemID)
}

func (c *Client) ListItemsByTag(ctx context.Context, boardID, tagID string, params miro.PageParams) (*miro.Page[miro.Item], error) {
	c.record("ListItemsByTag")
	if c.ListItemsByTagFunc == nil {
		return nil, errUnstubbed("ListItemsByTag")
	}
	return c.ListItemsByTagFunc(ctx, boardID, tagID, params)
}

func (c *Client) ListGroups(ctx context.Context, boardID string, params miro.PageParams) (*miro.Page[miro.Group], error) {
	c.record("ListGroups")
	if c.ListGroupsFunc == nil {
		return nil, errUnstubbed("ListGroups")
	}
	return c.ListGroupsFunc(ctx, boardID, params)
}

func (c *Client) GetGroup(ctx context.Context, boardID, groupID string) (*miro.Group, error) {
	c.record("GetGroup")
	if c.GetGroupFunc == nil {
		return nil, errUnstubbed("GetGroup")
	}
	return c.GetGroupFunc(ctx, boardID, groupID)
}

func (c *Client) CreateGroup(ctx context.Context, boardID string, itemIDs []string) (*miro.Group, error) {
	c.record("CreateGroup")
	if c.CreateGroupFunc == nil {
		return nil, errUnstubbed("CreateGroup")
	}
	return c.CreateGroupFunc(ctx, boardID, itemIDs)
}

func (c *Client) ListGroupItems(ctx context.Context, boardID, groupID string, params miro.PageParams) (*miro.Page[miro.Item], error) {
	c.record("ListGroupItems")
	if c.ListGroupItemsFunc == nil {
		return nil, errUnstubbed("ListGroupItems")
	}
	return c.ListGroupItemsFunc(ctx, boardID, groupID, params)
}

func (c *Client) Ungroup(ctx context.Context, boardID, groupID string) error {
	c.record("Ungroup")
	if c.UngroupFunc == nil {
		return errUnstubbed("Ungroup")
	}
	return c.UngroupFunc(ctx, boardID, groupID)
}
