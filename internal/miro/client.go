package miro

import "context"

// Client is the capability-complete interface over the Miro REST API v2.
// Each method maps to exactly one remote operation. Implementations must
// normalize failures into the error taxonomy defined in this package.
type Client interface {
	// Boards
	ListBoards(ctx context.Context, params ListBoardsParams) (*Page[Board], error)
	GetBoard(ctx context.Context, boardID string) (*Board, error)
	CreateBoard(ctx context.Context, req BoardRequest) (*Board, error)
	UpdateBoard(ctx context.Context, boardID string, req BoardRequest) (*Board, error)
	DeleteBoard(ctx context.Context, boardID string) error
	CopyBoard(ctx context.Context, sourceBoardID string, req BoardRequest) (*Board, error)

	// Board membership
	ListBoardMembers(ctx context.Context, boardID string, params PageParams) (*Page[BoardMember], error)
	GetBoardMember(ctx context.Context, boardID, memberID string) (*BoardMember, error)
	ShareBoard(ctx context.Context, boardID string, req ShareRequest) (*Page[BoardMember], error)
	UpdateBoardMember(ctx context.Context, boardID, memberID, role string) (*BoardMember, error)
	RemoveBoardMember(ctx context.Context, boardID, memberID string) error

	// Generic items
	ListItems(ctx context.Context, boardID string, params ListItemsParams) (*Page[Item], error)
	GetItem(ctx context.Context, boardID, itemID string) (*Item, error)
	UpdateItem(ctx context.Context, boardID, itemID string, req ItemRequest) (*Item, error)
	DeleteItem(ctx context.Context, boardID, itemID string) error

	// Typed items
	CreateStickyNote(ctx context.Context, boardID string, req ItemRequest) (*Item, error)
	UpdateStickyNote(ctx context.Context, boardID, itemID string, req ItemRequest) (*Item, error)
	CreateShape(ctx context.Context, boardID string, req ItemRequest) (*Item, error)
	UpdateShape(ctx context.Context, boardID, itemID string, req ItemRequest) (*Item, error)
	CreateText(ctx context.Context, boardID string, req ItemRequest) (*Item, error)
	UpdateText(ctx context.Context, boardID, itemID string, req ItemRequest) (*Item, error)
	CreateCard(ctx context.Context, boardID string, req ItemRequest) (*Item, error)
	UpdateCard(ctx context.Context, boardID, itemID string, req ItemRequest) (*Item, error)
	CreateAppCard(ctx context.Context, boardID string, req ItemRequest) (*Item, error)
	UpdateAppCard(ctx context.Context, boardID, itemID string, req ItemRequest) (*Item, error)
	CreateFrame(ctx context.Context, boardID string, req ItemRequest) (*Item, error)
	UpdateFrame(ctx context.Context, boardID, itemID string, req ItemRequest) (*Item, error)
	CreateEmbed(ctx context.Context, boardID string, req ItemRequest) (*Item, error)
	CreateImage(ctx context.Context, boardID string, req ItemRequest) (*Item, error)
	CreateDocument(ctx context.Context, boardID string, req ItemRequest) (*Item, error)

	// Connectors
	ListConnectors(ctx context.Context, boardID string, params PageParams) (*Page[Connector], error)
	GetConnector(ctx context.Context, boardID, connectorID string) (*Connector, error)
	CreateConnector(ctx context.Context, boardID string, req ConnectorRequest) (*Connector, error)
	UpdateConnector(ctx context.Context, boardID, connectorID string, req ConnectorRequest) (*Connector, error)
	DeleteConnector(ctx context.Context, boardID, connectorID string) error

	// Tags
	ListTags(ctx context.Context, boardID string, params PageParams) (*Page[Tag], error)
	GetTag(ctx context.Context, boardID, tagID string) (*Tag, error)
	CreateTag(ctx context.Context, boardID string, req TagRequest) (*Tag, error)
	UpdateTag(ctx context.Context, boardID, tagID string, req TagRequest) (*Tag, error)
	DeleteTag(ctx context.Context, boardID, tagID string) error
	AttachTag(ctx context.Context, boardID, itemID, tagID string) error
	DetachTag(ctx context.Context, boardID, itemID, tagID string) error
	ListItemTags(ctx context.Context, boardID, itemID string) ([]Tag, error)
	ListItemsByTag(ctx context.Context, boardID, tagID string, params PageParams) (*Page[Item], error)

	// Groups
	ListGroups(ctx context.Context, boardID string, params PageParams) (*Page[Group], error)
	GetGroup(ctx context.Context, boardID, groupID string) (*Group, error)
	CreateGroup(ctx context.Context, boardID string, itemIDs []string) (*Group, error)
	ListGroupItems(ctx context.Context, boardID, groupID string, params PageParams) (*Page[Item], error)
	Ungroup(ctx context.Context, boardID, groupID string) error
}
