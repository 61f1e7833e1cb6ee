package miro

import (
	"net/url"
	"strconv"
)

// Pagination limits enforced on list operations. The remote API rejects
// limits outside this range, so the client clamps before sending.
const (
	MinPageSize     = 1
	MaxPageSize     = 100
	DefaultPageSize = 20
)

// PageParams are the common pagination parameters accepted by list methods.
// Cursor is an opaque continuation token minted by the remote API and must
// be passed back unmodified.
type PageParams struct {
	Limit  int
	Cursor string
}

// encode writes the pagination parameters into q, clamping the limit into
// the range the remote API accepts.
func (p PageParams) encode(q url.Values) {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit < MinPageSize {
		limit = MinPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	q.Set("limit", strconv.Itoa(limit))
	if p.Cursor != "" {
		q.Set("cursor", p.Cursor)
	}
}

// Page is one page of a paginated list response.
// Size always equals len(Data); Cursor is non-empty iff more results exist.
type Page[T any] struct {
	Data   []T    `json:"data"`
	Total  int    `json:"total,omitempty"`
	Size   int    `json:"size"`
	Cursor string `json:"cursor,omitempty"`
}

// HasMore reports whether another page exists beyond this one.
func (p *Page[T]) HasMore() bool {
	return p.Cursor != ""
}

// User identifies a Miro user in board and item metadata.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

// Team identifies the team a board belongs to.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

// Board is a Miro board.
type Board struct {
	ID          string `json:"id"`
	Type        string `json:"type,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ViewLink    string `json:"viewLink,omitempty"`
	Owner       *User  `json:"owner,omitempty"`
	Team        *Team  `json:"team,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	ModifiedAt  string `json:"modifiedAt,omitempty"`
}

// BoardRequest is the payload for creating, updating, or copying a board.
type BoardRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	TeamID      string `json:"teamId,omitempty"`
}

// ListBoardsParams are the filters accepted by ListBoards.
type ListBoardsParams struct {
	PageParams
	TeamID string
	Query  string
	Owner  string
	Sort   string
}

// BoardMember is a user's membership on a specific board.
type BoardMember struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	Type  string `json:"type,omitempty"`
}

// ShareRequest invites users to a board by email with a given role.
type ShareRequest struct {
	Emails  []string `json:"emails"`
	Role    string   `json:"role,omitempty"`
	Message string   `json:"message,omitempty"`
}

// Position places an item on the board surface.
type Position struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Origin string  `json:"origin,omitempty"`
}

// Geometry describes an item's size and rotation.
type Geometry struct {
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Rotation float64 `json:"rotation,omitempty"`
}

// Parent references a containing item (a frame).
type Parent struct {
	ID string `json:"id"`
}

// Item is a board item of any kind. Data and Style are intentionally loose:
// their fields differ per item type and this layer treats them as opaque.
type Item struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Data       map[string]any `json:"data,omitempty"`
	Style      map[string]any `json:"style,omitempty"`
	Position   *Position      `json:"position,omitempty"`
	Geometry   *Geometry      `json:"geometry,omitempty"`
	Parent     *Parent        `json:"parent,omitempty"`
	CreatedAt  string         `json:"createdAt,omitempty"`
	ModifiedAt string         `json:"modifiedAt,omitempty"`
}

// ItemRequest is the wire shape shared by all typed item create and update
// endpoints: a data block, optional style, placement, size, and parent frame.
type ItemRequest struct {
	Data     map[string]any `json:"data,omitempty"`
	Style    map[string]any `json:"style,omitempty"`
	Position *Position      `json:"position,omitempty"`
	Geometry *Geometry      `json:"geometry,omitempty"`
	Parent   *Parent        `json:"parent,omitempty"`
}

// ListItemsParams are the filters accepted by ListItems. Type narrows the
// listing to one item kind server-side; ParentItemID lists the children of
// a frame.
type ListItemsParams struct {
	PageParams
	Type         string
	ParentItemID string
}

// Tag is a board tag that can be attached to card-like items.
type Tag struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	FillColor string `json:"fillColor,omitempty"`
}

// TagRequest is the payload for creating or updating a tag.
type TagRequest struct {
	Title     string `json:"title"`
	FillColor string `json:"fillColor,omitempty"`
}

// ConnectorEndpoint anchors one end of a connector to an item.
type ConnectorEndpoint struct {
	Item     string    `json:"item,omitempty"`
	Position *Position `json:"position,omitempty"`
	Snap     string    `json:"snapTo,omitempty"`
}

// ConnectorCaption is a text label along a connector.
type ConnectorCaption struct {
	Content  string `json:"content"`
	Position string `json:"position,omitempty"`
}

// Connector is a line between two board items.
type Connector struct {
	ID         string             `json:"id"`
	Shape      string             `json:"shape,omitempty"`
	StartItem  *ConnectorEndpoint `json:"startItem,omitempty"`
	EndItem    *ConnectorEndpoint `json:"endItem,omitempty"`
	Captions   []ConnectorCaption `json:"captions,omitempty"`
	Style      map[string]any     `json:"style,omitempty"`
	CreatedAt  string             `json:"createdAt,omitempty"`
	ModifiedAt string             `json:"modifiedAt,omitempty"`
}

// ConnectorRequest is the payload for creating or updating a connector.
type ConnectorRequest struct {
	Shape     string             `json:"shape,omitempty"`
	StartItem *ConnectorEndpoint `json:"startItem,omitempty"`
	EndItem   *ConnectorEndpoint `json:"endItem,omitempty"`
	Captions  []ConnectorCaption `json:"captions,omitempty"`
	Style     map[string]any     `json:"style,omitempty"`
}

// GroupData carries the item IDs belonging to a group.
type GroupData struct {
	Items []string `json:"items"`
}

// Group is a named grouping of board items.
type Group struct {
	ID   string    `json:"id"`
	Data GroupData `json:"data"`
}
