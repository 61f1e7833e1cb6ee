package miro

import (
	"context"
	"net/url"
)

func (c *httpClient) ListBoardMembers(ctx context.Context, boardID string, params PageParams) (*Page[BoardMember], error) {
	q := url.Values{}
	params.encode(q)
	return listPage[BoardMember](ctx, c, boardPath(boardID, "members"), q)
}

func (c *httpClient) GetBoardMember(ctx context.Context, boardID, memberID string) (*BoardMember, error) {
	var member BoardMember
	if err := c.get(ctx, boardPath(boardID, "members", url.PathEscape(memberID)), nil, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// ShareBoard invites users by email. The remote API responds with the
// memberships created by the invitation.
func (c *httpClient) ShareBoard(ctx context.Context, boardID string, req ShareRequest) (*Page[BoardMember], error) {
	var page Page[BoardMember]
	if err := c.post(ctx, boardPath(boardID, "members"), nil, req, &page); err != nil {
		return nil, err
	}
	if page.Data == nil {
		page.Data = []BoardMember{}
	}
	page.Size = len(page.Data)
	return &page, nil
}

func (c *httpClient) UpdateBoardMember(ctx context.Context, boardID, memberID, role string) (*BoardMember, error) {
	body := struct {
		Role string `json:"role"`
	}{Role: role}
	var member BoardMember
	if err := c.patch(ctx, boardPath(boardID, "members", url.PathEscape(memberID)), body, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (c *httpClient) RemoveBoardMember(ctx context.Context, boardID, memberID string) error {
	return c.delete(ctx, boardPath(boardID, "members", url.PathEscape(memberID)))
}
