package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aaywp/portal/internal/client/models"
)

const noTokenMessage = "Invalid response format - no token received"

// Login posts credentials and, when the response carries an access token,
// stores it. Nothing is stored on any other outcome.
func (c *Client) Login(ctx context.Context, identifier, secret string) (models.LoginResponse, error) {
	const op = "login"

	var out models.LoginResponse
	req := models.LoginRequest{Email: identifier, Password: secret}
	if err := c.do(ctx, op, http.MethodPost, "/auth/login", req, &out); err != nil {
		c.log.Warn(ctx, "admin login failed", "error", err)
		return models.LoginResponse{}, err
	}

	if out.AccessToken == "" {
		c.log.Warn(ctx, "login response without access token")
		return out, &Error{Op: op, Status: http.StatusOK, Message: noTokenMessage, Err: ErrNoToken}
	}

	subject := identifier
	if out.User != nil && out.User.Email != "" {
		subject = out.User.Email
	}
	if err := c.store.Save(ctx, out.AccessToken, subject); err != nil {
		return out, &Error{Op: op, Err: errCredentialf(err)}
	}
	return out, nil
}

// Logout forgets the stored credential. The backend is not contacted.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return &Error{Op: "logout", Err: errCredentialf(err)}
	}
	return nil
}

// SubmitRegistration posts a directory registration. On failure the
// response body, status and the submitted payload are logged.
func (c *Client) SubmitRegistration(ctx context.Context, p models.Registration, opts ...RequestOption) (models.Envelope[models.Created], error) {
	var out models.Envelope[models.Created]
	if err := c.do(ctx, "submit registration", http.MethodPost, "/directory/", p, &out, opts...); err != nil {
		args := []any{"error", err, "input", p}
		if e, ok := AsError(err); ok {
			args = append(args, "status", e.Status, "body", string(e.Body))
		}
		c.log.Error(ctx, "directory registration rejected", args...)
		return out, err
	}
	return out, nil
}

func (c *Client) SubmitContactForm(ctx context.Context, p models.ContactRequest) (models.Envelope[models.Created], error) {
	var out models.Envelope[models.Created]
	err := c.do(ctx, "submit contact form", http.MethodPost, "/contact", p, &out)
	return out, err
}

// ChatWithAI sends one chat turn. An empty sessionID starts a new
// conversation.
func (c *Client) ChatWithAI(ctx context.Context, message, sessionID string) (models.ChatResponse, error) {
	var out models.ChatResponse
	req := models.ChatRequest{Message: message, SessionID: sessionID}
	err := c.do(ctx, "chat", http.MethodPost, "/agent/chat", req, &out)
	return out, err
}

// PageQuery selects a page of a list endpoint. Zero fields are not sent and
// the backend defaults apply.
type PageQuery struct {
	Page  int
	Limit int
}

func (q PageQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

func (c *Client) GetMembers(ctx context.Context, q PageQuery) (models.Page[models.Member], error) {
	var out models.Page[models.Member]
	err := c.do(ctx, "get members", http.MethodGet, "/directory/", nil, &out, withQuery(q.values()))
	return out, err
}

func (c *Client) GetContactMessages(ctx context.Context, q PageQuery) (models.Page[models.ContactMessage], error) {
	var out models.Page[models.ContactMessage]
	err := c.do(ctx, "get contact messages", http.MethodGet, "/contact/", nil, &out, withQuery(q.values()))
	return out, err
}

func (c *Client) GetAdminStats(ctx context.Context) (models.AdminStats, error) {
	var out models.Envelope[models.AdminStats]
	err := c.do(ctx, "get admin stats", http.MethodGet, "/auth/stats", nil, &out)
	return out.Data, err
}

func (c *Client) GetCommunityStrength(ctx context.Context) (int, error) {
	var out models.Envelope[models.CommunityStrength]
	err := c.do(ctx, "get community strength", http.MethodGet, "/directory/community_strength", nil, &out)
	return out.Data.CommunityStrength, err
}

func (c *Client) GetDirectoryCount(ctx context.Context) (int, error) {
	var out models.Envelope[models.Count]
	err := c.do(ctx, "get directory count", http.MethodGet, "/directory/count", nil, &out)
	return out.Data.Total, err
}

func (c *Client) UpdateMemberStatus(ctx context.Context, id models.ID, status string) error {
	path := "/directory/" + url.PathEscape(id.String()) + "/status"
	return c.do(ctx, "update member status", http.MethodPatch, path, models.StatusUpdate{Status: status}, nil)
}

func (c *Client) DeleteMember(ctx context.Context, id models.ID) error {
	return c.do(ctx, "delete member", http.MethodDelete, "/directory/"+url.PathEscape(id.String()), nil, nil)
}

func (c *Client) DeleteContactMessage(ctx context.Context, id models.ID) error {
	return c.do(ctx, "delete contact message", http.MethodDelete, "/contact/"+url.PathEscape(id.String()), nil, nil)
}
