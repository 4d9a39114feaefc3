package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/useraccount/internal/client/models"
	"github.com/dmitrijs2005/useraccount/internal/logging"
	"github.com/dmitrijs2005/useraccount/internal/netx"
	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request id for correlating client and
// server logs.
const RequestIDHeader = "X-Request-ID"

const (
	pathUsers  = "/users/"
	pathLogin  = "/users/login/"
	pathLogout = "/users/logout/"
)

var _ Client = (*HTTPClient)(nil)

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	base *url.URL
	hc   *http.Client
	jar  http.CookieJar
	log  logging.Logger
}

// NewHTTPClient returns a client for the API rooted at baseURL. timeout
// bounds each request end to end; zero disables it.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host are required", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &HTTPClient{
		base: base,
		// The jar is not attached to hc so cookies are only sent where asked.
		hc:  &http.Client{Timeout: timeout},
		jar: jar,
		log: log.With("component", "api"),
	}, nil
}

func (c *HTTPClient) Register(ctx context.Context, u models.NewUser) (models.User, error) {
	var out models.User
	err := c.do(ctx, http.MethodPost, pathUsers, u, false, &out)
	return out, err
}

func (c *HTTPClient) Login(ctx context.Context, cr models.Credentials) (models.User, error) {
	var out models.User
	err := c.do(ctx, http.MethodPost, pathLogin, cr, false, &out)
	return out, err
}

func (c *HTTPClient) Logout(ctx context.Context) (models.Message, error) {
	var out models.Message
	err := c.do(ctx, http.MethodPost, pathLogout, nil, true, &out)
	return out, err
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := c.do(ctx, http.MethodGet, pathUsers, nil, true, &out)
	return out, err
}

func (c *HTTPClient) ChangePassword(ctx context.Context, id models.UserID, currentPassword, newPassword string) (models.User, error) {
	body := models.PasswordChange{ID: id, CurrentPassword: currentPassword, NewPassword: newPassword}
	var out models.User
	err := c.do(ctx, http.MethodPatch, userPath(id, "password"), body, true, &out)
	return out, err
}

func (c *HTTPClient) ChangeEmail(ctx context.Context, id models.UserID, password, newEmail string) (models.User, error) {
	body := models.EmailChange{ID: id, Password: password, NewEmail: newEmail}
	var out models.User
	err := c.do(ctx, http.MethodPatch, userPath(id, "email"), body, true, &out)
	return out, err
}

func userPath(id models.UserID, leaf string) string {
	return pathUsers + url.PathEscape(id.String()) + "/" + leaf + "/"
}

func (c *HTTPClient) endpoint(path string) *url.URL {
	u := *c.base
	u.Path = strings.TrimRight(c.base.Path, "/") + path
	u.RawPath = ""
	return &u
}

// errorBody is the server's failure payload.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any, credentialed bool, out any) error {
	target := c.endpoint(path)
	reqID := uuid.NewString()
	log := c.log.With("method", method, "path", path, "request_id", reqID)

	req, err := netx.NewJSONRequest(ctx, method, target.String(), body)
	if err != nil {
		return &APIError{Kind: KindUnknown, Err: err}
	}
	req.Header.Set(RequestIDHeader, reqID)
	if credentialed {
		for _, ck := range c.jar.Cookies(target) {
			req.AddCookie(ck)
		}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return &APIError{Kind: KindUnknown, Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	if cks := resp.Cookies(); len(cks) > 0 {
		c.jar.SetCookies(target, cks)
	}

	raw, err := netx.ReadBody(resp)
	if err != nil {
		log.Warn(ctx, "reading response failed", "status", resp.StatusCode, "error", err)
		return &APIError{Kind: KindUnknown, Status: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	log.Debug(ctx, "response received", "status", resp.StatusCode, "bytes", len(raw))

	if !netx.IsSuccess(resp.StatusCode) {
		return decodeFailure(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Warn(ctx, "undecodable success body", "status", resp.StatusCode, "error", err)
		return &APIError{Kind: KindUnknown, Status: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrBadResponse, err)}
	}
	return nil
}

func decodeFailure(status int, raw []byte) *APIError {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err != nil {
		return &APIError{Kind: KindUnknown, Status: status}
	}
	return &APIError{Kind: ParseKind(eb.Error), Raw: eb.Error, Message: eb.Message, Status: status}
}
