package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nutrisnap/internal/platform/httpclient"
	"nutrisnap/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("supabase client not configured")
	ErrUnauthorized  = errors.New("supabase unauthorized")
	ErrUpstream      = errors.New("supabase upstream error")
	ErrNoRows        = errors.New("supabase: no rows")
)

// Config del backend hospedado. URL + AnonKey vienen del entorno
// (SUPABASE_URL / SUPABASE_ANON_KEY).
type Config struct {
	URL     string
	AnonKey string

	// ServiceKey opcional: si no hay token de usuario en el contexto se usa
	// esta key en Authorization (bypassa RLS; solo server-side).
	ServiceKey string

	Timeout   time.Duration
	Transport http.RoundTripper
}

type Client struct {
	http       *httpclient.Client
	anonKey    string
	serviceKey string
}

// AuthUser es la respuesta de GET /auth/v1/user.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func NewClient(cfg Config) (*Client, error) {
	anon := strings.TrimSpace(cfg.AnonKey)
	if strings.TrimSpace(cfg.URL) == "" || anon == "" {
		return nil, ErrNotConfigured
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	hc, err := httpclient.New(httpclient.Options{
		BaseURL:   cfg.URL,
		Timeout:   timeout,
		Transport: cfg.Transport,
		Headers:   map[string]string{"apikey": anon},
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		http:       hc,
		anonKey:    anon,
		serviceKey: strings.TrimSpace(cfg.ServiceKey),
	}, nil
}

// GetUser valida el access token contra /auth/v1/user.
func (c *Client) GetUser(ctx context.Context, accessToken string) (AuthUser, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return AuthUser{}, ErrUnauthorized
	}

	var out AuthUser
	err := c.http.DoJSON(ctx, httpclient.Request{
		Method:  http.MethodGet,
		Path:    "/auth/v1/user",
		Headers: map[string]string{"Authorization": "Bearer " + accessToken},
		Out:     &out,
	})
	if err != nil {
		return AuthUser{}, classify(err)
	}

	out.ID = strings.TrimSpace(out.ID)
	if out.ID == "" {
		return AuthUser{}, fmt.Errorf("%w: response missing user id", ErrUpstream)
	}
	return out, nil
}

// SignOut revoca la sesión del token (POST /auth/v1/logout).
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	err := c.http.DoJSON(ctx, httpclient.Request{
		Method:  http.MethodPost,
		Path:    "/auth/v1/logout",
		Headers: map[string]string{"Authorization": "Bearer " + strings.TrimSpace(accessToken)},
	})
	if err != nil {
		return classify(err)
	}
	return nil
}

// Insert hace POST /rest/v1/{table}. Un conflicto de PK se reporta como
// *httpclient.HTTPError 409 envuelto en ErrUpstream.
func (c *Client) Insert(ctx context.Context, table string, row any) error {
	err := c.http.DoJSON(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/rest/v1/" + url.PathEscape(table),
		Headers: map[string]string{
			"Authorization": c.bearer(ctx),
			"Prefer":        "return=minimal",
		},
		Body: row,
	})
	if err != nil {
		return classify(err)
	}
	return nil
}

// SelectSingle equivale a from(table).select('*').eq(column, value).single().
// Sin filas => ErrNoRows.
func (c *Client) SelectSingle(ctx context.Context, table, column, value string, out any) error {
	err := c.http.DoJSON(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   "/rest/v1/" + url.PathEscape(table),
		Query: url.Values{
			"select": {"*"},
			column:   {"eq." + value},
		},
		Headers: map[string]string{
			"Authorization": c.bearer(ctx),
			// PostgREST devuelve un objeto (no array) y 406 si no hay exactamente una fila.
			"Accept": "application/vnd.pgrst.object+json",
		},
		Out: out,
	})
	if err != nil {
		if httpclient.StatusCode(err) == http.StatusNotAcceptable {
			return ErrNoRows
		}
		return classify(err)
	}
	return nil
}

func (c *Client) bearer(ctx context.Context) string {
	if claims, ok := auth.ClaimsFrom(ctx); ok && claims.AccessToken != "" {
		return "Bearer " + claims.AccessToken
	}
	if c.serviceKey != "" {
		return "Bearer " + c.serviceKey
	}
	return "Bearer " + c.anonKey
}

func classify(err error) error {
	switch httpclient.StatusCode(err) {
	case 0:
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	default:
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}
}
