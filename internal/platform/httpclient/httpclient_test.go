package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_SendsHeadersAndDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "anon", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "eq.u1", r.URL.Query().Get("id"))
		assert.Equal(t, "/rest/v1/users", r.URL.Path)

		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "hi", in["msg"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	c, err := New(Options{BaseURL: ts.URL + "/", Headers: map[string]string{"apikey": "anon"}})
	require.NoError(t, err)

	var out struct {
		OK bool `json:"ok"`
	}
	err = c.DoJSON(context.Background(), Request{
		Method:  http.MethodPost,
		Path:    "rest/v1/users",
		Query:   url.Values{"id": {"eq.u1"}},
		Headers: map[string]string{"Authorization": "Bearer tok"},
		Body:    map[string]string{"msg": "hi"},
		Out:     &out,
	})
	require.NoError(t, err)
	assert.True(t, out.OK)
}

func TestDoJSON_Non2xxIsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotAcceptable)
	}))
	defer ts.Close()

	c, err := New(Options{BaseURL: ts.URL})
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), Request{Path: "/x"})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotAcceptable, StatusCode(err))
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	_, err := New(Options{BaseURL: "::not a url"})
	assert.Error(t, err)
}

func TestDoJSON_RelativePathWithoutBase(t *testing.T) {
	c, err := New(Options{})
	require.NoError(t, err)
	assert.Error(t, c.DoJSON(context.Background(), Request{Path: "/x"}))

	var nilClient *Client
	assert.ErrorIs(t, nilClient.DoJSON(context.Background(), Request{Path: "/x"}), ErrNilClient)
}
