package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithBaseURL_Validates(t *testing.T) {
	_, err := NewWithBaseURL("not a url", time.Second)
	assert.Error(t, err)

	_, err = NewWithBaseURL("ftp://host", time.Second)
	assert.Error(t, err)

	c, err := NewWithBaseURL("http://host:8080/", time.Second)
	require.NoError(t, err)
	assert.Equal(t, "http://host:8080", c.BaseURL)
}

func TestGetJSON_QueryAndHeaders(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/records", r.URL.Path)
		assert.Equal(t, "2024-03-01", r.URL.Query().Get("from"))
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	require.NoError(t, err)

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, c.GetJSON(context.Background(), "records", url.Values{"from": {"2024-03-01"}}, &out))
	assert.True(t, out.OK)
}

func TestDoJSON_RetriesGetOn5xx(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	require.NoError(t, err)
	c.Retries = 2
	c.Backoff = time.Millisecond

	var out []any
	require.NoError(t, c.GetJSON(context.Background(), "/records", nil, &out))
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestDoJSON_NoRetryOn4xxOrPost(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.Method == http.MethodPost {
			http.Error(w, "down", http.StatusBadGateway)
			return
		}
		http.Error(w, "bad", http.StatusBadRequest)
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	require.NoError(t, err)
	c.Retries = 3
	c.Backoff = time.Millisecond

	err = c.GetJSON(context.Background(), "/x", nil, nil)
	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusBadRequest, he.StatusCode)
	assert.Equal(t, "bad", he.Body)

	err = c.DoJSON(context.Background(), http.MethodPost, "/x", nil, map[string]string{"a": "b"}, nil)
	require.True(t, errors.As(err, &he))
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestDoJSON_RelativePathRequiresBaseURL(t *testing.T) {
	err := New(0).DoJSON(context.Background(), http.MethodGet, "/records", nil, nil, nil)
	assert.Error(t, err)
}
