package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestMapFeedItemsSkipsLegalNotice(t *testing.T) {
	raw := []map[string]interface{}{
		{"legal": "Please respect the API terms."},
		{"id": "1", "position": "Go Developer", "company": "Acme"},
	}
	jobs := MapFeedItems(raw)
	require.Len(t, jobs, 1)
	assert.Equal(t, "1", jobs[0].ID)
}

func TestMapFeedItemsDefaults(t *testing.T) {
	raw := []map[string]interface{}{
		{"id": float64(12345)},
	}
	jobs := MapFeedItems(raw)
	require.Len(t, jobs, 1)
	assert.Equal(t, "12345", jobs[0].ID)
	assert.Equal(t, "Untitled Position", jobs[0].Title)
	assert.Equal(t, "Unknown Company", jobs[0].Company)
	assert.Equal(t, "Remote", jobs[0].Location)
	assert.Equal(t, "Other", jobs[0].Category)
}

func TestMapFeedItemsFields(t *testing.T) {
	raw := []map[string]interface{}{
		{
			"id":       "7",
			"position": "Backend Engineer",
			"company":  "Widgets",
			"location": "Europe",
			"salary":   "$100k",
			"tags":     []interface{}{"golang", 42.0, "postgres"},
			"date":     "2026-08-01T00:00:00Z",
			"url":      "https://example.com/7",
		},
	}
	jobs := MapFeedItems(raw)
	require.Len(t, jobs, 1)
	j := jobs[0]
	assert.Equal(t, "Backend Engineer", j.Title)
	assert.Equal(t, "Europe", j.Location)
	// non-string tag entries are dropped
	assert.Equal(t, []string{"golang", "postgres"}, j.Tags)
	// "engineer" outranks "backend" in the bucket rules
	assert.Equal(t, "Engineer", j.Category)
}

func TestJobFeedRefresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"legal": "notice"},
			{"id": "1", "position": "Go Developer", "company": "Acme", "location": "Remote"}
		]`))
	}))
	defer srv.Close()

	feed := NewJobFeed(srv.URL)
	assert.True(t, feed.FetchedAt().IsZero())

	require.NoError(t, feed.Refresh(context.Background()))
	require.Len(t, feed.Jobs(), 1)
	assert.Equal(t, "Go Developer", feed.Jobs()[0].Title)
	assert.False(t, feed.FetchedAt().IsZero())

	cats := feed.Categories()
	require.NotEmpty(t, cats)
	assert.Equal(t, "Developer", cats[0].Category)
}

func TestJobFeedRefreshThrottled(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`[{"id": "1", "position": "Dev"}]`))
	}))
	defer srv.Close()

	feed := NewJobFeed(srv.URL)
	require.NoError(t, feed.Refresh(context.Background()))
	// inside the rate window the refresh is dropped, not failed
	require.NoError(t, feed.Refresh(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestJobFeedRefreshFailureKeepsCache(t *testing.T) {
	fail := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[{"id": "1", "position": "Go Developer"}]`))
	}))
	defer srv.Close()

	feed := NewJobFeed(srv.URL)
	require.NoError(t, feed.Refresh(context.Background()))
	require.Len(t, feed.Jobs(), 1)

	fail = true
	feed.limiter.SetLimit(rate.Inf) // lift the throttle so the fetch actually runs
	err := feed.Refresh(context.Background())
	require.Error(t, err)
	assert.Len(t, feed.Jobs(), 1)
}
