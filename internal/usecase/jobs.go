package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/phuslu/log"
	"golang.org/x/time/rate"

	"github.com/Zamiel01/vitaebot/internal/domain"
)

// DefaultFeedURL is the public remote-jobs feed the dashboard reads.
const DefaultFeedURL = "https://remoteok.com/api"

// JobFeed fetches the remote-jobs feed and keeps the last successful list
// in memory. A failed fetch leaves the cached list untouched, so the
// dashboard keeps showing whatever loaded last (or nothing on first load).
type JobFeed struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter

	mu        sync.RWMutex
	jobs      []domain.Job
	fetchedAt time.Time
}

func NewJobFeed(feedURL string) *JobFeed {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	return &JobFeed{
		url:    feedURL,
		client: &http.Client{Timeout: 30 * time.Second},
		// The feed is a free public API; one fetch per 30s is plenty even
		// with an impatient user mashing refresh.
		limiter: rate.NewLimiter(rate.Every(30*time.Second), 1),
	}
}

// Refresh fetches the feed and replaces the cached list on success.
// Refreshes arriving inside the rate limit window are dropped silently;
// the cache is still warm.
func (f *JobFeed) Refresh(ctx context.Context) error {
	if !f.limiter.Allow() {
		log.Debug().Str("url", f.url).Msg("job feed refresh throttled")
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return fmt.Errorf("build feed request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch job feed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("job feed returned %s", resp.Status)
	}

	var raw []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return fmt.Errorf("decode job feed: %w", err)
	}

	jobs := MapFeedItems(raw)

	f.mu.Lock()
	f.jobs = jobs
	f.fetchedAt = time.Now()
	f.mu.Unlock()

	log.Info().Int("count", len(jobs)).Str("url", f.url).Msg("job feed refreshed")
	return nil
}

// Jobs returns the last successfully fetched list. Callers treat it as
// read-only.
func (f *JobFeed) Jobs() []domain.Job {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.jobs
}

// Categories returns the top bucket counts for the dashboard chart.
func (f *JobFeed) Categories() []domain.CategoryCount {
	return domain.CountCategories(f.Jobs())
}

// FetchedAt reports when the cached list was last replaced; zero until the
// first successful fetch.
func (f *JobFeed) FetchedAt() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.fetchedAt
}

// MapFeedItems normalizes raw feed entries. The feed opens with a legal
// notice object carrying neither id nor position; that entry is skipped.
// Missing display fields get the dashboard's defaults.
func MapFeedItems(raw []map[string]interface{}) []domain.Job {
	jobs := make([]domain.Job, 0, len(raw))
	for _, it := range raw {
		id := stringField(it, "id")
		title := stringField(it, "position")
		if id == "" && title == "" {
			continue
		}
		j := domain.Job{
			ID:          id,
			Title:       fallback(title, "Untitled Position"),
			Company:     fallback(stringField(it, "company"), "Unknown Company"),
			Location:    fallback(stringField(it, "location"), "Remote"),
			Salary:      stringField(it, "salary"),
			Tags:        stringSliceField(it, "tags"),
			Date:        stringField(it, "date"),
			URL:         stringField(it, "url"),
			Description: stringField(it, "description"),
		}
		j.Category = domain.Categorize(j)
		jobs = append(jobs, j)
	}
	return jobs
}

func stringField(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		// ids arrive as JSON numbers
		return fmt.Sprintf("%.0f", v)
	}
	return ""
}

func stringSliceField(m map[string]interface{}, key string) []string {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, it := range raw {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
