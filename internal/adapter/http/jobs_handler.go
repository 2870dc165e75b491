package http

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/phuslu/log"

	"github.com/Zamiel01/vitaebot/internal/domain"
)

// JobSource is the slice of the feed service the dashboard handlers need.
type JobSource interface {
	Jobs() []domain.Job
	Categories() []domain.CategoryCount
	FetchedAt() time.Time
	Refresh(ctx context.Context) error
}

type JobsHandler struct {
	feed     JobSource
	validate *validator.Validate
}

func NewJobsHandler(feed JobSource) *JobsHandler {
	return &JobsHandler{feed: feed, validate: validator.New()}
}

type jobsQuery struct {
	Search   string `query:"search"`
	Location string `query:"location"`
	Category string `query:"category"`
	Salary   string `query:"salary" validate:"omitempty,oneof=all with-salary no-salary"`
}

// ListJobs filters the cached feed with the dashboard's four controls.
func (h *JobsHandler) ListJobs(c *fiber.Ctx) error {
	var q jobsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid query"})
	}
	if err := h.validate.Struct(q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid salary filter"})
	}

	jobs := domain.FilterJobs(h.feed.Jobs(), domain.JobFilter{
		Search:   q.Search,
		Location: q.Location,
		Category: q.Category,
		Salary:   q.Salary,
	})
	return c.JSON(fiber.Map{"jobs": jobs, "total": len(jobs)})
}

// JobCategories returns the top bucket counts for the dashboard chart.
func (h *JobsHandler) JobCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": h.feed.Categories()})
}

// RefreshJobs re-fetches the feed on demand. On failure the cached list
// stays as it was and the client is told to retry.
func (h *JobsHandler) RefreshJobs(c *fiber.Ctx) error {
	if err := h.feed.Refresh(c.Context()); err != nil {
		log.Warn().Err(err).Msg("job feed refresh failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to refresh job feed"})
	}
	return c.JSON(fiber.Map{"status": "refreshed", "total": len(h.feed.Jobs()), "fetchedAt": h.feed.FetchedAt()})
}
