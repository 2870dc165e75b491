package domain

import "strings"

// Job is one posting from the remote-jobs feed, already normalized for
// display. Category is the bucket derived from the posting's title and
// tags; it never influences the CV document.
type Job struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Salary      string   `json:"salary,omitempty"`
	Tags        []string `json:"tags"`
	Date        string   `json:"date"`
	URL         string   `json:"url"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
}

// Filter sentinels. A filter set to FilterAll (or left empty) passes every
// job.
const (
	FilterAll        = "all"
	SalaryWithSalary = "with-salary"
	SalaryNoSalary   = "no-salary"
)

// JobFilter holds the dashboard's four filter controls.
type JobFilter struct {
	Search   string
	Location string
	Category string
	Salary   string
}

func (f JobFilter) active() bool {
	return f.Search != "" ||
		(f.Location != "" && f.Location != FilterAll) ||
		(f.Category != "" && f.Category != FilterAll) ||
		(f.Salary != "" && f.Salary != FilterAll)
}

// FilterJobs is a pure function of (jobs, filter): the search term matches
// title, company or any tag as a case-insensitive substring; location and
// category compare exactly against the posting's location and derived
// bucket; the salary filter checks presence or absence of a salary string.
// With every filter at its sentinel the input slice is returned unchanged.
func FilterJobs(jobs []Job, f JobFilter) []Job {
	if !f.active() {
		return jobs
	}
	search := strings.ToLower(f.Search)
	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if search != "" && !matchesSearch(j, search) {
			continue
		}
		if f.Location != "" && f.Location != FilterAll && j.Location != f.Location {
			continue
		}
		if f.Category != "" && f.Category != FilterAll && j.Category != f.Category {
			continue
		}
		switch f.Salary {
		case SalaryWithSalary:
			if j.Salary == "" {
				continue
			}
		case SalaryNoSalary:
			if j.Salary != "" {
				continue
			}
		}
		out = append(out, j)
	}
	return out
}

func matchesSearch(j Job, search string) bool {
	if strings.Contains(strings.ToLower(j.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(j.Company), search) {
		return true
	}
	for _, tag := range j.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}
