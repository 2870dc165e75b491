package domain

import (
	"sort"
	"strings"
)

// CategoryUnmatched is the bucket for postings no rule matches.
const CategoryUnmatched = "Other"

type categoryRule struct {
	substr   string
	category string
}

// categoryRules is evaluated strictly in order with first match winning;
// reordering it changes which bucket ambiguous postings land in ("dev
// lead" is a Developer, not Management), so keep the table order stable.
var categoryRules = []categoryRule{
	{"developer", "Developer"},
	{"dev", "Developer"},
	{"engineer", "Engineer"},
	{"engineering", "Engineer"},
	{"programmer", "Developer"},
	{"software", "Developer"},
	{"frontend", "Frontend Dev"},
	{"backend", "Backend Dev"},
	{"fullstack", "Full Stack Dev"},
	{"full-stack", "Full Stack Dev"},
	{"devops", "DevOps"},
	{"data", "Data Science"},
	{"ml", "Data Science"},
	{"ai", "Data Science"},
	{"designer", "Designer"},
	{"design", "Designer"},
	{"ux", "UX/UI Design"},
	{"ui", "UX/UI Design"},
	{"manager", "Management"},
	{"management", "Management"},
	{"director", "Management"},
	{"lead", "Management"},
	{"marketing", "Marketing"},
	{"sales", "Sales"},
	{"business", "Business Dev"},
	{"finance", "Finance"},
	{"accounting", "Finance"},
	{"hr", "Human Resources"},
	{"recruiter", "Human Resources"},
	{"operations", "Operations"},
	{"product", "Product"},
	{"project", "Project Mgmt"},
	{"content", "Content"},
	{"writer", "Content"},
	{"copywriter", "Content"},
	{"support", "Customer Support"},
	{"customer", "Customer Support"},
	{"qa", "Quality Assurance"},
	{"testing", "Quality Assurance"},
	{"analyst", "Analytics"},
	{"consultant", "Consulting"},
	{"legal", "Legal"},
	{"admin", "Administrative"},
}

// CategoryOf maps one piece of free text to its bucket by scanning the
// rule table in order; the first substring hit wins.
func CategoryOf(text string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return "", false
	}
	for _, r := range categoryRules {
		if strings.Contains(t, r.substr) {
			return r.category, true
		}
	}
	return "", false
}

// Categorize derives a posting's bucket from its title first, then its
// tags in order.
func Categorize(j Job) string {
	if c, ok := CategoryOf(j.Title); ok {
		return c
	}
	for _, tag := range j.Tags {
		if c, ok := CategoryOf(tag); ok {
			return c
		}
	}
	return CategoryUnmatched
}

// CategoryCount is one bar of the dashboard chart.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CountCategories tallies bucket hits across every posting's tags and
// title (a posting with three matching tags contributes three counts, as
// the chart counts postings-per-topic rather than postings) and returns
// the top eight buckets by count.
func CountCategories(jobs []Job) []CategoryCount {
	counts := map[string]int{}
	for _, j := range jobs {
		for _, tag := range j.Tags {
			if c, ok := CategoryOf(tag); ok {
				counts[c]++
			}
		}
		if c, ok := CategoryOf(j.Title); ok {
			counts[c]++
		}
	}

	out := make([]CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CategoryCount{Category: c, Count: n})
	}
	sort.SliceStable(out, func(i, k int) bool {
		if out[i].Count != out[k].Count {
			return out[i].Count > out[k].Count
		}
		return out[i].Category < out[k].Category
	})
	if len(out) > 8 {
		out = out[:8]
	}
	return out
}
