package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"github.com/Zamiel01/vitaebot/internal/model"
)

// TemplateRenderer maps (document, template id) to a standalone HTML page
// sized to a 210mm logical width. Rendering is pure: the same document and
// id always produce the same markup. An unrecognized id falls back to the
// default template instead of failing.
type TemplateRenderer struct {
	tplDir string
}

func NewTemplateRenderer(tplDir string) *TemplateRenderer {
	return &TemplateRenderer{tplDir: tplDir}
}

var templateFuncs = template.FuncMap{
	"initials":   Initials,
	"skillLabel": SkillLabel,
	"dateRange":  DateRange,
	"skillPercent": func(level int) int {
		if level < 1 {
			level = 1
		}
		if level > 4 {
			level = 4
		}
		return level * 25
	},
	"join": func(items []string, sep string) string {
		return strings.Join(items, sep)
	},
}

func (r *TemplateRenderer) RenderHTML(doc model.Document, templateID string) (string, error) {
	id := model.NormalizeTemplate(templateID)
	name := id + ".html"
	tpl, err := template.New(name).Funcs(templateFuncs).ParseFiles(filepath.Join(r.tplDir, name))
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", id, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("execute template %s: %w", id, err)
	}
	return buf.String(), nil
}

// Initials builds the avatar fallback shown when no profile image is set:
// the upper-cased first letter of each name part.
func Initials(fullName string) string {
	var b strings.Builder
	for _, part := range strings.Fields(fullName) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

// SkillLabel maps the 1-4 proficiency scale to its display name.
func SkillLabel(level int) string {
	switch level {
	case 1:
		return "Beginner"
	case 2:
		return "Intermediate"
	case 3:
		return "Advanced"
	case 4:
		return "Expert"
	}
	return ""
}

// DateRange formats an entry's period, honoring the current flag.
func DateRange(start, end string, current bool) string {
	if current || end == model.OpenEnded {
		end = model.OpenEnded
	}
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start
	}
	return start + " - " + end
}
