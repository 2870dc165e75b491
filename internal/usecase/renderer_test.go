package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zamiel01/vitaebot/internal/model"
)

func rendererTestDoc() model.Document {
	doc := model.EmptyDocument()
	doc = doc.SetPersonalField("fullName", "Ada Lovelace")
	doc = doc.SetPersonalField("headline", "Analyst & Metaphysician")
	doc = doc.SetPersonalField("email", "ada@example.com")
	doc = doc.SetSummary("Wrote the first program.")

	doc, expID := doc.AddEntry(model.CollectionExperience)
	doc = doc.UpdateEntry(model.CollectionExperience, expID, "position", "Analyst")
	doc = doc.UpdateEntry(model.CollectionExperience, expID, "company", "Analytical Engines Ltd")
	doc = doc.UpdateEntry(model.CollectionExperience, expID, "startDate", "1842-01")
	doc = doc.UpdateEntry(model.CollectionExperience, expID, "current", true)
	doc = doc.UpdateEntry(model.CollectionExperience, expID, "description", []string{"Translated and annotated the memoir."})

	doc, skillID := doc.AddEntry(model.CollectionSkills)
	doc = doc.UpdateEntry(model.CollectionSkills, skillID, "name", "Mathematics")
	doc = doc.UpdateEntry(model.CollectionSkills, skillID, "level", 4)
	return doc
}

func TestRenderHTMLAllTemplates(t *testing.T) {
	r := NewTemplateRenderer("../../templates")
	doc := rendererTestDoc()

	for _, id := range model.TemplateIDs() {
		t.Run(id, func(t *testing.T) {
			html, err := r.RenderHTML(doc, id)
			require.NoError(t, err)
			assert.Contains(t, html, "Ada Lovelace")
			assert.Contains(t, html, "Analytical Engines Ltd")
			assert.Contains(t, html, "Mathematics")
		})
	}
}

func TestRenderHTMLUnknownTemplateFallsBack(t *testing.T) {
	r := NewTemplateRenderer("../../templates")
	doc := rendererTestDoc()

	fallback, err := r.RenderHTML(doc, "does-not-exist")
	require.NoError(t, err)
	def, err := r.RenderHTML(doc, model.DefaultTemplate)
	require.NoError(t, err)
	assert.Equal(t, def, fallback)
}

func TestRenderHTMLEmptyDocument(t *testing.T) {
	r := NewTemplateRenderer("../../templates")
	html, err := r.RenderHTML(model.EmptyDocument(), model.DefaultTemplate)
	require.NoError(t, err)
	assert.True(t, strings.Contains(html, "<body"))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AL", Initials("Ada Lovelace"))
	assert.Equal(t, "A", Initials("ada"))
	assert.Equal(t, "", Initials(""))
	assert.Equal(t, "JWD", Initials("john w doe"))
}

func TestSkillLabel(t *testing.T) {
	assert.Equal(t, "Beginner", SkillLabel(1))
	assert.Equal(t, "Intermediate", SkillLabel(2))
	assert.Equal(t, "Advanced", SkillLabel(3))
	assert.Equal(t, "Expert", SkillLabel(4))
	assert.Equal(t, "", SkillLabel(0))
	assert.Equal(t, "", SkillLabel(9))
}

func TestDateRange(t *testing.T) {
	assert.Equal(t, "2020-01 - 2021-06", DateRange("2020-01", "2021-06", false))
	assert.Equal(t, "2020-01 - Present", DateRange("2020-01", "2021-06", true))
	assert.Equal(t, "2020-01 - Present", DateRange("2020-01", "Present", false))
	assert.Equal(t, "2020-01", DateRange("2020-01", "", false))
	assert.Equal(t, "", DateRange("", "", false))
}
