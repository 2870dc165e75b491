package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTemplate(t *testing.T) {
	for _, id := range TemplateIDs() {
		assert.Equal(t, id, NormalizeTemplate(id))
	}
	assert.Equal(t, DefaultTemplate, NormalizeTemplate(""))
	assert.Equal(t, DefaultTemplate, NormalizeTemplate("James-Watson"))
	assert.Equal(t, DefaultTemplate, NormalizeTemplate("classic"))
}

func TestEmptyRecord(t *testing.T) {
	rec := EmptyRecord()
	assert.Equal(t, DefaultTemplate, rec.SelectedTemplate)
	assert.Equal(t, EmptyDocument(), rec.CVData)
	assert.Empty(t, rec.LastUpdated)
}

func TestDecodeDocument(t *testing.T) {
	assert.Equal(t, EmptyDocument(), DecodeDocument(nil))
	assert.Equal(t, EmptyDocument(), DecodeDocument([]byte("not json")))

	doc := DecodeDocument([]byte(`{"summary":"hi","skills":[{"id":"s1","name":"Go","level":4}]}`))
	assert.Equal(t, "hi", doc.Summary)
	require.Len(t, doc.Skills, 1)
	assert.Equal(t, 4, doc.Skills[0].Level)
}

func TestRecordRoundTripOmitsOptionalFields(t *testing.T) {
	rec := Record{
		CVData: Document{
			Education: []Education{{ID: "e1", Degree: "BSc", Institution: "MIT", GraduationYear: "2019"}},
		},
		SelectedTemplate: TemplateRachelMarsh,
	}
	raw, err := json.Marshal(rec)
	require.NoError(t, err)

	// optional keys stay absent rather than serializing as empty strings
	assert.NotContains(t, string(raw), "gpa")
	assert.NotContains(t, string(raw), "lastUpdated")

	var back Record
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, rec, back)
}
