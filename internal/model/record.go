package model

import "encoding/json"

// Template identifiers form a closed set; anything else is rendered with
// the default.
const (
	TemplateJamesWatson  = "james-watson"
	TemplateRachelMarsh  = "rachel-marsh"
	TemplateStevenEdward = "steven-edward"
	TemplateJeremyTorres = "jeremy-torres"

	DefaultTemplate = TemplateJamesWatson
)

// TemplateIDs lists the supported template identifiers in display order.
func TemplateIDs() []string {
	return []string{TemplateJamesWatson, TemplateRachelMarsh, TemplateStevenEdward, TemplateJeremyTorres}
}

// KnownTemplate reports whether id is one of the four supported templates.
func KnownTemplate(id string) bool {
	switch id {
	case TemplateJamesWatson, TemplateRachelMarsh, TemplateStevenEdward, TemplateJeremyTorres:
		return true
	}
	return false
}

// NormalizeTemplate maps unrecognized identifiers to the default template.
func NormalizeTemplate(id string) string {
	if KnownTemplate(id) {
		return id
	}
	return DefaultTemplate
}

// Record is the per-user persisted blob: the document, the selected
// template and an ISO-8601 timestamp of the last write.
type Record struct {
	CVData           Document `json:"cvData"`
	SelectedTemplate string   `json:"selectedTemplate"`
	LastUpdated      string   `json:"lastUpdated,omitempty"`
}

// EmptyRecord is what a user without a stored CV gets back; absence of a
// record is an expected state, not an error.
func EmptyRecord() Record {
	return Record{CVData: EmptyDocument(), SelectedTemplate: DefaultTemplate}
}

// DecodeDocument parses a stored cvData blob. Anything malformed defaults
// silently to the empty document; a bad stored record must never be a hard
// failure.
func DecodeDocument(raw []byte) Document {
	if len(raw) == 0 {
		return EmptyDocument()
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return EmptyDocument()
	}
	return doc
}
