package model

import "github.com/google/uuid"

// Update operations follow the immutable-update pattern: every call builds
// a new Document from the old one plus one changed collection or field.
// Edits that name an unknown id, field, or collection return the document
// unchanged; callers must tolerate the no-op, since removals racing with
// in-flight edits are normal in an interactive client.

// AddEntry appends a default-populated entry with a fresh identifier to
// the named collection and returns the new document together with the id.
// An unknown collection is a no-op and returns an empty id.
func (d Document) AddEntry(c Collection) (Document, string) {
	id := uuid.NewString()
	switch c {
	case CollectionExperience:
		d.Experience = appendEntry(d.Experience, Experience{ID: id, Description: []string{""}})
	case CollectionEducation:
		d.Education = appendEntry(d.Education, Education{ID: id})
	case CollectionSkills:
		d.Skills = appendEntry(d.Skills, Skill{ID: id, Level: 3})
	case CollectionLanguages:
		d.Languages = appendEntry(d.Languages, Language{ID: id, Level: "Intermediate"})
	case CollectionCertifications:
		d.Certifications = appendEntry(d.Certifications, Certification{ID: id})
	case CollectionProjects:
		d.Projects = appendEntry(d.Projects, Project{ID: id, Technologies: []string{}})
	case CollectionPublications:
		d.Publications = appendEntry(d.Publications, Publication{ID: id})
	case CollectionVolunteering:
		d.Volunteering = appendEntry(d.Volunteering, Volunteering{ID: id, Description: []string{""}})
	case CollectionAwards:
		d.Awards = appendEntry(d.Awards, Award{ID: id})
	case CollectionInterests:
		d.Interests = appendEntry(d.Interests, Interest{ID: id})
	default:
		return d, ""
	}
	return d, id
}

// UpdateEntry replaces one field of the entry matching id. Field names are
// the JSON keys; values of the wrong type leave the field as it was.
func (d Document) UpdateEntry(c Collection, id, field string, value any) Document {
	switch c {
	case CollectionExperience:
		d.Experience = updateByID(d.Experience, id, experienceID, func(e Experience) Experience {
			return e.withField(field, value)
		})
	case CollectionEducation:
		d.Education = updateByID(d.Education, id, educationID, func(e Education) Education {
			return e.withField(field, value)
		})
	case CollectionSkills:
		d.Skills = updateByID(d.Skills, id, skillID, func(s Skill) Skill {
			return s.withField(field, value)
		})
	case CollectionLanguages:
		d.Languages = updateByID(d.Languages, id, languageID, func(l Language) Language {
			return l.withField(field, value)
		})
	case CollectionCertifications:
		d.Certifications = updateByID(d.Certifications, id, certificationID, func(c Certification) Certification {
			return c.withField(field, value)
		})
	case CollectionProjects:
		d.Projects = updateByID(d.Projects, id, projectID, func(p Project) Project {
			return p.withField(field, value)
		})
	case CollectionPublications:
		d.Publications = updateByID(d.Publications, id, publicationID, func(p Publication) Publication {
			return p.withField(field, value)
		})
	case CollectionVolunteering:
		d.Volunteering = updateByID(d.Volunteering, id, volunteeringID, func(v Volunteering) Volunteering {
			return v.withField(field, value)
		})
	case CollectionAwards:
		d.Awards = updateByID(d.Awards, id, awardID, func(a Award) Award {
			return a.withField(field, value)
		})
	case CollectionInterests:
		d.Interests = updateByID(d.Interests, id, interestID, func(i Interest) Interest {
			return i.withField(field, value)
		})
	}
	return d
}

// RemoveEntry drops the entry matching id; removing an id that is not
// present is a no-op.
func (d Document) RemoveEntry(c Collection, id string) Document {
	switch c {
	case CollectionExperience:
		d.Experience = removeByID(d.Experience, id, experienceID)
	case CollectionEducation:
		d.Education = removeByID(d.Education, id, educationID)
	case CollectionSkills:
		d.Skills = removeByID(d.Skills, id, skillID)
	case CollectionLanguages:
		d.Languages = removeByID(d.Languages, id, languageID)
	case CollectionCertifications:
		d.Certifications = removeByID(d.Certifications, id, certificationID)
	case CollectionProjects:
		d.Projects = removeByID(d.Projects, id, projectID)
	case CollectionPublications:
		d.Publications = removeByID(d.Publications, id, publicationID)
	case CollectionVolunteering:
		d.Volunteering = removeByID(d.Volunteering, id, volunteeringID)
	case CollectionAwards:
		d.Awards = removeByID(d.Awards, id, awardID)
	case CollectionInterests:
		d.Interests = removeByID(d.Interests, id, interestID)
	}
	return d
}

// SetSummary replaces the free-text summary.
func (d Document) SetSummary(summary string) Document {
	d.Summary = summary
	return d
}

// SetPersonalField replaces one personalInfo sub-field by its JSON key.
// An unknown key is a no-op.
func (d Document) SetPersonalField(field, value string) Document {
	p := d.PersonalInfo
	switch field {
	case "fullName":
		p.FullName = value
	case "email":
		p.Email = value
	case "phone":
		p.Phone = value
	case "location":
		p.Location = value
	case "website":
		p.Website = value
	case "headline":
		p.Headline = value
	case "profileImage":
		p.ProfileImage = value
	default:
		return d
	}
	d.PersonalInfo = p
	return d
}

func experienceID(e Experience) string       { return e.ID }
func educationID(e Education) string         { return e.ID }
func skillID(s Skill) string                 { return s.ID }
func languageID(l Language) string           { return l.ID }
func certificationID(c Certification) string { return c.ID }
func projectID(p Project) string             { return p.ID }
func publicationID(p Publication) string     { return p.ID }
func volunteeringID(v Volunteering) string   { return v.ID }
func awardID(a Award) string                 { return a.ID }
func interestID(i Interest) string           { return i.ID }

// appendEntry clones the slice before appending so the original document's
// backing array is never shared with the result.
func appendEntry[T any](in []T, entry T) []T {
	out := make([]T, 0, len(in)+1)
	out = append(out, in...)
	return append(out, entry)
}

func updateByID[T any](in []T, id string, idOf func(T) string, apply func(T) T) []T {
	idx := -1
	for i, v := range in {
		if idOf(v) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return in
	}
	out := append([]T(nil), in...)
	out[idx] = apply(out[idx])
	return out
}

func removeByID[T any](in []T, id string, idOf func(T) string) []T {
	idx := -1
	for i, v := range in {
		if idOf(v) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return in
	}
	if len(in) == 1 {
		return nil
	}
	out := make([]T, 0, len(in)-1)
	out = append(out, in[:idx]...)
	return append(out, in[idx+1:]...)
}
