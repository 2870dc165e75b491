package model

// Per-entry field setters used by Document.UpdateEntry. Values arrive as
// decoded JSON, so numbers may be float64 and bullet lists may be []any;
// anything that does not convert leaves the field untouched.

func (e Experience) withField(field string, v any) Experience {
	switch field {
	case "position":
		setString(v, &e.Position)
	case "company":
		setString(v, &e.Company)
	case "location":
		setString(v, &e.Location)
	case "startDate":
		setString(v, &e.StartDate)
	case "endDate":
		setString(v, &e.EndDate)
	case "current":
		setBool(v, &e.Current)
	case "description":
		setStrings(v, &e.Description)
	}
	return e
}

func (e Education) withField(field string, v any) Education {
	switch field {
	case "degree":
		setString(v, &e.Degree)
	case "institution":
		setString(v, &e.Institution)
	case "location":
		setString(v, &e.Location)
	case "graduationYear":
		setString(v, &e.GraduationYear)
	case "gpa":
		setString(v, &e.GPA)
	}
	return e
}

func (s Skill) withField(field string, v any) Skill {
	switch field {
	case "name":
		setString(v, &s.Name)
	case "level":
		setInt(v, &s.Level)
	}
	return s
}

func (l Language) withField(field string, v any) Language {
	switch field {
	case "name":
		setString(v, &l.Name)
	case "level":
		setString(v, &l.Level)
	}
	return l
}

func (c Certification) withField(field string, v any) Certification {
	switch field {
	case "name":
		setString(v, &c.Name)
	case "issuer":
		setString(v, &c.Issuer)
	case "date":
		setString(v, &c.Date)
	case "expiryDate":
		setString(v, &c.ExpiryDate)
	}
	return c
}

func (p Project) withField(field string, v any) Project {
	switch field {
	case "name":
		setString(v, &p.Name)
	case "description":
		setString(v, &p.Description)
	case "technologies":
		setStrings(v, &p.Technologies)
	case "startDate":
		setString(v, &p.StartDate)
	case "endDate":
		setString(v, &p.EndDate)
	case "url":
		setString(v, &p.URL)
	}
	return p
}

func (p Publication) withField(field string, v any) Publication {
	switch field {
	case "title":
		setString(v, &p.Title)
	case "publisher":
		setString(v, &p.Publisher)
	case "date":
		setString(v, &p.Date)
	case "url":
		setString(v, &p.URL)
	case "description":
		setString(v, &p.Description)
	}
	return p
}

func (vo Volunteering) withField(field string, v any) Volunteering {
	switch field {
	case "organization":
		setString(v, &vo.Organization)
	case "role":
		setString(v, &vo.Role)
	case "startDate":
		setString(v, &vo.StartDate)
	case "endDate":
		setString(v, &vo.EndDate)
	case "description":
		setStrings(v, &vo.Description)
	}
	return vo
}

func (a Award) withField(field string, v any) Award {
	switch field {
	case "title":
		setString(v, &a.Title)
	case "issuer":
		setString(v, &a.Issuer)
	case "date":
		setString(v, &a.Date)
	case "description":
		setString(v, &a.Description)
	}
	return a
}

func (i Interest) withField(field string, v any) Interest {
	switch field {
	case "name":
		setString(v, &i.Name)
	case "category":
		setString(v, &i.Category)
	}
	return i
}

func setString(v any, dst *string) {
	if s, ok := v.(string); ok {
		*dst = s
	}
}

func setBool(v any, dst *bool) {
	if b, ok := v.(bool); ok {
		*dst = b
	}
}

func setInt(v any, dst *int) {
	switch n := v.(type) {
	case int:
		*dst = n
	case float64:
		*dst = int(n)
	}
}

func setStrings(v any, dst *[]string) {
	switch s := v.(type) {
	case []string:
		*dst = append([]string(nil), s...)
	case []any:
		out := make([]string, 0, len(s))
		for _, it := range s {
			if str, ok := it.(string); ok {
				out = append(out, str)
			}
		}
		*dst = out
	}
}
