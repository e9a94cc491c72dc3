package model

import (
	"strings"
	"time"
)

// HigherEducation is a single higher-education experience write-up.
type HigherEducation struct {
	ID                 string            `json:"id"`
	UniversityName     string            `json:"universityName"`
	UniversityLogo     string            `json:"universityLogo"`
	Country            string            `json:"country"`
	Course             string            `json:"course"`
	YearOfAdmission    int               `json:"yearOfAdmission"`
	ExamScores         map[string]string `json:"examScores"`
	ApplicationProcess string            `json:"applicationProcess"`
	VisaProcess        string            `json:"visaProcess"`
	Tips               string            `json:"tips"`
	LinkedinProfile    string            `json:"linkedinProfile,omitempty"`
	Email              string            `json:"email,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`

	badScores bool
}

// NewHigherEducation builds a fully populated HigherEducation from untyped
// input, substituting defaults for anything missing. It never fails.
func NewHigherEducation(raw map[string]any) *HigherEducation {
	e := &HigherEducation{
		UniversityName:     docString(raw, "universityName"),
		UniversityLogo:     docString(raw, "universityLogo"),
		Country:            docString(raw, "country"),
		Course:             docString(raw, "course"),
		YearOfAdmission:    docInt(raw, "yearOfAdmission", time.Now().Year()),
		ApplicationProcess: docString(raw, "applicationProcess"),
		VisaProcess:        docString(raw, "visaProcess"),
		Tips:               docString(raw, "tips"),
		LinkedinProfile:    docString(raw, "linkedinProfile"),
		Email:              docString(raw, "email"),
		CreatedAt:          NormalizeTimestamp(raw["createdAt"]),
		UpdatedAt:          NormalizeTimestamp(raw["updatedAt"]),
	}
	e.ExamScores, e.badScores = docScores(raw, "examScores")
	return e
}

// HigherEducationFromDocument reconstructs a HigherEducation from a stored
// document, assigning the store id and normalizing timestamp fields.
func HigherEducationFromDocument(id string, doc map[string]any) *HigherEducation {
	e := NewHigherEducation(doc)
	e.ID = id
	return e
}

// Validate returns every violated rule, not just the first.
func (e *HigherEducation) Validate() []string {
	errs := []string{}

	if strings.TrimSpace(e.UniversityName) == "" {
		errs = append(errs, "University name is required")
	}
	if strings.TrimSpace(e.Country) == "" {
		errs = append(errs, "Country is required")
	}
	if strings.TrimSpace(e.Course) == "" {
		errs = append(errs, "Course is required")
	}
	if e.YearOfAdmission < 2000 || e.YearOfAdmission > time.Now().Year()+5 {
		errs = append(errs, "Valid year of admission is required")
	}
	if e.badScores || e.ExamScores == nil {
		errs = append(errs, "Exam scores must be an object")
	}

	return errs
}

// Document projects the entity onto the exact field set persisted in the
// store.
func (e *HigherEducation) Document() map[string]any {
	return map[string]any{
		"universityName":     e.UniversityName,
		"universityLogo":     e.UniversityLogo,
		"country":            e.Country,
		"course":             e.Course,
		"yearOfAdmission":    e.YearOfAdmission,
		"examScores":         e.ExamScores,
		"applicationProcess": e.ApplicationProcess,
		"visaProcess":        e.VisaProcess,
		"tips":               e.Tips,
		"linkedinProfile":    e.LinkedinProfile,
		"email":              e.Email,
		"createdAt":          e.CreatedAt,
		"updatedAt":          e.UpdatedAt,
	}
}
