package model

import (
	"strings"
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// InterviewRound is one stage of a company's interview process.
type InterviewRound struct {
	Name    string `json:"name"`
	Details string `json:"details"`
}

// Placement is a single placement experience write-up. The zero-valued
// fields of an instance built through NewPlacement are always the
// documented defaults, never nil containers.
type Placement struct {
	ID                     string           `json:"id"`
	CompanyName            string           `json:"companyName"`
	CompanyLogo            string           `json:"companyLogo"`
	Role                   string           `json:"role"`
	Location               string           `json:"location"`
	BatchYear              int              `json:"batchYear"`
	Difficulty             Difficulty       `json:"difficulty"`
	InterviewRounds        []InterviewRound `json:"interviewRounds"`
	CommonlyAskedQuestions []string         `json:"commonlyAskedQuestions"`
	Tips                   string           `json:"tips"`
	LinkedinProfile        string           `json:"linkedinProfile,omitempty"`
	Email                  string           `json:"email,omitempty"`
	CreatedAt              time.Time        `json:"createdAt"`
	UpdatedAt              time.Time        `json:"updatedAt"`

	// wrong-container-kind inputs are remembered here so Validate can
	// report them instead of the constructor failing
	badRounds    bool
	badQuestions bool
}

// NewPlacement builds a fully populated Placement from untyped input,
// substituting defaults for anything missing. It never fails.
func NewPlacement(raw map[string]any) *Placement {
	p := &Placement{
		CompanyName:     docString(raw, "companyName"),
		CompanyLogo:     docString(raw, "companyLogo"),
		Role:            docString(raw, "role"),
		Location:        docString(raw, "location"),
		BatchYear:       docInt(raw, "batchYear", time.Now().Year()),
		Difficulty:      Difficulty(docString(raw, "difficulty")),
		Tips:            docString(raw, "tips"),
		LinkedinProfile: docString(raw, "linkedinProfile"),
		Email:           docString(raw, "email"),
		CreatedAt:       NormalizeTimestamp(raw["createdAt"]),
		UpdatedAt:       NormalizeTimestamp(raw["updatedAt"]),
	}
	if p.Difficulty == "" {
		p.Difficulty = DifficultyMedium
	}
	p.InterviewRounds, p.badRounds = docRounds(raw, "interviewRounds")
	p.CommonlyAskedQuestions, p.badQuestions = docStrings(raw, "commonlyAskedQuestions")
	return p
}

// PlacementFromDocument reconstructs a Placement from a stored document,
// assigning the store id and normalizing timestamp fields.
func PlacementFromDocument(id string, doc map[string]any) *Placement {
	p := NewPlacement(doc)
	p.ID = id
	return p
}

// Validate returns every violated rule, not just the first.
func (p *Placement) Validate() []string {
	errs := []string{}

	if strings.TrimSpace(p.CompanyName) == "" {
		errs = append(errs, "Company name is required")
	}
	if strings.TrimSpace(p.Role) == "" {
		errs = append(errs, "Role is required")
	}
	if p.BatchYear < 2000 || p.BatchYear > time.Now().Year()+5 {
		errs = append(errs, "Valid batch year is required")
	}
	switch p.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		errs = append(errs, "Difficulty must be Easy, Medium, or Hard")
	}
	if p.badRounds || p.InterviewRounds == nil {
		errs = append(errs, "Interview rounds must be an array")
	}
	if p.badQuestions || p.CommonlyAskedQuestions == nil {
		errs = append(errs, "Commonly asked questions must be an array")
	}

	return errs
}

// Document projects the placement onto the exact field set persisted in
// the store. The id is the document key and stays out of the body;
// timestamps are carried through as given.
func (p *Placement) Document() map[string]any {
	return map[string]any{
		"companyName":            p.CompanyName,
		"companyLogo":            p.CompanyLogo,
		"role":                   p.Role,
		"location":               p.Location,
		"batchYear":              p.BatchYear,
		"difficulty":             string(p.Difficulty),
		"interviewRounds":        p.InterviewRounds,
		"commonlyAskedQuestions": p.CommonlyAskedQuestions,
		"tips":                   p.Tips,
		"linkedinProfile":        p.LinkedinProfile,
		"email":                  p.Email,
		"createdAt":              p.CreatedAt,
		"updatedAt":              p.UpdatedAt,
	}
}
