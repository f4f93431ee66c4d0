package models

import (
	"github.com/go-playground/validator/v10"
)

// Collection names in the document store, one per entity type.
const (
	JobCollection         = "job"
	ApplicationCollection = "application"
)

// DefaultEmploymentType is used when a Job is created without a type.
const DefaultEmploymentType = "Full-time"

// EmploymentTypes are the accepted values for Job.Type.
var EmploymentTypes = []string{"Full-time", "Part-time", "Contract", "Internship", "Freelance"}

// Shared validator instance (same engine gin uses for request binding).
var validate = validator.New()

// Job is the document shape of the "job" collection. Jobs are immutable once
// created: there is no update or delete path.
type Job struct {
	Title        string   `json:"title" validate:"required"`
	Department   string   `json:"department" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Type         string   `json:"type" validate:"required,oneof=Full-time Part-time Contract Internship Freelance"`
	Description  string   `json:"description" validate:"required"`
	Requirements []string `json:"requirements"`
	Featured     bool     `json:"featured"`
}

// ApplyDefaults fills the documented defaults: employment type Full-time and
// an empty (not null) requirements list.
func (j *Job) ApplyDefaults() {
	if j.Type == "" {
		j.Type = DefaultEmploymentType
	}
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
}

// Validate checks field presence and the employment type enum. Run before
// persisting, never after a read.
func (j *Job) Validate() error {
	return validate.Struct(j)
}

// Application is the document shape of the "application" collection. The
// job_id reference is checked against the job collection at submission time,
// not enforced by the store.
type Application struct {
	JobID       string `json:"job_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Portfolio   string `json:"portfolio,omitempty" validate:"omitempty,http_url"`
	ResumeURL   string `json:"resume_url,omitempty" validate:"omitempty,http_url"`
	CoverLetter string `json:"cover_letter,omitempty"`
}

// Validate checks email syntax and that the optional links, when present,
// are http(s) URLs.
func (a *Application) Validate() error {
	return validate.Struct(a)
}
