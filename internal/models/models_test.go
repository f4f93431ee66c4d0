package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validJob() Job {
	return Job{
		Title:       "Frontend Developer",
		Department:  "Engineering",
		Location:    "Remote",
		Type:        "Full-time",
		Description: "Build immersive UIs.",
	}
}

func validApplication() Application {
	return Application{
		JobID: "8f14e45f-ea4c-4f62-b1b9-0d5e2c9b6f3a",
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	}
}

func TestJobApplyDefaults(t *testing.T) {
	j := Job{Title: "x", Department: "y", Location: "z", Description: "d"}
	j.ApplyDefaults()

	assert.Equal(t, "Full-time", j.Type)
	require.NotNil(t, j.Requirements, "requirements must default to an empty list, not null")
	assert.Empty(t, j.Requirements)
}

func TestJobApplyDefaults_KeepsExplicitValues(t *testing.T) {
	j := Job{Type: "Contract", Requirements: []string{"Blender/C4D"}}
	j.ApplyDefaults()

	assert.Equal(t, "Contract", j.Type)
	assert.Equal(t, []string{"Blender/C4D"}, j.Requirements)
}

func TestJobValidate_EmploymentTypeEnum(t *testing.T) {
	for _, typ := range EmploymentTypes {
		j := validJob()
		j.Type = typ
		assert.NoError(t, j.Validate(), "type %q must be accepted", typ)
	}

	j := validJob()
	j.Type = "Temporary"
	assert.Error(t, j.Validate())

	j.Type = ""
	assert.Error(t, j.Validate())
}

func TestJobValidate_RequiredFields(t *testing.T) {
	for name, mutate := range map[string]func(*Job){
		"title":       func(j *Job) { j.Title = "" },
		"department":  func(j *Job) { j.Department = "" },
		"location":    func(j *Job) { j.Location = "" },
		"description": func(j *Job) { j.Description = "" },
	} {
		t.Run(name, func(t *testing.T) {
			j := validJob()
			mutate(&j)
			assert.Error(t, j.Validate())
		})
	}
}

func TestApplicationValidate_Email(t *testing.T) {
	a := validApplication()
	assert.NoError(t, a.Validate())

	for _, email := range []string{"", "ada", "ada@", "@example.com", "ada example.com"} {
		a := validApplication()
		a.Email = email
		assert.Error(t, a.Validate(), "email %q must be rejected", email)
	}
}

func TestApplicationValidate_OptionalURLs(t *testing.T) {
	a := validApplication()
	a.Portfolio = "https://ada.dev"
	a.ResumeURL = "http://drive.example.com/resume.pdf"
	assert.NoError(t, a.Validate())

	a = validApplication()
	a.Portfolio = "not-a-url"
	assert.Error(t, a.Validate())

	a = validApplication()
	a.ResumeURL = "ftp://files.example.com/resume.pdf"
	assert.Error(t, a.Validate(), "only http(s) links are accepted")

	// Absent optionals are fine.
	a = validApplication()
	assert.NoError(t, a.Validate())
}

func TestApplicationValidate_RequiredFields(t *testing.T) {
	a := validApplication()
	a.JobID = ""
	assert.Error(t, a.Validate())

	a = validApplication()
	a.Name = ""
	assert.Error(t, a.Validate())
}

func TestSchemas_DescribeBothCollections(t *testing.T) {
	schemas := Schemas()
	require.Len(t, schemas, 2)

	byName := map[string]CollectionSchema{}
	for _, s := range schemas {
		byName[s.Collection] = s
	}
	require.Contains(t, byName, JobCollection)
	require.Contains(t, byName, ApplicationCollection)

	job := byName[JobCollection]
	assert.Len(t, job.Fields, 7)

	fields := map[string]FieldSchema{}
	for _, f := range job.Fields {
		fields[f.Name] = f
	}
	assert.True(t, fields["title"].Required)
	assert.False(t, fields["featured"].Required)
	assert.Equal(t, "string[]", fields["requirements"].Type)

	app := byName[ApplicationCollection]
	assert.Len(t, app.Fields, 6)
	for _, f := range app.Fields {
		switch f.Name {
		case "job_id", "name", "email":
			assert.True(t, f.Required, "%s must be required", f.Name)
		default:
			assert.False(t, f.Required, "%s must be optional", f.Name)
		}
	}
}
