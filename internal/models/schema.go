package models

// FieldSchema describes one document field for schema consumers (the Stuvify
// database viewer reads these to render and validate documents).
type FieldSchema struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

// CollectionSchema describes the document shape of one collection.
type CollectionSchema struct {
	Collection string        `json:"collection"`
	Fields     []FieldSchema `json:"fields"`
}

// Schemas returns the schema descriptors for every collection this API owns.
func Schemas() []CollectionSchema {
	return []CollectionSchema{
		{
			Collection: JobCollection,
			Fields: []FieldSchema{
				{Name: "title", Type: "string", Required: true, Description: "Job title"},
				{Name: "department", Type: "string", Required: true, Description: "Department e.g., Engineering, Design"},
				{Name: "location", Type: "string", Required: true, Description: "Location string e.g., Remote, NYC"},
				{Name: "type", Type: "string", Required: false, Description: "Employment type"},
				{Name: "description", Type: "string", Required: true, Description: "Detailed job description"},
				{Name: "requirements", Type: "string[]", Required: false, Description: "Bullet list of requirements"},
				{Name: "featured", Type: "boolean", Required: false, Description: "Whether to highlight in UI"},
			},
		},
		{
			Collection: ApplicationCollection,
			Fields: []FieldSchema{
				{Name: "job_id", Type: "string", Required: true, Description: "ID of the job being applied to"},
				{Name: "name", Type: "string", Required: true, Description: "Applicant full name"},
				{Name: "email", Type: "string", Required: true, Description: "Applicant email"},
				{Name: "portfolio", Type: "string", Required: false, Description: "Portfolio or website URL"},
				{Name: "resume_url", Type: "string", Required: false, Description: "Link to resume (Drive, Dropbox, etc.)"},
				{Name: "cover_letter", Type: "string", Required: false, Description: "Optional cover letter text"},
			},
		},
	}
}
