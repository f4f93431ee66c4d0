package dtos

// ApplyRequest is the POST /api/apply payload.
type ApplyRequest struct {
	JobID string `json:"job_id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`

	// Optional Fields
	Portfolio   string `json:"portfolio"`
	ResumeURL   string `json:"resume_url"`
	CoverLetter string `json:"cover_letter"`
}
