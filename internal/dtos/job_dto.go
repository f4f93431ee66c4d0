package dtos

// JobListQuery carries the optional equality filters of GET /api/jobs.
// Every supplied field narrows the result (logical AND); absent fields
// impose no constraint.
type JobListQuery struct {
	Department string `form:"department"`
	Type       string `form:"type"`
	Location   string `form:"location"`
}
