package services

import (
	"context"

	"github.com/stuvify/jobs-api/internal/dtos"
	"github.com/stuvify/jobs-api/internal/models"
	"github.com/stuvify/jobs-api/internal/store"
)

// sampleJobs is the fixed bootstrap content for an empty board.
var sampleJobs = []models.Job{
	{
		Title:        "Frontend Developer",
		Department:   "Engineering",
		Location:     "Remote",
		Type:         "Full-time",
		Description:  "Build immersive UIs with React and Three.js for Stuvify.",
		Requirements: []string{"3+ years React", "Experience with R3F/Three.js", "Strong UI skills"},
		Featured:     true,
	},
	{
		Title:        "3D Designer",
		Department:   "Design",
		Location:     "Hybrid - SF",
		Type:         "Contract",
		Description:  "Design GLTF assets and futuristic scenes for our career hub.",
		Requirements: []string{"GLTF/GLB workflow", "Blender/C4D", "Understanding of web performance"},
	},
	{
		Title:        "Growth Marketer",
		Department:   "Marketing",
		Location:     "Remote",
		Type:         "Part-time",
		Description:  "Drive campaigns and partnerships for student hiring.",
		Requirements: []string{"Lifecycle marketing", "Content strategy", "Analytics"},
	},
}

type JobService struct {
	Store *store.Store
}

func NewJobService(st *store.Store) *JobService {
	return &JobService{Store: st}
}

// List returns the jobs matching every supplied filter field exactly.
func (s *JobService) List(ctx context.Context, q dtos.JobListQuery) ([]store.Document, error) {
	filter := map[string]any{}
	if q.Department != "" {
		filter["department"] = q.Department
	}
	if q.Type != "" {
		filter["type"] = q.Type
	}
	if q.Location != "" {
		filter["location"] = q.Location
	}

	return s.Store.GetDocuments(ctx, models.JobCollection, filter)
}

// Seed inserts the sample jobs into an empty board, one at a time, and
// returns how many went in. A board that already has jobs is left untouched
// and Seed reports zero insertions.
func (s *JobService) Seed(ctx context.Context) (int, error) {
	existing, err := s.Store.CountDocuments(ctx, models.JobCollection)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	inserted := 0
	for _, job := range sampleJobs {
		job.ApplyDefaults()
		if err := job.Validate(); err != nil {
			return inserted, err
		}
		if _, err := s.Store.CreateDocument(ctx, models.JobCollection, job); err != nil {
			return inserted, err
		}
		inserted++
	}

	return inserted, nil
}
