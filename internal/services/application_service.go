package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/stuvify/jobs-api/internal/analytics"
	"github.com/stuvify/jobs-api/internal/dtos"
	"github.com/stuvify/jobs-api/internal/models"
	"github.com/stuvify/jobs-api/internal/store"
)

// ApplicationService runs the submission pipeline: check the job reference,
// validate the payload, persist, then count the submission.
type ApplicationService struct {
	Store     *store.Store
	Analytics analytics.Recorder
}

func NewApplicationService(st *store.Store, recorder analytics.Recorder) *ApplicationService {
	return &ApplicationService{Store: st, Analytics: recorder}
}

// Submit persists one application and returns its new identity.
func (s *ApplicationService) Submit(ctx context.Context, req dtos.ApplyRequest) (string, error) {
	// 1. The reference must parse and point at a live job. A lookup that
	// fails for any reason other than not-found is a bad reference too.
	if _, err := uuid.Parse(req.JobID); err != nil {
		return "", ErrInvalidJobID
	}
	if _, err := s.Store.GetDocument(ctx, models.JobCollection, req.JobID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrJobNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidJobID, err)
	}

	// 2. Validate the payload shape before it touches the store.
	app := models.Application{
		JobID:       req.JobID,
		Name:        req.Name,
		Email:       req.Email,
		Portfolio:   req.Portfolio,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
	}
	if err := app.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidApplication, err)
	}

	// 3. Persist.
	id, err := s.Store.CreateDocument(ctx, models.ApplicationCollection, app)
	if err != nil {
		return "", err
	}

	// Best effort: a failed counter never fails the submission.
	if err := s.Analytics.ApplicationSubmitted(ctx, req.JobID, time.Now()); err != nil {
		log.Printf("⚠️  Analytics: failed to record application for job %s: %v", req.JobID, err)
	}

	return id, nil
}
