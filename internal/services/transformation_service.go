package services

import (
	"context"
	"log"

	"puppytime/internal/models"
	"puppytime/internal/repositories"
)

type TransformationService interface {
	List(ctx context.Context) []models.Transformation
	Append(ctx context.Context, record *models.Transformation) error
	Count(ctx context.Context) (int64, error)
	Clear(ctx context.Context) error
	Startup(ctx context.Context)
}

type transformationService struct {
	transformations repositories.TransformationRepository
	context         context.Context
}

func NewTransformationService(transformations repositories.TransformationRepository) TransformationService {
	return &transformationService{transformations: transformations}
}

func (s *transformationService) Startup(ctx context.Context) {
	s.context = ctx
}

// List returns the stored history newest first. Read failures degrade to an
// empty gallery: the history is cached convenience, not source of truth.
func (s *transformationService) List(ctx context.Context) []models.Transformation {
	records, err := s.transformations.List(ctx)
	if err != nil {
		log.Printf("Error loading transformations: %v", err)
		return []models.Transformation{}
	}
	if records == nil {
		records = []models.Transformation{}
	}
	return records
}

func (s *transformationService) Append(ctx context.Context, record *models.Transformation) error {
	return s.transformations.Append(ctx, record)
}

func (s *transformationService) Count(ctx context.Context) (int64, error) {
	return s.transformations.Count(ctx)
}

// Clear wipes the history. Unlike reads this surfaces the error: it is an
// explicit user action and silently keeping the rows would be confusing.
func (s *transformationService) Clear(ctx context.Context) error {
	return s.transformations.Clear(ctx)
}
