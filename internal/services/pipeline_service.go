package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"puppytime/internal/events"
	"puppytime/internal/llm/imageedit"
	"puppytime/internal/models"
)

// Pipeline stages, in the order a run moves through them. Failed is only
// reachable from Generating: breed detection failures are absorbed and the
// history append is best-effort.
const (
	StageClassifyingBreed = "classifying_breed"
	StageGenerating       = "generating"
	StagePersisting       = "persisting"
	StageDone             = "done"
	StageFailed           = "failed"
)

type PipelineService interface {
	Run(ctx context.Context, imageURI string, ageMonths int) (*models.Transformation, error)
	StartRun(imageURI string, ageMonths int) (string, error)
	CancelRun(runToken string)
	Startup(ctx context.Context) error
}

type pipelineService struct {
	context         context.Context
	settings        SettingsService
	transformations TransformationService
	breeds          BreedService
	generator       Puppifier

	runMu sync.Mutex
	runs  map[string]context.CancelFunc // run token -> cancel
}

func NewPipelineService(settings SettingsService, transformations TransformationService, breeds BreedService, generator Puppifier) PipelineService {
	return &pipelineService{
		settings:        settings,
		transformations: transformations,
		breeds:          breeds,
		generator:       generator,
		runs:            make(map[string]context.CancelFunc),
	}
}

func (s *pipelineService) Startup(ctx context.Context) error {
	s.context = ctx
	if s.settings == nil {
		return fmt.Errorf("settings service not configured")
	}
	if s.transformations == nil {
		return fmt.Errorf("transformation service not configured")
	}
	if s.breeds == nil {
		return fmt.Errorf("breed service not configured")
	}
	if s.generator == nil {
		return fmt.Errorf("puppifier not configured")
	}
	return nil
}

// Run drives one transformation from photo to persisted record:
// classify breed (best-effort), generate the puppy image, append to the
// history, return the record. The store is only touched after a successful
// generation, so a failed run leaves no partial record behind.
func (s *pipelineService) Run(ctx context.Context, imageURI string, ageMonths int) (*models.Transformation, error) {
	if strings.TrimSpace(imageURI) == "" {
		return nil, errors.New("image uri is required")
	}
	// Age is fixed at entry for the remainder of the run
	if ageMonths <= 0 {
		ageMonths = imageedit.DefaultAgeMonths
	}

	events.Emit(ctx, events.PipelineEventStage, events.NewStage(StageClassifyingBreed, "Detecting dog breed..."))
	breed := s.breeds.Classify(ctx, imageURI)

	events.Emit(ctx, events.PipelineEventStage, events.NewStage(StageGenerating, "Transforming your pup..."))
	quality := s.settings.Get(ctx).ImageQuality
	transformedURI, err := s.generator.Transform(ctx, imageedit.TransformRequest{
		ImagePath: imageURI,
		Quality:   quality,
		Breed:     breed,
		AgeMonths: ageMonths,
	})
	if err != nil {
		if ctx.Err() != nil {
			// User-initiated cancel: tear down quietly, no failure event
			return nil, ctx.Err()
		}
		events.Emit(ctx, events.PipelineEventError, events.NewError(StageFailed, err.Error()))
		return nil, err
	}
	if ctx.Err() != nil {
		// Cancelled while generating: the late result is discarded, not applied
		return nil, ctx.Err()
	}

	events.Emit(ctx, events.PipelineEventStage, events.NewStage(StagePersisting, "Saving your transformation..."))
	now := time.Now().UnixMilli()
	record := &models.Transformation{
		ID:             strconv.FormatInt(now, 10),
		OriginalURI:    imageURI,
		TransformedURI: transformedURI,
		Timestamp:      now,
	}
	if err := s.transformations.Append(ctx, record); err != nil {
		// Best-effort history: the generated image still lives at its URL
		log.Printf("Error saving transformation: %v", err)
	}

	events.Emit(ctx, events.PipelineEventDone, events.NewSuccess(StageDone, "Transformation complete"))
	return record, nil
}

// StartRun launches Run on its own goroutine and returns a token the
// frontend can use to cancel it. A run whose view is torn down is cancelled
// rather than applied: the late result is discarded with the context.
func (s *pipelineService) StartRun(imageURI string, ageMonths int) (string, error) {
	if s.context == nil {
		return "", errors.New("pipeline service not started")
	}
	if strings.TrimSpace(imageURI) == "" {
		return "", errors.New("image uri is required")
	}

	token := uuid.NewString()
	runCtx, cancel := context.WithCancel(events.WithRun(s.context, token))

	s.runMu.Lock()
	s.runs[token] = cancel
	s.runMu.Unlock()

	go func() {
		defer func() {
			s.runMu.Lock()
			delete(s.runs, token)
			s.runMu.Unlock()
			cancel()
		}()
		if _, err := s.Run(runCtx, imageURI, ageMonths); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Pipeline run %s failed: %v", token, err)
		}
	}()

	return token, nil
}

func (s *pipelineService) CancelRun(runToken string) {
	s.runMu.Lock()
	cancel := s.runs[runToken]
	delete(s.runs, runToken)
	s.runMu.Unlock()
	if cancel != nil {
		cancel()
	}
}
