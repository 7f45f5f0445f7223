package unit_tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"puppytime/internal/models"
	"puppytime/internal/services"
	"puppytime/internal/tests/mocks"
)

func TestTransformationService_List_Delegates(t *testing.T) {
	mockRepo := &mocks.TransformationRepositoryMock{
		ListFunc: func(ctx context.Context) ([]models.Transformation, error) {
			return []models.Transformation{
				{ID: "2", OriginalURI: "file://b.jpg", TransformedURI: "https://x/b.png", Timestamp: 2},
				{ID: "1", OriginalURI: "file://a.jpg", TransformedURI: "https://x/a.png", Timestamp: 1},
			}, nil
		},
	}
	service := services.NewTransformationService(mockRepo)
	service.Startup(context.Background())

	records := service.List(context.Background())
	assert.Len(t, records, 2)
	assert.Equal(t, "2", records[0].ID)
}

func TestTransformationService_List_EmptyOnError(t *testing.T) {
	mockRepo := &mocks.TransformationRepositoryMock{
		ListFunc: func(ctx context.Context) ([]models.Transformation, error) {
			return nil, errors.New("corrupted store")
		},
	}
	service := services.NewTransformationService(mockRepo)

	records := service.List(context.Background())
	assert.NotNil(t, records)
	assert.Len(t, records, 0)
}

func TestTransformationService_Clear_SurfacesError(t *testing.T) {
	mockRepo := &mocks.TransformationRepositoryMock{
		ClearFunc: func(ctx context.Context) error {
			return errors.New("locked")
		},
	}
	service := services.NewTransformationService(mockRepo)

	err := service.Clear(context.Background())
	assert.Error(t, err)
}

func TestTransformationService_Append_Delegates(t *testing.T) {
	var appended *models.Transformation
	mockRepo := &mocks.TransformationRepositoryMock{
		AppendFunc: func(ctx context.Context, record *models.Transformation) error {
			appended = record
			return nil
		},
	}
	service := services.NewTransformationService(mockRepo)

	record := &models.Transformation{ID: "42", OriginalURI: "file://dog.jpg", TransformedURI: "https://x/puppy.png", Timestamp: 42}
	err := service.Append(context.Background(), record)
	assert.NoError(t, err)
	assert.Equal(t, record, appended)
}
