package mocks

import (
	"context"

	"puppytime/internal/models"
)

type TransformationRepositoryMock struct {
	ListFunc   func(ctx context.Context) ([]models.Transformation, error)
	AppendFunc func(ctx context.Context, record *models.Transformation) error
	CountFunc  func(ctx context.Context) (int64, error)
	ClearFunc  func(ctx context.Context) error
}

func (m *TransformationRepositoryMock) List(ctx context.Context) ([]models.Transformation, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Transformation{}, nil
}

func (m *TransformationRepositoryMock) Append(ctx context.Context, record *models.Transformation) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, record)
	}
	return nil
}

func (m *TransformationRepositoryMock) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *TransformationRepositoryMock) Clear(ctx context.Context) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx)
	}
	return nil
}
