package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/feedback-hub/internal/models"
	services "github.com/magabrotheeeer/feedback-hub/internal/services/analytics"
)

type AnalyticsRepoMock struct {
	mock.Mock
}

func (m *AnalyticsRepoMock) SentimentSummary(ctx context.Context) ([]*models.SentimentCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SentimentCount), args.Error(1)
}

func (m *AnalyticsRepoMock) CountByType(ctx context.Context) ([]*models.TypeCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TypeCount), args.Error(1)
}

func (m *AnalyticsRepoMock) AverageSentimentOverTime(ctx context.Context) ([]*models.DailySentiment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DailySentiment), args.Error(1)
}

func TestAnalyticsService_SentimentSummary(t *testing.T) {
	repo := new(AnalyticsRepoMock)
	svc := services.NewAnalyticsService(repo)

	summary := []*models.SentimentCount{
		{SentimentLabel: "positive", Count: 3},
		{SentimentLabel: "negative", Count: 1},
	}
	repo.On("SentimentSummary", mock.Anything).Return(summary, nil).Once()

	got, err := svc.SentimentSummary(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, summary, got)

	repo.On("SentimentSummary", mock.Anything).
		Return(nil, errors.New("db error")).Once()
	_, err = svc.SentimentSummary(context.Background())
	assert.Error(t, err)

	repo.AssertExpectations(t)
}

func TestAnalyticsService_CountByType(t *testing.T) {
	repo := new(AnalyticsRepoMock)
	svc := services.NewAnalyticsService(repo)

	counts := []*models.TypeCount{
		{FeedbackType: "bug", Count: 2},
		{FeedbackType: "", Count: 1},
	}
	repo.On("CountByType", mock.Anything).Return(counts, nil).Once()

	got, err := svc.CountByType(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, counts, got)

	repo.AssertExpectations(t)
}

func TestAnalyticsService_AverageSentimentOverTime(t *testing.T) {
	repo := new(AnalyticsRepoMock)
	svc := services.NewAnalyticsService(repo)

	daily := []*models.DailySentiment{
		{Date: "2025-02-01", AvgScore: 0.0667},
		{Date: "2025-02-02", AvgScore: 0.8},
	}
	repo.On("AverageSentimentOverTime", mock.Anything).Return(daily, nil).Once()

	got, err := svc.AverageSentimentOverTime(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, daily, got)

	repo.AssertExpectations(t)
}
