package handlers

import (
	"context"

	"github.com/gridscout/scout-api/internal/models"
)

// MockScoutProvider
type MockScoutProvider struct {
	TeamsFunc             func(ctx context.Context, search string) ([]models.Team, error)
	TeamByIDFunc          func(ctx context.Context, teamID string) (*models.Team, error)
	FetchScoutingDataFunc func(ctx context.Context, teamAID, teamBID string, windowDays int) (*models.ScoutingBundle, error)
}

func (m *MockScoutProvider) Teams(ctx context.Context, search string) ([]models.Team, error) {
	if m.TeamsFunc != nil {
		return m.TeamsFunc(ctx, search)
	}
	return nil, nil
}

func (m *MockScoutProvider) TeamByID(ctx context.Context, teamID string) (*models.Team, error) {
	if m.TeamByIDFunc != nil {
		return m.TeamByIDFunc(ctx, teamID)
	}
	return &models.Team{ID: teamID}, nil
}

func (m *MockScoutProvider) FetchScoutingData(ctx context.Context, teamAID, teamBID string, windowDays int) (*models.ScoutingBundle, error) {
	if m.FetchScoutingDataFunc != nil {
		return m.FetchScoutingDataFunc(ctx, teamAID, teamBID, windowDays)
	}
	return &models.ScoutingBundle{
		TeamA:          models.TeamHistory{Team: models.Team{ID: teamAID}},
		TeamB:          models.TeamHistory{Team: models.Team{ID: teamBID}},
		TimeWindowDays: windowDays,
	}, nil
}

// MockReportBuilder
type MockReportBuilder struct {
	BuildReportFunc func(ctx context.Context, bundle *models.ScoutingBundle) (*models.Report, error)
}

func (m *MockReportBuilder) BuildReport(ctx context.Context, bundle *models.ScoutingBundle) (*models.Report, error) {
	if m.BuildReportFunc != nil {
		return m.BuildReportFunc(ctx, bundle)
	}
	return &models.Report{ReportID: "scout_mock"}, nil
}

// MockInsightsGenerator
type MockInsightsGenerator struct {
	GenerateFunc func(ctx context.Context, report *models.Report) (string, error)
}

func (m *MockInsightsGenerator) Generate(ctx context.Context, report *models.Report) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, report)
	}
	return "", nil
}
