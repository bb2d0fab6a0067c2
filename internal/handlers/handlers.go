package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gridscout/scout-api/internal/models"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// ScoutProvider is the data-fetching surface the handlers depend on.
type ScoutProvider interface {
	Teams(ctx context.Context, search string) ([]models.Team, error)
	TeamByID(ctx context.Context, teamID string) (*models.Team, error)
	FetchScoutingData(ctx context.Context, teamAID, teamBID string, windowDays int) (*models.ScoutingBundle, error)
}

// ReportBuilder runs the analysis pipeline over a fetched bundle.
type ReportBuilder interface {
	BuildReport(ctx context.Context, bundle *models.ScoutingBundle) (*models.Report, error)
}

// InsightsGenerator produces the optional AI briefing for a report.
type InsightsGenerator interface {
	Generate(ctx context.Context, report *models.Report) (string, error)
}

type Config struct {
	Provider  ScoutProvider
	Assembler ReportBuilder
	Insights  InsightsGenerator // nil disables the insights section
	Redis     *redis.Client     // nil when caching is disabled
	Logger    *zap.Logger

	DefaultWindowDays int
	MaxWindowDays     int
}

type Handler struct {
	provider  ScoutProvider
	assembler ReportBuilder
	insights  InsightsGenerator
	redis     *redis.Client
	logger    *zap.SugaredLogger
	validator *validator.Validate

	defaultWindow int
	maxWindow     int
}

func New(cfg Config) *Handler {
	if cfg.DefaultWindowDays <= 0 {
		cfg.DefaultWindowDays = 90
	}
	if cfg.MaxWindowDays <= 0 {
		cfg.MaxWindowDays = 365
	}
	return &Handler{
		provider:      cfg.Provider,
		assembler:     cfg.Assembler,
		insights:      cfg.Insights,
		redis:         cfg.Redis,
		logger:        cfg.Logger.Sugar(),
		validator:     validator.New(),
		defaultWindow: cfg.DefaultWindowDays,
		maxWindow:     cfg.MaxWindowDays,
	}
}
