package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"food-analyzer-api/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrMissingCredential is reported when the inference API key is not configured.
var ErrMissingCredential = errors.New("missing GEMINI_API_KEY")

// ErrIncompleteRoute is reported when only one of the two addresses was given.
var ErrIncompleteRoute = errors.New("both origin and destination addresses are required")

// Analyzer produces a structured food analysis from an image
type Analyzer interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.FoodAnalysis, string, error)
}

// Router computes a route between two addresses
type Router interface {
	ShortestRoute(ctx context.Context, origin, destination string) (*models.RouteResult, error)
}

// HistoryStore persists finished reports
type HistoryStore interface {
	SaveAnalysis(ctx context.Context, rec *models.AnalysisRecord) error
	ListAnalyses(ctx context.Context, limit int) ([]models.AnalysisRecord, error)
}

// AnalysisService runs the analyzer and the optional router for one upload
// and merges both outcomes into a single report.
type AnalysisService struct {
	analyzer Analyzer
	router   Router
	history  HistoryStore
}

// NewAnalysisService creates a new analysis service. A nil analyzer means the
// inference credential is missing; router and history may be nil.
func NewAnalysisService(analyzer Analyzer, router Router, history HistoryStore) *AnalysisService {
	return &AnalysisService{analyzer: analyzer, router: router, history: history}
}

// Ready reports whether the inference credential is configured.
func (s *AnalysisService) Ready() bool {
	return s.analyzer != nil
}

// Analyze never fails: every error ends up as a string in the report.
func (s *AnalysisService) Analyze(ctx context.Context, in models.AnalyzeInput) *models.AnalysisReport {
	if s.analyzer == nil {
		return &models.AnalysisReport{Error: ErrMissingCredential.Error()}
	}

	report := &models.AnalysisReport{}
	analysis, identified, err := s.analyzer.Analyze(ctx, models.AnalysisRequest{
		ImagePath:  in.ImagePath,
		FoodName:   in.FoodName,
		FoodWeight: in.FoodWeight,
	})
	if err != nil {
		log.Error().Err(err).Str("file", in.Filename).Msg("food analysis failed")
		report.Error = err.Error()
	} else {
		report.FoodAnalysis = analysis
		report.Filename = in.Filename
	}

	origin := strings.TrimSpace(in.OriginAddress)
	destination := strings.TrimSpace(in.DestinationAddress)
	switch {
	case origin == "" && destination == "":
	case origin == "" || destination == "":
		report.RouteError = ErrIncompleteRoute.Error()
	case s.router == nil:
		report.RouteError = ErrRouteNotFound.Error()
	default:
		route, err := s.router.ShortestRoute(ctx, origin, destination)
		if err != nil {
			log.Warn().Err(err).Str("origin", origin).Str("destination", destination).Msg("route lookup failed")
			report.RouteError = err.Error()
		} else {
			report.RouteData = route
		}
	}

	s.record(ctx, in, identified, report)
	return report
}

// History returns the most recent reports, newest first.
func (s *AnalysisService) History(ctx context.Context, limit int) ([]models.AnalysisRecord, error) {
	if s.history == nil {
		return []models.AnalysisRecord{}, nil
	}
	return s.history.ListAnalyses(ctx, limit)
}

func (s *AnalysisService) record(ctx context.Context, in models.AnalyzeInput, identified string, report *models.AnalysisReport) {
	if s.history == nil {
		return
	}
	rec := &models.AnalysisRecord{
		ID:         uuid.New(),
		FoodName:   in.FoodName,
		FoodWeight: in.FoodWeight,
		Identified: identified,
		Filename:   in.Filename,
		Report:     report,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.history.SaveAnalysis(ctx, rec); err != nil {
		log.Warn().Err(err).Str("id", rec.ID.String()).Msg("failed to save analysis history")
	}
}
