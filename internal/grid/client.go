// Package grid implements the GRID Esports API client used to fetch
// team identities and match histories. Responses are cached in Redis
// under a TTL so repeated scouting requests within a session do not
// re-hit the upstream API.
package grid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gridscout/scout-api/internal/models"
)

// ErrTeamNotFound is returned when the upstream API has no team with
// the requested id.
var ErrTeamNotFound = errors.New("grid: team not found")

// ErrUnauthorized is returned on a 401 from upstream, which means the
// configured API key is invalid or expired.
var ErrUnauthorized = errors.New("grid: authentication failed")

const dataSourceName = "GRID Esports API"

// Prometheus metrics
var (
	apiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scout_grid_requests_total",
		Help: "Total number of GRID API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	apiRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scout_grid_request_duration_seconds",
		Help:    "Duration of GRID API requests",
		Buckets: prometheus.DefBuckets,
	})

	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scout_grid_cache_hits_total",
		Help: "Total number of GRID responses served from cache",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scout_grid_cache_misses_total",
		Help: "Total number of GRID requests that missed the cache",
	})
)

// ClientConfig configures the GRID API client.
type ClientConfig struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	CacheTTL time.Duration
	Redis    *redis.Client // nil disables caching
	Logger   *zap.Logger
}

// Client talks to the GRID REST API. Safe for concurrent use.
type Client struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	redis    *redis.Client
	cacheTTL time.Duration
	logger   *zap.SugaredLogger
}

// NewClient creates a GRID API client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Minute
	}
	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		http:     &http.Client{Timeout: cfg.Timeout},
		redis:    cfg.Redis,
		cacheTTL: cfg.CacheTTL,
		logger:   cfg.Logger.Sugar(),
	}
}

// Teams returns the VALORANT teams known to the provider, optionally
// filtered by a case-insensitive search string applied upstream.
func (c *Client) Teams(ctx context.Context, search string) ([]models.Team, error) {
	params := url.Values{}
	if search != "" {
		params.Set("search", search)
	}

	var teams []models.Team
	if err := c.getJSON(ctx, "/v1/teams", params, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// TeamByID returns a single team identity, or ErrTeamNotFound.
func (c *Client) TeamByID(ctx context.Context, teamID string) (*models.Team, error) {
	var team models.Team
	if err := c.getJSON(ctx, "/v1/teams/"+url.PathEscape(teamID), nil, &team); err != nil {
		return nil, err
	}
	if team.ID == "" {
		return nil, fmt.Errorf("%q: %w", teamID, ErrTeamNotFound)
	}
	return &team, nil
}

// TeamMatches returns a team's completed matches within the time
// window, most recent first.
func (c *Client) TeamMatches(ctx context.Context, teamID string, windowDays, limit int) ([]models.MatchRecord, error) {
	params := url.Values{}
	params.Set("window_days", fmt.Sprint(windowDays))
	if limit > 0 {
		params.Set("limit", fmt.Sprint(limit))
	}

	var matches []models.MatchRecord
	if err := c.getJSON(ctx, "/v1/teams/"+url.PathEscape(teamID)+"/matches", params, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// HeadToHead returns matches where the two teams faced each other
// within the time window.
func (c *Client) HeadToHead(ctx context.Context, teamAID, teamBID string, windowDays int) ([]models.MatchRecord, error) {
	params := url.Values{}
	params.Set("team_a", teamAID)
	params.Set("team_b", teamBID)
	params.Set("window_days", fmt.Sprint(windowDays))

	var matches []models.MatchRecord
	if err := c.getJSON(ctx, "/v1/matches/head-to-head", params, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// FetchScoutingData assembles the full snapshot for one scouting
// request: both team identities, both match histories, and the
// head-to-head list. Team lookups fail the whole fetch; a missing
// head-to-head history does not.
func (c *Client) FetchScoutingData(ctx context.Context, teamAID, teamBID string, windowDays int) (*models.ScoutingBundle, error) {
	teamA, err := c.TeamByID(ctx, teamAID)
	if err != nil {
		return nil, fmt.Errorf("team A: %w", err)
	}
	teamB, err := c.TeamByID(ctx, teamBID)
	if err != nil {
		return nil, fmt.Errorf("team B: %w", err)
	}

	matchesA, err := c.TeamMatches(ctx, teamAID, windowDays, 0)
	if err != nil {
		return nil, fmt.Errorf("team A matches: %w", err)
	}
	matchesB, err := c.TeamMatches(ctx, teamBID, windowDays, 0)
	if err != nil {
		return nil, fmt.Errorf("team B matches: %w", err)
	}

	h2h, err := c.HeadToHead(ctx, teamAID, teamBID, windowDays)
	if err != nil {
		c.logger.Warnw("Head-to-head fetch failed, continuing without it",
			"team_a", teamAID, "team_b", teamBID, "error", err)
		h2h = nil
	}

	bundle := &models.ScoutingBundle{
		TeamA:          models.TeamHistory{Team: *teamA, Matches: matchesA},
		TeamB:          models.TeamHistory{Team: *teamB, Matches: matchesB},
		HeadToHead:     h2h,
		TimeWindowDays: windowDays,
		FetchedAt:      time.Now().UTC(),
		DataSource:     dataSourceName,
	}

	c.logger.Infow("Scouting data package complete",
		"team_a", teamA.Name,
		"team_b", teamB.Name,
		"team_a_matches", len(matchesA),
		"team_b_matches", len(matchesB),
		"head_to_head_matches", len(h2h),
		"window_days", windowDays,
	)
	return bundle, nil
}

// getJSON performs a cached, authenticated GET and decodes the response
// body into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	cacheKey := c.cacheKey(endpoint, params)

	if c.redis != nil {
		cached, err := c.redis.Get(ctx, cacheKey).Bytes()
		if err == nil {
			cacheHits.Inc()
			return json.Unmarshal(cached, out)
		}
		if err != redis.Nil {
			c.logger.Warnw("Cache read failed", "key", cacheKey, "error", err)
		}
		cacheMisses.Inc()
	}

	body, err := c.doRequest(ctx, endpoint, params)
	if err != nil {
		return err
	}

	if c.redis != nil {
		if err := c.redis.Set(ctx, cacheKey, body, c.cacheTTL).Err(); err != nil {
			c.logger.Warnw("Cache write failed", "key", cacheKey, "error", err)
		}
	}
	return json.Unmarshal(body, out)
}

func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	u := c.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		apiRequests.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("grid request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	apiRequestDuration.Observe(time.Since(start).Seconds())
	apiRequests.WithLabelValues(endpoint, fmt.Sprint(resp.StatusCode)).Inc()
	c.logger.Debugw("GRID API call", "endpoint", endpoint, "status", resp.StatusCode)

	switch resp.StatusCode {
	case http.StatusOK:
		return io.ReadAll(resp.Body)
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", endpoint, ErrTeamNotFound)
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("grid request %s: status %d: %s", endpoint, resp.StatusCode, snippet)
	}
}

func (c *Client) cacheKey(endpoint string, params url.Values) string {
	return "grid:" + endpoint + "?" + params.Encode()
}
