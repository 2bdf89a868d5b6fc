package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobsignals/internal/cache"
	"jobsignals/internal/cache/redis"
	"jobsignals/internal/config"
	"jobsignals/internal/errors"
	"jobsignals/internal/telemetry"
)

var tracer = telemetry.GetTracer("jobsignals/api")

const sourceName = "adzuna"

// SearchResult is one posting as returned by the Adzuna search API.
type SearchResult struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Description string     `json:"description"`
	Created     *time.Time `json:"created"`
	RedirectURL string     `json:"redirect_url"`
	SalaryMin   FlexFloat  `json:"salary_min"`
	SalaryMax   FlexFloat  `json:"salary_max"`
}

// FlexFloat decodes a number that sources sometimes send as a string or as
// garbage. Anything non-numeric becomes "absent" instead of failing the
// posting.
type FlexFloat struct {
	Value *float64
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		f.Value = nil
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		f.Value = nil
		return nil
	}
	f.Value = &v
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}

// SearchResponse is the raw payload for one (keyword, state) query.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Count   int            `json:"count"`
	Raw     []byte         `json:"-"`
}

type JobSearchClient interface {
	Search(ctx context.Context, keyword, state string) (*SearchResponse, error)
}

type jobSearchClient struct {
	client *http.Client
	logger *zap.Logger
	config *config.Config
	cache  cache.Cache
}

func NewJobSearchClient(logger *zap.Logger, cfg *config.Config) (JobSearchClient, error) {
	if cfg.AdzunaAppID == "" || cfg.AdzunaAppKey == "" {
		return nil, errors.InvalidConfig("adzuna API credentials missing", nil)
	}

	cacheOpts := cache.Options{
		RedisURL:      cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
		DefaultTTL:    cfg.CacheTTL,
	}

	return &jobSearchClient{
		client: &http.Client{
			Timeout: cfg.AdzunaTimeout,
		},
		logger: logger,
		config: cfg,
		cache:  redis.New(cacheOpts),
	}, nil
}

func (c *jobSearchClient) Search(ctx context.Context, keyword, state string) (*SearchResponse, error) {
	ctx, span := tracer.Start(ctx, "Search")
	defer span.End()
	span.SetAttributes(
		telemetry.String("search.keyword", keyword),
		telemetry.String("search.state", state),
	)

	cacheKey := fmt.Sprintf("%s:search:%s:%s", sourceName, state, keyword)

	var cached []byte
	err := c.cache.Get(ctx, cacheKey, &cached)
	if err == nil {
		span.SetAttributes(telemetry.String("cache.result", "hit"))
		c.logger.Debug("cache hit for search",
			zap.String("keyword", keyword),
			zap.String("state", state))
		return decodeSearchResponse(cached)
	} else if err != cache.ErrNotFound {
		span.SetAttributes(telemetry.String("cache.result", "error"))
		span.RecordError(err)
		c.logger.Warn("cache error for search", zap.Error(err))
	} else {
		span.SetAttributes(telemetry.String("cache.result", "miss"))
	}

	searchURL := fmt.Sprintf("%s/jobs/%s/search/1?%s",
		c.config.AdzunaBaseURL,
		c.config.AdzunaCountry,
		url.Values{
			"app_id":           {c.config.AdzunaAppID},
			"app_key":          {c.config.AdzunaAppKey},
			"what":             {keyword},
			"where":            {state},
			"results_per_page": {fmt.Sprintf("%d", c.config.ResultsPerPage)},
			"sort_by":          {"date"},
		}.Encode())
	span.SetAttributes(telemetry.String("http.url", searchURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Internal("creating request", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		span.RecordError(err)
		c.logger.Error("failed to execute search request", zap.Error(err))
		return nil, errors.Unavailable("executing search request", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	span.SetAttributes(
		telemetry.Int("http.status_code", resp.StatusCode),
		telemetry.String("http.method", http.MethodGet),
	)

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("unexpected status code",
			zap.Int("status_code", resp.StatusCode),
			zap.String("keyword", keyword),
			zap.String("state", state))
		return nil, errors.Internal(fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Internal("reading response body", err)
	}

	result, err := decodeSearchResponse(body)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	c.logger.Debug("search completed",
		zap.String("keyword", keyword),
		zap.String("state", state),
		zap.Int("results", len(result.Results)))

	if err := c.cache.Set(ctx, cacheKey, body, c.config.CacheTTL); err != nil {
		c.logger.Warn("failed to cache search results", zap.Error(err))
	}

	return result, nil
}

func decodeSearchResponse(body []byte) (*SearchResponse, error) {
	var result SearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Internal("decoding search response", err)
	}
	result.Raw = body
	return &result, nil
}
