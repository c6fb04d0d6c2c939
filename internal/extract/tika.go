package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vansh2503/JobNest/internal/config"
	"github.com/vansh2503/JobNest/internal/errors"

	"github.com/sony/gobreaker/v2"
)

// TikaExtractor sends Word documents to an Apache Tika server and
// returns the plain text Tika produces.
type TikaExtractor struct {
	url     string
	client  *http.Client
	breaker *tikaCircuitBreaker
	logger  *errors.Logger
}

// NewTikaExtractor creates an extractor backed by the Tika server in
// the config.
func NewTikaExtractor(cfg config.TikaConfig, logger *errors.Logger) *TikaExtractor {
	return &TikaExtractor{
		url:     strings.TrimSuffix(cfg.URL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
		breaker: newTikaCircuitBreaker(cfg.CircuitBreaker, logger),
		logger:  logger,
	}
}

func (e *TikaExtractor) ExtractText(ctx context.Context, r io.Reader, name string) (string, error) {
	text, err := e.breaker.Execute(func() (string, error) {
		return e.extract(ctx, r, name)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return "", errors.NewExtractionError(errors.ErrCodeConverterDown,
				"Document converter is unavailable", err).WithContext("file", name)
		}
		return "", err
	}
	return text, nil
}

func (e *TikaExtractor) extract(ctx context.Context, r io.Reader, name string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, e.url+"/tika", r)
	if err != nil {
		return "", errors.NewInternalError(errors.ErrCodeExtractionFailed,
			"Failed to build converter request", err)
	}
	req.Header.Set("Accept", "text/plain")
	if name != "" {
		req.Header.Set("X-Tika-Resource-Name", name)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", errors.NewExtractionError(errors.ErrCodeConverterDown,
			"Document converter request failed", err).WithContext("file", name)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			e.logger.Warn("Failed to close converter response body", "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewExtractionError(errors.ErrCodeExtractionFailed,
			fmt.Sprintf("Document converter returned status %d", resp.StatusCode), nil).
			WithContext("file", name).
			WithContext("status", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewExtractionError(errors.ErrCodeExtractionFailed,
			"Failed to read converter response", err).WithContext("file", name)
	}
	return string(body), nil
}

// tikaCircuitBreaker wraps converter calls so a down Tika server fails
// fast instead of holding every analysis for the full timeout.
type tikaCircuitBreaker struct {
	cb *gobreaker.CircuitBreaker[string]
}

func newTikaCircuitBreaker(cfg config.CircuitBreakerConfig, logger *errors.Logger) *tikaCircuitBreaker {
	if !cfg.Enabled {
		return nil
	}

	settings := gobreaker.Settings{
		Name:        "Tika",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests &&
				failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
				"max_requests", cfg.MaxRequests,
				"failure_threshold", cfg.FailureThreshold)
		},
	}

	return &tikaCircuitBreaker{cb: gobreaker.NewCircuitBreaker[string](settings)}
}

// Execute runs fn under the breaker. A nil breaker runs fn directly.
func (b *tikaCircuitBreaker) Execute(fn func() (string, error)) (string, error) {
	if b == nil || b.cb == nil {
		return fn()
	}
	return b.cb.Execute(fn)
}

// IsHealthy reports whether the breaker is closed.
func (b *tikaCircuitBreaker) IsHealthy() bool {
	if b == nil || b.cb == nil {
		return true
	}
	return b.cb.State() == gobreaker.StateClosed
}
