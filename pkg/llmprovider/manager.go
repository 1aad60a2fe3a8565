package llmprovider

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"wellness-assistant/pkg/log"
)

// Manager orchestrates provider selection and fallback.
// Each provider gets one attempt per request; calls share one outbound pacing limiter.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
	limiter   *rate.Limiter
	cache     *expirable.LRU[string, Response]
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	MaxTotalTimeout time.Duration // Global timeout for entire fallback chain

	// RequestsPerMinute paces outbound calls across all providers. 0 disables pacing.
	RequestsPerMinute int

	// CacheSize bounds the reply cache; 0 disables it.
	CacheSize int
	CacheTTL  time.Duration
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}

	m := &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}

	if config.RequestsPerMinute > 0 {
		burst := config.RequestsPerMinute / 10
		if burst < 1 {
			burst = 1
		}
		m.limiter = rate.NewLimiter(rate.Limit(float64(config.RequestsPerMinute)/60.0), burst)
	}

	if config.CacheSize > 0 {
		m.cache = expirable.NewLRU[string, Response](config.CacheSize, nil, config.CacheTTL)
	}

	return m
}

// Available reports whether at least one provider is configured.
func (m *Manager) Available() bool {
	return m != nil && len(m.providers) > 0
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if !m.Available() {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	key := cacheKey(req)
	if m.cache != nil {
		if cached, ok := m.cache.Get(key); ok {
			m.logger.Debugf(ctx, "LLM reply served from cache: provider=%s", cached.ProviderName)
			cached.Cached = true
			return &cached, nil
		}
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded: %w", ctx.Err())
		default:
		}

		resp, err := m.generate(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			if m.cache != nil {
				m.cache.Add(key, *resp)
			}
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

func (m *Manager) generate(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	if m.limiter != nil {
		if err := m.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("pacing: %w", err)
		}
	}
	return provider.GenerateContent(ctx, req)
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), resp.Usage.InputTokens, resp.Usage.OutputTokens)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s error=%v",
		provider.Name(), provider.Model(), err)
}

// cacheKey hashes every field that influences the reply.
func cacheKey(req *Request) string {
	h := sha256.New()
	h.Write([]byte(req.SystemInstruction))
	h.Write([]byte{0})
	for _, msg := range req.Messages {
		h.Write([]byte(msg.Role))
		h.Write([]byte{0})
		h.Write([]byte(msg.Text))
		h.Write([]byte{0})
	}
	h.Write([]byte(strconv.FormatFloat(req.Temperature, 'g', -1, 64)))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(req.MaxTokens)))
	return hex.EncodeToString(h.Sum(nil))
}
