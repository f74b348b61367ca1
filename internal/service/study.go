package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"studyaid/internal/cache"
	"studyaid/internal/config"
	"studyaid/internal/domain"
	"studyaid/internal/dto"
	"studyaid/internal/logger"
	"studyaid/internal/parser"
	"studyaid/internal/prompt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// StudyService defines the interface for generation operations
type StudyService interface {
	Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error)
	Labels() map[string]string
}

// studyService implements StudyService. It compiles the prompt, consults
// the result cache, calls the model gateway and parses the raw output.
type studyService struct {
	catalog   *prompt.Catalog
	generator domain.Generator
	cache     domain.Cache // nil when Redis is not configured
	cfg       *config.Config
	group     singleflight.Group
}

// NewStudyService creates a new instance of studyService.
func NewStudyService(catalog *prompt.Catalog, generator domain.Generator, resultCache domain.Cache, cfg *config.Config) StudyService {
	return &studyService{
		catalog:   catalog,
		generator: generator,
		cache:     resultCache,
		cfg:       cfg,
	}
}

// Generate produces a result for the given type and text. Identical
// concurrent requests are collapsed into a single gateway call, and
// identical repeated requests are served from the result cache while the
// TTL lasts. The parser runs on every call; only raw text is cached.
func (s *studyService) Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	compiled, err := s.catalog.Compile(req.Type, req.Text, req.Constraints)
	if err != nil {
		return nil, err
	}

	key := resultCacheKey(req)
	content, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.rawContent(ctx, key, compiled)
	})
	if err != nil {
		return nil, err
	}

	raw := content.(string)
	return &dto.GenerateResponse{
		Type:    req.Type,
		Content: raw,
		Parsed:  parser.Parse(req.Type, raw),
	}, nil
}

// rawContent returns the raw model output for a compiled request, from
// cache when possible. Cache failures degrade to a gateway call.
func (s *studyService) rawContent(ctx context.Context, key string, compiled domain.CompiledRequest) (string, error) {
	l := logger.Get()

	if s.cacheEnabled() {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			l.Debug("Result cache hit", zap.String("key", key))
			return cached, nil
		}
		if err != domain.ErrCacheMiss {
			l.Warn("Result cache lookup failed", zap.Error(err), zap.String("key", key))
		}
	}

	raw, err := s.generator.Generate(ctx, compiled)
	if err != nil {
		return "", err
	}

	if s.cacheEnabled() {
		if err := s.cache.Set(ctx, key, raw, s.cfg.Cache.ResultTTL); err != nil {
			l.Warn("Failed to cache generation result", zap.Error(err), zap.String("key", key))
		}
	}

	return raw, nil
}

func (s *studyService) cacheEnabled() bool {
	return s.cache != nil && s.cfg.Cache.ResultTTL > 0
}

// Labels returns the catalog's UI button captions.
func (s *studyService) Labels() map[string]string {
	return s.catalog.Labels()
}

// resultCacheKey derives a stable key from the full request: type, text
// and constraints in sorted order.
func resultCacheKey(req *dto.GenerateRequest) string {
	h := sha256.New()
	h.Write([]byte(req.Type))
	h.Write([]byte{0})
	h.Write([]byte(req.Text))

	keys := make([]string, 0, len(req.Constraints))
	for k := range req.Constraints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		h.Write([]byte{0})
		h.Write([]byte(k + "=" + req.Constraints[k]))
	}

	digest := hex.EncodeToString(h.Sum(nil))
	return cache.GenerateCacheKey("study", "result", strings.ToLower(digest))
}
