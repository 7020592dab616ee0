// Package docsvc delivers generated clinical documents: it feeds records from
// requests or the record store into the composition engine, fronts it with the
// blob cache, and serves the results over HTTP.
package docsvc

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/zeptools/medoc/blobcache"
	"github.com/zeptools/medoc/compose"
	"github.com/zeptools/medoc/locks/keyonlylocks"
	"github.com/zeptools/medoc/metrics"
	"github.com/zeptools/medoc/records"
	"github.com/zeptools/medoc/sec"
	"go.uber.org/zap"
)

var ErrNoSource = errors.New("docsvc: no record source configured")

// Generator is implemented by *compose.Engine.
type Generator interface {
	Generate(rec records.Record) (*compose.Document, error)
	Filename(rec records.Record) (string, error)
}

// RecordSource is implemented by *recordstore.Store.
type RecordSource interface {
	FindByNumber(ctx context.Context, number string) (records.Record, error)
}

// BlobCache is implemented by *blobcache.Cache.
type BlobCache interface {
	Get(ctx context.Context, number string, payload []byte) ([]byte, error)
	Put(ctx context.Context, number string, payload []byte, blob []byte) error
}

type Service struct {
	engine       Generator
	source       RecordSource
	cache        BlobCache
	metrics      *metrics.Collector
	log          *zap.Logger
	maxBodyBytes int64
	putLocks     sync.Map // cache entries being written
}

type Option func(*Service)

func WithSource(src RecordSource) Option {
	return func(s *Service) { s.source = src }
}

func WithCache(c BlobCache) Option {
	return func(s *Service) { s.cache = c }
}

func WithMetrics(c *metrics.Collector) Option {
	return func(s *Service) { s.metrics = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

func WithMaxBodyBytes(n int64) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

const DefaultMaxBodyBytes = 1 << 20

func New(engine Generator, opts ...Option) *Service {
	s := &Service{
		engine:       engine,
		log:          zap.NewNop(),
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.Named("docsvc")
	return s
}

// Render composes rec. Request-supplied records are never cached: their
// numbers are not vouched for by the record store.
func (s *Service) Render(ctx context.Context, rec records.Record) (*compose.Document, error) {
	return s.render(ctx, rec, false)
}

func (s *Service) render(ctx context.Context, rec records.Record, useCache bool) (*compose.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	docType := "unknown"
	if rec != nil {
		docType = string(rec.Type())
	}

	var payload []byte
	cacheable := false
	if useCache {
		payload, cacheable = s.cacheKeyPayload(rec)
	}
	if cacheable {
		if doc, ok := s.fromCache(ctx, rec, payload); ok {
			return doc, nil
		}
	}

	started := time.Now()
	doc, err := s.engine.Generate(rec)
	if err != nil {
		reason := "render"
		if errors.Is(err, compose.ErrPrecondition) {
			reason = "precondition"
		}
		if s.metrics != nil {
			s.metrics.ObserveFailure(docType, reason)
		}
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.ObserveRender(docType, started, doc.Pages, doc.Size())
	}
	s.log.Debug("document rendered",
		zap.String("type", docType),
		zap.String("number", doc.Number),
		zap.Int("pages", doc.Pages),
		zap.Int("bytes", doc.Size()),
		zap.Duration("elapsed", time.Since(started)))

	if cacheable {
		s.toCache(ctx, doc, payload)
	}
	return doc, nil
}

// toCache stores doc unless a concurrent render of the same payload is
// already storing it.
func (s *Service) toCache(ctx context.Context, doc *compose.Document, payload []byte) {
	release, ok := keyonlylocks.TryAcquire(&s.putLocks, doc.Number+":"+sec.HashHexSHA256(payload))
	if !ok {
		s.log.Debug("cache put in progress elsewhere", zap.String("number", doc.Number))
		return
	}
	defer release()
	if err := s.cache.Put(ctx, doc.Number, payload, doc.Blob()); err != nil {
		s.log.Warn("cache put failed", zap.String("number", doc.Number), zap.Error(err))
	}
}

// RenderStored loads the record numbered number from the record source and
// renders it, from the blob cache when the same record was rendered before.
// Documents read from the cache carry no layout details (Pages, Sections).
func (s *Service) RenderStored(ctx context.Context, number string) (*compose.Document, error) {
	if s.source == nil {
		return nil, ErrNoSource
	}
	rec, err := s.source.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, rec, true)
}

// cacheKeyPayload is the JSON of rec; any field change yields another key.
func (s *Service) cacheKeyPayload(rec records.Record) ([]byte, bool) {
	if s.cache == nil || rec == nil || rec.Document().Number == "" {
		return nil, false
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		s.log.Warn("record not cacheable", zap.Error(err))
		return nil, false
	}
	return payload, true
}

func (s *Service) fromCache(ctx context.Context, rec records.Record, payload []byte) (*compose.Document, bool) {
	number := rec.Document().Number
	blob, err := s.cache.Get(ctx, number, payload)
	switch {
	case err == nil:
		filename, ferr := s.engine.Filename(rec)
		if ferr != nil {
			return nil, false
		}
		s.observeCache("hit")
		return compose.NewDocument(rec.Type(), number, filename, blob), true
	case errors.Is(err, blobcache.ErrMiss):
		s.observeCache("miss")
	default:
		s.observeCache("error")
		s.log.Warn("cache get failed", zap.String("number", number), zap.Error(err))
	}
	return nil, false
}

func (s *Service) observeCache(result string) {
	if s.metrics != nil {
		s.metrics.CacheLookups.WithLabelValues(result).Inc()
	}
}
