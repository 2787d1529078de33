// Package chat answers visitor questions by combining retrieval with the
// response generator.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/sant0-9/concierge/internal/content"
	"github.com/sant0-9/concierge/internal/document"
	"github.com/sant0-9/concierge/internal/intent"
	"github.com/sant0-9/concierge/internal/responder"
	"github.com/sant0-9/concierge/internal/retrieval"
)

// MaxQueryLength is the longest query accepted, in characters
const MaxQueryLength = 500

var (
	ErrEmptyQuery   = errors.New("query is empty")
	ErrQueryTooLong = errors.New("query is too long")
)

// Request is a single visitor question. An empty Locale uses the service default.
type Request struct {
	Query  string `json:"query"`
	Locale string `json:"language,omitempty"`
}

type Reply struct {
	Text     string              `json:"answer"`
	Intent   intent.ID           `json:"intent,omitempty"`
	Fallback responder.Fallback  `json:"fallback,omitempty"`
	Locale   content.Locale      `json:"language"`
	Sources  []document.Document `json:"-"`
}

type Options struct {
	// Locale used when a request carries none. Defaults to English.
	Locale    content.Locale
	TopK      int
	ChunkSize int
	Logger    *zap.Logger
	Metrics   *Metrics
}

type Service struct {
	index   *retrieval.Index
	gen     *responder.Generator
	log     *zap.Logger
	metrics *Metrics
	topK    int
	locale  content.Locale
}

// New indexes tables and returns a ready service. A nil tables selects the
// embedded site content.
func New(tables *content.Tables, opts Options) *Service {
	if tables == nil {
		tables = content.MustDefault()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.TopK <= 0 {
		opts.TopK = retrieval.DefaultTopK
	}
	return &Service{
		index:   retrieval.NewIndex(tables, opts.ChunkSize),
		gen:     responder.New(tables),
		log:     opts.Logger,
		metrics: opts.Metrics,
		topK:    opts.TopK,
		locale:  opts.Locale.OrDefault(),
	}
}

// Locale returns the default locale
func (s *Service) Locale() content.Locale {
	return s.locale
}

func (s *Service) Ask(ctx context.Context, req Request) (*Reply, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		s.metrics.reject("empty")
		return nil, ErrEmptyQuery
	}
	if n := utf8.RuneCountInString(query); n > MaxQueryLength {
		s.metrics.reject("too_long")
		return nil, fmt.Errorf("%w: %d characters, max %d", ErrQueryTooLong, n, MaxQueryLength)
	}

	locale := s.locale
	if req.Locale != "" {
		l, err := content.ParseLocale(req.Locale)
		if err != nil {
			s.metrics.reject("locale")
			return nil, err
		}
		locale = l
	}

	start := time.Now()
	docs := s.index.Search(query, locale, s.topK)
	answer := s.gen.Answer(query, docs, locale)
	elapsed := time.Since(start)

	reply := &Reply{
		Text:     answer.Text,
		Intent:   answer.Intent,
		Fallback: answer.Fallback,
		Locale:   locale,
		Sources:  docs,
	}
	s.metrics.observe(reply, elapsed)
	s.log.Debug("answered query",
		zap.String("intent", string(reply.Intent)),
		zap.String("fallback", string(reply.Fallback)),
		zap.String("locale", string(locale)),
		zap.Int("sources", len(docs)),
		zap.Duration("elapsed", elapsed),
	)
	return reply, nil
}
