package partid

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/unicode/norm"
)

// DefaultCacheSize is the number of analysed texts an Engine remembers.
const DefaultCacheSize = 512

var reASCIIName = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type cacheKey struct {
	text    string
	version uint64
	engine  EngineKind
}

// Engine routes text to the statistical analyzer when it is ready and to the
// dictionary segmenter otherwise, then derives readings and IDs from the
// resulting tokens.
type Engine struct {
	dict      *Dictionary
	mgr       *Manager
	cacheSize int
	cache     *lru.Cache[cacheKey, Tokens]

	mu       sync.Mutex
	analyzer *Analyzer
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithCacheSize sets the analysis cache size. Zero disables caching.
func WithCacheSize(n int) EngineOption {
	return func(e *Engine) { e.cacheSize = n }
}

// NewEngine returns an Engine over dict. mgr may be nil to use dictionary
// segmentation only. The engine does not start mgr.
func NewEngine(dict *Dictionary, mgr *Manager, opts ...EngineOption) (*Engine, error) {
	if dict == nil {
		dict = NewDictionary(nil)
	}
	e := &Engine{dict: dict, mgr: mgr, cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(e)
	}
	if e.cacheSize > 0 {
		cache, err := lru.New[cacheKey, Tokens](e.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create analysis cache: %w", err)
		}
		e.cache = cache
	}
	return e, nil
}

// Dictionary returns the vocabulary the engine segments with.
func (e *Engine) Dictionary() *Dictionary { return e.dict }

// Manager returns the analyzer manager, nil for dictionary-only engines.
func (e *Engine) Manager() *Manager { return e.mgr }

// statistical returns the analyzer once the manager is ready.
func (e *Engine) statistical() *Analyzer {
	if e.mgr == nil {
		return nil
	}
	t, ok := e.mgr.Tokenizer()
	if !ok {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.analyzer == nil {
		e.analyzer = NewAnalyzer(t, e.dict)
	}
	return e.analyzer
}

// Tokenize analyses text. A load in flight is waited for (bounded by ctx);
// a statistical failure falls back to dictionary segmentation for this call.
func (e *Engine) Tokenize(ctx context.Context, text string) Tokens {
	if text == "" {
		return Tokens{}
	}
	if e.mgr != nil && e.mgr.Loading() {
		if err := e.mgr.Wait(ctx); err != nil {
			Logger.Debug().Err(err).Str("component", "engine").Msg("analyzer not available for this call")
		}
	}

	analyzer := e.statistical()
	key := cacheKey{text: text, version: e.dict.Version(), engine: EngineDictionary}
	if analyzer != nil {
		key.engine = EngineStatistical
	}
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			return cached.Clone()
		}
	}

	var tokens Tokens
	if analyzer != nil {
		var err error
		tokens, err = analyzer.Analyze(text)
		if err != nil {
			Logger.Warn().Err(err).Str("component", "engine").Msg("statistical analysis failed, falling back to dictionary")
			return e.dict.Segment(text)
		}
	} else {
		tokens = e.dict.Segment(text)
	}
	if e.cache != nil {
		e.cache.Add(key, tokens.Clone())
	}
	return tokens
}

// Describe returns the reading preview of text.
func (e *Engine) Describe(ctx context.Context, text string) Preview {
	return Describe(e.Tokenize(ctx, text))
}

// Reading returns the kana reading of text.
func (e *Engine) Reading(ctx context.Context, text string) string {
	return e.Tokenize(ctx, text).Reading()
}

// GenerateID returns an identifier for text not present in existing.
func (e *Engine) GenerateID(ctx context.Context, text string, existing map[string]bool) string {
	return GenerateID(e.Tokenize(ctx, text), existing)
}

// Suggest combines the preview, the generated ID and the token breakdown.
func (e *Engine) Suggest(ctx context.Context, text string, existing map[string]bool) Suggestion {
	tokens := e.Tokenize(ctx, text)
	return Suggestion{
		Preview:   Describe(tokens),
		ID:        GenerateID(tokens, existing),
		Breakdown: tokens.Breakdown(),
	}
}

// IDFromFileName derives an ID from an audio file name. Plain ASCII names
// are lower-cased and stripped to letters and digits; Japanese names go
// through analysis like any other text.
func (e *Engine) IDFromFileName(ctx context.Context, name string, existing map[string]bool) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimSpace(norm.NFKC.String(base))

	var id string
	switch {
	case base == "":
	case reASCIIName.MatchString(base):
		id = reNotAlnum.ReplaceAllString(strings.ToLower(base), "")
	default:
		id = e.Tokenize(ctx, base).Candidate()
	}
	if id == "" {
		id = RandomID()
	}
	return Unique(id, existing)
}

var (
	defaultEngine     *Engine
	defaultEngineErr  error
	defaultEngineOnce sync.Once
)

// DefaultEngine returns the process-wide engine: the user dictionary at
// DefaultStorePath and DefaultManager, whose load it starts.
func DefaultEngine() (*Engine, error) {
	defaultEngineOnce.Do(func() {
		store, err := NewFileStore("")
		if err != nil {
			defaultEngineErr = err
			return
		}
		mgr := DefaultManager()
		mgr.Start()
		defaultEngine, defaultEngineErr = NewEngine(NewDictionary(store), mgr)
	})
	return defaultEngine, defaultEngineErr
}

// Init loads the default statistical analyzer and waits for the outcome.
func Init(ctx context.Context) error {
	return DefaultManager().Init(ctx)
}

// Suggest is Engine.Suggest on the default engine.
func Suggest(ctx context.Context, text string, existing map[string]bool) (Suggestion, error) {
	e, err := DefaultEngine()
	if err != nil {
		return Suggestion{}, err
	}
	return e.Suggest(ctx, text, existing), nil
}

// SuggestID is Engine.GenerateID on the default engine.
func SuggestID(ctx context.Context, text string, existing map[string]bool) (string, error) {
	e, err := DefaultEngine()
	if err != nil {
		return "", err
	}
	return e.GenerateID(ctx, text, existing), nil
}
