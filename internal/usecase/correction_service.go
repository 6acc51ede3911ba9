package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/salesbot/backend/internal/domain"
	"github.com/salesbot/backend/internal/lexicon"
	"github.com/salesbot/backend/internal/match"
	"github.com/salesbot/backend/internal/segment"
	"github.com/salesbot/backend/internal/shops"
	"github.com/salesbot/backend/internal/spell"
	"github.com/salesbot/backend/internal/textutil"
)

// CorrectionServiceConfig holds configuration for the correction service
type CorrectionServiceConfig struct {
	CacheTTL           time.Duration
	QueryTimeout       time.Duration
	EnableDebugLogging bool
}

// Corpora bundles the reference vocabularies the matcher corrects against.
type Corpora struct {
	Prices            []string
	Measures          []string
	Percents          []string
	PerUnitQuantities []string
	PerUnitPrices     []string
}

// CorrectionService corrects OCR fragments from price tags with caching.
// Item names go through trie segmentation with a spelling fallback; price
// fields go through the shop-specific parsers; volume, percent and
// price-per-unit fields are matched against generated corpora.
type CorrectionService struct {
	cache        domain.CacheRepository
	lex          *lexicon.Lexicon
	checker      *spell.Checker
	matcher      *match.Matcher
	registry     *shops.Registry
	corpora      Corpora
	cacheTTL     time.Duration
	queryTimeout time.Duration
	debug        bool
}

// NewCorrectionService creates a new correction service with dependencies
func NewCorrectionService(
	cache domain.CacheRepository,
	lex *lexicon.Lexicon,
	checker *spell.Checker,
	registry *shops.Registry,
	corpora Corpora,
	config CorrectionServiceConfig,
) *CorrectionService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}
	queryTimeout := config.QueryTimeout
	if queryTimeout == 0 {
		queryTimeout = 5 * time.Second
	}

	return &CorrectionService{
		cache:        cache,
		lex:          lex,
		checker:      checker,
		matcher:      match.NewMatcher(config.EnableDebugLogging),
		registry:     registry,
		corpora:      corpora,
		cacheTTL:     cacheTTL,
		queryTimeout: queryTimeout,
		debug:        config.EnableDebugLogging,
	}
}

// CorrectField corrects a single detected fragment.
// Flow: check cache -> dispatch by field class -> cache -> return
func (s *CorrectionService) CorrectField(ctx context.Context, field domain.DetectedField) (*domain.Correction, error) {
	if field.ShopName == "" {
		return nil, domain.ErrInvalidRequest
	}
	if strings.TrimSpace(field.RawText) == "" {
		return &domain.Correction{Field: field, Status: domain.StatusEmpty}, nil
	}

	cacheKey := s.generateCacheKey(field)

	// Try cache first
	if cached, err := s.getFromCache(ctx, cacheKey); err == nil && cached != nil {
		return cached, nil
	}

	correction, err := s.correct(ctx, field)
	if err != nil {
		return correction, err
	}

	// Cache only definitive outcomes; uncorrected results may succeed on retry.
	if correction.Status != domain.StatusUncorrected {
		if cacheErr := s.setInCache(ctx, cacheKey, correction); cacheErr != nil && s.debug {
			log.Printf("[CORRECT] cache set failed for %q: %v", cacheKey, cacheErr)
		}
	}

	return correction, nil
}

// CorrectObjects corrects every fragment of one detected price tag.
// Per-fragment failures are reported through the Status field so one bad
// fragment never discards the rest of the tag.
func (s *CorrectionService) CorrectObjects(ctx context.Context, fields []domain.DetectedField) []domain.Correction {
	corrections := make([]domain.Correction, 0, len(fields))
	for _, field := range fields {
		c, err := s.CorrectField(ctx, field)
		if c == nil {
			c = &domain.Correction{Field: field, Status: domain.StatusEmpty}
		}
		if err != nil && s.debug {
			log.Printf("[CORRECT] %s/%s: %v", field.ShopName, field.Class, err)
		}
		corrections = append(corrections, *c)
	}
	return corrections
}

// Shops lists the retailers with a registered price parser.
func (s *CorrectionService) Shops() []string {
	return s.registry.Shops()
}

// correct dispatches on the field class.
func (s *CorrectionService) correct(ctx context.Context, field domain.DetectedField) (*domain.Correction, error) {
	switch {
	case field.Class == domain.ClassName:
		return s.correctName(field), nil
	case field.Class.IsPrice():
		return s.correctPrice(field)
	case field.Class == domain.ClassVolume:
		return s.correctByCorpus(ctx, field)
	case field.Class == domain.ClassPercent:
		return s.correctByCorpus(ctx, field)
	case field.Class == domain.ClassPricePerUnit:
		return s.correctByCorpus(ctx, field)
	default:
		// Unknown classes pass through untouched.
		return &domain.Correction{
			Field:         field,
			Status:        domain.StatusUncorrected,
			CorrectedText: field.RawText,
		}, nil
	}
}

// correctName segments the concatenated fragment against the lexicon trie
// and runs the spelling fallback over words the lexicon does not know.
func (s *CorrectionService) correctName(field domain.DetectedField) *domain.Correction {
	concatenated := textutil.Concatenate(textutil.Preprocess(field.RawText))
	if concatenated == "" {
		return &domain.Correction{Field: field, Status: domain.StatusEmpty}
	}

	candidates := s.lex.Trie().FindAllWords(concatenated)
	result := segment.BestWordCombination(candidates, concatenated)

	words := make([]string, 0, len(result.Words))
	for _, w := range result.Words {
		if s.lex.Contains(w) {
			words = append(words, w)
			continue
		}
		words = append(words, s.checker.Correct(w))
	}

	corrected := strings.Join(words, " ")
	if corrected == "" && len(result.Residual) == 0 {
		return &domain.Correction{Field: field, Status: domain.StatusEmpty}
	}

	if s.debug {
		log.Printf("[CORRECT] name %q -> %q (residual %v)", field.RawText, corrected, result.Residual)
	}

	return &domain.Correction{
		Field:         field,
		Status:        domain.StatusCorrected,
		CorrectedText: corrected,
		Residual:      result.Residual,
	}
}

// correctPrice routes the fragment to the shop's registered price parser.
func (s *CorrectionService) correctPrice(field domain.DetectedField) (*domain.Correction, error) {
	record, err := s.registry.Parse(field.ShopName, field.Class, field.RawText)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedShop) {
			// Surface the unsupported shop but keep the fragment in the response.
			return &domain.Correction{Field: field, Status: domain.StatusUnsupportedShop}, err
		}
		return nil, err
	}

	if record.Empty() {
		return &domain.Correction{Field: field, Status: domain.StatusEmpty}, nil
	}

	return &domain.Correction{
		Field:  field,
		Status: domain.StatusCorrected,
		Price:  record,
	}, nil
}

// correctByCorpus matches volume, percent and price-per-unit fragments
// against the generated corpora under the per-query time budget.
func (s *CorrectionService) correctByCorpus(ctx context.Context, field domain.DetectedField) (*domain.Correction, error) {
	mctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var (
		corrected string
		err       error
	)
	switch field.Class {
	case domain.ClassVolume:
		corrected, err = s.matcher.MatchVolume(mctx, field.RawText, s.corpora.Measures)
	case domain.ClassPercent:
		corrected, _, err = s.matcher.FindNearest(mctx, field.RawText, s.corpora.Percents)
	case domain.ClassPricePerUnit:
		// Per-unit fields occasionally carry a plain amount instead of the
		// expected "<quantity>=<price>" shape; classify before matching.
		var price, perUnit string
		price, perUnit, err = s.matcher.ClassifyAndMatch(mctx, field.RawText,
			s.corpora.Prices, s.corpora.PerUnitQuantities, s.corpora.PerUnitPrices)
		corrected = perUnit
		if corrected == "" {
			corrected = price
		}
	}

	if err != nil {
		if errors.Is(err, domain.ErrBudgetExceeded) || errors.Is(err, context.DeadlineExceeded) {
			// Budget ran out; return the raw text rather than blocking the batch.
			return &domain.Correction{
				Field:         field,
				Status:        domain.StatusUncorrected,
				CorrectedText: field.RawText,
			}, nil
		}
		return nil, err
	}

	return &domain.Correction{
		Field:         field,
		Status:        domain.StatusCorrected,
		CorrectedText: corrected,
	}, nil
}

// generateCacheKey creates a cache key from the fragment.
// Format: "correction:{shop}:{class}:{normalized_text}"
func (s *CorrectionService) generateCacheKey(field domain.DetectedField) string {
	text := strings.Join(strings.Fields(strings.ToLower(field.RawText)), " ")
	return fmt.Sprintf("correction:%s:%s:%s",
		strings.ToLower(field.ShopName), field.Class, text)
}

// getFromCache retrieves a prior correction from cache
func (s *CorrectionService) getFromCache(ctx context.Context, key string) (*domain.Correction, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	correction, ok := value.(*domain.Correction)
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return correction, nil
}

// setInCache stores a correction in cache
func (s *CorrectionService) setInCache(ctx context.Context, key string, c *domain.Correction) error {
	return s.cache.Set(ctx, key, c, s.cacheTTL)
}
