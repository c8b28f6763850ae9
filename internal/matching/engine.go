package matching

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ICHI0608/jiji-matching/internal/domain"
)

// FallbackMessage is the fixed apology shown to the user when matching
// fails for any reason. Raw errors never reach the end user.
const FallbackMessage = "申し訳ございません。ショップのご案内中に問題が発生しました。お手数ですが、直接チャットでご相談ください。"

// DefaultMaxResults is the top-N cut when the caller does not ask for one.
const DefaultMaxResults = 3

// CatalogProvider supplies the shop catalog. areaFilter is an exact match on
// the shop area; empty means all areas. Implementations may hit I/O, which
// is the engine's only suspension point per request.
type CatalogProvider interface {
	GetShops(ctx context.Context, areaFilter string) ([]domain.ShopRecord, error)
}

// Options tune a single matching request.
type Options struct {
	PreferredArea string
	MaxResults    int
}

// Engine runs the full matching pipeline: catalog fetch, eligibility
// filtering, concern detection, scoring, ranking and composition.
// It holds no per-request state; concurrent calls are safe as long as the
// catalog provider is.
type Engine struct {
	catalog CatalogProvider
	logger  zerolog.Logger
}

// NewEngine creates an engine over the given catalog provider.
func NewEngine(catalog CatalogProvider, logger zerolog.Logger) *Engine {
	return &Engine{
		catalog: catalog,
		logger:  logger.With().Str("component", "matching").Logger(),
	}
}

// FindOptimalShops runs one matching request end to end. It never returns
// an error: provider failures and internal panics are translated into a
// success:false envelope carrying the fixed fallback message.
func (e *Engine) FindOptimalShops(ctx context.Context, profile domain.UserProfile, concernTexts []string, opts Options) (result domain.RecommendationResult) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Interface("panic", r).Msg("matching pipeline panicked")
			result = e.failure(fmt.Sprintf("internal error: %v", r))
		}
	}()

	area := opts.PreferredArea
	if area == "" {
		area = profile.PreferredArea
	}

	shops, err := e.catalog.GetShops(ctx, area)
	if err != nil {
		e.logger.Error().Err(err).Str("area", area).Msg("catalog fetch failed")
		return e.failure(err.Error())
	}

	eligible := FilterEligible(shops, profile)
	concerns := Detect(profile, concernTexts)

	scored := ScoreShops(eligible, concerns)
	for i := range scored {
		scored[i].ServiceScore = ServiceScore(scored[i].Shop)
		scored[i].TotalScore = scored[i].EmotionalScore + scored[i].ServiceScore
	}
	ranked := Rank(scored)

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	top := ranked
	if len(top) > maxResults {
		top = top[:maxResults]
	}

	topScore := 0
	if len(ranked) > 0 {
		topScore = ranked[0].TotalScore
	}

	e.logger.Info().
		Int("total_shops", len(shops)).
		Int("filtered_shops", len(eligible)).
		Int("concerns", len(concerns)).
		Int("top_score", topScore).
		Msg("matching completed")

	return domain.RecommendationResult{
		Success:         true,
		Recommendations: Compose(top, concerns),
		MainMessage:     ComposeMainMessage(profile, concerns),
		MatchingStats: &domain.MatchingStats{
			TotalShops:           len(shops),
			FilteredShops:        len(eligible),
			TopScore:             topScore,
			EmotionalFactorCount: len(concerns),
		},
	}
}

func (e *Engine) failure(msg string) domain.RecommendationResult {
	return domain.RecommendationResult{
		Success:         false,
		Error:           msg,
		FallbackMessage: FallbackMessage,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}
}
