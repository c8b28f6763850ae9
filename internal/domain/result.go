package domain

// DetectedConcern is one matched worry category for a single request.
type DetectedConcern struct {
	Detected        bool     `json:"detected"`
	Weight          int      `json:"weight"`
	Empathy         string   `json:"empathy"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
	Source          string   `json:"source,omitempty"`
}

// SourceProfileInference marks concerns that came from profile fields rather
// than the user's own words.
const SourceProfileInference = "profile_inference"

// ScoreReason explains one score block that fired for a shop.
type ScoreReason struct {
	Concern  string `json:"concern"`
	Solution string `json:"solution"`
	Empathy  string `json:"empathy"`
	Score    int    `json:"score"`
}

// ScoredShop pairs a shop with its per-request score breakdown.
type ScoredShop struct {
	Shop           ShopRecord    `json:"shop"`
	EmotionalScore int           `json:"emotional_score"`
	ServiceScore   int           `json:"service_score"`
	TotalScore     int           `json:"total_score"`
	Reasons        []ScoreReason `json:"reasons"`
}

// Recommendation is one entry of the user-facing top-N list.
type Recommendation struct {
	Ranking           string     `json:"ranking"`
	Shop              ScoredShop `json:"shop"`
	MainComment       string     `json:"main_comment"`
	ExperiencePreview string     `json:"experience_preview"`
	Summary           string     `json:"summary"`
}

// MatchingStats summarizes one matching run.
type MatchingStats struct {
	TotalShops           int `json:"total_shops"`
	FilteredShops        int `json:"filtered_shops"`
	TopScore             int `json:"top_score"`
	EmotionalFactorCount int `json:"emotional_factor_count"`
}

// RecommendationResult is the single envelope returned to the caller.
// Exactly one of the success and failure field sets is populated.
type RecommendationResult struct {
	Success         bool             `json:"success"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	MainMessage     string           `json:"main_message,omitempty"`
	MatchingStats   *MatchingStats   `json:"matching_stats,omitempty"`

	Error           string `json:"error,omitempty"`
	FallbackMessage string `json:"fallback_message,omitempty"`
	Timestamp       string `json:"timestamp,omitempty"`
}
