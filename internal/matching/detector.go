package matching

import (
	"strings"

	"github.com/ICHI0608/jiji-matching/internal/domain"
)

// Inference defaults for concerns that come from the profile instead of the
// user's own words.
const (
	inferredSafetyWeight = 20
	inferredSoloWeight   = 15

	inferredSafetyEmpathy = "初心者の方は安全面が気になりますよね"
	inferredSoloEmpathy   = "お一人でのご参加なのですね"
)

// Detect turns free-text worries plus a profile into a concern map.
//
// All texts are joined and lowercased, then every lexicon keyword is matched
// as a plain substring. Profile inference only fills categories that text
// detection did not already claim; it never overrides a textual hit.
// Pure function: same inputs always yield the same map.
func Detect(profile domain.UserProfile, concernTexts []string) map[domain.ConcernCategory]domain.DetectedConcern {
	blob := strings.ToLower(strings.Join(concernTexts, " "))

	detected := make(map[domain.ConcernCategory]domain.DetectedConcern)
	for _, cat := range concernOrder {
		def := concernLexicon[cat]
		var hits []string
		for _, kw := range def.Keywords {
			if strings.Contains(blob, strings.ToLower(kw)) {
				hits = append(hits, kw)
			}
		}
		if len(hits) > 0 {
			detected[cat] = domain.DetectedConcern{
				Detected:        true,
				Weight:          def.Weight,
				Empathy:         def.Empathy,
				MatchedKeywords: hits,
			}
		}
	}

	if profile.DivingExperience.IsNovice() {
		if _, ok := detected[domain.ConcernSafety]; !ok {
			detected[domain.ConcernSafety] = domain.DetectedConcern{
				Detected: true,
				Weight:   inferredSafetyWeight,
				Empathy:  inferredSafetyEmpathy,
				Source:   domain.SourceProfileInference,
			}
		}
	}
	if profile.ParticipationStyle == domain.StyleSolo {
		if _, ok := detected[domain.ConcernSolo]; !ok {
			detected[domain.ConcernSolo] = domain.DetectedConcern{
				Detected: true,
				Weight:   inferredSoloWeight,
				Empathy:  inferredSoloEmpathy,
				Source:   domain.SourceProfileInference,
			}
		}
	}

	return detected
}
