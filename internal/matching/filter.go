package matching

import "github.com/ICHI0608/jiji-matching/internal/domain"

// FilterEligible drops shops that structurally cannot serve the user.
// Each rule is an independent hard exclusion; a shop fails if any applies.
// The returned slice preserves catalog order and may be empty.
func FilterEligible(shops []domain.ShopRecord, profile domain.UserProfile) []domain.ShopRecord {
	out := make([]domain.ShopRecord, 0, len(shops))
	for _, shop := range shops {
		if !eligible(shop, profile) {
			continue
		}
		out = append(out, shop)
	}
	return out
}

func eligible(shop domain.ShopRecord, profile domain.UserProfile) bool {
	if profile.DivingExperience.IsNovice() && !shop.BeginnerFriendly {
		return false
	}
	if profile.LicenseType == domain.LicenseNone && shop.TrialDiveOptions == "" {
		return false
	}
	if lowestGrade(shop.JijiGrade) && profile.DivingExperience == domain.ExperienceNone {
		return false
	}
	return true
}

// lowestGrade covers both an explicit C grade and not-yet-graded shops.
func lowestGrade(grade string) bool {
	switch grade {
	case "S", "A", "B":
		return false
	}
	return true
}
