package matching

import (
	"sort"

	"github.com/ICHI0608/jiji-matching/internal/domain"
)

// ServiceScore rates a shop on its own attributes, independent of any
// detected concerns. Always non-negative.
func ServiceScore(shop domain.ShopRecord) int {
	var score int

	switch shop.JijiGrade {
	case "S":
		score += 20
	case "A":
		score += 15
	case "B":
		score += 10
	default:
		score += 5
	}

	switch {
	case shop.CustomerRating >= 4.8:
		score += 15
	case shop.CustomerRating >= 4.5:
		score += 10
	case shop.CustomerRating >= 4.0:
		score += 5
	}

	switch {
	case shop.ReviewCount >= 100:
		score += 10
	case shop.ReviewCount >= 50:
		score += 7
	case shop.ReviewCount >= 20:
		score += 4
	}

	if shop.PickupService {
		score += 5
	}
	if shop.PhotoService {
		score += 3
	}
	if shop.VideoService {
		score += 3
	}

	return score
}

// Rank sorts shops by total score, highest first. The sort is stable so
// that shops with equal totals keep their catalog order.
func Rank(scored []domain.ScoredShop) []domain.ScoredShop {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TotalScore > scored[j].TotalScore
	})
	return scored
}
