package matching

import (
	"fmt"
	"strings"

	"github.com/ICHI0608/jiji-matching/internal/domain"
)

// ScoreShops computes the emotional score breakdown for every shop.
// The result keeps input order and length; ranking happens later.
// Service scores are filled in by the engine, not here.
func ScoreShops(shops []domain.ShopRecord, concerns map[domain.ConcernCategory]domain.DetectedConcern) []domain.ScoredShop {
	out := make([]domain.ScoredShop, 0, len(shops))
	for _, shop := range shops {
		score, reasons := scoreEmotional(shop, concerns)
		out = append(out, domain.ScoredShop{
			Shop:           shop,
			EmotionalScore: score,
			Reasons:        reasons,
		})
	}
	return out
}

// scoreEmotional evaluates the four category blocks in fixed order:
// safety, personal attention (skill/solo), cost, solo welcome.
// A block contributes a reason entry only when its total is positive.
func scoreEmotional(shop domain.ShopRecord, concerns map[domain.ConcernCategory]domain.DetectedConcern) (int, []domain.ScoreReason) {
	var total int
	var reasons []domain.ScoreReason

	add := func(cat domain.ConcernCategory, empathy string, score int, points []string) {
		if score <= 0 {
			return
		}
		total += score
		reasons = append(reasons, domain.ScoreReason{
			Concern:  concernLabels[cat],
			Solution: strings.Join(points, "、"),
			Empathy:  empathy,
			Score:    score,
		})
	}

	if c, ok := concerns[domain.ConcernSafety]; ok {
		var score int
		var points []string
		if shop.SafetyEquipment {
			score += 15
			points = append(points, "安全器材を完備")
		}
		if shop.InsuranceCoverage {
			score += 8
			points = append(points, "保険加入済み")
		}
		if shop.ExperienceYears >= 10 {
			score += 7
			points = append(points, fmt.Sprintf("運営歴%d年の実績", shop.ExperienceYears))
		}
		if !shop.HasIncidents() {
			score += 5
			points = append(points, "無事故の記録")
		}
		add(domain.ConcernSafety, c.Empathy, score, points)
	}

	// Skill and solo share one personal-attention block and one score
	// bucket. When both are detected the skill label wins the reason
	// entry; this mirrors the original service's behavior.
	skillC, hasSkill := concerns[domain.ConcernSkill]
	soloC, hasSolo := concerns[domain.ConcernSolo]
	if hasSkill || hasSolo {
		var score int
		var points []string
		if shop.MaxGroupSize > 0 && shop.MaxGroupSize <= 4 {
			score += 12
			points = append(points, fmt.Sprintf("最大%d名の少人数制", shop.MaxGroupSize))
		}
		if shop.PrivateGuideAvailable {
			score += 10
			points = append(points, "プライベートガイド対応")
		}
		if shop.BeginnerFriendly {
			score += 8
			points = append(points, "初心者への丁寧なサポート")
		}
		cat, empathy := domain.ConcernSkill, skillC.Empathy
		if !hasSkill {
			cat, empathy = domain.ConcernSolo, soloC.Empathy
		}
		add(cat, empathy, score, points)
	}

	if c, ok := concerns[domain.ConcernCost]; ok {
		var score int
		var points []string
		price := shop.FunDivePrice2Tanks
		if price == 0 {
			price = shop.TrialDivePriceBeach
		}
		switch {
		case price > 0 && price <= 12000:
			score += 15
			points = append(points, fmt.Sprintf("%.0f円の良心的な価格", price))
		case price > 0 && price <= 15000:
			score += 8
			points = append(points, fmt.Sprintf("%.0f円の手頃な価格", price))
		}
		if shop.EquipmentRentalIncluded {
			score += 6
			points = append(points, "器材レンタル込み")
		}
		if shop.PhotoService {
			score += 4
			points = append(points, "写真サービス付き")
		}
		if shop.AdditionalFees == "" {
			score += 3
			points = append(points, "追加料金なし")
		}
		add(domain.ConcernCost, c.Empathy, score, points)
	}

	// Solo welcome is evaluated on top of the shared personal block; both
	// can fire for a solo participant.
	if c, ok := concerns[domain.ConcernSolo]; ok {
		var score int
		var points []string
		if shop.SoloWelcome {
			score += 15
			points = append(points, "一人参加歓迎")
		}
		if shop.MaxGroupSize > 0 && shop.MaxGroupSize <= 6 {
			score += 8
			points = append(points, "少人数グループ")
		}
		if shop.CustomerRating >= 4.5 {
			score += 5
			points = append(points, fmt.Sprintf("評価%.1fの高い満足度", shop.CustomerRating))
		}
		add(domain.ConcernSolo, c.Empathy, score, points)
	}

	return total, reasons
}
