package matching

import (
	"testing"

	"github.com/ICHI0608/jiji-matching/internal/domain"
)

func concernsOf(cats ...domain.ConcernCategory) map[domain.ConcernCategory]domain.DetectedConcern {
	m := make(map[domain.ConcernCategory]domain.DetectedConcern, len(cats))
	for _, cat := range cats {
		def := concernLexicon[cat]
		m[cat] = domain.DetectedConcern{Detected: true, Weight: def.Weight, Empathy: def.Empathy}
	}
	return m
}

func TestScoreSafetyBlock(t *testing.T) {
	t.Parallel()

	shop := domain.ShopRecord{
		SafetyEquipment:   true,
		InsuranceCoverage: true,
		ExperienceYears:   15,
		IncidentRecord:    "",
	}

	score, reasons := scoreEmotional(shop, concernsOf(domain.ConcernSafety))

	if score != 15+8+7+5 {
		t.Errorf("safety score=%d, want 35", score)
	}
	if len(reasons) != 1 {
		t.Fatalf("reasons=%d, want 1", len(reasons))
	}
	if reasons[0].Concern != concernLabels[domain.ConcernSafety] {
		t.Errorf("reason concern=%q", reasons[0].Concern)
	}
	if reasons[0].Score != 35 {
		t.Errorf("reason score=%d, want 35", reasons[0].Score)
	}
}

func TestScoreIncidentRecordVariants(t *testing.T) {
	t.Parallel()

	base := domain.ShopRecord{SafetyEquipment: true}

	clean := base
	clean.IncidentRecord = "clean"
	score, _ := scoreEmotional(clean, concernsOf(domain.ConcernSafety))
	if score != 15+5 {
		t.Errorf("clean record score=%d, want 20", score)
	}

	tainted := base
	tainted.IncidentRecord = "2019年に軽微な事故"
	score, _ = scoreEmotional(tainted, concernsOf(domain.ConcernSafety))
	if score != 15 {
		t.Errorf("tainted record score=%d, want 15", score)
	}
}

func TestScorePersonalBlockLabelQuirk(t *testing.T) {
	t.Parallel()

	shop := domain.ShopRecord{MaxGroupSize: 4, PrivateGuideAvailable: true, BeginnerFriendly: true}

	// Solo alone: personal block fires once, solo-welcome block is separate.
	_, reasons := scoreEmotional(shop, concernsOf(domain.ConcernSolo))
	if len(reasons) != 2 {
		t.Fatalf("reasons=%d, want personal + solo-welcome", len(reasons))
	}
	if reasons[0].Concern != concernLabels[domain.ConcernSolo] {
		t.Errorf("personal reason labeled %q, want solo label", reasons[0].Concern)
	}

	// Both skill and solo: the skill label wins the shared personal block.
	// This mirrors the original service even though both were detected.
	_, reasons = scoreEmotional(shop, concernsOf(domain.ConcernSkill, domain.ConcernSolo))
	if reasons[0].Concern != concernLabels[domain.ConcernSkill] {
		t.Errorf("personal reason labeled %q, want skill label", reasons[0].Concern)
	}
}

func TestScorePersonalAndSoloWelcomeBothFire(t *testing.T) {
	t.Parallel()

	shop := domain.ShopRecord{
		MaxGroupSize:          4,
		PrivateGuideAvailable: true,
		BeginnerFriendly:      true,
		SoloWelcome:           true,
		CustomerRating:        4.8,
	}

	score, reasons := scoreEmotional(shop, concernsOf(domain.ConcernSolo))

	// personal: 12+10+8, solo welcome: 15+8+5
	if score != 30+28 {
		t.Errorf("score=%d, want 58", score)
	}
	if len(reasons) != 2 {
		t.Errorf("reasons=%d, want 2", len(reasons))
	}
}

func TestScoreCostBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		shop domain.ShopRecord
		want int
	}{
		{
			name: "cheap fun dive with everything",
			shop: domain.ShopRecord{
				FunDivePrice2Tanks:      11000,
				EquipmentRentalIncluded: true,
				PhotoService:            true,
			},
			want: 15 + 6 + 4 + 3,
		},
		{
			name: "mid price tier is exclusive",
			shop: domain.ShopRecord{FunDivePrice2Tanks: 14000},
			want: 8 + 3,
		},
		{
			name: "trial price used when fun dive absent",
			shop: domain.ShopRecord{TrialDivePriceBeach: 12000},
			want: 15 + 3,
		},
		{
			name: "no price no tier bonus",
			shop: domain.ShopRecord{},
			want: 3,
		},
		{
			name: "expensive with fees scores zero",
			shop: domain.ShopRecord{FunDivePrice2Tanks: 20000, AdditionalFees: "器材レンタル別"},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, reasons := scoreEmotional(tt.shop, concernsOf(domain.ConcernCost))
			if score != tt.want {
				t.Errorf("score=%d, want %d", score, tt.want)
			}
			if tt.want == 0 && len(reasons) != 0 {
				t.Errorf("zero-score block emitted a reason: %v", reasons)
			}
		})
	}
}

func TestScoreReasonOrderFixed(t *testing.T) {
	t.Parallel()

	shop := domain.ShopRecord{
		SafetyEquipment:    true,
		MaxGroupSize:       4,
		FunDivePrice2Tanks: 10000,
		SoloWelcome:        true,
	}
	concerns := concernsOf(domain.ConcernCost, domain.ConcernSolo, domain.ConcernSafety)

	_, reasons := scoreEmotional(shop, concerns)

	want := []string{
		concernLabels[domain.ConcernSafety],
		concernLabels[domain.ConcernSolo], // personal block
		concernLabels[domain.ConcernCost],
		concernLabels[domain.ConcernSolo], // solo-welcome block
	}
	if len(reasons) != len(want) {
		t.Fatalf("reasons=%d, want %d", len(reasons), len(want))
	}
	for i, label := range want {
		if reasons[i].Concern != label {
			t.Errorf("reason[%d]=%q, want %q", i, reasons[i].Concern, label)
		}
	}
}

func TestScoreNoConcernsNoScore(t *testing.T) {
	t.Parallel()

	shop := domain.ShopRecord{SafetyEquipment: true, SoloWelcome: true, FunDivePrice2Tanks: 9000}

	scored := ScoreShops([]domain.ShopRecord{shop}, nil)
	if len(scored) != 1 {
		t.Fatalf("scored=%d, want 1", len(scored))
	}
	if scored[0].EmotionalScore != 0 {
		t.Errorf("emotional score=%d, want 0", scored[0].EmotionalScore)
	}
	if len(scored[0].Reasons) != 0 {
		t.Errorf("reasons=%v, want none", scored[0].Reasons)
	}
}
