package matching

import (
	"strings"
	"testing"

	"github.com/ICHI0608/jiji-matching/internal/domain"
)

func TestMainCommentShapes(t *testing.T) {
	t.Parallel()

	shop := domain.ShopRecord{ShopName: "青海ダイビング"}

	// No reasons: generic trust-building fallback naming the shop.
	got := mainComment(domain.ScoredShop{Shop: shop})
	if !strings.Contains(got, "青海ダイビング") {
		t.Errorf("fallback comment does not name the shop: %q", got)
	}

	// One reason: empathy + solution.
	one := domain.ScoredShop{
		Shop: shop,
		Reasons: []domain.ScoreReason{
			{Concern: concernLabels[domain.ConcernSafety], Solution: "安全器材を完備", Empathy: "初めてのダイビングは誰でも不安になりますよね"},
		},
	}
	got = mainComment(one)
	if !strings.Contains(got, "安全器材を完備") || !strings.Contains(got, "不安になりますよね") {
		t.Errorf("single-reason comment missing parts: %q", got)
	}

	// Two reasons: second is bridged with its suffix-stripped label.
	two := one
	two.Reasons = append(two.Reasons, domain.ScoreReason{
		Concern:  concernLabels[domain.ConcernCost],
		Solution: "器材レンタル込み",
	})
	got = mainComment(two)
	if !strings.Contains(got, "器材レンタル込み") {
		t.Errorf("second reason solution missing: %q", got)
	}
	if !strings.Contains(got, "料金の面") {
		t.Errorf("second reason label not suffix-stripped: %q", got)
	}
	if strings.Contains(got, "料金の不安の面") {
		t.Errorf("anxiety suffix left in bridge sentence: %q", got)
	}
}

func TestExperiencePreviewPriority(t *testing.T) {
	t.Parallel()

	// Safety outranks solo even when both are present.
	both := concernsOf(domain.ConcernSolo, domain.ConcernSafety)
	if got := experiencePreview(both); got != anecdotes[0].text {
		t.Errorf("preview=%q, want safety anecdote", got)
	}

	soloOnly := concernsOf(domain.ConcernSolo)
	if got := experiencePreview(soloOnly); got != anecdotes[1].text {
		t.Errorf("preview=%q, want solo anecdote", got)
	}

	if got := experiencePreview(nil); got != defaultAnecdote {
		t.Errorf("preview=%q, want default anecdote", got)
	}
}

func TestSummaryTags(t *testing.T) {
	t.Parallel()

	scored := domain.ScoredShop{
		Shop: domain.ShopRecord{
			JijiGrade:        "S",
			CustomerRating:   4.8,
			BeginnerFriendly: true,
		},
		EmotionalScore: 45,
	}

	got := summary(scored)
	for _, tag := range []string{"Sグレード認定", "高評価", "相性抜群", "初心者歓迎"} {
		if !strings.Contains(got, tag) {
			t.Errorf("summary %q missing tag %q", got, tag)
		}
	}

	plain := summary(domain.ScoredShop{Shop: domain.ShopRecord{JijiGrade: "B", CustomerRating: 4.0}})
	if plain == "" {
		t.Error("summary empty for untagged shop")
	}
}

func TestComposeRankingLabels(t *testing.T) {
	t.Parallel()

	top := []domain.ScoredShop{
		{Shop: domain.ShopRecord{ShopName: "A"}},
		{Shop: domain.ShopRecord{ShopName: "B"}},
		{Shop: domain.ShopRecord{ShopName: "C"}},
	}

	recs := Compose(top, nil)
	want := []string{"第1位", "第2位", "第3位"}
	for i, label := range want {
		if recs[i].Ranking != label {
			t.Errorf("rec[%d].Ranking=%q, want %q", i, recs[i].Ranking, label)
		}
	}
}

func TestComposeMainMessage(t *testing.T) {
	t.Parallel()

	profile := domain.UserProfile{Name: "さくら"}
	concerns := concernsOf(domain.ConcernSkill, domain.ConcernSafety, domain.ConcernSolo)

	got := ComposeMainMessage(profile, concerns)

	if strings.Count(got, "さくらさん") != 2 {
		t.Errorf("message should name the user twice: %q", got)
	}
	// Acknowledgments appear in fixed order: safety, solo, skill.
	iSafety := strings.Index(got, "ご不安")
	iSolo := strings.Index(got, "お一人")
	iSkill := strings.Index(got, "スキル面")
	if iSafety == -1 || iSolo == -1 || iSkill == -1 {
		t.Fatalf("missing acknowledgment sentence: %q", got)
	}
	if !(iSafety < iSolo && iSolo < iSkill) {
		t.Errorf("acknowledgments out of order: %q", got)
	}

	// Anonymous users get the generic label.
	anon := ComposeMainMessage(domain.UserProfile{}, nil)
	if !strings.Contains(anon, "ゲストさん") {
		t.Errorf("anonymous greeting=%q, want generic label", anon)
	}
}
