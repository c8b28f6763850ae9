package matching

import (
	"fmt"
	"strings"

	"github.com/ICHI0608/jiji-matching/internal/domain"
)

// anecdotes are evaluated top to bottom; the first detected category wins.
// Order encodes precedence: safety > solo > skill > cost > default.
var anecdotes = []struct {
	category domain.ConcernCategory
	text     string
}{
	{domain.ConcernSafety, "「最初は不安でいっぱいでしたが、スタッフの方が終始そばについてくれて、気づけば海の世界に夢中になっていました」"},
	{domain.ConcernSolo, "「一人で参加しましたが、すぐに他の参加者と打ち解けて、最高の思い出になりました」"},
	{domain.ConcernSkill, "「泳ぎが苦手な私でも、自分のペースで少しずつ慣れることができました」"},
	{domain.ConcernCost, "「この内容でこの料金は大満足。追加費用の心配もありませんでした」"},
}

const defaultAnecdote = "「期待以上の体験でした。また必ずお願いしたいと思えるショップです」"

// Compose turns the ranked top shops into user-facing recommendations.
func Compose(topShops []domain.ScoredShop, concerns map[domain.ConcernCategory]domain.DetectedConcern) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(topShops))
	for i, scored := range topShops {
		recs = append(recs, domain.Recommendation{
			Ranking:           fmt.Sprintf("第%d位", i+1),
			Shop:              scored,
			MainComment:       mainComment(scored),
			ExperiencePreview: experiencePreview(concerns),
			Summary:           summary(scored),
		})
	}
	return recs
}

// mainComment builds the narrative from the shop's first score reason; a
// second reason, when present, is bridged in with its concern label.
func mainComment(scored domain.ScoredShop) string {
	name := scored.Shop.ShopName
	if len(scored.Reasons) == 0 {
		return fmt.Sprintf("%sは実績のある信頼できるショップです。安心してお任せください。", name)
	}

	first := scored.Reasons[0]
	comment := fmt.Sprintf("%s。でも%sなら%sなので、安心してご参加いただけます。", first.Empathy, name, first.Solution)

	if len(scored.Reasons) > 1 {
		second := scored.Reasons[1]
		comment += fmt.Sprintf("さらに、%sの面でも%sです。", stripConcernSuffix(second.Concern), second.Solution)
	}
	return comment
}

// stripConcernSuffix drops the trailing anxiety wording from a concern label
// so it reads naturally mid-sentence.
func stripConcernSuffix(label string) string {
	return strings.TrimSuffix(label, "の不安")
}

func experiencePreview(concerns map[domain.ConcernCategory]domain.DetectedConcern) string {
	for _, a := range anecdotes {
		if _, ok := concerns[a.category]; ok {
			return a.text
		}
	}
	return defaultAnecdote
}

func summary(scored domain.ScoredShop) string {
	var tags []string
	if scored.Shop.JijiGrade == "S" {
		tags = append(tags, "Sグレード認定")
	}
	if scored.Shop.CustomerRating >= 4.7 {
		tags = append(tags, "高評価")
	}
	if scored.EmotionalScore >= 40 {
		tags = append(tags, "相性抜群")
	}
	if scored.Shop.BeginnerFriendly {
		tags = append(tags, "初心者歓迎")
	}
	if len(tags) == 0 {
		return "バランスの取れたおすすめのショップです。"
	}
	return strings.Join(tags, "・") + "のショップです。"
}

// ComposeMainMessage greets the user, acknowledges each detected concern
// among safety, solo and skill in that fixed order, and closes with an
// encouragement naming the user again.
func ComposeMainMessage(profile domain.UserProfile, concerns map[domain.ConcernCategory]domain.DetectedConcern) string {
	name := profile.DisplayName()

	var b strings.Builder
	fmt.Fprintf(&b, "%sさん、ご相談ありがとうございます。", name)

	if _, ok := concerns[domain.ConcernSafety]; ok {
		b.WriteString("初めてのダイビングへのご不安、しっかり受け止めました。")
	}
	if _, ok := concerns[domain.ConcernSolo]; ok {
		b.WriteString("お一人でのご参加も心配いりません。")
	}
	if _, ok := concerns[domain.ConcernSkill]; ok {
		b.WriteString("スキル面のご心配にも寄り添えるショップを選びました。")
	}

	fmt.Fprintf(&b, "%sさんにぴったりのショップをご紹介しますので、ぜひご覧ください。", name)
	return b.String()
}
