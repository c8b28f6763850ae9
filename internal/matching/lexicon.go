package matching

import "github.com/ICHI0608/jiji-matching/internal/domain"

// ConcernDefinition maps one worry category to the substrings that trigger
// it, an importance weight, and the empathy phrase used in narratives.
type ConcernDefinition struct {
	Keywords []string
	Weight   int
	Empathy  string
}

// concernOrder fixes iteration order everywhere the lexicon is walked, so
// detection, scoring and narratives stay deterministic.
var concernOrder = []domain.ConcernCategory{
	domain.ConcernSafety,
	domain.ConcernSkill,
	domain.ConcernSolo,
	domain.ConcernCost,
	domain.ConcernPhysical,
	domain.ConcernCommunication,
}

// concernLexicon is the static concern table. Keyword overlap between
// categories is allowed; one phrase may trigger several concerns.
// ASCII keywords are matched case-insensitively against the lowercased input.
var concernLexicon = map[domain.ConcernCategory]ConcernDefinition{
	domain.ConcernSafety: {
		Keywords: []string{"不安", "心配", "怖い", "こわい", "安全", "事故", "初めて", "はじめて", "anxious", "worried", "scared", "safety"},
		Weight:   25,
		Empathy:  "初めてのダイビングは誰でも不安になりますよね",
	},
	domain.ConcernSkill: {
		Keywords: []string{"泳げない", "泳ぎが苦手", "泳ぎに自信", "自信がない", "下手", "スキル", "ついていける", "skill", "swim"},
		Weight:   20,
		Empathy:  "泳ぎに自信がなくても大丈夫ですよ",
	},
	domain.ConcernSolo: {
		Keywords: []string{"一人", "ひとり", "1人", "ソロ", "仲間がいない", "友達がいない", "alone", "solo", "by myself"},
		Weight:   20,
		Empathy:  "お一人での参加は勇気がいりますよね",
	},
	domain.ConcernCost: {
		Keywords: []string{"高い", "料金", "値段", "費用", "予算", "お金", "安く", "price", "cost", "budget", "expensive"},
		Weight:   15,
		Empathy:  "料金のことはやっぱり気になりますよね",
	},
	domain.ConcernPhysical: {
		Keywords: []string{"体力", "疲れ", "年齢", "運動不足", "体が", "stamina", "fitness", "tired"},
		Weight:   15,
		Empathy:  "体力面のご心配、よく分かります",
	},
	domain.ConcernCommunication: {
		Keywords: []string{"言葉", "英語", "会話", "人見知り", "コミュニケーション", "language", "shy"},
		Weight:   10,
		Empathy:  "言葉や会話のご心配がありますよね",
	},
}

// concernLabels are the user-facing names used in score reasons.
var concernLabels = map[domain.ConcernCategory]string{
	domain.ConcernSafety:        "安全面の不安",
	domain.ConcernSkill:         "スキルの不安",
	domain.ConcernSolo:          "一人参加の不安",
	domain.ConcernCost:          "料金の不安",
	domain.ConcernPhysical:      "体力面の不安",
	domain.ConcernCommunication: "会話の不安",
}
