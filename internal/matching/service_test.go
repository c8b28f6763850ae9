package matching

import (
	"testing"

	"github.com/ICHI0608/jiji-matching/internal/domain"
)

func TestServiceScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		shop domain.ShopRecord
		want int
	}{
		{
			name: "top shop",
			shop: domain.ShopRecord{
				JijiGrade:      "S",
				CustomerRating: 4.9,
				ReviewCount:    150,
				PickupService:  true,
				PhotoService:   true,
				VideoService:   true,
			},
			want: 20 + 15 + 10 + 5 + 3 + 3,
		},
		{
			name: "mid tiers",
			shop: domain.ShopRecord{JijiGrade: "B", CustomerRating: 4.5, ReviewCount: 50},
			want: 10 + 10 + 7,
		},
		{
			name: "rating boundary below tier",
			shop: domain.ShopRecord{JijiGrade: "A", CustomerRating: 3.9, ReviewCount: 19},
			want: 15,
		},
		{
			name: "ungraded gets floor",
			shop: domain.ShopRecord{},
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ServiceScore(tt.shop); got != tt.want {
				t.Errorf("ServiceScore=%d, want %d", got, tt.want)
			}
		})
	}
}

func TestRankStableOnTies(t *testing.T) {
	t.Parallel()

	scored := []domain.ScoredShop{
		{Shop: domain.ShopRecord{ShopID: "low"}, TotalScore: 10},
		{Shop: domain.ShopRecord{ShopID: "tie-a"}, TotalScore: 50},
		{Shop: domain.ShopRecord{ShopID: "tie-b"}, TotalScore: 50},
		{Shop: domain.ShopRecord{ShopID: "high"}, TotalScore: 80},
	}

	ranked := Rank(scored)

	wantOrder := []string{"high", "tie-a", "tie-b", "low"}
	for i, want := range wantOrder {
		if ranked[i].Shop.ShopID != want {
			t.Errorf("rank[%d]=%s, want %s", i, ranked[i].Shop.ShopID, want)
		}
	}
}
