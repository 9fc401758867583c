package memory

import (
	"context"
	"fmt"
	"listing-service/internal/core/domain"
)

type ShowcaseSource struct{}

func NewShowcaseSource() *ShowcaseSource {
	return &ShowcaseSource{}
}

func showcaseImage(n int) string {
	return fmt.Sprintf("https://picsum.photos/400/300?random=%d", n)
}

// GetShowcase собирает данные витрины заново на каждый вызов
func (s *ShowcaseSource) GetShowcase(ctx context.Context) (*domain.Showcase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &domain.Showcase{
		Properties: []domain.ShowcaseProperty{
			{
				ID: 1, Title: "강남 신축 아파트", Price: 1200000000, Location: "서울시 강남구",
				Type: "아파트", Rooms: 3, Bathrooms: 2, Area: 84, Status: "available", Featured: true,
				ImageURL: showcaseImage(1), Tags: []string{"신축", "남향", "주차가능", "엘리베이터"},
			},
			{
				ID: 2, Title: "홍대 오피스텔", Price: 450000000, Location: "서울시 마포구 홍대",
				Type: "오피스텔", Rooms: 1, Bathrooms: 1, Area: 32, Status: "pending",
				ImageURL: showcaseImage(2), Tags: []string{"역세권", "투자용", "관리비저렴"},
			},
			{
				ID: 3, Title: "판교 빌라", Price: 800000000, Location: "경기도 성남시 분당구",
				Type: "빌라", Rooms: 4, Bathrooms: 2, Area: 112, Status: "sold",
				ImageURL: showcaseImage(3), Tags: []string{"단독주택", "정원", "주차2대"},
			},
		},
		FilterOptions: domain.ShowcaseFilterOptions{
			PropertyTypes: []string{"아파트", "오피스텔", "빌라", "단독주택", "상가"},
			PriceRanges: []domain.OptionItem{
				{Label: "5억 이하", Value: "0-500000000"},
				{Label: "5억~10억", Value: "500000000-1000000000"},
				{Label: "10억~15억", Value: "1000000000-1500000000"},
				{Label: "15억 이상", Value: "1500000000-"},
			},
			Locations: []string{"강남구", "서초구", "송파구", "마포구", "용산구", "성동구"},
		},
	}, nil
}
