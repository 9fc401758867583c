package memory

import "listing-service/internal/core/domain"

func ptr[T any](v T) *T { return &v }

// SampleProperties - демонстрационный набор объявлений в порядке добавления
func SampleProperties() []domain.Property {
	return []domain.Property{
		{
			ID:              1,
			Title:           "강남구 역삼동 신축 오피스텔",
			Type:            "오피스텔",
			TransactionType: domain.TransactionSale,
			Price:           ptr[int64](850000000),
			Area:            domain.Area{Exclusive: 84, Supply: 102},
			Floor:           "15/20",
			Direction:       "남동향",
			YearBuilt:       2024,
			HasElevator:     true,
			ParkingRatio:    1.2,
			Images: []string{
				"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			},
			Address:        "서울특별시 강남구 역삼동",
			Description:    "신축 프리미엄 오피스텔, 지하철역 도보 3분",
			Rooms:          ptr(2),
			Bathrooms:      ptr(1),
			MaintenanceFee: ptr[int64](250000),
			HouseholdCount: ptr(320),
			Latitude:       37.5006,
			Longitude:      127.0364,
		},
		{
			ID:              2,
			Title:           "서초구 반포동 리모델링 아파트",
			Type:            "아파트",
			TransactionType: domain.TransactionJeonse,
			Deposit:         ptr[int64](500000000),
			Area:            domain.Area{Exclusive: 132, Supply: 155},
			Floor:           "12/15",
			Direction:       "남향",
			YearBuilt:       2019,
			HasElevator:     true,
			ParkingRatio:    1.5,
			Images: []string{
				"https://images.unsplash.com/photo-1484154218962-a197022b5858?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			},
			Address:        "서울특별시 서초구 반포동",
			Description:    "한강뷰, 리모델링 완료, 초등학교 인근",
			Rooms:          ptr(4),
			Bathrooms:      ptr(2),
			MaintenanceFee: ptr[int64](350000),
			HouseholdCount: ptr(1200),
			Latitude:       37.5046,
			Longitude:      126.9989,
		},
		{
			ID:              3,
			Title:           "송파구 잠실동 대단지 아파트",
			Type:            "아파트",
			TransactionType: domain.TransactionMonthly,
			Deposit:         ptr[int64](100000000),
			MonthlyRent:     ptr[int64](1800000),
			Area:            domain.Area{Exclusive: 108, Supply: 128},
			Floor:           "8/25",
			Direction:       "동남향",
			YearBuilt:       2021,
			HasElevator:     true,
			ParkingRatio:    1.0,
			Images: []string{
				"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			},
			Address:        "서울특별시 송파구 잠실동",
			Description:    "대단지 아파트, 편의시설 우수, 교통 편리",
			Rooms:          ptr(3),
			Bathrooms:      ptr(2),
			MaintenanceFee: ptr[int64](280000),
			HouseholdCount: ptr(5563),
			Latitude:       37.5133,
			Longitude:      127.1001,
		},
		{
			ID:              4,
			Title:           "경기도 안산시 상록구 사동 빌라",
			Type:            "빌라",
			TransactionType: domain.TransactionSale,
			Price:           ptr[int64](420000000),
			Area:            domain.Area{Exclusive: 99, Supply: 115},
			Floor:           "3/4",
			Direction:       "남향",
			YearBuilt:       2018,
			HasElevator:     false,
			ParkingRatio:    0.8,
			Images: []string{
				"https://images.unsplash.com/photo-1507652313519-d4e9174996dd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			},
			Address:        "경기도 안산시 상록구 사동",
			Description:    "조용한 주택가, 넓은 베란다, 주차 가능",
			Rooms:          ptr(3),
			Bathrooms:      ptr(1),
			MaintenanceFee: ptr[int64](80000),
			HouseholdCount: ptr(16),
			Latitude:       37.2990,
			Longitude:      126.8370,
		},
	}
}
