package entities

// Analytics - производные, read-only данные. Пересчитываются целиком
// на сервере; локально никогда не мутируются инкрементально.
type Analytics struct {
	WeeklyStats        []DayStat
	RatingDistribution []RatingCount
	AverageRating      float64
}

type DayStat struct {
	Day        string
	Deliveries int
	Earnings   float64
}

type RatingCount struct {
	Rating int
	Count  int
}
