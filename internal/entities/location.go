package entities

import "time"

// Location - неизменяемый снимок позиции. Стор хранит только последнее
// значение на субъект (водитель или контрагент).
type Location struct {
	Latitude   float64
	Longitude  float64
	Accuracy   *float64
	CapturedAt time.Time
}
