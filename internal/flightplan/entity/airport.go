package entity

type AirportLocation struct {
	StationCode string
	Latitude    float64
	Longitude   float64
}
