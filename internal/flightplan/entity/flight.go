package entity

// FlightCalculation holds every derived value of one calculation. It is
// only ever returned fully populated.
type FlightCalculation struct {
	DistanceKm     float64
	BlockFuelKg    float64
	PayloadKg      int64
	PassengerCount int64
	CargoKg        float64
	EmptyWeightKg  int64
	EstimatedZFW   int64
	MaxZFW         int64
	EstimatedTOW   int64
	MaxTOW         int64
	EstimatedLW    int64
	MaxLW          int64
}

type FlightPlan struct {
	Aircraft    string
	Departure   AirportLocation
	Arrival     AirportLocation
	Calculation FlightCalculation
}
