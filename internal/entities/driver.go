package entities

type Driver struct {
	ID          int64
	Name        string
	Phone       string
	Vehicle     VehicleType
	IsAvailable bool
}

type VehicleType string

const (
	Bicycle VehicleType = "bicycle"
	Scooter VehicleType = "scooter"
	Car     VehicleType = "car"
)

const DefaultVehicleType = Bicycle

func (t VehicleType) String() string {
	return string(t)
}
