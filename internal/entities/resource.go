package entities

import "strings"

type Vehicle struct {
	ID          string
	PlateNumber string
	Brand       string
	Model       string
	Year        int
}

type Driver struct {
	ID            string
	FullName      string
	Phone         string
	LicenseNumber string
}

type Trailer struct {
	ID          string
	PlateNumber string
	Type        string
	CapacityKg  float64
}

type PoolName string

const (
	PoolVehicles PoolName = "vehicles"
	PoolDrivers  PoolName = "drivers"
	PoolTrailers PoolName = "trailers"
)

func (p PoolName) String() string {
	return string(p)
}

// PoolFailure - диагностика по пулу, который не загрузился и был заменен пустым.
type PoolFailure struct {
	Pool    PoolName
	Message string
}

type Pools struct {
	Vehicles []Vehicle
	Drivers  []Driver
	Trailers []Trailer
	Failures []PoolFailure
}

// Selections - частичный набор выбранных ресурсов. nil или строка из пробелов означают "не трогать".
type Selections struct {
	VehicleID *string
	DriverID  *string
	TrailerID *string
}

func (s Selections) Empty() bool {
	return blank(s.VehicleID) && blank(s.DriverID) && blank(s.TrailerID)
}

// Normalized оставляет только непустые поля, значения без крайних пробелов.
func (s Selections) Normalized() Selections {
	return Selections{
		VehicleID: trimmed(s.VehicleID),
		DriverID:  trimmed(s.DriverID),
		TrailerID: trimmed(s.TrailerID),
	}
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func trimmed(s *string) *string {
	if blank(s) {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
