package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// flexID принимает идентификатор и числом, и строкой.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %s", b)
	}
	*f = flexID(n.String())
	return nil
}

// flexFloat принимает число или числовую строку (numeric из postgres часто сериализуется строкой).
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", s, err)
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// flexTime принимает RFC3339, локальное время без зоны и просто дату.
type flexTime struct {
	time.Time
	Valid bool
}

func (f *flexTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = flexTime{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("time must be a string: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*f = flexTime{}
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*f = flexTime{Time: t, Valid: true}
			return nil
		}
	}
	return fmt.Errorf("unsupported time format %q", s)
}

func (f flexTime) ptr() *time.Time {
	if !f.Valid {
		return nil
	}
	t := f.Time
	return &t
}

type namedRef struct {
	ID          flexID `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"fullName"`
	PlateNumber string `json:"plateNumber"`
}

type orderDTO struct {
	ID flexID `json:"id"`

	DepartureCity         string `json:"departureCity"`
	DepartureCountry      string `json:"departureCountry"`
	DepartureAddress      string `json:"departureAddress"`
	DepartureDistrict     string `json:"departureDistrict"`
	DeparturePostalCode   string `json:"departurePostalCode"`
	DepartureContactName  string `json:"departureContactName"`
	DepartureContactPhone string `json:"departureContactPhone"`
	DepartureContactEmail string `json:"departureContactEmail"`

	ArrivalCity         string `json:"arrivalCity"`
	ArrivalCountry      string `json:"arrivalCountry"`
	ArrivalAddress      string `json:"arrivalAddress"`
	ArrivalDistrict     string `json:"arrivalDistrict"`
	ArrivalPostalCode   string `json:"arrivalPostalCode"`
	ArrivalContactName  string `json:"arrivalContactName"`
	ArrivalContactPhone string `json:"arrivalContactPhone"`
	ArrivalContactEmail string `json:"arrivalContactEmail"`

	CargoType      string    `json:"cargoType"`
	Weight         flexFloat `json:"weight"`
	Width          flexFloat `json:"width"`
	Length         flexFloat `json:"length"`
	Height         flexFloat `json:"height"`
	IsTransferable bool      `json:"isTransferable"`

	Price        flexFloat `json:"price"`
	CustomerID   flexID    `json:"customerId"`
	CustomerName string    `json:"customerName"`
	Customer     *namedRef `json:"customer"`

	CreatedAt             flexTime `json:"createdAt"`
	LoadingDate           flexTime `json:"loadingDate"`
	DeadlineDate          flexTime `json:"deadlineDate"`
	Deadline              flexTime `json:"deadline"`
	EstimatedArrivalDate  flexTime `json:"estimatedArrivalDate"`
	EstimatedDeliveryDate flexTime `json:"estimatedDeliveryDate"`

	SalesPersonID       flexID `json:"salesPersonId"`
	SalesPersonName     string `json:"salesPersonName"`
	OperationPersonID   flexID `json:"operationPersonId"`
	OperationPersonName string `json:"operationPersonName"`
	FleetPersonID       flexID `json:"fleetPersonId"`
	FleetPersonName     string `json:"fleetPersonName"`
	CustomsPersonID     flexID `json:"customsPersonId"`
	CustomsPersonName   string `json:"customsPersonName"`

	VehicleID        flexID    `json:"vehicleId"`
	PlateNumber      string    `json:"plateNumber"`
	VehiclePlate     string    `json:"vehiclePlate"`
	PlateNumberSnake string    `json:"plate_number"`
	Vehicle          *namedRef `json:"vehicle"`

	DriverID        flexID    `json:"driverId"`
	DriverName      string    `json:"driverName"`
	DriverNameSnake string    `json:"driver_name"`
	DriverFullName  string    `json:"driverFullName"`
	Driver          *namedRef `json:"driver"`

	TrailerID          flexID    `json:"trailerId"`
	TrailerPlate       string    `json:"trailerPlate"`
	TrailerPlateNumber string    `json:"trailerPlateNumber"`
	TrailerPlateSnake  string    `json:"trailer_plate"`
	Trailer            *namedRef `json:"trailer"`

	Status string `json:"status"`
}

type vehicleDTO struct {
	ID          flexID `json:"id"`
	PlateNumber string `json:"plateNumber"`
	Plate       string `json:"plate"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        flexID `json:"year"`
}

type driverDTO struct {
	ID            flexID `json:"id"`
	FullName      string `json:"fullName"`
	Name          string `json:"name"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"licenseNumber"`
}

type trailerDTO struct {
	ID          flexID    `json:"id"`
	PlateNumber string    `json:"plateNumber"`
	Plate       string    `json:"plate"`
	Type        string    `json:"type"`
	TrailerType string    `json:"trailerType"`
	Capacity    flexFloat `json:"capacity"`
}

type historyDTO struct {
	ID           flexID   `json:"id"`
	Action       string   `json:"action"`
	ResourceName string   `json:"resourceName"`
	UserName     string   `json:"userName"`
	PerformedBy  string   `json:"performedBy"`
	Timestamp    flexTime `json:"timestamp"`
	CreatedAt    flexTime `json:"createdAt"`
	OldValue     *string  `json:"oldValue"`
	NewValue     *string  `json:"newValue"`
}

// wireID уходит на бэкенд числом, если выглядит как целое, иначе строкой.
type wireID string

func (w wireID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(w), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(w) {
		return []byte(string(w)), nil
	}
	return json.Marshal(string(w))
}

// assignRequest - частичное обновление: отсутствующие поля не попадают в JSON.
type assignRequest struct {
	VehicleID *wireID `json:"vehicleId,omitempty"`
	DriverID  *wireID `json:"driverId,omitempty"`
	TrailerID *wireID `json:"trailerId,omitempty"`
	UserID    wireID  `json:"userId"`
}

type responseEnvelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
	Order   json.RawMessage `json:"order"`
	ID      *flexID         `json:"id"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
