package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TravelClass string

const (
	ClassEconomy  TravelClass = "economy"
	ClassBusiness TravelClass = "business"
)

// ParseTravelClass accepts any letter case, e.g. "Economy".
func ParseTravelClass(s string) (TravelClass, error) {
	switch c := TravelClass(strings.ToLower(strings.TrimSpace(s))); c {
	case ClassEconomy, ClassBusiness:
		return c, nil
	}
	return "", ErrInvalidClass
}

func (c TravelClass) Valid() bool {
	return c == ClassEconomy || c == ClassBusiness
}

// Title returns the display form, e.g. "Business".
func (c TravelClass) Title() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Date is a calendar day in YYYY-MM-DD form.
type Date string

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", ErrInvalidDate
	}
	return Date(s), nil
}

func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// Clock is a wall-clock time of day in HH:MM form.
type Clock string

func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(ClockLayout, s); err != nil {
		return "", ErrInvalidTime
	}
	return Clock(s), nil
}

type SeatCount struct {
	Economy  int `json:"economy" yaml:"economy"`
	Business int `json:"business" yaml:"business"`
}

func (s SeatCount) Of(c TravelClass) int {
	if c == ClassBusiness {
		return s.Business
	}
	return s.Economy
}

// Add returns a copy of s with delta applied to class c.
func (s SeatCount) Add(c TravelClass, delta int) SeatCount {
	if c == ClassBusiness {
		s.Business += delta
	} else {
		s.Economy += delta
	}
	return s
}

type Fares struct {
	Economy  decimal.Decimal `json:"economy" yaml:"economy"`
	Business decimal.Decimal `json:"business" yaml:"business"`
}

func (f Fares) Of(c TravelClass) decimal.Decimal {
	if c == ClassBusiness {
		return f.Business
	}
	return f.Economy
}

type Flight struct {
	Number        string    `json:"flight_no"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureDate Date      `json:"departure_date"`
	DepartureTime Clock     `json:"departure_time"`
	Seats         SeatCount `json:"seats"`
	Booked        SeatCount `json:"booked"`
	Fares         Fares     `json:"fares"`
}

// Available is capacity minus booked for class c. It may be reported as
// zero or below only when the class is full.
func (f Flight) Available(c TravelClass) int {
	return f.Seats.Of(c) - f.Booked.Of(c)
}

func (f Flight) IsFull(c TravelClass) bool {
	return f.Available(c) <= 0
}
