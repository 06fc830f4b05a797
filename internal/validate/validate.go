// Package validate holds the input format rules every desk front end
// applies before calling the reservation engine.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/Domenick1991/flightdesk/config"
)

var (
	customerIDPattern = regexp.MustCompile(`^C\d{3}$`)
	phonePattern      = regexp.MustCompile(`^\d{7,}$`)
)

// Rules holds the desk-specific checks for new flights.
type Rules struct {
	origin        string
	destinations  []string
	flightPattern *regexp.Regexp
}

func NewRules(desk config.DeskConfig) Rules {
	return Rules{
		origin:        desk.Origin,
		destinations:  desk.Destinations,
		flightPattern: regexp.MustCompile(`^` + regexp.QuoteMeta(desk.Origin) + `\d{3}$`),
	}
}

func (r Rules) Origin() string { return r.origin }

func (r Rules) Destinations() []string { return r.destinations }

// FlightNumber normalises s to upper case and checks it is the origin code
// followed by three digits.
func (r Rules) FlightNumber(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !r.flightPattern.MatchString(s) {
		return "", fmt.Errorf("Invalid flight number format. Must be %s followed by 3 digits (e.g., %s001)", r.origin, r.origin)
	}
	return s, nil
}

func (r Rules) Departure(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s != r.origin {
		return "", fmt.Errorf("All flights must depart from %s!", r.origin)
	}
	return s, nil
}

func (r Rules) Destination(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !slices.Contains(r.destinations, s) {
		return "", fmt.Errorf("Invalid destination. Must be %s", r.DestinationList())
	}
	return s, nil
}

// Flight checks the three route fields of a new flight together.
func (r Rules) Flight(number, origin, destination string) (string, string, string, error) {
	number, err := r.FlightNumber(number)
	if err != nil {
		return "", "", "", err
	}
	if origin, err = r.Departure(origin); err != nil {
		return "", "", "", err
	}
	if destination, err = r.Destination(destination); err != nil {
		return "", "", "", err
	}
	return number, origin, destination, nil
}

// DestinationList renders the destinations as "A, B, or C".
func (r Rules) DestinationList() string {
	switch n := len(r.destinations); n {
	case 0:
		return ""
	case 1:
		return r.destinations[0]
	default:
		return strings.Join(r.destinations[:n-1], ", ") + ", or " + r.destinations[n-1]
	}
}

func CustomerID(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !customerIDPattern.MatchString(s) {
		return "", errors.New("Invalid format. Must be C followed by 3 digits (e.g., C001)")
	}
	return s, nil
}

func Phone(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !phonePattern.MatchString(s) {
		return "", errors.New("Invalid telephone number! Must be at least 7 digits.")
	}
	return s, nil
}

// Required returns a check that rejects blank input for field.
func Required(field string) func(string) (string, error) {
	return func(s string) (string, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return "", fmt.Errorf("%s is required!", field)
		}
		return s, nil
	}
}
