package flights

import "github.com/Domenick1991/flightdesk/internal/domain"

// Search filters flights by exact date, time and destination. The class
// criterion only drops flights whose requested class is already full.
// Results keep the order of the input.
func Search(flights []domain.Flight, c domain.SearchCriteria) []domain.FlightView {
	out := make([]domain.FlightView, 0)
	for _, f := range flights {
		if c.Date != "" && f.DepartureDate != c.Date {
			continue
		}
		if c.Time != "" && f.DepartureTime != c.Time {
			continue
		}
		if c.Destination != "" && f.Destination != c.Destination {
			continue
		}
		if c.Class != "" && f.IsFull(c.Class) {
			continue
		}
		out = append(out, domain.NewFlightView(f))
	}
	return out
}
