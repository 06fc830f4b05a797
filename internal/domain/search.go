package domain

// SearchCriteria fields are optional; the zero value means "any".
type SearchCriteria struct {
	Date        Date
	Time        Clock
	Destination string
	Class       TravelClass
}

// FlightView is a search result with seats left per class.
type FlightView struct {
	Flight
	AvailableEconomy  int `json:"available_economy"`
	AvailableBusiness int `json:"available_business"`
}

func NewFlightView(f Flight) FlightView {
	return FlightView{
		Flight:            f,
		AvailableEconomy:  f.Available(ClassEconomy),
		AvailableBusiness: f.Available(ClassBusiness),
	}
}
