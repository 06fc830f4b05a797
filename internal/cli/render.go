package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

func seatsLeft(n int) string {
	if n <= 0 {
		return "Full"
	}
	return strconv.Itoa(n)
}

func renderFlights(out io.Writer, views []domain.FlightView) {
	fmt.Fprintln(out, rule("-", 80))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Flight No\tDeparture Date/Time\tDestination\tEconomy Seats\tBusiness Seats")
	for _, v := range views {
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\n",
			v.Number, v.DepartureDate, v.DepartureTime, v.Destination,
			seatsLeft(v.AvailableEconomy), seatsLeft(v.AvailableBusiness))
	}
	w.Flush()
}

func renderBookings(out io.Writer, groups []domain.BookingGroup) {
	for _, g := range groups {
		fmt.Fprintf(out, "\nDeparture Date: %s\n%s\n", g.DepartureDate, rule("-", 80))
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Booking ID\tFlight No\tCustomer\tClass\tFare")
		for _, b := range g.Bookings {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%s\n", b.ID, b.FlightNo, b.CustomerName, b.Class.Title(), b.Fare.StringFixed(2))
		}
		w.Flush()
	}
}
