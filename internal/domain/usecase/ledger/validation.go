package ledger

import (
	"regexp"
	"strings"
	"time"

	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/port/usecase"
)

// servedAirports is the set of airport codes the airline flies to.
var servedAirports = map[string]bool{
	"JFK": true, "LAX": true, "LHR": true, "CDG": true, "NRT": true,
	"SYD": true, "DXB": true, "SIN": true, "FRA": true, "AMS": true,
}

// flightNumberPattern matches the airline's flight numbering, a two-letter
// carrier code followed by up to four digits, e.g. "SA1234".
var flightNumberPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{1,4}$`)

const departureDateLayout = "2006-01-02"

// validateSubmitInput checks the submission for shape errors. The departure
// date only has to parse as a calendar date; past and future flights are
// both valid.
func validateSubmitInput(in usecase.SubmitInput) error {
	if strings.TrimSpace(in.FlightNumber) == "" {
		return errs.NewValidationError("flightNumber", "is required")
	}
	if !flightNumberPattern.MatchString(in.FlightNumber) {
		return errs.ErrInvalidFlightNumber
	}

	if in.DepartureAirport == "" {
		return errs.NewValidationError("departureAirport", "is required")
	}
	if !servedAirports[in.DepartureAirport] {
		return errs.ErrInvalidAirportCode
	}

	if in.ArrivalAirport == "" {
		return errs.NewValidationError("arrivalAirport", "is required")
	}
	if !servedAirports[in.ArrivalAirport] {
		return errs.ErrInvalidAirportCode
	}

	if in.DepartureDate == "" {
		return errs.NewValidationError("departureDate", "is required")
	}
	if _, err := time.Parse(departureDateLayout, in.DepartureDate); err != nil {
		return errs.ErrInvalidDepartureDate
	}

	return nil
}
