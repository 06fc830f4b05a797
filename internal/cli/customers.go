package cli

import (
	"context"

	"github.com/Domenick1991/flightdesk/internal/service/customers"
	"github.com/Domenick1991/flightdesk/internal/validate"
)

func (s *Session) registerCustomer(ctx context.Context) error {
	s.header("Register Customer")

	var (
		in  customers.RegisterCustomerInput
		err error
	)
	if in.ID, err = ask(ctx, s, "Customer ID (Cxxx): ", validate.CustomerID); err != nil {
		return err
	}
	if in.Name, err = ask(ctx, s, "Full Name: ", validate.Required("Name")); err != nil {
		return err
	}
	if in.PassportNo, err = ask(ctx, s, "Passport Number: ", validate.Required("Passport number")); err != nil {
		return err
	}
	if in.Address, err = ask(ctx, s, "Address: ", validate.Required("Address")); err != nil {
		return err
	}
	if in.Phone, err = ask(ctx, s, "Telephone Number (minimum 7 digits): ", validate.Phone); err != nil {
		return err
	}

	ok, err := s.confirm(ctx, "Register this customer? (Yes/No): ")
	if err != nil {
		return err
	}
	if !ok {
		s.printf("Customer registration cancelled.\n")
		return nil
	}

	c, err := s.engine.RegisterCustomer(ctx, in)
	if err != nil {
		s.report(err)
		return nil
	}
	s.printf("Customer %s registered successfully with ID %s!\n", c.Name, c.ID)
	return nil
}
