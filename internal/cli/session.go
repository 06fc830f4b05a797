package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/service/reservation"
	"github.com/Domenick1991/flightdesk/internal/validate"
	"go.uber.org/zap"
)

const title = "CloudFare Airlines"

type Authenticator interface {
	Authenticate(username, password string) error
}

// Session is one interactive staff session on a terminal.
type Session struct {
	engine reservation.UseCase
	auth   Authenticator
	rules  validate.Rules
	out    io.Writer
	lines  <-chan string
	done   chan struct{}
	stop   sync.Once
	logger *zap.Logger
}

func NewSession(engine reservation.UseCase, auth Authenticator, desk config.DeskConfig, in io.Reader, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	done := make(chan struct{})
	return &Session{
		engine: engine,
		auth:   auth,
		rules:  validate.NewRules(desk),
		out:    out,
		lines:  readLines(in, done),
		done:   done,
		logger: logger,
	}
}

// readLines feeds input lines to a channel so prompts can also watch ctx.
// The channel is closed at end of input or once done is closed.
func readLines(in io.Reader, done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()
	return lines
}

// Run logs the operator in and serves the main menu until Exit, end of
// input or ctx cancellation. Only cancellation is reported as an error.
func (s *Session) Run(ctx context.Context) error {
	defer s.stop.Do(func() { close(s.done) })
	s.printf("\n%s\n   %s Flight Reservation System\n%s\n", rule("=", 50), title, rule("=", 50))

	err := s.run(ctx)
	if errors.Is(err, io.EOF) {
		s.logger.Info("terminal input closed")
		return nil
	}
	return err
}

func (s *Session) run(ctx context.Context) error {
	ok, err := s.login(ctx)
	if err != nil || !ok {
		return err
	}

	for {
		s.header("Main Menu")
		s.printf("1. Add flight details\n2. Register a customer\n3. Search for available flights\n4. Book a flight\n5. View booking details\n6. Exit\n")

		line, err := s.prompt(ctx, "\nEnter your choice (1-6): ")
		if err != nil {
			return err
		}
		choice, convErr := strconv.Atoi(line)
		if convErr != nil {
			s.printf("Please enter a valid number!\n")
			continue
		}

		switch choice {
		case 1:
			err = s.addFlight(ctx)
		case 2:
			err = s.registerCustomer(ctx)
		case 3:
			err = s.searchFlights(ctx)
		case 4:
			err = s.bookFlight(ctx)
		case 5:
			err = s.viewBookings(ctx)
		case 6:
			s.printf("Thank you for using %s!\n", title)
			return nil
		default:
			s.printf("Invalid choice. Please enter a number between 1-6.\n")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) login(ctx context.Context) (bool, error) {
	s.header("Staff Login")
	for {
		username, err := s.prompt(ctx, "Username: ")
		if err != nil {
			return false, err
		}
		password, err := s.prompt(ctx, "Password: ")
		if err != nil {
			return false, err
		}
		if s.auth.Authenticate(username, password) == nil {
			s.printf("\nLogin successful!\n")
			return true, nil
		}
		s.logger.Warn("staff login failed", zap.String("username", username))

		again, err := s.prompt(ctx, "Login failed. Try again? (Yes/No): ")
		if err != nil {
			return false, err
		}
		if yes, _ := yesNo(again); !yes {
			return false, nil
		}
	}
}

func (s *Session) prompt(ctx context.Context, label string) (string, error) {
	s.printf("%s", label)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// ask re-prompts until parse accepts the input, printing each rejection.
func ask[T any](ctx context.Context, s *Session, label string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := s.prompt(ctx, label)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		s.printf("%s\n", err)
	}
}

// confirm asks a Yes/No question until it gets an answer.
func (s *Session) confirm(ctx context.Context, label string) (bool, error) {
	for {
		line, err := s.prompt(ctx, label)
		if err != nil {
			return false, err
		}
		if yes, ok := yesNo(line); ok {
			return yes, nil
		}
		s.printf("Please enter 'Yes' or 'No'\n")
	}
}

func (s *Session) header(name string) {
	s.printf("\n%s\n%s - %s\n%s\n", rule("=", 50), title, name, rule("=", 50))
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func rule(ch string, n int) string {
	return strings.Repeat(ch, n)
}
