// Package console is the interactive text front end. It reads one answer per
// line and runs each choice through the same command and query handlers as the
// HTTP API.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
)

// errQuit ends the session when the input is exhausted.
var errQuit = errors.New("console input closed")

// Handlers groups the use cases reachable from the menus.
type Handlers struct {
	AddVehicle            commands.AddVehicleCommandHandler
	UpdateVehicle         commands.UpdateVehicleCommandHandler
	RemoveVehicle         commands.RemoveVehicleCommandHandler
	AddCustomer           commands.AddCustomerCommandHandler
	UpdateCustomer        commands.UpdateCustomerCommandHandler
	RemoveCustomer        commands.RemoveCustomerCommandHandler
	CreateShipment        commands.CreateShipmentCommandHandler
	MarkShipmentDelivered commands.MarkShipmentDeliveredCommandHandler

	GetAllVehicles        queries.GetAllVehiclesQueryHandler
	GetVehicle            queries.GetVehicleQueryHandler
	GetAllCustomers       queries.GetAllCustomersQueryHandler
	GetCustomer           queries.GetCustomerQueryHandler
	GetCustomerShipments  queries.GetCustomerShipmentsQueryHandler
	GetAllShipments       queries.GetAllShipmentsQueryHandler
	GetShipmentStatus     queries.GetShipmentStatusQueryHandler
	GetRegistryStats      queries.GetRegistryStatsQueryHandler
	GetDanglingReferences queries.GetDanglingReferencesQueryHandler
}

// Console runs the menu loop over a line reader and a writer.
type Console struct {
	h      Handlers
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

// New creates a console reading answers from in and printing to out.
func New(handlers Handlers, in io.Reader, out io.Writer, logger *slog.Logger) *Console {
	return &Console{
		h:      handlers,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger.With("component", "console"),
	}
}

// Run shows the main menu until the user picks 0, the input ends or ctx is
// cancelled. Only a cancelled context is reported as an error.
func (c *Console) Run(ctx context.Context) error {
	c.logger.InfoContext(ctx, "Console session started")

	err := c.loop(ctx, c.mainMenu())
	if errors.Is(err, errQuit) {
		err = nil
	}

	c.println("\nExiting the system. Goodbye!")
	c.logger.InfoContext(ctx, "Console session finished")
	return err
}

// loop shows m and runs the chosen action until 0 is picked.
func (c *Console) loop(ctx context.Context, m menu) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.render(c.out)
		choice, err := c.ask("Enter your choice: ")
		if err != nil {
			return err
		}

		if choice == "0" {
			return nil
		}

		action, ok := m.action(choice)
		if !ok {
			c.println("\nInvalid choice, please try again.")
			continue
		}

		if err := action(ctx); err != nil {
			return err
		}
	}
}

// ask prints prompt and returns the next line without surrounding blanks.
func (c *Console) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read console input: %w", err)
		}
		return "", errQuit
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// confirm asks a y/n question; only y or yes (any case) confirms.
func (c *Console) confirm(prompt string) (bool, error) {
	answer, err := c.ask(prompt + " (y/n): ")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// report prints a rejected operation. Context cancellation ends the session.
func (c *Console) report(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	c.printf("\nError: %v\n", err)
	return nil
}
