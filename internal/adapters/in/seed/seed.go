// Package seed loads initial records from a YAML or JSON file through the
// command handlers, so seeded records pass the same admission rules as any other.
//
// File layout:
//
//	vehicles:
//	  - {id: V001, type: Truck, capacity: 500}
//	customers:
//	  - {id: C001, name: John Smith, dob: 01/01/1990, address: "...", phone: "0412345678", email: john@example.com}
//	shipments:
//	  - {id: S001, origin: Sydney, destination: Melbourne, weight: 100, vehicle_id: V001, customer_id: C001}
//
// Quote phone numbers: unquoted digits are read as a number and the record is
// then rejected for its phone.
//
// Vehicles are admitted first, then customers, then shipments. Loading stops at the
// first rejected record; records admitted before it are kept.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/rawtext"

	"sigs.k8s.io/yaml"
)

// File is the seed document.
type File struct {
	Vehicles  []Vehicle  `json:"vehicles"`
	Customers []Customer `json:"customers"`
	Shipments []Shipment `json:"shipments"`
}

// Vehicle is one seeded vehicle.
type Vehicle struct {
	ID       string        `json:"id"`
	Type     string        `json:"type"`
	Capacity rawtext.Value `json:"capacity"`
}

// Customer is one seeded customer.
type Customer struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	DateOfBirth string        `json:"dob"`
	Address     string        `json:"address"`
	Phone       rawtext.Value `json:"phone"`
	Email       string        `json:"email"`
}

// Shipment is one seeded shipment.
type Shipment struct {
	ID          string        `json:"id"`
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Weight      rawtext.Value `json:"weight"`
	VehicleID   string        `json:"vehicle_id"`
	CustomerID  string        `json:"customer_id"`
}

// Summary counts the records admitted by a load.
type Summary struct {
	Vehicles  int
	Customers int
	Shipments int
}

// RecordError reports the seeded record that stopped the load.
type RecordError struct {
	Kind  string
	Index int
	ID    string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("seed %s #%d (%s) rejected: %s: %v", e.Kind, e.Index, e.ID, errs.RuleOf(e.Err), e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Loader admits seed records through the add handlers.
type Loader struct {
	addVehicle     commands.AddVehicleCommandHandler
	addCustomer    commands.AddCustomerCommandHandler
	createShipment commands.CreateShipmentCommandHandler
	logger         *slog.Logger
}

// NewLoader creates a seed loader.
func NewLoader(
	addVehicle commands.AddVehicleCommandHandler,
	addCustomer commands.AddCustomerCommandHandler,
	createShipment commands.CreateShipmentCommandHandler,
	logger *slog.Logger,
) *Loader {
	return &Loader{
		addVehicle:     addVehicle,
		addCustomer:    addCustomer,
		createShipment: createShipment,
		logger:         logger.With("component", "seed_loader"),
	}
}

// LoadFile reads and loads the seed file at path.
func (l *Loader) LoadFile(ctx context.Context, path string) (Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	summary, err := l.Load(ctx, data)
	if err != nil {
		return summary, err
	}

	l.logger.InfoContext(ctx, "Seed loaded",
		"path", path,
		"vehicles", summary.Vehicles,
		"customers", summary.Customers,
		"shipments", summary.Shipments,
	)
	return summary, nil
}

// Load parses a YAML or JSON seed document and admits its records in order.
func (l *Loader) Load(ctx context.Context, data []byte) (Summary, error) {
	var file File
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return Summary{}, fmt.Errorf("failed to parse seed file: %w", err)
	}

	var summary Summary

	for i, v := range file.Vehicles {
		cmd := commands.NewAddVehicleCommand(v.ID, v.Type, v.Capacity.String())
		if _, err := l.addVehicle.Handle(ctx, cmd); err != nil {
			return summary, &RecordError{Kind: vehicle.Kind, Index: i, ID: v.ID, Err: err}
		}
		summary.Vehicles++
	}

	for i, c := range file.Customers {
		cmd := commands.NewAddCustomerCommand(customer.Fields{
			ID:          c.ID,
			Name:        c.Name,
			DateOfBirth: c.DateOfBirth,
			Address:     c.Address,
			Phone:       c.Phone.String(),
			Email:       c.Email,
		})
		if _, err := l.addCustomer.Handle(ctx, cmd); err != nil {
			return summary, &RecordError{Kind: customer.Kind, Index: i, ID: c.ID, Err: err}
		}
		summary.Customers++
	}

	for i, s := range file.Shipments {
		cmd := commands.NewCreateShipmentCommand(shipment.Fields{
			ID:          s.ID,
			Origin:      s.Origin,
			Destination: s.Destination,
			Weight:      s.Weight.String(),
			VehicleID:   s.VehicleID,
			CustomerID:  s.CustomerID,
		})
		if _, err := l.createShipment.Handle(ctx, cmd); err != nil {
			return summary, &RecordError{Kind: shipment.Kind, Index: i, ID: s.ID, Err: err}
		}
		summary.Shipments++
	}

	return summary, nil
}
