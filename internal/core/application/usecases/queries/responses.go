package queries

import (
	"time"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
)

// VehicleResponse is the vehicle read model.
type VehicleResponse struct {
	ID       string
	Type     string
	Capacity int
}

// NewVehicleResponse maps an admitted vehicle to its read model.
func NewVehicleResponse(v *vehicle.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:       v.ID(),
		Type:     v.Type().String(),
		Capacity: v.Capacity(),
	}
}

// CustomerResponse is the customer read model.
type CustomerResponse struct {
	ID          string
	Name        string
	DateOfBirth string
	Address     string
	Phone       string
	Email       string
}

// NewCustomerResponse maps an admitted customer to its read model.
func NewCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID(),
		Name:        c.Name(),
		DateOfBirth: c.DateOfBirth(),
		Address:     c.Address(),
		Phone:       c.Phone(),
		Email:       c.Email(),
	}
}

// ShipmentResponse is the shipment read model. DeliveredAt is nil while the
// shipment is in transit.
type ShipmentResponse struct {
	ID          string
	Origin      string
	Destination string
	Weight      float64
	VehicleID   string
	CustomerID  string
	Status      string
	DeliveredAt *time.Time
}

// NewShipmentResponse maps an admitted shipment to its read model.
func NewShipmentResponse(s *shipment.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:          s.ID(),
		Origin:      s.Origin(),
		Destination: s.Destination(),
		Weight:      s.Weight(),
		VehicleID:   s.VehicleID(),
		CustomerID:  s.CustomerID(),
		Status:      s.Status().String(),
		DeliveredAt: deliveredAt(s),
	}
}

func deliveredAt(s *shipment.Shipment) *time.Time {
	at, ok := s.DeliveredAt()
	if !ok {
		return nil
	}
	return &at
}

func mapAll[T any, R any](records []T, mapper func(T) R) []R {
	out := make([]R, 0, len(records))
	for _, record := range records {
		out = append(out, mapper(record))
	}
	return out
}
