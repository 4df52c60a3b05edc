package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/pkg/rawtext"
)

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewVehicle is the body of POST /vehicles. Capacity may be a JSON number or
// a string and reaches the validators as raw text.
type NewVehicle struct {
	ID       string        `json:"id"`
	Type     string        `json:"type"`
	Capacity rawtext.Value `json:"capacity"`
}

// VehicleChanges is the body of PUT /vehicles/:id.
type VehicleChanges struct {
	Type     string        `json:"type"`
	Capacity rawtext.Value `json:"capacity"`
}

type Vehicle struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
}

// NewCustomer is the body of POST /customers.
type NewCustomer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dob"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

// CustomerChanges is the body of PUT /customers/:id.
type CustomerChanges struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"dob"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dob"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

// NewShipment is the body of POST /shipments.
type NewShipment struct {
	ID          string        `json:"id"`
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Weight      rawtext.Value `json:"weight"`
	VehicleID   string        `json:"vehicle_id"`
	CustomerID  string        `json:"customer_id"`
}

type Shipment struct {
	ID          string     `json:"id"`
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Weight      float64    `json:"weight"`
	VehicleID   string     `json:"vehicle_id"`
	CustomerID  string     `json:"customer_id"`
	Status      string     `json:"status"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

type ShipmentStatus struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

// Delivery is the body of a successful POST /shipments/:id/delivery.
type Delivery struct {
	ID      string `json:"id"`
	Outcome string `json:"outcome"`
}

type NextIDs struct {
	Vehicle  string `json:"vehicle"`
	Customer string `json:"customer"`
	Shipment string `json:"shipment"`
}

type Stats struct {
	Vehicles  int     `json:"vehicles"`
	Customers int     `json:"customers"`
	Shipments int     `json:"shipments"`
	InTransit int     `json:"in_transit"`
	Delivered int     `json:"delivered"`
	NextIDs   NextIDs `json:"next_ids"`
}

type DanglingReference struct {
	ShipmentID string `json:"shipment_id"`
	Field      string `json:"field"`
	TargetID   string `json:"target_id"`
}

type DanglingReferences struct {
	Vehicles   int                 `json:"vehicles"`
	Customers  int                 `json:"customers"`
	Shipments  int                 `json:"shipments"`
	References []DanglingReference `json:"references"`
}

func toVehicle(v queries.VehicleResponse) Vehicle {
	return Vehicle{ID: v.ID, Type: v.Type, Capacity: v.Capacity}
}

func toCustomer(c queries.CustomerResponse) Customer {
	return Customer{
		ID:          c.ID,
		Name:        c.Name,
		DateOfBirth: c.DateOfBirth,
		Address:     c.Address,
		Phone:       c.Phone,
		Email:       c.Email,
	}
}

func toShipment(s queries.ShipmentResponse) Shipment {
	return Shipment{
		ID:          s.ID,
		Origin:      s.Origin,
		Destination: s.Destination,
		Weight:      s.Weight,
		VehicleID:   s.VehicleID,
		CustomerID:  s.CustomerID,
		Status:      s.Status,
		DeliveredAt: s.DeliveredAt,
	}
}

func toList[T any, R any](items []T, mapper func(T) R) []R {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = mapper(item)
	}
	return out
}
