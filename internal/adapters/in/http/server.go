package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	AddVehicle            commands.AddVehicleCommandHandler
	UpdateVehicle         commands.UpdateVehicleCommandHandler
	RemoveVehicle         commands.RemoveVehicleCommandHandler
	AddCustomer           commands.AddCustomerCommandHandler
	UpdateCustomer        commands.UpdateCustomerCommandHandler
	RemoveCustomer        commands.RemoveCustomerCommandHandler
	CreateShipment        commands.CreateShipmentCommandHandler
	RemoveShipment        commands.RemoveShipmentCommandHandler
	MarkShipmentDelivered commands.MarkShipmentDeliveredCommandHandler

	// Query handlers
	GetAllVehicles        queries.GetAllVehiclesQueryHandler
	GetVehicle            queries.GetVehicleQueryHandler
	GetAllCustomers       queries.GetAllCustomersQueryHandler
	GetCustomer           queries.GetCustomerQueryHandler
	GetCustomerShipments  queries.GetCustomerShipmentsQueryHandler
	GetAllShipments       queries.GetAllShipmentsQueryHandler
	GetShipment           queries.GetShipmentQueryHandler
	GetShipmentStatus     queries.GetShipmentStatusQueryHandler
	GetRegistryStats      queries.GetRegistryStatsQueryHandler
	GetDanglingReferences queries.GetDanglingReferencesQueryHandler
}

// Server handles HTTP requests and coordinates between them and the use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http_server"),
	}
}

// Register mounts the API routes on g.
func (s *Server) Register(g *echo.Group) {
	g.GET("/stats", s.GetStats)

	g.GET("/vehicles", s.GetVehicles)
	g.POST("/vehicles", s.CreateVehicle)
	g.GET("/vehicles/:id", s.GetVehicle)
	g.PUT("/vehicles/:id", s.UpdateVehicle)
	g.DELETE("/vehicles/:id", s.DeleteVehicle)

	g.GET("/customers", s.GetCustomers)
	g.POST("/customers", s.CreateCustomer)
	g.GET("/customers/:id", s.GetCustomer)
	g.PUT("/customers/:id", s.UpdateCustomer)
	g.DELETE("/customers/:id", s.DeleteCustomer)
	g.GET("/customers/:id/shipments", s.GetCustomerShipments)

	g.GET("/shipments", s.GetShipments)
	g.POST("/shipments", s.CreateShipment)
	g.GET("/shipments/:id", s.GetShipment)
	g.DELETE("/shipments/:id", s.DeleteShipment)
	g.GET("/shipments/:id/status", s.GetShipmentStatus)
	g.POST("/shipments/:id/delivery", s.DeliverShipment)

	g.GET("/audit/dangling-references", s.GetDanglingReferences)
}

// GetStats handles GET /api/v1/stats - registry sizes and suggested identifiers.
func (s *Server) GetStats(ctx echo.Context) error {
	stats, err := s.h.GetRegistryStats.Handle(ctx.Request().Context(), queries.NewGetRegistryStatsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Stats{
		Vehicles:  stats.Vehicles,
		Customers: stats.Customers,
		Shipments: stats.Shipments,
		InTransit: stats.InTransit,
		Delivered: stats.Delivered,
		NextIDs: NextIDs{
			Vehicle:  stats.NextVehicleID,
			Customer: stats.NextCustomerID,
			Shipment: stats.NextShipmentID,
		},
	})
}

// GetVehicles handles GET /api/v1/vehicles.
func (s *Server) GetVehicles(ctx echo.Context) error {
	vehicles, err := s.h.GetAllVehicles.Handle(ctx.Request().Context(), queries.NewGetAllVehiclesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toList(vehicles, toVehicle))
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var body NewVehicle
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	cmd := commands.NewAddVehicleCommand(body.ID, body.Type, body.Capacity.String())
	v, err := s.h.AddVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toVehicle(queries.NewVehicleResponse(v)))
}

// GetVehicle handles GET /api/v1/vehicles/:id.
func (s *Server) GetVehicle(ctx echo.Context) error {
	query, err := queries.NewGetVehicleQuery(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	v, err := s.h.GetVehicle.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toVehicle(v))
}

// UpdateVehicle handles PUT /api/v1/vehicles/:id.
func (s *Server) UpdateVehicle(ctx echo.Context) error {
	var body VehicleChanges
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	cmd := commands.NewUpdateVehicleCommand(ctx.Param("id"), body.Type, body.Capacity.String())
	v, err := s.h.UpdateVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toVehicle(queries.NewVehicleResponse(v)))
}

// DeleteVehicle handles DELETE /api/v1/vehicles/:id. Shipments that reference
// the vehicle are kept.
func (s *Server) DeleteVehicle(ctx echo.Context) error {
	cmd, err := commands.NewRemoveVehicleCommand(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.RemoveVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	customers, err := s.h.GetAllCustomers.Handle(ctx.Request().Context(), queries.NewGetAllCustomersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toList(customers, toCustomer))
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	cmd := commands.NewAddCustomerCommand(customer.Fields{
		ID:          body.ID,
		Name:        body.Name,
		DateOfBirth: body.DateOfBirth,
		Address:     body.Address,
		Phone:       body.Phone,
		Email:       body.Email,
	})
	c, err := s.h.AddCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toCustomer(queries.NewCustomerResponse(c)))
}

// GetCustomer handles GET /api/v1/customers/:id.
func (s *Server) GetCustomer(ctx echo.Context) error {
	query, err := queries.NewGetCustomerQuery(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.h.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCustomer(c))
}

// UpdateCustomer handles PUT /api/v1/customers/:id.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	var body CustomerChanges
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	cmd := commands.NewUpdateCustomerCommand(customer.Fields{
		ID:          ctx.Param("id"),
		Name:        body.Name,
		DateOfBirth: body.DateOfBirth,
		Address:     body.Address,
		Phone:       body.Phone,
		Email:       body.Email,
	})
	c, err := s.h.UpdateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCustomer(queries.NewCustomerResponse(c)))
}

// DeleteCustomer handles DELETE /api/v1/customers/:id.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	cmd, err := commands.NewRemoveCustomerCommand(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.RemoveCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomerShipments handles GET /api/v1/customers/:id/shipments.
func (s *Server) GetCustomerShipments(ctx echo.Context) error {
	query, err := queries.NewGetCustomerShipmentsQuery(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	shipments, err := s.h.GetCustomerShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toList(shipments, toShipment))
}

// GetShipments handles GET /api/v1/shipments.
func (s *Server) GetShipments(ctx echo.Context) error {
	shipments, err := s.h.GetAllShipments.Handle(ctx.Request().Context(), queries.NewGetAllShipmentsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toList(shipments, toShipment))
}

// CreateShipment handles POST /api/v1/shipments. The shipment starts in transit.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var body NewShipment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	cmd := commands.NewCreateShipmentCommand(shipment.Fields{
		ID:          body.ID,
		Origin:      body.Origin,
		Destination: body.Destination,
		Weight:      body.Weight.String(),
		VehicleID:   body.VehicleID,
		CustomerID:  body.CustomerID,
	})
	created, err := s.h.CreateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toShipment(queries.NewShipmentResponse(created)))
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(ctx echo.Context) error {
	query, err := queries.NewGetShipmentQuery(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	found, err := s.h.GetShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toShipment(found))
}

// DeleteShipment handles DELETE /api/v1/shipments/:id.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	cmd, err := commands.NewRemoveShipmentCommand(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.RemoveShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetShipmentStatus handles GET /api/v1/shipments/:id/status.
func (s *Server) GetShipmentStatus(ctx echo.Context) error {
	query, err := queries.NewGetShipmentStatusQuery(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := s.h.GetShipmentStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ShipmentStatus{
		ID:          status.ID,
		Status:      status.Status,
		DeliveredAt: status.DeliveredAt,
	})
}

// DeliverShipment handles POST /api/v1/shipments/:id/delivery. A repeated
// delivery leaves the shipment unchanged and answers 409.
func (s *Server) DeliverShipment(ctx echo.Context) error {
	id := ctx.Param("id")

	cmd, err := commands.NewMarkShipmentDeliveredCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	outcome, err := s.h.MarkShipmentDelivered.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	if outcome == shipment.AlreadyDelivered {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: fmt.Sprintf("%s: %s", shipment.ErrAlreadyDelivered, id),
		})
	}
	return ctx.JSON(http.StatusOK, Delivery{ID: id, Outcome: outcome.String()})
}

// GetDanglingReferences handles GET /api/v1/audit/dangling-references.
func (s *Server) GetDanglingReferences(ctx echo.Context) error {
	audit, err := s.h.GetDanglingReferences.Handle(ctx.Request().Context(), queries.NewGetDanglingReferencesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DanglingReferences{
		Vehicles:  audit.Vehicles,
		Customers: audit.Customers,
		Shipments: audit.Shipments,
		References: toList(audit.References, func(r queries.DanglingReferenceResponse) DanglingReference {
			return DanglingReference{ShipmentID: r.ShipmentID, Field: r.Field, TargetID: r.TargetID}
		}),
	})
}

// StatusOf maps a registry error to its HTTP status.
func StatusOf(err error) int {
	switch errs.RuleOf(err) {
	case errs.RuleDuplicateIdentifier:
		return http.StatusConflict
	case errs.RuleInvalidIdentifierFormat, errs.RuleInvalidFieldValue:
		return http.StatusBadRequest
	case errs.RuleUnresolvedReference:
		return http.StatusUnprocessableEntity
	case errs.RuleNotFound:
		return http.StatusNotFound
	}

	if errors.Is(err, errs.ErrValueIsRequired) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(status, Error{Code: status, Message: "Internal server error"})
	}
	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}
