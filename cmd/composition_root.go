package cmd

import (
	"io"
	"log/slog"

	"logistics/internal/adapters/in/console"
	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/in/seed"
	"logistics/internal/adapters/out/memory"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/jobs"
	"logistics/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type CompositionRoot struct {
	config     Config
	formats    kernel.IdentifierFormats
	clock      kernel.Clock
	logger     *slog.Logger
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
	uowFactory *memory.UnitOfWorkFactory
}

// NewCompositionRoot wires an empty in-memory store. The config must be valid.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	formats, err := config.IdentifierFormats()
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &CompositionRoot{
		config:     config,
		formats:    formats,
		clock:      kernel.SystemClock{},
		logger:     logger,
		registry:   registry,
		metrics:    metrics.New(registry),
		uowFactory: memory.NewUnitOfWorkFactory(memory.NewStore()),
	}, nil
}

// Gatherer exposes the metrics registry for /metrics.
func (c *CompositionRoot) Gatherer() prometheus.Gatherer {
	return c.registry
}

func (c *CompositionRoot) vehicleUoWFactory() commands.VehicleUoWFactory {
	return FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) allUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddVehicleCommandHandler() commands.AddVehicleCommandHandler {
	return commands.NewAddVehicleCommandHandler(c.vehicleUoWFactory(), c.formats.Vehicle, c.logger, c.metrics)
}

func (c *CompositionRoot) CreateUpdateVehicleCommandHandler() commands.UpdateVehicleCommandHandler {
	return commands.NewUpdateVehicleCommandHandler(c.vehicleUoWFactory(), c.formats.Vehicle, c.logger, c.metrics)
}

func (c *CompositionRoot) CreateRemoveVehicleCommandHandler() commands.RemoveVehicleCommandHandler {
	return commands.NewRemoveVehicleCommandHandler(c.vehicleUoWFactory(), c.logger, c.metrics)
}

func (c *CompositionRoot) CreateAddCustomerCommandHandler() commands.AddCustomerCommandHandler {
	return commands.NewAddCustomerCommandHandler(
		c.customerUoWFactory(), c.formats.Customer, c.clock, c.logger, c.metrics,
	)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(
		c.customerUoWFactory(), c.formats.Customer, c.clock, c.logger, c.metrics,
	)
}

func (c *CompositionRoot) CreateRemoveCustomerCommandHandler() commands.RemoveCustomerCommandHandler {
	return commands.NewRemoveCustomerCommandHandler(c.customerUoWFactory(), c.logger, c.metrics)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.allUoWFactory(), c.formats.Shipment, c.logger, c.metrics)
}

func (c *CompositionRoot) CreateRemoveShipmentCommandHandler() commands.RemoveShipmentCommandHandler {
	return commands.NewRemoveShipmentCommandHandler(c.shipmentUoWFactory(), c.logger, c.metrics)
}

func (c *CompositionRoot) CreateMarkShipmentDeliveredCommandHandler() commands.MarkShipmentDeliveredCommandHandler {
	return commands.NewMarkShipmentDeliveredCommandHandler(c.shipmentUoWFactory(), c.clock, c.logger, c.metrics)
}

func (c *CompositionRoot) CreateGetAllVehiclesQueryHandler() queries.GetAllVehiclesQueryHandler {
	return queries.NewGetAllVehiclesQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetVehicleQueryHandler() queries.GetVehicleQueryHandler {
	return queries.NewGetVehicleQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetAllCustomersQueryHandler() queries.GetAllCustomersQueryHandler {
	return queries.NewGetAllCustomersQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetCustomerShipmentsQueryHandler() queries.GetCustomerShipmentsQueryHandler {
	return queries.NewGetCustomerShipmentsQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetAllShipmentsQueryHandler() queries.GetAllShipmentsQueryHandler {
	return queries.NewGetAllShipmentsQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetShipmentStatusQueryHandler() queries.GetShipmentStatusQueryHandler {
	return queries.NewGetShipmentStatusQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetRegistryStatsQueryHandler() queries.GetRegistryStatsQueryHandler {
	return queries.NewGetRegistryStatsQueryHandler(c.uowFactory, c.formats)
}

func (c *CompositionRoot) CreateGetDanglingReferencesQueryHandler() queries.GetDanglingReferencesQueryHandler {
	return queries.NewGetDanglingReferencesQueryHandler(c.uowFactory)
}

// NewEcho builds the HTTP server with the API mounted under /api/v1.
func (c *CompositionRoot) NewEcho() *echo.Echo {
	e := httpin.NewEcho(c.logger, c.registry)

	server := httpin.NewServer(httpin.Handlers{
		AddVehicle:            c.CreateAddVehicleCommandHandler(),
		UpdateVehicle:         c.CreateUpdateVehicleCommandHandler(),
		RemoveVehicle:         c.CreateRemoveVehicleCommandHandler(),
		AddCustomer:           c.CreateAddCustomerCommandHandler(),
		UpdateCustomer:        c.CreateUpdateCustomerCommandHandler(),
		RemoveCustomer:        c.CreateRemoveCustomerCommandHandler(),
		CreateShipment:        c.CreateCreateShipmentCommandHandler(),
		RemoveShipment:        c.CreateRemoveShipmentCommandHandler(),
		MarkShipmentDelivered: c.CreateMarkShipmentDeliveredCommandHandler(),
		GetAllVehicles:        c.CreateGetAllVehiclesQueryHandler(),
		GetVehicle:            c.CreateGetVehicleQueryHandler(),
		GetAllCustomers:       c.CreateGetAllCustomersQueryHandler(),
		GetCustomer:           c.CreateGetCustomerQueryHandler(),
		GetCustomerShipments:  c.CreateGetCustomerShipmentsQueryHandler(),
		GetAllShipments:       c.CreateGetAllShipmentsQueryHandler(),
		GetShipment:           c.CreateGetShipmentQueryHandler(),
		GetShipmentStatus:     c.CreateGetShipmentStatusQueryHandler(),
		GetRegistryStats:      c.CreateGetRegistryStatsQueryHandler(),
		GetDanglingReferences: c.CreateGetDanglingReferencesQueryHandler(),
	}, c.logger)
	server.Register(e.Group(httpin.APIPrefix))

	return e
}

// NewConsole builds the interactive console over in and out.
func (c *CompositionRoot) NewConsole(in io.Reader, out io.Writer) *console.Console {
	return console.New(console.Handlers{
		AddVehicle:            c.CreateAddVehicleCommandHandler(),
		UpdateVehicle:         c.CreateUpdateVehicleCommandHandler(),
		RemoveVehicle:         c.CreateRemoveVehicleCommandHandler(),
		AddCustomer:           c.CreateAddCustomerCommandHandler(),
		UpdateCustomer:        c.CreateUpdateCustomerCommandHandler(),
		RemoveCustomer:        c.CreateRemoveCustomerCommandHandler(),
		CreateShipment:        c.CreateCreateShipmentCommandHandler(),
		MarkShipmentDelivered: c.CreateMarkShipmentDeliveredCommandHandler(),
		GetAllVehicles:        c.CreateGetAllVehiclesQueryHandler(),
		GetVehicle:            c.CreateGetVehicleQueryHandler(),
		GetAllCustomers:       c.CreateGetAllCustomersQueryHandler(),
		GetCustomer:           c.CreateGetCustomerQueryHandler(),
		GetCustomerShipments:  c.CreateGetCustomerShipmentsQueryHandler(),
		GetAllShipments:       c.CreateGetAllShipmentsQueryHandler(),
		GetShipmentStatus:     c.CreateGetShipmentStatusQueryHandler(),
		GetRegistryStats:      c.CreateGetRegistryStatsQueryHandler(),
		GetDanglingReferences: c.CreateGetDanglingReferencesQueryHandler(),
	}, in, out, c.logger)
}

// NewJobManager builds the scheduled jobs.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetDanglingReferencesQueryHandler(),
		c.config.AuditSchedule,
		c.metrics,
		c.logger,
	)
}

// NewSeedLoader builds a loader that admits seed records through the command handlers.
func (c *CompositionRoot) NewSeedLoader() *seed.Loader {
	return seed.NewLoader(
		c.CreateAddVehicleCommandHandler(),
		c.CreateAddCustomerCommandHandler(),
		c.CreateCreateShipmentCommandHandler(),
		c.logger,
	)
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
