package console

import (
	"context"
	"errors"
	"strconv"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

// form asks each prompt in turn and returns the answers in the same order.
func (c *Console) form(prompts ...string) ([]string, error) {
	answers := make([]string, len(prompts))
	for i, p := range prompts {
		answer, err := c.ask(p)
		if err != nil {
			return nil, err
		}
		answers[i] = answer
	}
	return answers, nil
}

// suggest prints the next free-looking identifier picked from the stats.
func (c *Console) suggest(ctx context.Context, kind string, pick func(queries.RegistryStatsResponse) string) error {
	stats, err := c.h.GetRegistryStats.Handle(ctx, queries.NewGetRegistryStatsQuery())
	if err != nil {
		return c.report(ctx, err)
	}
	c.printf("Suggested %s ID: %s\n", kind, pick(stats))
	return nil
}

// sorry prints the not-found message for kind when err is a missing record and
// reports whether it did.
func (c *Console) sorry(err error, kind, id string) bool {
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return false
	}
	c.printf("\nSorry, cannot find a %s with ID: %s\n", kind, id)
	return true
}

func (c *Console) addVehicle(ctx context.Context) error {
	c.println("\n--| Add a Vehicle |--")
	if err := c.suggest(ctx, "vehicle", func(s queries.RegistryStatsResponse) string { return s.NextVehicleID }); err != nil {
		return err
	}

	a, err := c.form("Enter vehicle ID: ", "Enter vehicle type (Truck, Van, Car): ", "Enter vehicle capacity: ")
	if err != nil {
		return err
	}

	v, err := c.h.AddVehicle.Handle(ctx, commands.NewAddVehicleCommand(a[0], a[1], a[2]))
	if err != nil {
		return c.report(ctx, err)
	}
	c.printf("\nVehicle %s added successfully.\n", v.ID())
	return nil
}

func (c *Console) findVehicle(ctx context.Context, id string) (bool, error) {
	query, err := queries.NewGetVehicleQuery(id)
	if err != nil {
		return false, c.report(ctx, err)
	}
	if _, err := c.h.GetVehicle.Handle(ctx, query); err != nil {
		if c.sorry(err, "vehicle", id) {
			return false, nil
		}
		return false, c.report(ctx, err)
	}
	return true, nil
}

func (c *Console) updateVehicle(ctx context.Context) error {
	c.println("\n--| Update Vehicle Information |--")
	id, err := c.ask("Enter vehicle ID: ")
	if err != nil {
		return err
	}

	found, err := c.findVehicle(ctx, id)
	if err != nil || !found {
		return err
	}

	a, err := c.form("Enter vehicle type (Truck, Van, Car): ", "Enter vehicle capacity: ")
	if err != nil {
		return err
	}

	if _, err := c.h.UpdateVehicle.Handle(ctx, commands.NewUpdateVehicleCommand(id, a[0], a[1])); err != nil {
		return c.report(ctx, err)
	}
	c.printf("\nVehicle %s updated successfully.\n", id)
	return nil
}

func (c *Console) removeVehicle(ctx context.Context) error {
	c.println("\n--| Remove a Vehicle |--")
	id, err := c.ask("Enter vehicle ID: ")
	if err != nil {
		return err
	}

	found, err := c.findVehicle(ctx, id)
	if err != nil || !found {
		return err
	}

	ok, err := c.confirm("Are you sure you want to remove vehicle " + id + "?")
	if err != nil {
		return err
	}
	if !ok {
		c.printf("\nVehicle with ID %s was not removed.\n", id)
		return nil
	}

	cmd, err := commands.NewRemoveVehicleCommand(id)
	if err != nil {
		return c.report(ctx, err)
	}
	if err := c.h.RemoveVehicle.Handle(ctx, cmd); err != nil {
		return c.report(ctx, err)
	}
	c.printf("\nVehicle with ID %s removed successfully.\n", id)
	return nil
}

func (c *Console) listVehicles(ctx context.Context) error {
	c.println("\n--| View all Vehicles |--")
	vehicles, err := c.h.GetAllVehicles.Handle(ctx, queries.NewGetAllVehiclesQuery())
	if err != nil {
		return c.report(ctx, err)
	}
	if len(vehicles) == 0 {
		c.println("\nNo vehicles to display.")
		return nil
	}

	rows := make([][]string, len(vehicles))
	for i, v := range vehicles {
		rows[i] = []string{v.ID, v.Type, strconv.Itoa(v.Capacity)}
	}
	table(c.out, []string{"ID", "Type", "Capacity"}, rows)
	return nil
}

func (c *Console) customerFields(id string) (customer.Fields, error) {
	a, err := c.form(
		"Enter customer name: ",
		"Enter date of birth (DD/MM/YYYY): ",
		"Enter address: ",
		"Enter phone number: ",
		"Enter email address: ",
	)
	if err != nil {
		return customer.Fields{}, err
	}
	return customer.Fields{
		ID:          id,
		Name:        a[0],
		DateOfBirth: a[1],
		Address:     a[2],
		Phone:       a[3],
		Email:       a[4],
	}, nil
}

func (c *Console) addCustomer(ctx context.Context) error {
	c.println("\n--| Add a Customer |--")
	if err := c.suggest(ctx, "customer", func(s queries.RegistryStatsResponse) string { return s.NextCustomerID }); err != nil {
		return err
	}

	id, err := c.ask("Enter customer ID: ")
	if err != nil {
		return err
	}
	fields, err := c.customerFields(id)
	if err != nil {
		return err
	}

	added, err := c.h.AddCustomer.Handle(ctx, commands.NewAddCustomerCommand(fields))
	if err != nil {
		return c.report(ctx, err)
	}
	c.printf("\nCustomer %s added successfully.\n", added.ID())
	return nil
}

func (c *Console) findCustomer(ctx context.Context, id string) (bool, error) {
	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return false, c.report(ctx, err)
	}
	if _, err := c.h.GetCustomer.Handle(ctx, query); err != nil {
		if c.sorry(err, "customer", id) {
			return false, nil
		}
		return false, c.report(ctx, err)
	}
	return true, nil
}

func (c *Console) updateCustomer(ctx context.Context) error {
	c.println("\n--| Update Customer Information |--")
	id, err := c.ask("Enter customer ID: ")
	if err != nil {
		return err
	}

	found, err := c.findCustomer(ctx, id)
	if err != nil || !found {
		return err
	}

	fields, err := c.customerFields(id)
	if err != nil {
		return err
	}

	if _, err := c.h.UpdateCustomer.Handle(ctx, commands.NewUpdateCustomerCommand(fields)); err != nil {
		return c.report(ctx, err)
	}
	c.printf("\nCustomer %s updated successfully.\n", id)
	return nil
}

func (c *Console) removeCustomer(ctx context.Context) error {
	c.println("\n--| Remove a Customer |--")
	id, err := c.ask("Enter customer ID: ")
	if err != nil {
		return err
	}

	found, err := c.findCustomer(ctx, id)
	if err != nil || !found {
		return err
	}

	ok, err := c.confirm("Are you sure you want to remove customer " + id + "?")
	if err != nil {
		return err
	}
	if !ok {
		c.printf("\nCustomer with ID %s was not removed.\n", id)
		return nil
	}

	cmd, err := commands.NewRemoveCustomerCommand(id)
	if err != nil {
		return c.report(ctx, err)
	}
	if err := c.h.RemoveCustomer.Handle(ctx, cmd); err != nil {
		return c.report(ctx, err)
	}
	c.printf("\nCustomer with ID %s removed successfully.\n", id)
	return nil
}

func (c *Console) listCustomers(ctx context.Context) error {
	c.println("\n--| View all Customers |--")
	customers, err := c.h.GetAllCustomers.Handle(ctx, queries.NewGetAllCustomersQuery())
	if err != nil {
		return c.report(ctx, err)
	}
	if len(customers) == 0 {
		c.println("\nNo customers to display.")
		return nil
	}

	rows := make([][]string, len(customers))
	for i, cu := range customers {
		rows[i] = []string{cu.ID, cu.Name, cu.DateOfBirth, cu.Address, cu.Phone, cu.Email}
	}
	table(c.out, []string{"ID", "Name", "Date of Birth", "Address", "Phone", "Email"}, rows)
	return nil
}

func (c *Console) customerShipments(ctx context.Context) error {
	c.println("\n--| View Shipments |--")
	id, err := c.ask("Enter customer ID: ")
	if err != nil {
		return err
	}

	query, err := queries.NewGetCustomerShipmentsQuery(id)
	if err != nil {
		return c.report(ctx, err)
	}
	shipments, err := c.h.GetCustomerShipments.Handle(ctx, query)
	if err != nil {
		if c.sorry(err, "customer", id) {
			return nil
		}
		return c.report(ctx, err)
	}

	c.shipmentTable(shipments)
	return nil
}

func (c *Console) createShipment(ctx context.Context) error {
	c.println("\n--| Create a Shipment |--")
	if err := c.suggest(ctx, "shipment", func(s queries.RegistryStatsResponse) string { return s.NextShipmentID }); err != nil {
		return err
	}

	a, err := c.form(
		"Enter shipment ID: ",
		"Enter origin location: ",
		"Enter destination location: ",
		"Enter weight: ",
		"Enter vehicle ID: ",
		"Enter customer ID: ",
	)
	if err != nil {
		return err
	}

	created, err := c.h.CreateShipment.Handle(ctx, commands.NewCreateShipmentCommand(shipment.Fields{
		ID:          a[0],
		Origin:      a[1],
		Destination: a[2],
		Weight:      a[3],
		VehicleID:   a[4],
		CustomerID:  a[5],
	}))
	if err != nil {
		return c.report(ctx, err)
	}
	c.printf("\nShipment %s added successfully.\n", created.ID())
	return nil
}

func (c *Console) shipmentStatus(ctx context.Context, id string) (queries.ShipmentStatusResponse, bool, error) {
	query, err := queries.NewGetShipmentStatusQuery(id)
	if err != nil {
		return queries.ShipmentStatusResponse{}, false, c.report(ctx, err)
	}
	status, err := c.h.GetShipmentStatus.Handle(ctx, query)
	if err != nil {
		if c.sorry(err, "shipment", id) {
			return status, false, nil
		}
		return status, false, c.report(ctx, err)
	}
	return status, true, nil
}

func (c *Console) trackShipment(ctx context.Context) error {
	c.println("\n--| Track a Shipment |--")
	id, err := c.ask("Enter shipment ID: ")
	if err != nil {
		return err
	}

	status, found, err := c.shipmentStatus(ctx, id)
	if err != nil || !found {
		return err
	}
	c.printf("\nStatus of the shipment %s is: %s\n", id, status.Status)
	return nil
}

func (c *Console) listShipments(ctx context.Context) error {
	c.println("\n--| View all Shipments |--")
	shipments, err := c.h.GetAllShipments.Handle(ctx, queries.NewGetAllShipmentsQuery())
	if err != nil {
		return c.report(ctx, err)
	}
	c.shipmentTable(shipments)
	return nil
}

func (c *Console) shipmentTable(shipments []queries.ShipmentResponse) {
	if len(shipments) == 0 {
		c.println("\nNo shipments to display.")
		return
	}

	rows := make([][]string, len(shipments))
	for i, s := range shipments {
		rows[i] = []string{
			s.ID,
			s.Origin,
			s.Destination,
			strconv.FormatFloat(s.Weight, 'f', -1, 64),
			s.VehicleID,
			s.CustomerID,
			s.Status,
			deliveredOn(s.DeliveredAt),
		}
	}
	table(c.out, []string{"ID", "Origin", "Destination", "Weight", "Vehicle", "Customer", "Status", "Delivered"}, rows)
}

func (c *Console) markDelivered(ctx context.Context) error {
	c.println("\n--| Mark Shipment Delivery |--")
	id, err := c.ask("Enter shipment ID: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkShipmentDeliveredCommand(id)
	if err != nil {
		return c.report(ctx, err)
	}

	outcome, err := c.h.MarkShipmentDelivered.Handle(ctx, cmd)
	switch {
	case err != nil:
		if c.sorry(err, "shipment", id) {
			return nil
		}
		return c.report(ctx, err)
	case outcome == shipment.AlreadyDelivered:
		c.printf("\nShipment with ID: %s is already delivered.\n", id)
	default:
		c.printf("\nShipment %s has been marked as delivered.\n", id)
	}
	return nil
}

func (c *Console) deliveryStatus(ctx context.Context) error {
	c.println("\n--| View Delivery Status |--")
	id, err := c.ask("Enter shipment ID: ")
	if err != nil {
		return err
	}

	status, found, err := c.shipmentStatus(ctx, id)
	if err != nil || !found {
		return err
	}

	if status.DeliveredAt == nil {
		c.printf("\nShipment %s is not delivered yet.\n", id)
		return nil
	}
	c.printf("\nShipment %s was delivered on %s\n", id, deliveredOn(status.DeliveredAt))
	return nil
}

func (c *Console) audit(ctx context.Context) error {
	c.println("\n--| Registry Audit |--")
	result, err := c.h.GetDanglingReferences.Handle(ctx, queries.NewGetDanglingReferencesQuery())
	if err != nil {
		return c.report(ctx, err)
	}

	c.printf("Vehicles: %d, customers: %d, shipments: %d\n", result.Vehicles, result.Customers, result.Shipments)
	if len(result.References) == 0 {
		c.println("\nNo dangling references.")
		return nil
	}

	rows := make([][]string, len(result.References))
	for i, r := range result.References {
		rows[i] = []string{r.ShipmentID, r.Field, r.TargetID}
	}
	table(c.out, []string{"Shipment", "Field", "Missing ID"}, rows)
	return nil
}

func deliveredOn(at *time.Time) string {
	if at == nil {
		return "-"
	}
	return at.Format(time.DateTime)
}
