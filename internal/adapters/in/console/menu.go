package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

type item struct {
	label  string
	action func(ctx context.Context) error
}

// menu lists items numbered from 1; 0 always leaves the menu.
type menu struct {
	title string
	items []item
	exit  string
}

func (m menu) render(w io.Writer) {
	fmt.Fprintf(w, "\n--| %s |--\n", m.title)
	fmt.Fprintln(w, "Please select an option:")
	for i, it := range m.items {
		fmt.Fprintf(w, "\t%d. %s\n", i+1, it.label)
	}
	fmt.Fprintf(w, "\t0. %s\n", m.exit)
}

func (m menu) action(choice string) (func(ctx context.Context) error, bool) {
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(m.items) {
		return nil, false
	}
	return m.items[n-1].action, true
}

func (c *Console) mainMenu() menu {
	return menu{
		title: "Transportation Logistics System",
		exit:  "Exit",
		items: []item{
			{"Fleet Management", func(ctx context.Context) error { return c.loop(ctx, c.fleetMenu()) }},
			{"Customer Management", func(ctx context.Context) error { return c.loop(ctx, c.customerMenu()) }},
			{"Shipment Management", func(ctx context.Context) error { return c.loop(ctx, c.shipmentMenu()) }},
			{"Delivery Management", func(ctx context.Context) error { return c.loop(ctx, c.deliveryMenu()) }},
			{"Registry Audit", c.audit},
		},
	}
}

func (c *Console) fleetMenu() menu {
	return menu{
		title: "Fleet Management",
		exit:  "Back",
		items: []item{
			{"Add a vehicle", c.addVehicle},
			{"Update vehicle information", c.updateVehicle},
			{"Remove a vehicle", c.removeVehicle},
			{"View all vehicles", c.listVehicles},
		},
	}
}

func (c *Console) customerMenu() menu {
	return menu{
		title: "Customer Management",
		exit:  "Back",
		items: []item{
			{"Add a customer", c.addCustomer},
			{"Update customer information", c.updateCustomer},
			{"Remove a customer", c.removeCustomer},
			{"View all customers", c.listCustomers},
			{"View customer shipments", c.customerShipments},
		},
	}
}

func (c *Console) shipmentMenu() menu {
	return menu{
		title: "Shipment Management",
		exit:  "Back",
		items: []item{
			{"Create a new shipment", c.createShipment},
			{"Track a shipment", c.trackShipment},
			{"View all shipments", c.listShipments},
		},
	}
}

func (c *Console) deliveryMenu() menu {
	return menu{
		title: "Delivery Management",
		exit:  "Back",
		items: []item{
			{"Mark shipment delivery", c.markDelivered},
			{"View delivery status", c.deliveryStatus},
		},
	}
}

// table writes rows under headers with aligned columns.
func table(w io.Writer, headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	fmt.Fprintln(tw, strings.Repeat("-\t", len(headers)-1)+"-")
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
}
