// Command misctl is a terminal client for the MIS API. It drives the same
// store, view and export code the dashboards use, against a live server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/vst-mis/vst-mis/internal/client/charts"
	"github.com/vst-mis/vst-mis/internal/client/export"
	"github.com/vst-mis/vst-mis/internal/client/gateway"
	"github.com/vst-mis/vst-mis/internal/client/store"
	"github.com/vst-mis/vst-mis/internal/client/views"
	"github.com/vst-mis/vst-mis/internal/dashboard"
	"github.com/vst-mis/vst-mis/internal/dealers"
	"github.com/vst-mis/vst-mis/internal/inventory"
	"github.com/vst-mis/vst-mis/internal/orders"
)

func main() {
	base := flag.String("base", "http://localhost:3000", "API base URL")
	email := flag.String("email", os.Getenv("MIS_EMAIL"), "account email")
	password := flag.String("password", os.Getenv("MIS_PASSWORD"), "account password")
	query := flag.String("q", "", "search query")
	status := flag.String("status", "", "order status filter")
	region := flag.String("region", "", "dealer region filter")
	sortKey := flag.String("sort", "", "sort key")
	desc := flag.Bool("desc", false, "sort descending")
	format := flag.String("format", "csv", "export format: csv or xlsx")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: misctl [flags] <summary|orders|inventory|dealers|export>")
		os.Exit(2)
	}
	command := flag.Arg(0)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := gateway.New(*base)
	client.OnSignOut(func() {
		fmt.Fprintln(os.Stderr, "session expired, sign in again")
	})

	if _, err := client.Login(ctx, *email, *password); err != nil {
		fatal("login", err)
	}

	st := store.New(client)
	st.SetNotifier(func(n store.Notification) {
		suffix := ""
		if n.Offline {
			suffix = " [offline]"
		}
		fmt.Fprintf(os.Stderr, "%s: %s%s\n", n.Kind, n.Message, suffix)
	})
	if err := st.Load(ctx); err != nil {
		fatal("load data", err)
	}

	dir := views.Ascending
	if *desc {
		dir = views.Descending
	}

	switch command {
	case "summary":
		printSummary(st)
	case "orders":
		list := views.FilterOrders(st.Orders, *query, orders.Status(*status))
		printOrders(views.SortOrders(list, *sortKey, dir))
	case "inventory":
		printInventory(views.SortInventory(st.Inventory, *sortKey, dir))
	case "dealers":
		list := views.FilterDealers(st.Dealers, *query, dealers.Region(*region))
		printDealers(views.SortDealers(list, *sortKey, dir))
	case "export":
		if flag.NArg() < 2 {
			fatal("export", fmt.Errorf("usage: misctl export <sales|inventory|dealers>"))
		}
		if err := exportView(st, flag.Arg(1), *format); err != nil {
			fatal("export", err)
		}
	default:
		fatal("command", fmt.Errorf("unknown command %q", command))
	}
}

func printSummary(st *store.Store) {
	kpi := st.KPI
	fmt.Printf("Revenue: ₹%d Cr  Units YTD: %d  Active dealers: %d  Capacity: %d%%\n",
		kpi.Revenue, kpi.UnitsYTD, kpi.ActiveDealers, kpi.CapacityPercent)
	fmt.Printf("Low stock items: %d\n", views.LowStockCount(st.Inventory))

	printTrend(st.MonthlyTrend)

	fmt.Println("\nRecent orders:")
	printOrders(views.RecentOrders(st.Orders, 5))
}

// printTrend renders the six-month series as horizontal bars, reusing the
// chart geometry so the terminal and SVG renderings scale identically.
func printTrend(trend []dashboard.MonthlySales) {
	if len(trend) == 0 {
		return
	}
	values := make([]float64, len(trend))
	for i, point := range trend {
		values[i] = float64(point.Units)
	}
	bars := charts.BarLayout(values, charts.DefaultWidth, charts.DefaultHeight, charts.DefaultPadding)

	fmt.Println("\nMonthly sales:")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, bar := range bars {
		// Bar height maxes out at 40 columns for the widest month.
		cols := int(bar.Height / (charts.DefaultHeight - charts.DefaultPadding.Top - charts.DefaultPadding.Bottom) * 40)
		fmt.Fprintf(w, "%s\t%s %d\n", trend[i].Month, strings.Repeat("█", cols), trend[i].Units)
	}
	w.Flush()
}

func printOrders(list []orders.Order) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tDEALER\tPRODUCT\tQTY\tAMOUNT\tSTATUS")
	for _, o := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			o.ID, o.Date, o.Dealer, o.Product, o.Qty, views.FormatMoney(o.Amount), o.Status)
	}
	w.Flush()
}

func printInventory(items []inventory.Item) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SKU\tNAME\tCATEGORY\tSTOCK\tREORDER\tSTATUS")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			item.SKU, item.Name, item.Category, item.Stock, item.ReorderLevel, item.Status)
	}
	w.Flush()
}

func printDealers(list []dealers.Dealer) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tREGION\tCITY\tCONTACT\tYTD SALES")
	for _, d := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			d.Code, d.Name, d.Region, d.City, d.Contact, views.FormatMoney(d.YTDSales))
	}
	w.Flush()
}

func exportView(st *store.Store, view, format string) error {
	name := export.Filename(view, format, time.Now())
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	switch {
	case view == export.ViewSales && format == "csv":
		_, err = f.WriteString(export.SalesCSV(st.Orders))
	case view == export.ViewSales && format == "xlsx":
		err = export.SalesXLSX(f, st.Orders)
	case view == export.ViewInventory && format == "csv":
		_, err = f.WriteString(export.InventoryCSV(st.Inventory))
	case view == export.ViewInventory && format == "xlsx":
		err = export.InventoryXLSX(f, st.Inventory)
	case view == export.ViewDealers && format == "csv":
		_, err = f.WriteString(export.DealersCSV(st.Dealers))
	case view == export.ViewDealers && format == "xlsx":
		err = export.DealersXLSX(f, st.Dealers)
	default:
		return fmt.Errorf("unknown view %q or format %q", view, format)
	}
	if err != nil {
		return err
	}
	fmt.Println("wrote", name)
	return nil
}

func fatal(what string, err error) {
	fmt.Fprintf(os.Stderr, "misctl: %s: %v\n", what, err)
	os.Exit(1)
}
