package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/incial/stockflow/internal/analytics"
	"github.com/incial/stockflow/internal/domain"
	"github.com/incial/stockflow/internal/repository/memory"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

func main() {
	// .env is optional here; the report runs entirely offline.
	_ = godotenv.Load(".env")

	app := &cli.App{
		Name:  "stockctl",
		Usage: "Render stock intake reports offline",
		Commands: []*cli.Command{
			{
				Name:  "report",
				Usage: "Print the pivot report and KPI summary",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "outlet",
						Usage: "Restrict the report to one outlet id",
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "Restrict the report to one entry date (YYYY-MM-DD)",
					},
					&cli.StringFlag{
						Name:  "entries",
						Usage: "CSV of extra entries (outlet_id,product_id,quantity,amount,entry_date)",
					},
				},
				Action: runReport,
			},
			{
				Name:   "dates",
				Usage:  "Print the distinct entry dates, newest first",
				Action: runDates,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadEntries(c *cli.Context) ([]domain.StockEntry, error) {
	entries := domain.SeedStockEntries()
	path := c.String("entries")
	if path == "" {
		return entries, nil
	}

	extra, err := readEntriesCSV(path)
	if err != nil {
		return nil, fmt.Errorf("read entries csv %s: %w", path, err)
	}
	return append(extra, entries...), nil
}

func readEntriesCSV(path string) ([]domain.StockEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	var entries []domain.StockEntry
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if line == 1 && record[0] == "outlet_id" {
			continue // header
		}
		if len(record) < 5 {
			return nil, fmt.Errorf("line %d: expected 5 columns, got %d", line, len(record))
		}

		quantity, err := strconv.ParseInt(record[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad quantity %q: %w", line, record[2], err)
		}
		amount, err := decimal.NewFromString(record[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad amount %q: %w", line, record[3], err)
		}

		entries = append(entries, domain.StockEntry{
			ID:        fmt.Sprintf("s-csv-%d", line),
			OutletID:  record[0],
			ProductID: record[1],
			Quantity:  quantity,
			Amount:    amount,
			EntryDate: record[4],
			EnteredBy: "stockctl",
			CreatedAt: time.Now().UTC(),
		})
	}
	return entries, nil
}

func runReport(c *cli.Context) error {
	catalog := memory.NewSeedCatalogRepository()
	entries, err := loadEntries(c)
	if err != nil {
		return err
	}

	filter := domain.ReportFilter{
		OutletID: c.String("outlet"),
		Date:     c.String("date"),
	}

	report := analytics.BuildPivot(entries, filter, catalog)
	summary := analytics.Summarize(entries, filter, catalog)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, section := range report.Brands {
		fmt.Fprintf(w, "== %s\n", section.Brand)
		for _, p := range section.Products {
			fmt.Fprintf(w, "%s\t%s", p.Name, p.MRP.StringFixed(2))
			for _, date := range report.Dates {
				cell, ok := report.Matrix[date][p.ID]
				if !ok {
					fmt.Fprint(w, "\t-\t-\t-")
					continue
				}
				fmt.Fprintf(w, "\t%d\t%s\t%s", cell.Quantity, cell.Amount.StringFixed(2), cell.Profit.StringFixed(2))
			}
			fmt.Fprintln(w)
		}
		for _, date := range report.Dates {
			total := section.Totals[date]
			fmt.Fprintf(w, "  bill %s\t\t\t%s\t%s\n", date, total.TotalAmount.StringFixed(2), total.TotalProfit.StringFixed(2))
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total revenue\t%s\n", summary.TotalRevenue.StringFixed(2))
	fmt.Fprintf(w, "Total profit\t%s\n", summary.TotalProfit.StringFixed(2))
	fmt.Fprintf(w, "Average margin\t%s%%\n", summary.AvgMargin.StringFixed(1))
	fmt.Fprintf(w, "Units stocked\t%d\n", summary.TotalUnits)
	return w.Flush()
}

func runDates(c *cli.Context) error {
	entries, err := loadEntries(c)
	if err != nil {
		return err
	}
	for _, date := range analytics.AvailableDates(entries) {
		fmt.Println(date)
	}
	return nil
}
