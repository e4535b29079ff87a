package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"beethoven.dev/beethoven/pkg/model"
)

// Analytics prints the server-computed aggregates for a date range.
func Analytics(city model.City, from, to string, r model.AnalyticsReport) {
	title := color.New(color.Bold, color.Underline)
	faint := color.New(color.Faint)

	_, _ = title.Printf("%s, %s – %s\n\n", city.Label(), from, to)

	tbl := uitable.New()
	tbl.AddRow("Clients", fmt.Sprintf("%d", r.TotalClients))
	tbl.AddRow("Bought", color.New(color.FgGreen).Sprintf("%d", r.Bought))
	tbl.AddRow("Not bought", color.New(color.FgRed).Sprintf("%d", r.NotBought))
	tbl.AddRow("Prepayment", color.New(color.FgYellow).Sprintf("%d", r.Prepayment))
	tbl.AddRow("Conversion", fmt.Sprintf("%.1f%%", r.Conversion*100))
	tbl.AddRow("Avg score", fmt.Sprintf("%.1f/10", r.AvgScore))
	_, _ = fmt.Fprintln(color.Output, tbl)

	if len(r.Employees) == 0 {
		return
	}
	fmt.Println("")
	_, _ = title.Println("By employee")
	emp := uitable.New()
	emp.MaxColWidth = 40
	emp.AddRow("NAME", "ROLE", "LESSONS", "AVG SCORE", "CONVERSION")
	for _, e := range r.Employees {
		emp.AddRow(e.Name, faint.Sprint(e.Role.Label()), fmt.Sprintf("%d", e.Lessons),
			fmt.Sprintf("%.1f", e.AvgScore), fmt.Sprintf("%.1f%%", e.Conversion*100))
	}
	_, _ = fmt.Fprintln(color.Output, emp)
}
