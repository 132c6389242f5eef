package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fundboard/internal/analytics"
	"fundboard/internal/core/domain"
	"fundboard/internal/core/port"
	"fundboard/internal/report"
)

var summaryFilter filterFlags

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print KPI tiles and breakdowns for a filtered view",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	summaryFilter.register(summaryCmd)
}

var (
	colorTitle = color.New(color.Bold, color.FgGreen)
	colorValue = color.New(color.Bold)
)

func runSummary(cmd *cobra.Command, _ []string) error {
	spec, err := summaryFilter.spec(cmd)
	if err != nil {
		return err
	}
	svc, err := summaryFilter.offlineUseCase(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	d, err := svc.Dashboard(cmd.Context(), "", spec)
	if err != nil {
		return err
	}
	return renderSummary(cmd.OutOrStdout(), d)
}

func renderSummary(w io.Writer, d *port.Dashboard) error {
	fmt.Fprintf(w, "%s %s to %s\n\n", colorTitle.Sprint("Campaign KPIs"),
		d.Filter.From.Format(domain.DateLayout), d.Filter.To.Format(domain.DateLayout))
	renderTiles(w, d.Tiles)

	fmt.Fprintln(w, colorTitle.Sprint("Funds Raised by Category"))
	if err := renderSums(w, "CATEGORY", d.Category); err != nil {
		return err
	}

	fmt.Fprintln(w, colorTitle.Sprint("Monthly Raised Amount"))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MONTH\tRAISED")
	for _, m := range d.Monthly {
		fmt.Fprintf(tw, "%s\t%s\n", m.Month.Format("2006-01"), report.USD(m.RaisedUSD))
	}
	if err := flushSection(w, tw); err != nil {
		return err
	}

	fmt.Fprintln(w, colorTitle.Sprint("Top Performing Campaigns"))
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCATEGORY\tCOUNTRY\tGOAL\tRAISED\tSTATUS")
	for _, r := range d.Top {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Name, r.Category, r.Country, r.GoalUSD, r.RaisedUSD, r.Status)
	}
	if err := flushSection(w, tw); err != nil {
		return err
	}

	fmt.Fprintln(w, colorTitle.Sprint("Donor Analytics"))
	renderTiles(w, d.Donors.Tiles)
	return renderSums(w, "CHANNEL", d.Donors.Channels)
}

func renderTiles(w io.Writer, tiles []report.Tile) {
	for _, t := range tiles {
		fmt.Fprintf(w, "  %-22s %s\n", t.Label, colorValue.Sprint(t.Value))
	}
	fmt.Fprintln(w)
}

func renderSums(w io.Writer, header string, sums []analytics.GroupSum) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tTOTAL\n", header)
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%s\n", s.Key, report.USD(s.Sum))
	}
	return flushSection(w, tw)
}

func flushSection(w io.Writer, tw *tabwriter.Writer) error {
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
