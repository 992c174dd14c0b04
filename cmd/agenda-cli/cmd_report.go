package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	request "agenda_facil/internal/adapter/http/dto/request"
	"agenda_facil/internal/domain/agenda"
	"agenda_facil/internal/usecase"

	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the monthly dashboard (appointments, estimated revenue, rankings)",
		RunE: func(cmd *cobra.Command, args []string) error {
			reference, err := request.MonthQuery{Month: month}.ResolveReference(loc)
			if err != nil {
				return fmt.Errorf("report: --month must be YYYY-MM: %w", err)
			}

			snapshots, release, err := openSnapshots(cmd.Context())
			if err != nil {
				return fmt.Errorf("report: %w", err)
			}
			defer release()

			report, err := usecase.NewDashboardUseCase(snapshots, usecase.SystemClock{}, loc).Monthly(cmd.Context(), reference)
			if err != nil {
				return fmt.Errorf("report: %w", err)
			}
			return printReport(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month as YYYY-MM (default current month)")
	return cmd
}

func printReport(w io.Writer, r agenda.MonthlyReport) error {
	fmt.Fprintf(w, "Month: %04d-%02d\n", r.Year, int(r.Month))
	fmt.Fprintf(w, "Appointments: %d\n", r.Count)
	fmt.Fprintf(w, "Estimated revenue: R$ %.2f\n", r.TotalRevenue)
	fmt.Fprintf(w, "Services registered: %d\n", r.ServicesRegistered)
	fmt.Fprintf(w, "Professionals registered: %d\n", r.ProfessionalsRegistered)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	printTallies(tw, "By service", r.PerService)
	printTallies(tw, "By professional", r.PerProfessional)
	return tw.Flush()
}

func printTallies(w io.Writer, title string, ts []agenda.Tally) {
	fmt.Fprintf(w, "\n%s:\n", title)
	if len(ts) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, t := range ts {
		fmt.Fprintf(w, "  %s\t%d\n", t.Name, t.Count)
	}
}

func formatLocal(t time.Time) string {
	return t.In(loc).Format("2006-01-02 15:04")
}
