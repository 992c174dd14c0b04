package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	request "agenda_facil/internal/adapter/http/dto/request"
	"agenda_facil/internal/infrastructure/calendar"
	"agenda_facil/internal/usecase"

	"github.com/spf13/cobra"
)

func calendarCmd() *cobra.Command {
	var (
		query  request.CalendarQuery
		ics    bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "List calendar events or export them as iCalendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := query.ToFilter(loc)
			if err != nil {
				return fmt.Errorf("calendar: %w", err)
			}

			snapshots, release, err := openSnapshots(cmd.Context())
			if err != nil {
				return fmt.Errorf("calendar: %w", err)
			}
			defer release()

			result, err := usecase.NewCalendarUseCase(snapshots, loc).Events(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("calendar: %w", err)
			}

			if !ics {
				return printEvents(cmd.OutOrStdout(), result)
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("calendar: %w", err)
				}
				defer f.Close()
				w = f
			}
			if err := calendar.WriteICS(w, result.Events, time.Now()); err != nil {
				return fmt.Errorf("calendar: writing ics: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&query.From, "from", "", "window start (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&query.To, "to", "", "window end, exclusive (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&query.ProfessionalID, "professional", "", "only events of this professional id")
	cmd.Flags().StringVar(&query.ServiceID, "service", "", "only events of this service id")
	cmd.Flags().StringVar(&query.Status, "status", "", "only events with this status")
	cmd.Flags().BoolVar(&ics, "ics", false, "write an iCalendar feed instead of a table")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file for --ics (default stdout)")
	return cmd
}

func printEvents(w io.Writer, r usecase.CalendarResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "START\tEND\tSTATUS\tTITLE")
	for _, ev := range r.Events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", formatLocal(ev.Start), ev.End.In(loc).Format("15:04"), ev.Status, ev.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d event(s)\n", len(r.Events))
	for _, s := range r.Skipped {
		fmt.Fprintf(w, "skipped %s: %v\n", s.AppointmentID, s.Err)
	}
	return nil
}
