package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"agenda_facil/internal/domain/agenda"

	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	var field string

	cmd := &cobra.Command{
		Use:   "search <clients|professionals|services|appointments> [query]",
		Short: "Field-scoped search over one collection",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := agenda.Kind(strings.ToLower(args[0]))
			query := ""
			if len(args) == 2 {
				query = args[1]
			}
			f := agenda.Field(strings.ToLower(field))
			if f == "" {
				f = defaultField(kind)
			}

			snapshots, release, err := openSnapshots(cmd.Context())
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			defer release()

			snapshot, err := snapshots.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			matches, err := agenda.Filter(kind, f, query, snapshot)
			if err != nil {
				return fmt.Errorf("search: %w (fields: %v)", err, agenda.Fields(kind))
			}
			return printMatches(cmd.OutOrStdout(), kind, matches, snapshot)
		},
	}
	cmd.Flags().StringVar(&field, "field", "", "field to match (default name, or title for appointments)")
	return cmd
}

func defaultField(kind agenda.Kind) agenda.Field {
	if kind == agenda.KindAppointments {
		return agenda.FieldTitle
	}
	return agenda.FieldName
}

// printMatches writes the non-empty collection of matches; full is used to join
// appointment references.
func printMatches(w io.Writer, kind agenda.Kind, matches, full agenda.Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	switch kind {
	case agenda.KindClients:
		fmt.Fprintln(tw, "ID\tNAME\tPHONE\tEMAIL")
		for _, c := range matches.Clients {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Phone, c.Email)
		}
	case agenda.KindProfessionals:
		fmt.Fprintln(tw, "ID\tNAME\tSPECIALTY")
		for _, p := range matches.Professionals {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Name, p.Specialty)
		}
	case agenda.KindServices:
		fmt.Fprintln(tw, "ID\tNAME\tDURATION\tPRICE")
		for _, s := range matches.Services {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\n", s.ID, s.Name, s.Duration, s.Price)
		}
	case agenda.KindAppointments:
		fmt.Fprintln(tw, "ID\tDATE\tTIME\tSTATUS\tCLIENT\tPROFESSIONAL\tSERVICE")
		for _, a := range matches.Appointments {
			r := agenda.Resolve(a, full)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", a.ID, a.Date, a.Time, a.Status, r.ClientName(), r.ProfessionalName(), r.ServiceName())
		}
	}
	return tw.Flush()
}
