package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/tribunal/internal/client/models"
)

// Hearings lists scheduled hearings. Positional arguments are the start
// date, the end date and the courtroom (the rest of the line); "-" skips one.
func (a *App) Hearings(ctx context.Context, args []string) error {
	var f models.HearingFilters
	if len(args) > 0 && args[0] != "-" {
		f.DateFrom = args[0]
	}
	if len(args) > 1 && args[1] != "-" {
		f.DateTo = args[1]
	}
	if len(args) > 2 {
		if room := strings.Join(args[2:], " "); room != "-" {
			f.Courtroom = room
		}
	}

	list, err := a.hearings.List(ctx, f)
	if err != nil {
		printlnFn(failureMessage(err, "Erro ao carregar as audiências"))
		return err
	}
	if len(list) == 0 {
		printlnFn("Nenhuma audiência agendada")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATA\tPROCESSO\tTIPO\tSALA\tJUIZ")
	for _, h := range list {
		when := "-"
		if !h.HearingDate.IsZero() {
			when = h.HearingDate.Format("02/01/2006 15:04")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", when, h.CaseNumber, orDash(h.HearingType), orDash(h.Courtroom), orDash(h.Judge))
	}
	return tw.Flush()
}
