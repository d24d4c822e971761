package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/tribunal/internal/client/client"
	"github.com/dmitrijs2005/tribunal/internal/client/models"
)

// Search runs the case search for the given page (default 1). The first
// search of a session also loads the type and status options. A failed
// search is logged by the controller and prints nothing.
func (a *App) Search(ctx context.Context, args []string) error {
	page := 1
	if len(args) > 0 {
		p, err := strconv.Atoi(args[0])
		if err != nil || p < 1 {
			return usageError("search [page]")
		}
		page = p
	}

	var err error
	if !a.cases.State().Searched && page == 1 {
		err = a.cases.Load(ctx)
	} else {
		err = a.cases.Search(ctx, page)
	}
	if err != nil {
		return err
	}
	a.printCases()
	return nil
}

// Filter sets one search criterion; "-" clears it. The search is not rerun.
func (a *App) Filter(_ context.Context, args []string) error {
	if len(args) < 2 {
		return usageError("filter <" + strings.Join(models.FilterFields, "|") + "> <value|->")
	}
	value := strings.Join(args[1:], " ")
	if value == "-" {
		value = ""
	}
	if err := a.cases.SetFilter(args[0], value); err != nil {
		if errors.Is(err, models.ErrUnknownFilter) {
			return usageError("filter <" + strings.Join(models.FilterFields, "|") + "> <value|->")
		}
		return err
	}
	return nil
}

func (a *App) Filters(_ context.Context) error {
	f := a.cases.State().Filters
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, name := range models.FilterFields {
		v := f.Get(name)
		if v == "" {
			v = "-"
		}
		fmt.Fprintf(tw, "  %s\t%s\n", name, v)
	}
	return tw.Flush()
}

// Clear resets every filter and searches page 1.
func (a *App) Clear(ctx context.Context) error {
	if err := a.cases.ClearFilters(ctx); err != nil {
		return err
	}
	a.printCases()
	return nil
}

func (a *App) Next(ctx context.Context) error {
	if !a.cases.CanNext() {
		printlnFn("No next page")
		return nil
	}
	if err := a.cases.Next(ctx); err != nil {
		return err
	}
	a.printCases()
	return nil
}

func (a *App) Prev(ctx context.Context) error {
	if !a.cases.CanPrev() {
		printlnFn("No previous page")
		return nil
	}
	if err := a.cases.Prev(ctx); err != nil {
		return err
	}
	a.printCases()
	return nil
}

func (a *App) Case(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("case <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return usageError("case <id>")
	}

	c, err := a.cases.Case(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			printlnFn("Processo não encontrado")
		} else {
			printlnFn(failureMessage(err, "Erro ao carregar o processo"))
		}
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Número\t%s\n", c.CaseNumber)
	fmt.Fprintf(tw, "Título\t%s\n", c.Title)
	fmt.Fprintf(tw, "Tipo\t%s\n", models.TypeBadge(c.CaseType).Label)
	fmt.Fprintf(tw, "Estado\t%s\n", models.StatusBadge(c.Status).Label)
	fmt.Fprintf(tw, "Autor\t%s\n", orDash(c.Plaintiff))
	fmt.Fprintf(tw, "Réu\t%s\n", orDash(c.Defendant))
	fmt.Fprintf(tw, "Juiz\t%s\n", orDash(c.Judge))
	fmt.Fprintf(tw, "Advogado\t%s\n", orDash(c.Lawyer))
	fmt.Fprintf(tw, "Entrada\t%s\n", c.FilingDate.DisplayDate())
	fmt.Fprintf(tw, "Próxima audiência\t%s\n", c.NextHearing.DisplayDate())
	if c.Description != "" {
		fmt.Fprintf(tw, "Descrição\t%s\n", c.Description)
	}
	return tw.Flush()
}

func (a *App) Types(ctx context.Context) error {
	opts, err := a.caseSvc.Types(ctx)
	if err != nil {
		printlnFn(failureMessage(err, "Erro ao carregar os tipos"))
		return err
	}
	return a.printOptions(opts)
}

func (a *App) Statuses(ctx context.Context) error {
	opts, err := a.caseSvc.Statuses(ctx)
	if err != nil {
		printlnFn(failureMessage(err, "Erro ao carregar os estados"))
		return err
	}
	return a.printOptions(opts)
}

func (a *App) printOptions(opts []models.Option) error {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, o := range opts {
		fmt.Fprintf(tw, "  %s\t%s\n", o.Value, o.Label)
	}
	return tw.Flush()
}

func (a *App) printCases() {
	st := a.cases.State()
	if len(st.Cases) == 0 {
		printlnFn("Nenhum processo encontrado")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNÚMERO\tTÍTULO\tTIPO\tESTADO\tENTRADA")
	for _, c := range st.Cases {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.CaseNumber, c.Title,
			models.TypeBadge(c.CaseType).Label,
			models.StatusBadge(c.Status).Label,
			c.FilingDate.DisplayDate(),
		)
	}
	_ = tw.Flush()

	p := st.Pagination
	if st.ShowPager() {
		printlnFn(fmt.Sprintf("Página %d de %d (%d processos)", p.Page, p.Pages, p.Total))
	} else {
		printlnFn(fmt.Sprintf("%d processo(s)", p.Total))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
