package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/tribunal/internal/client/models"
)

// Forms prints the catalog for the current category and search text. The
// first call also loads the category list.
func (a *App) Forms(ctx context.Context) error {
	var err error
	if len(a.forms.State().Categories) == 0 {
		err = a.forms.Load(ctx)
	} else {
		err = a.forms.Refresh(ctx)
	}
	if err != nil {
		return err
	}
	a.printCatalog()
	return nil
}

// Category selects a category ("-" for all) and refetches.
func (a *App) Category(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("category <value|->")
	}
	v := args[0]
	if v == "-" {
		v = ""
	}
	if err := a.forms.SetCategory(ctx, v); err != nil {
		return err
	}
	a.printCatalog()
	return nil
}

// Find sets the search text ("-" to clear) and refetches.
func (a *App) Find(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("find <text|->")
	}
	v := strings.Join(args, " ")
	if v == "-" {
		v = ""
	}
	if err := a.forms.SetSearch(ctx, v); err != nil {
		return err
	}
	a.printCatalog()
	return nil
}

func (a *App) Form(ctx context.Context, args []string) error {
	id, ok := parseID(args)
	if !ok {
		return usageError("form <id>")
	}
	f, err := a.formSvc.Get(ctx, id)
	if err != nil {
		printlnFn(failureMessage(err, "Formulário não encontrado"))
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Título\t%s\n", f.Title)
	fmt.Fprintf(tw, "Categoria\t%s\n", models.TypeBadge(f.Category).Label)
	fmt.Fprintf(tw, "Versão\t%s\n", orDash(f.Version))
	fmt.Fprintf(tw, "Atualizado\t%s\n", f.UpdatedDate.DisplayDate())
	fmt.Fprintf(tw, "Descrição\t%s\n", orDash(f.Description))
	return tw.Flush()
}

// Download saves the form as "<title>.pdf" in the download directory. On
// failure nothing is written and nothing is printed.
func (a *App) Download(ctx context.Context, args []string) error {
	id, ok := parseID(args)
	if !ok {
		return usageError("download <id>")
	}
	path, err := a.forms.Download(ctx, id)
	if err != nil {
		return err
	}
	printlnFn("Saved", path)
	return nil
}

func (a *App) printCatalog() {
	st := a.forms.State()
	sections := st.Sections()
	if len(sections) == 0 {
		printlnFn("Nenhum formulário encontrado")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, s := range sections {
		fmt.Fprintf(tw, "[%s]\n", s.Info.Label)
		for _, f := range s.Forms {
			fmt.Fprintf(tw, "  %d\t%s\t%s\n", f.ID, f.Title, f.UpdatedDate.DisplayDate())
		}
	}
	_ = tw.Flush()
	printlnFn(fmt.Sprintf("%d formulário(s)", st.Catalog.Total))
}

func parseID(args []string) (int64, bool) {
	if len(args) != 1 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	return id, err == nil && id > 0
}
