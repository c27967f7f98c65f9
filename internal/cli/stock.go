package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/ledger"
)

type stockCmd struct {
	env      *Env
	asJSON   bool
	category string
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "muestra el inventario derivado del libro de movimientos" }
func (*stockCmd) Usage() string {
	return `almacenctl stock [-category <id>] [-json]

  Lista cada artículo con su categoría y cantidad actual, ordenado por nombre.
`
}

func (p *stockCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.asJSON, "json", false, "Salida en JSON.")
	f.StringVar(&p.category, "category", "", "Mostrar solo los artículos de esta categoría.")
}

func (p *stockCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return p.env.withService(ctx, func(svc *inventory.Service) error {
		inv := svc.Inventory()
		ledger.SortByItemName(inv)
		rows := dto.ToInventoryResponses(inv)
		if p.category != "" {
			filtered := rows[:0]
			for _, r := range rows {
				if r.CategoryID == p.category {
					filtered = append(filtered, r)
				}
			}
			rows = filtered
		}

		if p.asJSON {
			enc := json.NewEncoder(p.env.Out)
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		}
		w := tabwriter.NewWriter(p.env.Out, 0, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "ARTÍCULO\tCATEGORÍA\tCANTIDAD\t")
		var total int64
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%d\t\n", r.ItemName, r.CategoryName, r.Quantity)
			total += r.Quantity
		}
		fmt.Fprintf(w, "TOTAL\t\t%d\t\n", total)
		return w.Flush()
	})
}
