package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
)

type historyCmd struct {
	env    *Env
	itemID string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "kardex de un artículo con saldo acumulado" }
func (*historyCmd) Usage() string {
	return `almacenctl history -item <id>
`
}

func (p *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.itemID, "item", "", "ID del artículo.")
}

func (p *historyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.itemID == "" {
		fmt.Fprintln(p.env.Err, "Error: -item es obligatorio.")
		return subcommands.ExitUsageError
	}
	return p.env.withService(ctx, func(svc *inventory.Service) error {
		entries, err := svc.ItemHistory(p.itemID)
		if err != nil {
			return fmt.Errorf("artículo %s: %w", p.itemID, err)
		}
		w := tabwriter.NewWriter(p.env.Out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FECHA\tTIPO\tCANTIDAD\tSALDO\tDETALLE")
		for _, e := range entries {
			m := e.Movement
			detail := m.Supplier
			if detail == "" {
				detail = m.Reason
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", m.Date.Format("2006-01-02 15:04"), m.Type, m.Quantity, e.Balance, detail)
		}
		return w.Flush()
	})
}
