package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/seed"
)

type seedCmd struct {
	env  *Env
	file string
}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "carga usuarios, categorías y artículos iniciales" }
func (*seedCmd) Usage() string {
	return `almacenctl seed [-file <semilla.toml>]

  Solo se siembran las colecciones vacías; sin -file se usa la semilla por defecto.
`
}

func (p *seedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "file", "", "Archivo TOML con la semilla.")
}

func (p *seedCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := seed.Load(p.file, seed.Options{Now: p.env.Now()})
	if err != nil {
		fmt.Fprintln(p.env.Err, err)
		return subcommands.ExitFailure
	}
	return p.env.withService(ctx, func(svc *inventory.Service) error {
		changed, err := svc.SeedEmpty(ctx, snap)
		if err != nil {
			return err
		}
		if !changed.Any() {
			fmt.Fprintln(p.env.Out, "nada que sembrar: todas las colecciones tienen datos")
			return nil
		}
		report := func(name string, done bool, n int) {
			if done {
				fmt.Fprintf(p.env.Out, "%s: %d\n", name, n)
			}
		}
		report("usuarios", changed.Users, len(snap.Users))
		report("categorías", changed.Categories, len(snap.Categories))
		report("artículos", changed.Items, len(snap.Items))
		return nil
	})
}
