package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/report"
	infrapdf "github.com/jhoicas/Almacen-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/spreadsheet"
)

type exportCmd struct {
	env    *Env
	kind   string
	format string
	dir    string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "genera el reporte de inventario o de movimientos" }
func (*exportCmd) Usage() string {
	return `almacenctl export [-kind inventory|movements] [-format xls|pdf] [-dir <carpeta>]

  Escribe inventario.<ext> o movimientos.<ext> en la carpeta indicada.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.kind, "kind", "inventory", "Reporte a generar: inventory o movements.")
	f.StringVar(&p.format, "format", "xls", "Formato: xls (Excel XML) o pdf.")
	f.StringVar(&p.dir, "dir", ".", "Carpeta de destino.")
}

func (p *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	format, err := report.ParseFormat(p.format)
	if err != nil {
		fmt.Fprintf(p.env.Err, "Error: formato desconocido %q.\n", p.format)
		return subcommands.ExitUsageError
	}
	if p.kind != "inventory" && p.kind != "movements" {
		fmt.Fprintf(p.env.Err, "Error: reporte desconocido %q.\n", p.kind)
		return subcommands.ExitUsageError
	}

	builder := report.NewBuilder(map[report.Format]report.Renderer{
		report.FormatXLS: spreadsheet.NewRenderer(),
		report.FormatPDF: infrapdf.NewReportRenderer("almacenctl"),
	})
	return p.env.withService(ctx, func(svc *inventory.Service) error {
		var file *report.File
		var err error
		if p.kind == "inventory" {
			file, err = builder.Inventory(ctx, svc.Snapshot(), format)
		} else {
			file, err = builder.Movements(ctx, svc.Snapshot(), format)
		}
		if err != nil {
			return err
		}
		path := filepath.Join(p.dir, file.Name)
		if err := os.WriteFile(path, file.Data, 0o644); err != nil {
			return fmt.Errorf("escribir %s: %w", path, err)
		}
		fmt.Fprintf(p.env.Out, "%s (%d bytes)\n", path, len(file.Data))
		return nil
	})
}
