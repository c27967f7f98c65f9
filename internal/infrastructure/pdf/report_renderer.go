// Package pdf genera los reportes de inventario y movimientos en PDF.
//
// Layout de la página A4 (horizontal para movimientos):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte     │  Fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una fila por artículo o movimiento                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: cantidad de filas / stock total                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	mentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.Renderer = (*ReportRenderer)(nil)

// ReportRenderer implementa report.Renderer usando Maroto v2.
type ReportRenderer struct {
	author string
}

// NewReportRenderer construye el renderer; author aparece en los metadatos del PDF.
func NewReportRenderer(author string) *ReportRenderer { return &ReportRenderer{author: author} }

func (g *ReportRenderer) ContentType() string { return "application/pdf" }
func (g *ReportRenderer) Extension() string   { return "pdf" }

// column define una columna de la tabla: título, ancho (grilla de 12) y alineación.
type column struct {
	label string
	size  int
	align align.Type
}

var inventoryColumns = []column{
	{"Artículo", 4, align.Left},
	{"Categoría", 3, align.Left},
	{"Cantidad", 1, align.Right},
	{"Descripción", 4, align.Left},
}

var movementColumns = []column{
	{"Fecha", 1, align.Left},
	{"Artículo", 2, align.Left},
	{"Categoría", 2, align.Left},
	{"Tipo", 1, align.Center},
	{"Cant.", 1, align.Right},
	{"Proveedor", 2, align.Left},
	{"Motivo", 1, align.Left},
	{"Notas", 2, align.Left},
}

// RenderInventory genera el PDF del inventario con el stock total al pie.
func (g *ReportRenderer) RenderInventory(ctx context.Context, meta report.Meta, rows []report.InventoryRow) ([]byte, error) {
	m := maroto.New(g.config(meta, orientation.Vertical))
	m.AddRows(headerRow(meta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(inventoryColumns))

	var total int64
	for _, r := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		total += r.Quantity
		m.AddRows(tableRow(inventoryColumns,
			r.ItemName, r.Category, strconv.FormatInt(r.Quantity, 10), r.Description))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(
		fmt.Sprintf("Artículos: %d", len(rows)),
		"Stock total: "+formatThousands(total),
	))
	return generate(m)
}

// RenderMovements genera el PDF de movimientos (A4 horizontal).
func (g *ReportRenderer) RenderMovements(ctx context.Context, meta report.Meta, rows []report.MovementRow) ([]byte, error) {
	m := maroto.New(g.config(meta, orientation.Horizontal))
	m.AddRows(headerRow(meta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(movementColumns))

	var in, out int
	for _, r := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if r.Type == entity.MovementIn {
			in++
		} else {
			out++
		}
		m.AddRows(tableRow(movementColumns,
			r.Date.Format("02/01/2006"), r.Item, r.Category, string(r.Type),
			strconv.FormatInt(r.Quantity, 10), r.Supplier, r.Reason, r.Notes))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(
		fmt.Sprintf("Entradas: %d", in),
		fmt.Sprintf("Salidas: %d", out),
	))
	return generate(m)
}

func (g *ReportRenderer) config(meta report.Meta, o orientation.Type) *mentity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(o).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(meta.Title, true).
		WithAuthor(g.author, true).
		Build()
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(meta report.Meta) core.Row {
	generated := ""
	if !meta.GeneratedAt.IsZero() {
		generated = "Generado: " + meta.GeneratedAt.Format("02/01/2006 15:04")
	}
	return row.New(14).Add(
		col.New(8).Add(
			text.New(meta.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(generated, props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla.
func tableHeaderRow(cols []column) core.Row {
	r := row.New(8)
	for _, c := range cols {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return r
}

// tableRow: una fila de datos; values sigue el orden de cols.
func tableRow(cols []column, values ...string) core.Row {
	r := row.New(7)
	for i, c := range cols {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		r.Add(col.New(c.size).Add(text.New(v, props.Text{
			Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return r
}

// totalsRow: dos rótulos alineados a la derecha.
func totalsRow(left, right string) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
		})
	}
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(label(left)),
		col.New(3).Add(label(right)),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// formatThousands inserta puntos de miles. Ej: 25000 → "25.000", -1200 → "-1.200".
func formatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	l := len(s)
	if l <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, l+l/3)
	for i, c := range []byte(s) {
		if i > 0 && (l-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
