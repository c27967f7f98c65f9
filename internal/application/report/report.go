// Package report arma las filas de los reportes de inventario y movimientos.
// El formato del archivo lo decide un Renderer (hoja de cálculo XML o PDF).
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/ledger"
)

// Missing valor que se muestra cuando una búsqueda (artículo o categoría) no encuentra el registro.
const Missing = "N/A"

// InventoryRow fila del reporte de inventario.
type InventoryRow struct {
	ItemName    string
	Category    string
	Quantity    int64
	Description string
}

// MovementRow fila del reporte de movimientos.
type MovementRow struct {
	Date     time.Time
	Item     string
	Category string
	Type     entity.MovementType
	Quantity int64
	Supplier string
	Reason   string
	Notes    string
}

// Meta datos de encabezado comunes a todo reporte.
type Meta struct {
	Title       string
	GeneratedAt time.Time
}

// Renderer puerto de salida: convierte filas a un archivo.
type Renderer interface {
	ContentType() string
	Extension() string
	RenderInventory(ctx context.Context, meta Meta, rows []InventoryRow) ([]byte, error)
	RenderMovements(ctx context.Context, meta Meta, rows []MovementRow) ([]byte, error)
}

// Format formato de archivo solicitado.
type Format string

const (
	FormatXLS Format = "xls"
	FormatPDF Format = "pdf"
)

// ParseFormat acepta "xls" (por defecto si está vacío) o "pdf".
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatXLS:
		return FormatXLS, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", domain.ErrInvalidInput
}

// InventoryRows deriva el inventario del snapshot y lo ordena por nombre de artículo.
func InventoryRows(snap *entity.Snapshot) []InventoryRow {
	inv := ledger.DeriveInventory(snap.Items, snap.Categories, snap.Movements)
	ledger.SortByItemName(inv)
	rows := make([]InventoryRow, 0, len(inv))
	for _, ii := range inv {
		rows = append(rows, InventoryRow{
			ItemName:    ii.Item.Name,
			Category:    ii.Category.Name,
			Quantity:    ii.Quantity,
			Description: ii.Item.Description,
		})
	}
	return rows
}

// MovementRows resuelve artículo y categoría de cada movimiento, del más reciente al más antiguo.
func MovementRows(snap *entity.Snapshot) []MovementRow {
	items := make(map[string]entity.Item, len(snap.Items))
	for _, it := range snap.Items {
		items[it.ID] = it
	}
	cats := make(map[string]entity.Category, len(snap.Categories))
	for _, c := range snap.Categories {
		cats[c.ID] = c
	}

	ms := ledger.LatestMovements(snap.Movements, 0)
	rows := make([]MovementRow, 0, len(ms))
	for _, m := range ms {
		r := MovementRow{
			Date:     m.Date,
			Item:     Missing,
			Category: Missing,
			Type:     m.Type,
			Quantity: m.Quantity,
			Supplier: m.Supplier,
			Reason:   m.Reason,
			Notes:    m.Notes,
		}
		if it, ok := items[m.ItemID]; ok {
			r.Item = it.Name
			if c, ok := cats[it.CategoryID]; ok {
				r.Category = c.Name
			}
		}
		rows = append(rows, r)
	}
	return rows
}

// Builder genera reportes completos a partir de un snapshot consistente.
type Builder struct {
	renderers map[Format]Renderer
	now       func() time.Time
}

// NewBuilder registra los renderers disponibles por formato.
func NewBuilder(renderers map[Format]Renderer) *Builder {
	return &Builder{renderers: renderers, now: time.Now}
}

// File archivo generado.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Inventory genera el reporte de inventario en el formato pedido.
func (b *Builder) Inventory(ctx context.Context, snap *entity.Snapshot, f Format) (*File, error) {
	r, err := b.renderer(f)
	if err != nil {
		return nil, err
	}
	meta := Meta{Title: "Reporte de inventario", GeneratedAt: b.now()}
	data, err := r.RenderInventory(ctx, meta, InventoryRows(snap))
	if err != nil {
		return nil, fmt.Errorf("reporte de inventario: %w", err)
	}
	return &File{Name: "inventario." + r.Extension(), ContentType: r.ContentType(), Data: data}, nil
}

// Movements genera el reporte de movimientos en el formato pedido.
func (b *Builder) Movements(ctx context.Context, snap *entity.Snapshot, f Format) (*File, error) {
	r, err := b.renderer(f)
	if err != nil {
		return nil, err
	}
	meta := Meta{Title: "Reporte de movimientos", GeneratedAt: b.now()}
	data, err := r.RenderMovements(ctx, meta, MovementRows(snap))
	if err != nil {
		return nil, fmt.Errorf("reporte de movimientos: %w", err)
	}
	return &File{Name: "movimientos." + r.Extension(), ContentType: r.ContentType(), Data: data}, nil
}

func (b *Builder) renderer(f Format) (Renderer, error) {
	r, ok := b.renderers[f]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	return r, nil
}
