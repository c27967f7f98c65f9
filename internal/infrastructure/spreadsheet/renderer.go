// Package spreadsheet genera libros SpreadsheetML 2003 (XML que Excel y LibreOffice abren como .xls).
package spreadsheet

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

const (
	nsSpreadsheet = "urn:schemas-microsoft-com:office:spreadsheet"
	nsOffice      = "urn:schemas-microsoft-com:office:office"

	styleHeader = "encabezado"
	styleDate   = "fecha"
)

var _ report.Renderer = (*Renderer)(nil)

// Renderer implementa report.Renderer con etree.
type Renderer struct{}

// NewRenderer construye el renderer.
func NewRenderer() *Renderer { return &Renderer{} }

func (r *Renderer) ContentType() string { return "application/vnd.ms-excel" }
func (r *Renderer) Extension() string   { return "xls" }

// RenderInventory una hoja "Inventario" con artículo, categoría, cantidad y descripción.
func (r *Renderer) RenderInventory(ctx context.Context, meta report.Meta, rows []report.InventoryRow) ([]byte, error) {
	doc, table := newWorkbook(meta, "Inventario")
	headerRow(table, "Artículo", "Categoría", "Cantidad", "Descripción")
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tr := table.CreateElement("Row")
		stringCell(tr, row.ItemName)
		stringCell(tr, row.Category)
		numberCell(tr, row.Quantity)
		stringCell(tr, row.Description)
	}
	return write(doc)
}

// RenderMovements una hoja "Movimientos" con una fila por movimiento.
func (r *Renderer) RenderMovements(ctx context.Context, meta report.Meta, rows []report.MovementRow) ([]byte, error) {
	doc, table := newWorkbook(meta, "Movimientos")
	headerRow(table, "Fecha", "Artículo", "Categoría", "Tipo de movimiento", "Cantidad", "Proveedor", "Motivo", "Notas")
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tr := table.CreateElement("Row")
		dateCell(tr, row.Date)
		stringCell(tr, row.Item)
		stringCell(tr, row.Category)
		stringCell(tr, MovementLabel(row.Type))
		numberCell(tr, row.Quantity)
		stringCell(tr, row.Supplier)
		stringCell(tr, row.Reason)
		stringCell(tr, row.Notes)
	}
	return write(doc)
}

// MovementLabel texto del tipo de movimiento en los reportes.
func MovementLabel(t entity.MovementType) string {
	if t == entity.MovementIn {
		return "Entrada (IN)"
	}
	return "Salida (OUT)"
}

// newWorkbook crea el documento con estilos y una hoja; devuelve el elemento Table donde van las filas.
func newWorkbook(meta report.Meta, sheet string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateProcInst("mso-application", `progid="Excel.Sheet"`)

	wb := doc.CreateElement("Workbook")
	wb.CreateAttr("xmlns", nsSpreadsheet)
	wb.CreateAttr("xmlns:o", nsOffice)
	wb.CreateAttr("xmlns:ss", nsSpreadsheet)

	props := wb.CreateElement("o:DocumentProperties")
	props.CreateElement("o:Title").SetText(meta.Title)
	if !meta.GeneratedAt.IsZero() {
		props.CreateElement("o:Created").SetText(meta.GeneratedAt.UTC().Format(time.RFC3339))
	}

	styles := wb.CreateElement("Styles")
	h := styles.CreateElement("Style")
	h.CreateAttr("ss:ID", styleHeader)
	h.CreateElement("Font").CreateAttr("ss:Bold", "1")
	d := styles.CreateElement("Style")
	d.CreateAttr("ss:ID", styleDate)
	d.CreateElement("NumberFormat").CreateAttr("ss:Format", "yyyy-mm-dd")

	ws := wb.CreateElement("Worksheet")
	ws.CreateAttr("ss:Name", sheet)
	return doc, ws.CreateElement("Table")
}

func headerRow(table *etree.Element, labels ...string) {
	tr := table.CreateElement("Row")
	for _, l := range labels {
		c := stringCell(tr, l)
		c.CreateAttr("ss:StyleID", styleHeader)
	}
}

func stringCell(tr *etree.Element, v string) *etree.Element {
	c := tr.CreateElement("Cell")
	data := c.CreateElement("Data")
	data.CreateAttr("ss:Type", "String")
	data.SetText(v)
	return c
}

func numberCell(tr *etree.Element, v int64) {
	c := tr.CreateElement("Cell")
	data := c.CreateElement("Data")
	data.CreateAttr("ss:Type", "Number")
	data.SetText(strconv.FormatInt(v, 10))
}

func dateCell(tr *etree.Element, t time.Time) {
	c := tr.CreateElement("Cell")
	c.CreateAttr("ss:StyleID", styleDate)
	data := c.CreateElement("Data")
	data.CreateAttr("ss:Type", "DateTime")
	data.SetText(t.Format("2006-01-02T15:04:05.000"))
}

func write(doc *etree.Document) ([]byte, error) {
	doc.Indent(1)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: serializar: %w", err)
	}
	return out, nil
}
