package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

var day1 = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func sampleSnapshot() *entity.Snapshot {
	return &entity.Snapshot{
		Categories: []entity.Category{{ID: "office", Name: "Oficina"}},
		Items: []entity.Item{
			{ID: "pens", Name: "pens", CategoryID: "office", Description: "azul"},
			{ID: "laptop", Name: "Laptop", CategoryID: "borrada"},
		},
		Movements: []entity.StockMovement{
			{ID: "m1", ItemID: "pens", Type: entity.MovementIn, Quantity: 10, Date: day1, Supplier: "Acme"},
			{ID: "m2", ItemID: "pens", Type: entity.MovementOut, Quantity: 3, Date: day1.AddDate(0, 0, 1), Reason: "consumo"},
			{ID: "m3", ItemID: "fantasma", Type: entity.MovementIn, Quantity: 1, Date: day1},
		},
	}
}

func TestInventoryRows(t *testing.T) {
	rows := report.InventoryRows(sampleSnapshot())
	require.Len(t, rows, 2)
	assert.Equal(t, report.InventoryRow{ItemName: "Laptop", Category: entity.UnknownCategoryName, Quantity: 0}, rows[0])
	assert.Equal(t, report.InventoryRow{ItemName: "pens", Category: "Oficina", Quantity: 7, Description: "azul"}, rows[1])
}

func TestMovementRows_BusquedasFaltantes(t *testing.T) {
	rows := report.MovementRows(sampleSnapshot())
	require.Len(t, rows, 3)

	assert.Equal(t, "pens", rows[0].Item)
	assert.Equal(t, entity.MovementOut, rows[0].Type)
	assert.Equal(t, "consumo", rows[0].Reason)

	assert.Equal(t, "Acme", rows[1].Supplier)
	assert.Equal(t, "Oficina", rows[1].Category)

	assert.Equal(t, report.Missing, rows[2].Item)
	assert.Equal(t, report.Missing, rows[2].Category)
}

func TestParseFormat(t *testing.T) {
	f, err := report.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, report.FormatXLS, f)
	f, err = report.ParseFormat("PDF")
	require.NoError(t, err)
	assert.Equal(t, report.FormatPDF, f)
	_, err = report.ParseFormat("csv")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

type fakeRenderer struct {
	inv  []report.InventoryRow
	movs []report.MovementRow
	err  error
}

func (f *fakeRenderer) ContentType() string { return "text/plain" }
func (f *fakeRenderer) Extension() string   { return "txt" }
func (f *fakeRenderer) RenderInventory(_ context.Context, _ report.Meta, rows []report.InventoryRow) ([]byte, error) {
	f.inv = rows
	return []byte("inv"), f.err
}
func (f *fakeRenderer) RenderMovements(_ context.Context, _ report.Meta, rows []report.MovementRow) ([]byte, error) {
	f.movs = rows
	return []byte("movs"), f.err
}

func TestBuilder(t *testing.T) {
	fr := &fakeRenderer{}
	b := report.NewBuilder(map[report.Format]report.Renderer{report.FormatXLS: fr})
	ctx := context.Background()

	file, err := b.Inventory(ctx, sampleSnapshot(), report.FormatXLS)
	require.NoError(t, err)
	assert.Equal(t, "inventario.txt", file.Name)
	assert.Equal(t, []byte("inv"), file.Data)
	assert.Len(t, fr.inv, 2)

	file, err = b.Movements(ctx, sampleSnapshot(), report.FormatXLS)
	require.NoError(t, err)
	assert.Equal(t, "movimientos.txt", file.Name)
	assert.Len(t, fr.movs, 3)

	_, err = b.Inventory(ctx, sampleSnapshot(), report.FormatPDF)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	fr.err = errors.New("sin espacio")
	_, err = b.Movements(ctx, sampleSnapshot(), report.FormatXLS)
	assert.Error(t, err)
}
