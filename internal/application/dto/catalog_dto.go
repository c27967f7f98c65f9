package dto

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// CategoryRequest entrada para crear o renombrar una categoría.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse salida de una categoría. ItemCount solo viaja en el listado.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ItemCount *int      `json:"item_count,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemRequest entrada para crear o editar un artículo.
type ItemRequest struct {
	Name        string `json:"name"`
	CategoryID  string `json:"category_id"`
	Description string `json:"description"`
}

// ItemResponse salida de un artículo. CurrentStock solo viaja en el listado.
type ItemResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CategoryID   string    `json:"category_id"`
	Description  string    `json:"description,omitempty"`
	CurrentStock *int64    `json:"current_stock,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToCategoryResponse(c entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

// ToCategoryCountResponses mapea el listado de categorías con su número de artículos.
func ToCategoryCountResponses(cats []entity.CategoryWithItemCount) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for _, c := range cats {
		r := ToCategoryResponse(c.Category)
		n := c.ItemCount
		r.ItemCount = &n
		out = append(out, r)
	}
	return out
}

func ToItemResponse(it entity.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		CategoryID:  it.CategoryID,
		Description: it.Description,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

// ToItemStockResponses mapea el listado de artículos con su stock actual.
func ToItemStockResponses(items []entity.ItemWithStock) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		r := ToItemResponse(it.Item)
		q := it.CurrentStock
		r.CurrentStock = &q
		out = append(out, r)
	}
	return out
}
