package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo implementación del puerto SnapshotRepository sobre PostgreSQL.
type SnapshotRepo struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewSnapshotRepository construye el adaptador de persistencia del inventario.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{pool: pool, tx: NewTxRunner(pool)}
}

// Load lee las cuatro colecciones ordenadas por position.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.Snapshot, error) {
	snap := &entity.Snapshot{}
	var err error
	if snap.Users, err = loadUsers(ctx, r.pool); err != nil {
		return nil, err
	}
	if snap.Categories, err = loadCategories(ctx, r.pool); err != nil {
		return nil, err
	}
	if snap.Items, err = loadItems(ctx, r.pool); err != nil {
		return nil, err
	}
	if snap.Movements, err = loadMovements(ctx, r.pool); err != nil {
		return nil, err
	}
	return snap, nil
}

// Save sincroniza en una transacción las colecciones marcadas: borra las filas que ya no están
// y hace upsert del resto. Los movimientos existentes nunca se actualizan.
func (r *SnapshotRepo) Save(ctx context.Context, snap *entity.Snapshot, changed entity.Changeset) error {
	if !changed.Any() {
		return nil
	}
	return r.tx.Run(ctx, func(q Querier) error {
		if changed.Users {
			if err := syncUsers(ctx, q, snap.Users); err != nil {
				return err
			}
		}
		if changed.Categories {
			if err := syncCategories(ctx, q, snap.Categories); err != nil {
				return err
			}
		}
		if changed.Items {
			if err := syncItems(ctx, q, snap.Items); err != nil {
				return err
			}
		}
		if changed.Movements {
			if err := appendMovements(ctx, q, snap.Movements); err != nil {
				return err
			}
		}
		return nil
	})
}

func syncUsers(ctx context.Context, q Querier, users []entity.User) error {
	ids := make([]string, len(users))
	b := &pgx.Batch{}
	for i, u := range users {
		ids[i] = u.ID
		b.Queue(`
			INSERT INTO users (id, username, role, credential_hash, position, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET
				username = EXCLUDED.username, role = EXCLUDED.role, credential_hash = EXCLUDED.credential_hash,
				position = EXCLUDED.position, updated_at = EXCLUDED.updated_at`,
			u.ID, u.Username, string(u.Role), u.CredentialHash, i, u.CreatedAt, u.UpdatedAt)
	}
	if _, err := q.Exec(ctx, `DELETE FROM users WHERE NOT (id = ANY($1))`, ids); err != nil {
		return fmt.Errorf("delete users: %w", err)
	}
	if err := sendBatch(ctx, q, b); err != nil {
		return fmt.Errorf("upsert users: %w", mapUniqueViolation(err))
	}
	return nil
}

func syncCategories(ctx context.Context, q Querier, cats []entity.Category) error {
	ids := make([]string, len(cats))
	b := &pgx.Batch{}
	for i, c := range cats {
		ids[i] = c.ID
		b.Queue(`
			INSERT INTO categories (id, name, position, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name, position = EXCLUDED.position, updated_at = EXCLUDED.updated_at`,
			c.ID, c.Name, i, c.CreatedAt, c.UpdatedAt)
	}
	if _, err := q.Exec(ctx, `DELETE FROM categories WHERE NOT (id = ANY($1))`, ids); err != nil {
		return fmt.Errorf("delete categories: %w", err)
	}
	if err := sendBatch(ctx, q, b); err != nil {
		return fmt.Errorf("upsert categories: %w", err)
	}
	return nil
}

func syncItems(ctx context.Context, q Querier, items []entity.Item) error {
	ids := make([]string, len(items))
	b := &pgx.Batch{}
	for i, it := range items {
		ids[i] = it.ID
		b.Queue(`
			INSERT INTO items (id, name, category_id, description, position, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name, category_id = EXCLUDED.category_id, description = EXCLUDED.description,
				position = EXCLUDED.position, updated_at = EXCLUDED.updated_at`,
			it.ID, it.Name, it.CategoryID, it.Description, i, it.CreatedAt, it.UpdatedAt)
	}
	if _, err := q.Exec(ctx, `DELETE FROM items WHERE NOT (id = ANY($1))`, ids); err != nil {
		return fmt.Errorf("delete items: %w", err)
	}
	if err := sendBatch(ctx, q, b); err != nil {
		return fmt.Errorf("upsert items: %w", err)
	}
	return nil
}

// appendMovements inserta desde el conteo guardado en adelante; el libro guardado es prefijo del libro en memoria.
func appendMovements(ctx context.Context, q Querier, movements []entity.StockMovement) error {
	var stored int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_movements`).Scan(&stored); err != nil {
		return fmt.Errorf("count movements: %w", err)
	}
	if stored >= len(movements) {
		return nil
	}
	b := &pgx.Batch{}
	for i := stored; i < len(movements); i++ {
		m := movements[i]
		b.Queue(`
			INSERT INTO stock_movements
				(id, item_id, type, quantity, date, notes, supplier, reason, created_by, created_at, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (id) DO NOTHING`,
			m.ID, m.ItemID, string(m.Type), m.Quantity, m.Date, m.Notes, m.Supplier, m.Reason, m.CreatedBy, m.CreatedAt, i)
	}
	if err := sendBatch(ctx, q, b); err != nil {
		return fmt.Errorf("insert movements: %w", err)
	}
	return nil
}

func sendBatch(ctx context.Context, q Querier, b *pgx.Batch) error {
	if b.Len() == 0 {
		return nil
	}
	br := q.SendBatch(ctx, b)
	for i := 0; i < b.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return err
		}
	}
	return br.Close()
}

func loadUsers(ctx context.Context, q Querier) ([]entity.User, error) {
	rows, err := q.Query(ctx, `
		SELECT id, username, role, credential_hash, created_at, updated_at
		FROM users ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []entity.User
	for rows.Next() {
		var u entity.User
		var role string
		if err := rows.Scan(&u.ID, &u.Username, &role, &u.CredentialHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Role = entity.Role(role)
		out = append(out, u)
	}
	return out, rows.Err()
}

func loadCategories(ctx context.Context, q Querier) ([]entity.Category, error) {
	rows, err := q.Query(ctx, `SELECT id, name, created_at, updated_at FROM categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func loadItems(ctx context.Context, q Querier) ([]entity.Item, error) {
	rows, err := q.Query(ctx, `
		SELECT id, name, category_id, description, created_at, updated_at FROM items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var out []entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.CategoryID, &it.Description, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func loadMovements(ctx context.Context, q Querier) ([]entity.StockMovement, error) {
	rows, err := q.Query(ctx, `
		SELECT id, item_id, type, quantity, date, notes, supplier, reason, created_by, created_at
		FROM stock_movements ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var out []entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var typ string
		if err := rows.Scan(&m.ID, &m.ItemID, &typ, &m.Quantity, &m.Date, &m.Notes, &m.Supplier, &m.Reason, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Type = entity.MovementType(typ)
		out = append(out, m)
	}
	return out, rows.Err()
}
