package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo implementación del puerto SnapshotRepository sobre SQLite.
type SnapshotRepo struct {
	db *sql.DB
}

// NewSnapshotRepository construye el adaptador sobre una base ya migrada.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// Load lee las cuatro colecciones en su orden de inserción.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.Snapshot, error) {
	snap := &entity.Snapshot{}
	var err error
	if snap.Users, err = r.loadUsers(ctx); err != nil {
		return nil, err
	}
	if snap.Categories, err = r.loadCategories(ctx); err != nil {
		return nil, err
	}
	if snap.Items, err = r.loadItems(ctx); err != nil {
		return nil, err
	}
	if snap.Movements, err = r.loadMovements(ctx); err != nil {
		return nil, err
	}
	return snap, nil
}

// Save reescribe en una transacción las colecciones marcadas. Los movimientos solo se agregan.
func (r *SnapshotRepo) Save(ctx context.Context, snap *entity.Snapshot, changed entity.Changeset) error {
	if !changed.Any() {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if changed.Users {
		if err := replaceUsers(ctx, tx, snap.Users); err != nil {
			return err
		}
	}
	if changed.Categories {
		if err := replaceCategories(ctx, tx, snap.Categories); err != nil {
			return err
		}
	}
	if changed.Items {
		if err := replaceItems(ctx, tx, snap.Items); err != nil {
			return err
		}
	}
	if changed.Movements {
		if err := appendMovements(ctx, tx, snap.Movements); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func replaceUsers(ctx context.Context, tx *sql.Tx, users []entity.User) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("delete users: %w", err)
	}
	for i, u := range users {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO users (id, username, role, credential_hash, position, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			u.ID, u.Username, string(u.Role), u.CredentialHash, i, formatTime(u.CreatedAt), formatTime(u.UpdatedAt))
		if err != nil {
			return fmt.Errorf("insert user %s: %w", u.ID, err)
		}
	}
	return nil
}

func replaceCategories(ctx context.Context, tx *sql.Tx, cats []entity.Category) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("delete categories: %w", err)
	}
	for i, c := range cats {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO categories (id, name, position, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)`,
			c.ID, c.Name, i, formatTime(c.CreatedAt), formatTime(c.UpdatedAt))
		if err != nil {
			return fmt.Errorf("insert category %s: %w", c.ID, err)
		}
	}
	return nil
}

func replaceItems(ctx context.Context, tx *sql.Tx, items []entity.Item) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("delete items: %w", err)
	}
	for i, it := range items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO items (id, name, category_id, description, position, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			it.ID, it.Name, it.CategoryID, it.Description, i, formatTime(it.CreatedAt), formatTime(it.UpdatedAt))
		if err != nil {
			return fmt.Errorf("insert item %s: %w", it.ID, err)
		}
	}
	return nil
}

// appendMovements inserta los movimientos que aún no están; los existentes no se modifican.
// El libro guardado es siempre un prefijo del libro en memoria, así que basta con escribir desde el conteo actual.
func appendMovements(ctx context.Context, tx *sql.Tx, movements []entity.StockMovement) error {
	var stored int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM stock_movements`).Scan(&stored); err != nil {
		return fmt.Errorf("count movements: %w", err)
	}
	for i := stored; i < len(movements); i++ {
		m := movements[i]
		_, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO stock_movements
				(id, item_id, type, quantity, date, notes, supplier, reason, created_by, created_at, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, m.ItemID, string(m.Type), m.Quantity, formatTime(m.Date), m.Notes, m.Supplier, m.Reason,
			m.CreatedBy, formatTime(m.CreatedAt), i)
		if err != nil {
			return fmt.Errorf("insert movement %s: %w", m.ID, err)
		}
	}
	return nil
}

func (r *SnapshotRepo) loadUsers(ctx context.Context) ([]entity.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, username, role, credential_hash, created_at, updated_at
		FROM users ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []entity.User
	for rows.Next() {
		var u entity.User
		var role, created, updated string
		if err := rows.Scan(&u.ID, &u.Username, &role, &u.CredentialHash, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Role = entity.Role(role)
		if u.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		if u.UpdatedAt, err = parseTime(updated); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *SnapshotRepo) loadCategories(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at FROM categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []entity.Category
	for rows.Next() {
		var c entity.Category
		var created, updated string
		if err := rows.Scan(&c.ID, &c.Name, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		if c.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		if c.UpdatedAt, err = parseTime(updated); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SnapshotRepo) loadItems(ctx context.Context) ([]entity.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, category_id, description, created_at, updated_at FROM items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var out []entity.Item
	for rows.Next() {
		var it entity.Item
		var created, updated string
		if err := rows.Scan(&it.ID, &it.Name, &it.CategoryID, &it.Description, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if it.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		if it.UpdatedAt, err = parseTime(updated); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *SnapshotRepo) loadMovements(ctx context.Context) ([]entity.StockMovement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, item_id, type, quantity, date, notes, supplier, reason, created_by, created_at
		FROM stock_movements ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var out []entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var typ, date, created string
		if err := rows.Scan(&m.ID, &m.ItemID, &typ, &m.Quantity, &date, &m.Notes, &m.Supplier, &m.Reason, &m.CreatedBy, &created); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Type = entity.MovementType(typ)
		if m.Date, err = parseTime(date); err != nil {
			return nil, err
		}
		if m.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Las fechas se guardan como texto RFC 3339 en UTC; la fecha cero se guarda vacía.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return t, nil
}
