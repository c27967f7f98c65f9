// Package seed lee los datos iniciales (usuarios, categorías, artículos) desde un archivo TOML.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

//go:embed default.toml
var defaultSeed string

// File estructura del archivo de semilla.
type File struct {
	Users      []UserRecord     `toml:"users"`
	Categories []CategoryRecord `toml:"categories"`
	Items      []ItemRecord     `toml:"items"`
}

type UserRecord struct {
	ID       string `toml:"id"`
	Username string `toml:"username"`
	Role     string `toml:"role"`
	Password string `toml:"password"`
}

type CategoryRecord struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

type ItemRecord struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	CategoryID  string `toml:"category_id"`
	Description string `toml:"description"`
}

// Options controla la conversión a entidades.
type Options struct {
	Now        time.Time
	BcryptCost int // 0 usa bcrypt.DefaultCost
}

// Load lee path o, si está vacío, la semilla embebida, y la convierte a un Snapshot.
func Load(path string, opts Options) (*entity.Snapshot, error) {
	data := defaultSeed
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("leer semilla %s: %w", path, err)
		}
		data = string(raw)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return f.Snapshot(opts)
}

// Parse decodifica el TOML sin validar.
func Parse(data string) (*File, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("parsear semilla: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("parsear semilla: claves desconocidas %v", undec)
	}
	return &f, nil
}

// Snapshot valida cada registro con los constructores de entidad y hashea las contraseñas.
func (f *File) Snapshot(opts Options) (*entity.Snapshot, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	snap := &entity.Snapshot{}
	for _, r := range f.Users {
		role, err := entity.ParseRole(r.Role)
		if err != nil {
			return nil, fmt.Errorf("semilla: usuario %q: rol %q: %w", r.ID, r.Role, err)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("semilla: usuario %q: %w", r.ID, err)
		}
		u, err := entity.NewUser(r.ID, r.Username, role, string(hash), now)
		if err != nil {
			return nil, fmt.Errorf("semilla: usuario %q: %w", r.ID, err)
		}
		snap.Users = append(snap.Users, u)
	}
	for _, r := range f.Categories {
		c, err := entity.NewCategory(r.ID, r.Name, now)
		if err != nil {
			return nil, fmt.Errorf("semilla: categoría %q: %w", r.ID, err)
		}
		snap.Categories = append(snap.Categories, c)
	}
	for _, r := range f.Items {
		it, err := entity.NewItem(r.ID, r.Name, r.CategoryID, r.Description, now)
		if err != nil {
			return nil, fmt.Errorf("semilla: artículo %q: %w", r.ID, err)
		}
		snap.Items = append(snap.Items, it)
	}
	return snap, nil
}
