package seed_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/seed"
)

var opts = seed.Options{Now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), BcryptCost: bcrypt.MinCost}

func TestLoad_SemillaEmbebida(t *testing.T) {
	snap, err := seed.Load("", opts)
	require.NoError(t, err)

	require.Len(t, snap.Users, 2)
	assert.Equal(t, "admin001", snap.Users[0].ID)
	assert.Equal(t, entity.RoleAdmin, snap.Users[0].Role)
	assert.Equal(t, entity.RoleUser, snap.Users[1].Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(snap.Users[0].CredentialHash), []byte("password123")))

	assert.Len(t, snap.Categories, 3)
	require.Len(t, snap.Items, 3)
	assert.Equal(t, "cat002", snap.Items[2].CategoryID)
	assert.Equal(t, "Dell XPS 15", snap.Items[2].Description)
	assert.Empty(t, snap.Movements)
}

func TestLoad_Archivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[categories]]
id = "c1"
name = "Bodega"
`), 0o600))

	snap, err := seed.Load(path, opts)
	require.NoError(t, err)
	assert.Empty(t, snap.Users)
	require.Len(t, snap.Categories, 1)
	assert.Equal(t, "Bodega", snap.Categories[0].Name)

	_, err = seed.Load(filepath.Join(t.TempDir(), "no-existe.toml"), opts)
	assert.Error(t, err)
}

func TestParse_Errores(t *testing.T) {
	_, err := seed.Parse(`[[users]]
id = "u1"
apodo = "x"`)
	assert.Error(t, err, "clave desconocida")

	f, err := seed.Parse(`[[users]]
id = "u1"
username = "u"
role = "Root"
password = "p"`)
	require.NoError(t, err)
	_, err = f.Snapshot(opts)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	f, err = seed.Parse(`[[categories]]
id = "c1"
name = "  "`)
	require.NoError(t, err)
	_, err = f.Snapshot(opts)
	assert.ErrorIs(t, err, domain.ErrEmptyName)
}
