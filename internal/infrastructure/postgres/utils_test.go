package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/internal/domain"
)

func TestMapUniqueViolation(t *testing.T) {
	username := fmt.Errorf("upsert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "ux_users_username"})
	assert.ErrorIs(t, mapUniqueViolation(username), domain.ErrDuplicateUsername)

	pk := &pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"}
	assert.ErrorIs(t, mapUniqueViolation(pk), domain.ErrDuplicateID)

	other := errors.New("conexión cerrada")
	assert.Equal(t, other, mapUniqueViolation(other))
	assert.False(t, isUniqueViolation(other))
}
