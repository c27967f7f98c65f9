package postgres

import (
	"context"
	"net"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/pkg/config"
)

func TestPoolConfigFor(t *testing.T) {
	cfg := config.DBConfig{Host: "db.interno", Port: 5432, User: "app", DBName: "almacen", SSLMode: "disable"}

	pc, err := poolConfigFor(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(defaultMaxConns), pc.MaxConns)
	assert.Equal(t, "db.interno", pc.ConnConfig.Host)
	assert.NotEqual(t, funcPtr(dialIPv4), funcPtr(pc.ConnConfig.DialFunc), "sin DB_FORCE_IPV4 se usa el dial de pgx")

	cfg.MaxConns = 2
	cfg.ForceIPv4 = true
	pc, err = poolConfigFor(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(2), pc.MaxConns)
	assert.Equal(t, funcPtr(dialIPv4), funcPtr(pc.ConnConfig.DialFunc))

	_, err = poolConfigFor(config.DBConfig{DatabaseURL: "postgres://%zz"})
	assert.Error(t, err)
}

func TestLookupIPv4_Literales(t *testing.T) {
	ctx := context.Background()

	ip, err := lookupIPv4(ctx, net.DefaultResolver, "10.0.0.7")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.7", ip)

	_, err = lookupIPv4(ctx, net.DefaultResolver, "::1")
	assert.Error(t, err)
}

func funcPtr(f interface{}) uintptr {
	return reflect.ValueOf(f).Pointer()
}
