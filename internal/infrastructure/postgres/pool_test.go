package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-api/pkg/config"
)

func TestApplyPoolSettings(t *testing.T) {
	cfg := config.DBConfig{Host: "localhost", Port: 5432, User: "u", DBName: "d", SSLMode: "disable", MaxConns: 8}
	pc, err := pgxpool.ParseConfig(cfg.ConnectionString())
	require.NoError(t, err)

	applyPoolSettings(pc, cfg)

	assert.Equal(t, int32(8), pc.MaxConns)
	assert.Equal(t, int32(2), pc.MinConns)
	assert.Equal(t, time.Hour, pc.MaxConnLifetime)
	assert.NotNil(t, pc.AfterConnect)
}

func TestApplyPoolSettings_MinNoSuperaMax(t *testing.T) {
	cfg := config.DBConfig{Host: "localhost", Port: 5432, User: "u", DBName: "d", SSLMode: "disable", MaxConns: 1}
	pc, err := pgxpool.ParseConfig(cfg.ConnectionString())
	require.NoError(t, err)

	applyPoolSettings(pc, cfg)

	assert.Equal(t, int32(1), pc.MinConns)
}

func TestNewPool_DSNInvalido(t *testing.T) {
	_, err := NewPool(context.Background(), config.DBConfig{DatabaseURL: "postgres://%zz"})
	assert.Error(t, err)
}
