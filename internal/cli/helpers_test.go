package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mmerino90/wellness-tracker/internal/config"
	"github.com/mmerino90/wellness-tracker/internal/logger"
	"github.com/mmerino90/wellness-tracker/internal/service"
	"github.com/mmerino90/wellness-tracker/internal/store"
	"github.com/mmerino90/wellness-tracker/models"
)

// setupTestContext wires the services to a fresh SQLite file and returns a
// Context writing into the returned buffer.
func setupTestContext(t *testing.T) (*Context, *bytes.Buffer) {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.Storage{
		DB: config.DB{
			Path:        filepath.Join(t.TempDir(), "cli_test.db"),
			BusyTimeout: time.Second,
		},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, config.App{
		PasswordHashAlgorithm: "sha256",
		CompletionWindowDays:  30,
	}, models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123"), logger.Nop())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &Context{
		Ctx:      context.Background(),
		Services: services,
		Out:      out,
	}, out
}

// registerAs creates an account and logs ctx in as it.
func registerAs(t *testing.T, ctx *Context, out *bytes.Buffer, username string) {
	t.Helper()

	ctx.Username, ctx.Password = username, "password-"+username
	cmd := &RegisterCmd{Email: username + "@example.com", FirstName: "Test"}
	require.NoError(t, cmd.Run(ctx))
	out.Reset()
}

// loginAs switches the credentials of ctx without touching the store.
func loginAs(ctx *Context, username string) {
	ctx.Username, ctx.Password = username, "password-"+username
	ctx.Ctx = context.Background()
}
