package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(FS, dir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		body, err := fs.ReadFile(FS, name)
		require.NoError(t, err)

		text := string(body)
		assert.True(t, strings.Contains(text, "-- +goose Up"), "%s lacks an Up section", name)
		assert.True(t, strings.Contains(text, "-- +goose Down"), "%s lacks a Down section", name)
	}
}

func TestSchemaDeclaresTokenInvariants(t *testing.T) {
	body, err := fs.ReadFile(FS, dir+"/00001_init_schema.sql")
	require.NoError(t, err)
	schema := string(body)

	assert.Contains(t, schema, "CONSTRAINT tokens_kind_digest_key UNIQUE (kind, digest)")
	assert.Contains(t, schema, "CONSTRAINT tokens_single_owner CHECK")
	assert.Contains(t, schema, "REFERENCES users (id) ON DELETE CASCADE")
	assert.Contains(t, schema, "REFERENCES vendors (id) ON DELETE CASCADE")
}

func TestSeedCatalog(t *testing.T) {
	body, err := fs.ReadFile(FS, dir+"/00002_seed_services.sql")
	require.NoError(t, err)

	assert.Equal(t, 5, strings.Count(string(body), "'6 months'"))
}

func TestAccountEventsAreKeyedByEventID(t *testing.T) {
	body, err := fs.ReadFile(FS, dir+"/00003_account_events.sql")
	require.NoError(t, err)
	schema := string(body)

	assert.Contains(t, schema, "event_id UUID PRIMARY KEY")
	assert.Contains(t, schema, "CHECK (account_type IN ('user', 'vendor'))")
}

func TestAuditActorsReferenceTheirOwnTable(t *testing.T) {
	body, err := fs.ReadFile(FS, dir+"/00004_audit_actor_fks.sql")
	require.NoError(t, err)
	schema := string(body)

	for _, table := range []string{"users", "vendors"} {
		for _, column := range []string{"created_by", "updated_by"} {
			assert.Contains(t, schema,
				"FOREIGN KEY ("+column+") REFERENCES "+table+" (id) ON DELETE SET NULL",
				"%s.%s", table, column)
		}
	}
}
