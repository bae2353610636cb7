package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vendorhub/config"
)

func newCapturingLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

	return l.(*gormSlogLogger), &buf
}

func TestGormSlogLogger_ParamsRedactedOutsideDebug(t *testing.T) {
	l, _ := newCapturingLogger(false)
	sql, params := l.ParamsFilter(context.Background(), "SELECT 1 WHERE digest = $1", "abc")
	assert.Equal(t, "SELECT 1 WHERE digest = $1", sql)
	assert.Nil(t, params)

	l, _ = newCapturingLogger(true)
	_, params = l.ParamsFilter(context.Background(), "SELECT 1 WHERE digest = $1", "abc")
	assert.Equal(t, []any{"abc"}, params)
}

func TestGormSlogLogger_TraceSkipsRecordNotFound(t *testing.T) {
	l, buf := newCapturingLogger(false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)
	assert.Zero(t, buf.Len())
}

func TestGormSlogLogger_TraceLogsErrors(t *testing.T) {
	l, buf := newCapturingLogger(false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", -1 }, errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GORM query failed", entry["msg"])
	assert.Equal(t, "boom", entry["error"])
	assert.EqualValues(t, 0, entry["rows"])
}

func TestGormSlogLogger_LogModeClones(t *testing.T) {
	l, _ := newCapturingLogger(false)

	silent := l.LogMode(logger.Silent).(*gormSlogLogger)
	assert.Equal(t, logger.Silent, silent.level)
	assert.Equal(t, logger.Warn, l.level)
}
