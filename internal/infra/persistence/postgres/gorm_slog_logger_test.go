package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"authsvc/config"
	"authsvc/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedLogger(cfg *config.Config) (*bytes.Buffer, logger.Interface) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return buf, newGormSlogLogger(base, cfg)
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_TraceFailure(t *testing.T) {
	buf, l := newBufferedLogger(nil)

	l.Trace(context.Background(), time.Now(), sqlFn("INSERT INTO users"), errors.New("boom"))

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	buf, l := newBufferedLogger(nil)

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT * FROM users"), gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	buf, l := newBufferedLogger(nil)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn("SELECT 1"), nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_DebugLogsStatements(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	buf, l := newBufferedLogger(cfg)

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)

	assert.Contains(t, buf.String(), "GORM query")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	buf, l := newBufferedLogger(nil)
	silent := l.LogMode(logger.Silent)

	silent.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), errors.New("boom"))
	silent.Error(context.Background(), "boom %d", 1)

	assert.Empty(t, buf.String())
}
