package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/milindvishnoi/FSND/ctxutil"
	"github.com/milindvishnoi/FSND/logging/logger/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonLogger(buf *bytes.Buffer) *Logger {
	l := NewWriter(buf, logrus.DebugLevel)
	l.SetFormatter(&logrus.JSONFormatter{})
	return l
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var m map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &m))
	return m
}

func TestInfo_KeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf)
	l.SetVersion("1.2.3")

	ctx := ctxutil.SetTraceID(context.Background(), "trace-1")
	l.Info(ctx, "question created", "id", 7, "error", errors.New("none"))

	entry := lastEntry(t, &buf)
	assert.Equal(t, "question created", entry["msg"])
	assert.EqualValues(t, 7, entry["id"])
	assert.Equal(t, "none", entry["error"])
	assert.Equal(t, "trace-1", entry["trace_id"])
	assert.Equal(t, "1.2.3", entry["version"])
}

func TestInfo_PlainArgs(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf)

	l.Info(context.Background(), "server", "started")
	assert.Equal(t, "serverstarted", lastEntry(t, &buf)["msg"])
}

func TestMaskHook(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf)
	l.AddHook(NewMaskHook([]string{"authorization", "token"}))

	l.Warn(context.Background(), "auth failed", "authorization", "Bearer abc.def", "header", "Bearer xyz", "path", "/drinks")

	entry := lastEntry(t, &buf)
	assert.Equal(t, mask, entry["authorization"])
	assert.Equal(t, "Bearer "+mask, entry["header"])
	assert.Equal(t, "/drinks", entry["path"])
}

func TestSplitArgs(t *testing.T) {
	fields, rest := splitArgs([]any{"msg", "k", 1})
	assert.Equal(t, logrus.Fields{"k": 1}, fields)
	assert.Equal(t, []any{"msg"}, rest)

	fields, rest = splitArgs([]any{"msg", 1, 2})
	assert.Nil(t, fields)
	assert.Len(t, rest, 3)
}

func TestReconfigure_AppliesLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, logrus.InfoLevel)

	l.Reconfigure(&config.Config{Level: int(logrus.WarnLevel), Format: "json", SensitiveFields: []string{"password"}})
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())

	l.Info(context.Background(), "dropped")
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "login", "password", "hunter2")
	entry := lastEntry(t, &buf)
	assert.Equal(t, "login", entry["msg"])
	assert.NotEqual(t, "hunter2", entry["password"])

	l.Reconfigure(nil)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
}
