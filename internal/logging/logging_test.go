package logging_test

import (
	"bytes"
	"testing"

	"todo/internal/logging"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"", log.InfoLevel},
		{"loud", log.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestParseFormatter(t *testing.T) {
	assert.Equal(t, log.JSONFormatter, logging.ParseFormatter("json"))
	assert.Equal(t, log.LogfmtFormatter, logging.ParseFormatter("logfmt"))
	assert.Equal(t, log.TextFormatter, logging.ParseFormatter("text"))
	assert.Equal(t, log.TextFormatter, logging.ParseFormatter(""))
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "info", "json")

	logger.Debug("hidden")
	logger.Info("auto-closed overdue tasks", "count", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"auto-closed overdue tasks"`)
	assert.Contains(t, out, `"count":2`)
}
