package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestZerologLoggerMethods(t *testing.T) {
	assert.NoError(t, os.Setenv("APP_ENV", "dev"))
	defer func() { assert.NoError(t, os.Unsetenv("APP_ENV")) }()
	l := New("test")
	if l == nil {
		t.Fatalf("nil logger")
	}
	l.Debugf("debug %d", 1)
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")
}

func TestLoggerWritesComponentAndRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("planner", &buf, zerolog.InfoLevel)
	l.Debugf("hidden")
	l.Infof("semester %d planned", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"component":"planner"`)
	assert.Contains(t, out, "semester 2 planned")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestNewToWritesToGivenWriter(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	NewTo("planner", &buf).Infof("hello")
	assert.Contains(t, buf.String(), `"component":"planner"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
}
