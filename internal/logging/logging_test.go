package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	lg, err := New("warn", "text", &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, lg.Level)

	lg.Info("hidden")
	lg.WithField("robot", "a").Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown robot=a")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	lg, err := New("debug", "json", &buf)
	require.NoError(t, err)

	lg.Debug("step")
	assert.Contains(t, buf.String(), `"msg":"step"`)
}

func TestNewErrors(t *testing.T) {
	_, err := New("loud", "text", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = New("info", "xml", &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown log format")
}
