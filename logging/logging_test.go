package logging

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {

	l, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, l)

	l, err = ParseLevel(" WARNING ")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, l)

	l, err = ParseLevel("error")
	require.NoError(t, err)
	assert.Equal(t, LevelError, l)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestSetLevel(t *testing.T) {

	t.Cleanup(func() { SetLevel(LevelInfo) })

	SetLevel(LevelError)
	assert.Equal(t, io.Discard, InfoLog.Writer())
	assert.Equal(t, io.Discard, WarnLog.Writer())
	assert.Equal(t, os.Stderr, ErrLog.Writer())

	SetLevel(LevelWarn)
	assert.Equal(t, io.Discard, InfoLog.Writer())
	assert.Equal(t, os.Stdout, WarnLog.Writer())

	SetLevel(LevelInfo)
	assert.Equal(t, os.Stdout, InfoLog.Writer())
}
