package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/fileaccess/access"
	"github.com/jmgilman/fileaccess/config"
	ferrors "github.com/jmgilman/fileaccess/errors"
	"github.com/jmgilman/fileaccess/records"
)

func memoryConfig() *config.Config {
	cfg := config.Default()
	cfg.Backend = config.BackendMemory
	return cfg
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = "tape"

	_, err := New(cfg, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, ferrors.KindInvalidRequest, ferrors.GetKind(err))
}

func TestSeed(t *testing.T) {
	var out bytes.Buffer
	a, err := New(memoryConfig(), &out, &bytes.Buffer{})
	require.NoError(t, err)

	names, err := a.Seed()
	require.NoError(t, err)
	assert.Len(t, names, 4)

	for _, name := range names {
		ok, err := a.Accessor.Exists(name)
		require.NoError(t, err)
		assert.True(t, ok, name)
	}

	rows, err := records.ReadRows(a.Accessor, "demo_files/data.csv", records.CSV)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age", "City"}, rows[0])

	_, err = records.ReadRows(a.Accessor, "demo_files/data_with_error.csv", records.CSV)
	assert.Equal(t, ferrors.KindMalformedContent, ferrors.GetKind(err))
}

func TestNew_Quiet(t *testing.T) {
	cfg := memoryConfig()
	cfg.Quiet = true

	var out bytes.Buffer
	a, err := New(cfg, &out, &bytes.Buffer{})
	require.NoError(t, err)

	_, err = access.ReadAll(a.Accessor, access.Read("missing.txt"))
	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestNew_LogsToLogWriter(t *testing.T) {
	cfg := memoryConfig()
	cfg.LogLevel = "debug"

	var logs bytes.Buffer
	a, err := New(cfg, &bytes.Buffer{}, &logs)
	require.NoError(t, err)

	require.NoError(t, records.WriteText(a.Accessor, "x.txt", "hi"))
	assert.Contains(t, logs.String(), "backend=memory")
	assert.Contains(t, logs.String(), "path=x.txt")
}
