package codec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/datameta-go/pkg/util/merr"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, DefaultMaxCollectionLen, o.MaxCollectionLen)
	assert.False(t, o.CanonicalSetOrder)
	assert.Equal(t, DateTimeLegacy, o.DateTimeForm)

	// 非正数的上限被忽略。
	assert.Equal(t, DefaultMaxCollectionLen, New(WithMaxCollectionLen(0)).Options().MaxCollectionLen)
}

func TestParseDateTimeForm(t *testing.T) {
	for s, want := range map[string]DateTimeForm{"": DateTimeLegacy, "legacy": DateTimeLegacy, " UTC ": DateTimeUTC} {
		got, err := ParseDateTimeForm(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	_, err := ParseDateTimeForm("local")
	assert.ErrorIs(t, err, merr.ErrParameterInvalid)
	assert.Equal(t, "utc", DateTimeUTC.String())
	assert.Equal(t, "unknown", DateTimeForm(9).String())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "datameta.yaml")
	content := `
codec:
  max_collection_len: 1024
  canonical_set_order: true
  date_time_form: utc
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{MaxCollectionLen: 1024, CanonicalSetOrder: true, DateTimeForm: "utc"}, cfg)

	c, err := NewFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, Options{MaxCollectionLen: 1024, CanonicalSetOrder: true, DateTimeForm: DateTimeUTC}, c.Options())

	jsonPath := filepath.Join(dir, "datameta.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"codec": {"date_time_form": "legacy"}}`), 0o600))
	cfg, err = LoadConfig(jsonPath)
	require.NoError(t, err)
	c, err = NewFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), c.Options())
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datameta.yaml")
	require.NoError(t, os.WriteFile(path, []byte("codec:\n  date_time_form: legacy\n"), 0o600))
	t.Setenv("DATAMETA_CODEC_DATE_TIME_FORM", "utc")
	t.Setenv("DATAMETA_CODEC_MAX_COLLECTION_LEN", "16")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "utc", cfg.DateTimeForm)
	assert.Equal(t, 16, cfg.MaxCollectionLen)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, merr.ErrIoFailed)

	_, err = NewFromConfig(Config{DateTimeForm: "local"})
	assert.ErrorIs(t, err, merr.ErrParameterInvalid)

	_, err = NewFromConfig(Config{MaxCollectionLen: -1})
	assert.ErrorIs(t, err, merr.ErrParameterInvalid)
}
