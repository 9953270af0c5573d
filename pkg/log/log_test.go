package log

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitTestLogger(t *testing.T) {
	lg, props, err := InitTestLogger(t, &Config{Level: "debug"})
	require.NoError(t, err)
	require.NotNil(t, props)
	assert.Equal(t, zapcore.DebugLevel, props.Level.Level())
	lg.Debug("codec test logger ready", FieldModule("log"), FieldOp("init"))
}

func TestInitLoggerBadLevel(t *testing.T) {
	_, _, err := InitTestLogger(t, &Config{Level: "loud"})
	assert.Error(t, err)
}

func TestInitFileLogRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := initFileLog(&FileLogConfig{RootPath: filepath.Dir(dir), Filename: filepath.Base(dir)})
	assert.Error(t, err)

	lj, err := initFileLog(&FileLogConfig{RootPath: dir, Filename: "codec.log"})
	require.NoError(t, err)
	assert.Equal(t, defaultLogMaxSize, lj.MaxSize)
}

func TestReplaceGlobalsAndLevel(t *testing.T) {
	oldL, oldP := L(), _globalP.Load().(*ZapProperties)
	defer ReplaceGlobals(oldL, oldP)

	lg, props, err := InitTestLogger(t, &Config{Level: "info"})
	require.NoError(t, err)
	ReplaceGlobals(lg, props)

	assert.Equal(t, zapcore.InfoLevel, GetLevel())
	SetLevel(zapcore.WarnLevel)
	assert.Equal(t, zapcore.WarnLevel, Level().Level())

	ml := With(FieldComponent("bytesio"))
	assert.False(t, ml.DebugEnabled())
	ml.With(zap.Int("count", 3)).Warn("sub logger works")
}

func TestCtxLogger(t *testing.T) {
	assert.NotNil(t, Ctx(nil)) //nolint:staticcheck

	ctx := WithModule(context.Background(), "codec")
	l1 := Ctx(ctx)
	assert.Same(t, l1, Ctx(ctx))

	ctx = WithFields(ctx, FieldKind("int32"), FieldSize(4))
	assert.NotSame(t, l1, Ctx(ctx))
}
