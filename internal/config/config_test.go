package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("env", EnvLocal, "")
	fs.String("questions", "", "")
	fs.String("log-file", "", "")
	fs.Bool("no-chime", false, "")
	fs.Uint64("seed", 0, "")
	return fs
}

// isolated keeps Load away from the developer's real .env and config dirs.
func isolated(t *testing.T) []Option {
	t.Helper()
	return []Option{WithDotenv(), WithConfigDirs(t.TempDir())}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, isolated(t)...)
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Empty(t, cfg.QuestionsFile)
	assert.Empty(t, cfg.LogFile)
	assert.False(t, cfg.NoChime)
	assert.Zero(t, cfg.Seed)
	assert.False(t, cfg.Production())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HAPPYMETER_ENV", "production")
	t.Setenv("HAPPYMETER_QUESTIONS", "/tmp/q.yaml")
	t.Setenv("HAPPYMETER_NO_CHIME", "true")
	t.Setenv("HAPPYMETER_SEED", "42")

	cfg, err := Load(testFlags(), isolated(t)...)
	require.NoError(t, err)

	assert.True(t, cfg.Production())
	assert.Equal(t, "/tmp/q.yaml", cfg.QuestionsFile)
	assert.True(t, cfg.NoChime)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestLoad_FlagsWinOverEnv(t *testing.T) {
	t.Setenv("HAPPYMETER_LOG_FILE", "/tmp/env.log")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--log-file", "/tmp/flag.log", "--seed", "7"}))

	cfg, err := Load(fs, isolated(t)...)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/flag.log", cfg.LogFile)
	assert.Equal(t, uint64(7), cfg.Seed)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("questions: ./mine.json\nno_chime: true\n"), 0o644))

	cfg, err := Load(nil, WithDotenv(), WithConfigDirs(dir))
	require.NoError(t, err)

	assert.Equal(t, "./mine.json", cfg.QuestionsFile)
	assert.True(t, cfg.NoChime)
}

func TestLoad_Dotenv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("HAPPYMETER_SEED=99\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("HAPPYMETER_SEED") })

	cfg, err := Load(nil, WithDotenv(envFile), WithConfigDirs(t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, uint64(99), cfg.Seed)
}

func TestLoad_MissingDotenvIgnored(t *testing.T) {
	_, err := Load(nil, WithDotenv(filepath.Join(t.TempDir(), "nope.env")), WithConfigDirs(t.TempDir()))
	assert.NoError(t, err)
}

func TestLoad_UnknownEnv(t *testing.T) {
	t.Setenv("HAPPYMETER_ENV", "staging")

	_, err := Load(nil, isolated(t)...)
	assert.ErrorIs(t, err, ErrUnknownEnv)
}
