package config

import (
	"os"
	"testing"
	"time"

	"bridge-server/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("BRIDGE_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("BRIDGE_GAME_SEED", "42")
	defer clear2()

	a := assert.New(t)
	config.loaded = false
	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.True(cfg.Log.DisableAccessLogs)
	a.Equal([]string{"https://bridge.example.com"}, cfg.CORS.AllowedOrigins)
	a.Equal([]int{1, 2}, cfg.Game.AlwaysVisible)
	a.Equal(8, cfg.Game.RowSize)
	a.Equal(int64(42), cfg.Game.Seed)
	a.Equal(time.Minute*5, cfg.Game.IdleTimeout)

	// ensure that it's only loaded once
	_ = os.Setenv("BRIDGE_GAME_SEED", "43")
	// ensure we aren't using a pointer
	cfg.Game.Seed = 1
	cfg = Instance()
	a.Equal(int64(42), cfg.Game.Seed)

	opts := cfg.GameOptions()
	a.Equal([]int{1, 2}, opts.AlwaysVisible)
	a.Equal(8, opts.RowSize)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("BRIDGE_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal("info", cfg.Log.Level)
	a.False(cfg.Log.DisableAccessLogs)
	a.Equal([]int{2}, cfg.Game.AlwaysVisible)
	a.Equal(13, cfg.Game.RowSize)
	a.Equal(int64(0), cfg.Game.Seed)
	a.Equal(time.Minute*30, cfg.Game.IdleTimeout)
}

func TestLoad_emptyFile(t *testing.T) {
	clear1 := util.SetEnv("BRIDGE_CONFIG_FILE", "testdata/empty.yaml")
	defer clear1()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal("info", cfg.Log.Level)
	a.Equal(13, cfg.Game.RowSize)
}

func TestLoad_envOverride(t *testing.T) {
	clear1 := util.SetEnv("BRIDGE_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()
	clear2 := util.SetEnv("BRIDGE_GAME_ALWAYS_VISIBLE", "3")
	defer clear2()
	clear3 := util.SetEnv("BRIDGE_LOG_LEVEL", "trace")
	defer clear3()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal([]int{3}, cfg.Game.AlwaysVisible)
	a.Equal("trace", cfg.Log.Level)
}

func TestLoad_idleTimeoutEnv(t *testing.T) {
	clear1 := util.SetEnv("BRIDGE_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()
	clear2 := util.SetEnv("BRIDGE_GAME_IDLE_TIMEOUT", "90s")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())
	a.Equal(time.Second*90, Instance().Game.IdleTimeout)
}

func TestLoad_invalidEnv(t *testing.T) {
	clear1 := util.SetEnv("BRIDGE_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()
	clear2 := util.SetEnv("BRIDGE_GAME_ROW_SIZE", "many")
	defer clear2()

	assert.Error(t, Load())
}
