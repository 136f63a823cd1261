// Package config resolves runtime settings for the Sputnik binaries.
//
// Sources, lowest precedence first: built-in defaults, a .env file, process
// environment, command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Garsondee/Sputnik/internal/leaderboard"
)

const (
	EnvLeaderboardURL = "SPUTNIK_LEADERBOARD_URL"
	EnvStorePath      = "SPUTNIK_STORE"
	EnvSeed           = "SPUTNIK_SEED"
	EnvLogLevel       = "SPUTNIK_LOG_LEVEL"
	EnvAudio          = "SPUTNIK_AUDIO"
	EnvTickRate       = "SPUTNIK_TICK_RATE"
)

type Config struct {
	LeaderboardURL string
	StorePath      string
	Seed           int64 // 0 picks a time-based seed
	LogLevel       string
	Audio          bool
	TickRate       int // simulation steps per second
	EnvFile        string
}

func Default() Config {
	return Config{
		LeaderboardURL: leaderboard.DefaultBaseURL,
		StorePath:      defaultStorePath(),
		LogLevel:       "info",
		Audio:          true,
		TickRate:       60,
		EnvFile:        ".env",
	}
}

func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "sputnik_best.msgpack"
	}
	return filepath.Join(dir, "sputnik", "best.msgpack")
}

// TickInterval is the wall-clock time between simulation steps.
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// EffectiveSeed returns Seed, or a time-derived seed when Seed is 0.
func (c Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Load parses args (without the program name) on top of the environment.
func Load(name string, args []string) (Config, error) {
	return load(name, args, os.LookupEnv, io.Discard)
}

func load(name string, args []string, lookup func(string) (string, bool), usage io.Writer) (Config, error) {
	def := Default()

	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.SetOutput(usage)
	var flagged Config
	fset.StringVar(&flagged.LeaderboardURL, "leaderboard", def.LeaderboardURL, "leaderboard service base URL (env "+EnvLeaderboardURL+")")
	fset.StringVar(&flagged.StorePath, "store", def.StorePath, "best-score file (env "+EnvStorePath+")")
	fset.Int64Var(&flagged.Seed, "seed", def.Seed, "RNG seed, 0 for time-based (env "+EnvSeed+")")
	fset.StringVar(&flagged.LogLevel, "log-level", def.LogLevel, "debug|info|warn|error|none (env "+EnvLogLevel+")")
	fset.BoolVar(&flagged.Audio, "audio", def.Audio, "enable sound (env "+EnvAudio+")")
	fset.IntVar(&flagged.TickRate, "tick-rate", def.TickRate, "simulation steps per second (env "+EnvTickRate+")")
	fset.StringVar(&flagged.EnvFile, "env-file", def.EnvFile, "dotenv file to read, empty to skip")
	if err := fset.Parse(args); err != nil {
		return def, err
	}

	set := map[string]bool{}
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := def
	cfg.EnvFile = flagged.EnvFile

	// .env values sit below the real environment.
	fileVals := map[string]string{}
	if cfg.EnvFile != "" {
		vals, err := godotenv.Read(cfg.EnvFile)
		switch {
		case err == nil:
			fileVals = vals
		case errors.Is(err, fs.ErrNotExist) && !set["env-file"]:
		default:
			return cfg, fmt.Errorf("read %s: %w", cfg.EnvFile, err)
		}
	}
	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	}

	if v, ok := get(EnvLeaderboardURL); ok {
		cfg.LeaderboardURL = v
	}
	if v, ok := get(EnvStorePath); ok {
		cfg.StorePath = v
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := get(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = n
	}
	if v, ok := get(EnvAudio); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvAudio, err)
		}
		cfg.Audio = b
	}
	if v, ok := get(EnvTickRate); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvTickRate, err)
		}
		cfg.TickRate = n
	}

	if set["leaderboard"] {
		cfg.LeaderboardURL = flagged.LeaderboardURL
	}
	if set["store"] {
		cfg.StorePath = flagged.StorePath
	}
	if set["seed"] {
		cfg.Seed = flagged.Seed
	}
	if set["log-level"] {
		cfg.LogLevel = flagged.LogLevel
	}
	if set["audio"] {
		cfg.Audio = flagged.Audio
	}
	if set["tick-rate"] {
		cfg.TickRate = flagged.TickRate
	}

	if cfg.TickRate <= 0 {
		return cfg, fmt.Errorf("tick rate must be > 0, got %d", cfg.TickRate)
	}
	return cfg, nil
}
