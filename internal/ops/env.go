package ops

import (
	"os"

	"github.com/joho/godotenv"
)

// Env holds settings taken from the environment.
type Env struct {
	ConfigPath  string
	Store       string
	StoreDir    string
	PgDSN       string
	ProfileAddr string
}

// LoadEnv reads the .env file (if exists) and the environment.
// Priority: ENV > .env file > defaults
func LoadEnv(envPath string) Env {
	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	return Env{
		ConfigPath:  getEnv("XROAD_CONFIG", "config.json"),
		Store:       os.Getenv("XROAD_STORE"),
		StoreDir:    os.Getenv("XROAD_STORE_DIR"),
		PgDSN:       os.Getenv("XROAD_PG_DSN"),
		ProfileAddr: os.Getenv("XROAD_PROFILE_ADDR"),
	}
}

// Override applies non-empty environment settings on top of the file config.
func (l *Loaded) Override(env Env) error {
	if env.Store != "" || env.StoreDir != "" || env.PgDSN != "" {
		cfg := StoreConfig{Kind: string(l.Store.Kind), Dir: l.Store.Dir, DSN: l.Store.DSN}
		if env.Store != "" {
			cfg.Kind = env.Store
		}
		if env.StoreDir != "" {
			cfg.Dir = env.StoreDir
		}
		if env.PgDSN != "" {
			cfg.DSN = env.PgDSN
		}
		store, err := resolveStore(cfg)
		if err != nil {
			return err
		}
		l.Store = store
	}
	if env.ProfileAddr != "" {
		l.ProfileAddr = env.ProfileAddr
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
