package config

// MemoryStoragePath selects in-memory storage instead of a database file.
const MemoryStoragePath = ":memory:"

// Config holds runtime settings for the staffkeeper CLI.
//
// Fields:
//   - StoragePath: SQLite file used as local storage, or MemoryStoragePath.
//   - StorageKey: key of the data blob inside local storage.
//   - StorageQuota: byte capacity of local storage; 0 disables the limit.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	StoragePath  string
	StorageKey   string
	StorageQuota int64
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoragePath = "staffkeeper.db"
	c.StorageKey = "ipt_demo_v1"
	c.StorageQuota = 5 << 20
	c.LogLevel = "warn"
}

// InMemory reports whether storage lives only for the process lifetime.
func (c *Config) InMemory() bool {
	return c.StoragePath == MemoryStoragePath
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
