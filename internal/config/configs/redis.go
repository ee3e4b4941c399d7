package configs

// Redis holds configuration for the Redis connection used to read the
// current simulated day. Addr accepts either a redis:// URL or a plain
// host:port pair.
type Redis struct {
	Addr string `env:"ADDRESS" envDefault:"redis://localhost:6379/0"`
}
