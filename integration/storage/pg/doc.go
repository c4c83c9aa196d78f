// Package pg provides a Postgres-backed credential storage built on pgx
// connection pools.
//
// Connect establishes a pgxpool with retry logic and a ping-verified startup,
// and Storage satisfies the credential.Storage contract on top of a single
// cvclient_credentials table. Entries carry an optional absolute deadline;
// reads filter out expired rows instead of sweeping them, which keeps the
// write path to a plain upsert.
//
// # Configuration
//
// All configuration is handled through the Config struct with environment
// variable mapping:
//
//	type Config struct {
//		ConnectionURL  string        `env:"PG_URL,required"`
//		MaxConns       int32         `env:"PG_MAX_CONNS" envDefault:"4"`
//		MinConns       int32         `env:"PG_MIN_CONNS" envDefault:"0"`
//		RetryAttempts  int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval  time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`
//		ConnectTimeout time.Duration `env:"PG_CONNECT_TIMEOUT" envDefault:"30s"`
//	}
//
// # Usage Example
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal("failed to connect to postgres:", err)
//	}
//	defer pool.Close()
//
//	storage := pg.NewStorage(pool)
//	if err := storage.EnsureSchema(ctx); err != nil {
//		log.Fatal(err)
//	}
//	store := credential.NewStore(storage)
//
// # Error Handling
//
// Connection errors are exposed as sentinels and can be checked with
// errors.Is(). Storage operations translate pgx.ErrNoRows into
// credential.ErrNotFound and wrap every other failure with
// credential.ErrStorageFailed.
package pg
