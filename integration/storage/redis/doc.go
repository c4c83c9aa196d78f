// Package redis provides a Redis-backed credential storage with connection
// validation and health checking.
//
// The package wraps the go-redis client with URL validation, retry logic and
// a ping-verified Connect, then exposes a Storage that satisfies the
// credential.Storage contract. Entry expiration maps directly onto Redis key
// TTLs, so an expired credential is simply gone on the next read; no
// background sweeping is required on the client side.
//
// # Configuration
//
// All configuration is handled through the Config struct with environment
// variable mapping:
//
//	type Config struct {
//		ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
//		RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//		ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
//		KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"cvclient:"`
//	}
//
// Both redis:// and rediss:// (TLS) URL schemes are supported.
//
// # Usage Example
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal("failed to connect to redis:", err)
//	}
//	defer client.Close()
//
//	storage := redis.NewStorage(client, redis.WithKeyPrefix(cfg.KeyPrefix))
//	store := credential.NewStore(storage)
//
// # Error Handling
//
// Connection errors are exposed as sentinels and can be checked with
// errors.Is():
//
//   - ErrEmptyConnectionURL: the connection URL is blank
//   - ErrFailedToParseConnString: the URL is not a valid Redis URL
//   - ErrRedisNotReady: the server did not answer a ping within the retry budget
//   - ErrHealthcheckFailed: a Healthcheck probe failed
//
// Storage operations translate redis.Nil into credential.ErrNotFound and wrap
// every other failure with credential.ErrStorageFailed.
package redis
