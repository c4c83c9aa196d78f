// Package config provides type-safe environment variable loading with
// per-type caching.
//
// A .env file is autoloaded on first use; parsing uses caarlos0/env struct
// tags. Each configuration type is loaded once per process and cached for
// subsequent calls:
//
//	type APIConfig struct {
//		Endpoint string        `env:"CVHUB_GRAPHQL_URL,required"`
//		Timeout  time.Duration `env:"CVHUB_HTTP_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg APIConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
package config
