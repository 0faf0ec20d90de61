// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/joho/godotenv, which copies .env files into the process
// environment without overriding variables that are already set, and
// github.com/caarlos0/env/v11, which parses the environment into a struct using
// `env` and `envDefault` tags.
//
// # Usage
//
//	type Config struct {
//		Addr     string        `env:"HTTP_ADDR" envDefault:":8080"`
//		Timeout  time.Duration `env:"HTTP_TIMEOUT" envDefault:"5s"`
//		LogLevel string        `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	cfg, err := config.Load[Config]()            // reads ./.env if present
//	cfg, err := config.Load[Config]("prod.env")  // explicit files must exist
//	cfg := config.MustLoad[Config]()             // panics on error
//
// # Errors
//
// Missing explicit files wrap ErrLoadingEnvFile; parse failures, including
// missing `required` variables, wrap ErrParsingConfig.
package config
