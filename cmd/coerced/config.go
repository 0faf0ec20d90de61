package main

import "github.com/dmitrymomot/coerce/pkg/httpserver"

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Name      string `env:"APP_NAME" envDefault:"coerced"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	BodyLimit int64  `env:"BODY_LIMIT" envDefault:"1048576"`

	HTTP httpserver.Config
}
