// Package config loads typed configuration structs from environment
// variables, with a best-effort .env file autoload for local development.
//
// Struct fields declare their sources via `env` tags:
//
//	type AppConfig struct {
//	    Addr    string `env:"HTTP_ADDR" envDefault:":8080"`
//	    GeoPath string `env:"GEOIP_DB_PATH"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// MustLoad is the panicking variant for main() wiring where a bad
// environment should stop the process.
package config
