// Package config loads typed configuration structs from environment
// variables.
//
// Each subsystem declares its own Config struct with `env` tags and loads it
// once at startup. A .env file in the working directory is read before the
// first parse, which keeps local development friction-free without affecting
// deployments that inject real environment variables.
//
// # Usage
//
//	type HTTPConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg HTTPConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// MustLoad panics on failure and is intended for configuration the process
// cannot start without.
package config
