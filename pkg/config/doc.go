// Package config loads environment-based configuration into tagged structs.
//
// Structs declare their variables with env tags:
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
// Load parses process environment variables (plus an optional .env file)
// into the struct and caches the result per struct type, so configuration
// is read once and stays immutable for the process lifetime.
package config
