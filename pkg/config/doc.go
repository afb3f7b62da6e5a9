// Package config loads configuration structs from environment variables
// using caarlos0/env struct tags, with optional .env file support for local
// development. Configuration is grouped by concern: each package that needs
// configuration declares its own struct with env tags, and the composition
// root loads them at startup.
//
//	var cfg mailer.Config
//	config.MustLoad(&cfg)
package config
