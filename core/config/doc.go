// Package config loads typed configuration structs from environment
// variables, with per-type caching so every package sees the same values
// no matter how many times it loads.
//
// Parsing is delegated to caarlos0/env; a .env file is auto-loaded once
// before the first parse for local development.
//
//	type MongoConfig struct {
//		URL string `env:"MONGODB_URL,required"`
//	}
//
//	var cfg MongoConfig
//	config.MustLoad(&cfg)
package config
