// Package config loads typed configuration structs from environment
// variables using github.com/caarlos0/env, with optional .env file support
// through github.com/joho/godotenv.
//
// Nested structs are parsed recursively, so component configs such as
// httpserver.Config and cookie.Config can be embedded in one application
// config and loaded with a single call.
package config
