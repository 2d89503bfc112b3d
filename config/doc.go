// Package config provides configuration loading and validation for
// responder.
//
// Configuration is read with Viper from an optional YAML file plus
// environment variables, with .env files loaded via godotenv.
// Environment variables use underscore-separated paths (e.g.
// SERVER_PORT, LOGGING_LEVEL).
package config
