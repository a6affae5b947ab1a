// Package config loads configuration structs from environment variables.
//
// Structs declare `env` and `envDefault` tags; Load parses them after
// loading the default .env file once per process. Used by session.Config and
// any collaborator configuration built on the same convention.
package config
