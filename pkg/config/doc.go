// Package config loads typed configuration from environment variables.
//
// Values are parsed into structs with github.com/caarlos0/env/v11 tags; a
// .env file in the working directory is read first through
// github.com/joho/godotenv when present. Each configuration type is parsed
// once per process and cached, so packages can call Load for the same struct
// independently. Reset clears the cache, which tests use after t.Setenv.
//
// Errors are sentinels joined with the parser error: ErrParsingConfig,
// ErrInvalidConfigType, ErrNilPointer and ErrLoadingEnvFile.
package config
