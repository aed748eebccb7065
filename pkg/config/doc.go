// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for optional .env files, and offers:
//
//   - Load, which parses the environment into any struct annotated with
//     `env` and `envDefault` tags and caches the result per type.
//   - Parse, the same without the cache, for tests and one-off reads.
//   - LoadFiles, which loads explicit dotenv files before parsing.
//   - MustLoad, which panics on failure for configuration the process cannot
//     start without.
//
// # Architecture
//
// A package-level cache stores one parsed value per configuration type, keyed
// by reflect.Type and guarded by a mutex, so every package asking for the
// same struct sees the same settings. The default .env in the working
// directory is read once, on the first Load; a missing file is not an error.
// Variables already present in the process environment always win over
// dotenv values.
//
// # Usage
//
//	type Config struct {
//		Title       string `env:"STORE_TITLE" envDefault:"Tienda"`
//		MobileLimit int    `env:"SEARCH_MOBILE_LIMIT" envDefault:"4"`
//	}
//
//	func main() {
//		if err := config.LoadFiles("deploy/.env"); err != nil {
//			log.Fatal(err)
//		}
//
//		var cfg Config
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Later calls to config.Load(&cfg) are served from the cache.
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is:
//
//   - ErrParsingConfig: the environment could not be parsed into the struct.
//   - ErrLoadingEnvFile: a dotenv file passed to LoadFiles could not be read.
//   - ErrNilPointer: a nil pointer was passed to Load or Parse.
//
// # Testing
//
// Tests that change the environment with t.Setenv should call Parse, since
// Load returns the first value it cached for the type.
package config
