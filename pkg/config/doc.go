// Package config loads toolkit settings from environment variables into
// typed structs, with optional .env file support for local development.
//
// Each settings type is parsed once per process and served from an in-memory
// cache afterwards, so packages can call Load from anywhere without worrying
// about repeated parsing. Reset clears the cache, which test suites use
// together with t.Setenv to exercise different configurations.
//
// # Usage
//
//	type Settings struct {
//	    WaitTimeout  time.Duration `env:"PAGEKIT_WAIT_TIMEOUT" envDefault:"10s"`
//	    PollInterval time.Duration `env:"PAGEKIT_POLL_INTERVAL" envDefault:"100ms"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//	    // handle error
//	}
//
// # Error Handling
//
// Sentinel errors compare with errors.Is: ErrNilPointer for a nil
// destination and ErrParse when the environment cannot be parsed into the
// struct (joined with the underlying parser error).
//
// # See Also
//
//   - https://github.com/caarlos0/env – environment parser.
//   - https://github.com/joho/godotenv – .env file loader.
package config
