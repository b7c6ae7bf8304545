// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - StoreType: "memory" or "sqlite" (default: memory)
  - IPHashSalt: Secret for hashing voter IPs (optional; empty disables hashing)
  - AllowedOrigins: CORS origins (default: *)
  - RefreshInterval: Results refresh hint sent to clients (default: 5s)
  - LogLevel: debug, info, warn or error (default: info)

# Sources

Settings are resolved in this order, later sources winning:

 1. Dotenv file (-env, default ".env"; skipped if missing). Variables
    already present in the process environment are not overwritten.
 2. Environment variables, read with cleanenv
 3. CLI flags

# CLI Flags

	-p         Server port
	-s         Store type
	--ip-salt  IP hash salt
	-env       Dotenv file path

# Environment Variables

	PORT              → -p
	STORE_TYPE        → -s
	IP_HASH_SALT      → --ip-salt
	ALLOWED_ORIGINS   (comma separated)
	REFRESH_INTERVAL  (Go duration, at least 1s)
	LOG_LEVEL

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	st, err := store.New(cfg.StoreType)
	// ...
	handler := router.NewRouter(st, cfg)
*/
package cliparse
