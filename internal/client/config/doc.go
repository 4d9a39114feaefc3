// Package config loads runtime configuration for the user-account CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. USERACCOUNT_SERVER environment variable for the API base URL.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the API (default http://localhost:9000)
//	-t int      request timeout (seconds)
//	-p string   start page
//	-s string   session storage DSN
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "server_base_url": "http://localhost:9000",
//	  "request_timeout": "10s",
//	  "redirect_delay": "500ms",
//	  "toast_duration": "5s",
//	  "session_dsn": ":memory:",
//	  "start_page": "index.html",
//	  "log_level": "info",
//	  "log_backend": "zap"
//	}
package config
