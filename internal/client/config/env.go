package config

import "os"

// EnvServerBaseURL overrides the API base URL, e.g. when the server is
// reached through a different host in containers.
const EnvServerBaseURL = "USERACCOUNT_SERVER"

func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvServerBaseURL); ok && v != "" {
		cfg.ServerBaseURL = v
	}
}
