package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/useraccount/internal/flagx"
	"github.com/dmitrijs2005/useraccount/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations go
// through timex.Duration so "500ms" and integer nanoseconds both work.
// Zero values leave the corresponding Config field untouched.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	RedirectDelay  timex.Duration `json:"redirect_delay"`
	ToastDuration  timex.Duration `json:"toast_duration"`
	SessionDSN     string         `json:"session_dsn"`
	StartPage      string         `json:"start_page"`
	LogLevel       string         `json:"log_level"`
	LogBackend     string         `json:"log_backend"`
}

// parseJson overlays cfg with the JSON file named by -c / -config.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.ServerBaseURL, jc.ServerBaseURL)
	setString(&cfg.SessionDSN, jc.SessionDSN)
	setString(&cfg.StartPage, jc.StartPage)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogBackend, jc.LogBackend)

	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RedirectDelay.Duration > 0 {
		cfg.RedirectDelay = jc.RedirectDelay.Duration
	}
	if jc.ToastDuration.Duration > 0 {
		cfg.ToastDuration = jc.ToastDuration.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
