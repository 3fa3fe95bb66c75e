package server

import "testing"

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			"defaults",
			nil,
			Config{Workers: 1},
		},
		{
			"all set",
			map[string]string{EnvLogLevel: "debug", EnvWorkers: "3", EnvMaxDimension: "128"},
			Config{Debug: true, Workers: 3, MaxDimension: 128},
		},
		{
			"other log level",
			map[string]string{EnvLogLevel: "info"},
			Config{Workers: 1},
		},
		{
			"invalid values fall back",
			map[string]string{EnvWorkers: "zero", EnvMaxDimension: "-5"},
			Config{Workers: 1},
		},
		{
			"zero workers rejected",
			map[string]string{EnvWorkers: "0", EnvMaxDimension: "0"},
			Config{Workers: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := loadConfig(func(k string) string { return tt.env[k] })
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv(EnvWorkers, "2")
	t.Setenv(EnvMaxDimension, "64")

	cfg := LoadConfig()
	if cfg.Workers != 2 || cfg.MaxDimension != 64 {
		t.Errorf("got %+v", cfg)
	}
}
