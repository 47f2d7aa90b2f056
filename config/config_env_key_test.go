package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"inventory": map[string]any{
			"sweepInterval": "15m",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "INVENTORY_SWEEPINTERVAL", want: "inventory.sweepInterval"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.DefaultListLimit(); got != defaultListLimit {
		t.Fatalf("DefaultListLimit() = %d, want %d", got, defaultListLimit)
	}
	if got := cfg.SweepInterval(); got != defaultSweepInterval {
		t.Fatalf("SweepInterval() = %v, want %v", got, defaultSweepInterval)
	}
	if got := cfg.BcryptCost(); got != defaultBcryptCost {
		t.Fatalf("BcryptCost() = %d, want %d", got, defaultBcryptCost)
	}
}
