package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.NATSURL != "nats://localhost:4222" {
		t.Errorf("NATSURL = %q", cfg.NATSURL)
	}
	if cfg.ClickHouseDatabase != "jobsignals" {
		t.Errorf("ClickHouseDatabase = %q", cfg.ClickHouseDatabase)
	}
	if cfg.SkillsPath != "config/skills.yml" {
		t.Errorf("SkillsPath = %q", cfg.SkillsPath)
	}
	if len(cfg.Keywords) != 3 || len(cfg.QueryStates) != 3 {
		t.Errorf("unexpected search grid defaults: %v x %v", cfg.Keywords, cfg.QueryStates)
	}
	if cfg.RetentionDays != 10 {
		t.Errorf("RetentionDays = %d", cfg.RetentionDays)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SEARCH_KEYWORDS", "Data Engineer, ML Engineer")
	t.Setenv("SEARCH_STATES", "Washington")
	t.Setenv("POLLING_INTERVAL", "90m")
	t.Setenv("RESULTS_PER_PAGE", "25")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if len(cfg.Keywords) != 2 || cfg.Keywords[0] != "Data Engineer" || cfg.Keywords[1] != "ML Engineer" {
		t.Errorf("Keywords = %v", cfg.Keywords)
	}
	if len(cfg.QueryStates) != 1 || cfg.QueryStates[0] != "Washington" {
		t.Errorf("QueryStates = %v", cfg.QueryStates)
	}
	if cfg.PollingInterval != 90*time.Minute {
		t.Errorf("PollingInterval = %v", cfg.PollingInterval)
	}
	if cfg.ResultsPerPage != 25 {
		t.Errorf("ResultsPerPage = %d", cfg.ResultsPerPage)
	}
}

func TestLoadConfigBadValuesFallBack(t *testing.T) {
	t.Setenv("RESULTS_PER_PAGE", "lots")
	t.Setenv("POLLING_INTERVAL", "soon")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.ResultsPerPage != 50 {
		t.Errorf("ResultsPerPage = %d, want default 50", cfg.ResultsPerPage)
	}
	if cfg.PollingInterval != 6*time.Hour {
		t.Errorf("PollingInterval = %v, want default 6h", cfg.PollingInterval)
	}
}
