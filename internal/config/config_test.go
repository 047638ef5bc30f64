package config

import "testing"

func validConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
		Embedding: EmbeddingConfig{
			APIKey: "test-key",
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingDatabaseAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = nil

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_MissingEmbeddingKey(t *testing.T) {
	cfg := validConfig()
	cfg.Embedding.APIKey = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing embedding api key")
	}
}

func TestValidate_CoarseFloorOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.Retrieval.CoarseFloor = 1.5

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for coarse_floor above 1")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Embedding.Provider != "openai" {
		t.Errorf("expected provider openai, got %q", cfg.Embedding.Provider)
	}
	if cfg.Embedding.Model != "text-embedding-3-small" {
		t.Errorf("expected default model, got %q", cfg.Embedding.Model)
	}
	if cfg.Search.MaxResults != 5 {
		t.Errorf("expected MaxResults=5, got %d", cfg.Search.MaxResults)
	}
	if cfg.Notes.MaxNotes != 3 {
		t.Errorf("expected MaxNotes=3, got %d", cfg.Notes.MaxNotes)
	}
	if cfg.Retrieval.TopK != 10 {
		t.Errorf("expected TopK=10, got %d", cfg.Retrieval.TopK)
	}
	if cfg.Retrieval.CoarseFloor != 0.3 {
		t.Errorf("expected CoarseFloor=0.3, got %g", cfg.Retrieval.CoarseFloor)
	}
}

func TestApplyDefaults_PreservesExplicit(t *testing.T) {
	cfg := Config{
		Retrieval: RetrievalConfig{TopK: 25, CoarseFloor: 0.6},
		Notes:     NotesConfig{MaxNotes: 7},
	}
	cfg.ApplyDefaults()

	if cfg.Retrieval.TopK != 25 {
		t.Errorf("expected TopK=25, got %d", cfg.Retrieval.TopK)
	}
	if cfg.Retrieval.CoarseFloor != 0.6 {
		t.Errorf("expected CoarseFloor=0.6, got %g", cfg.Retrieval.CoarseFloor)
	}
	if cfg.Notes.MaxNotes != 7 {
		t.Errorf("expected MaxNotes=7, got %d", cfg.Notes.MaxNotes)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("RECOLLECT_TEST_VAR", "from-env")

	in := []byte("key: ${RECOLLECT_TEST_VAR}\nother: ${RECOLLECT_UNSET:-fallback}\n")
	out := string(expandEnvVars(in))

	if out != "key: from-env\nother: fallback\n" {
		t.Errorf("unexpected expansion: %q", out)
	}
}
