package cli

import (
	"testing"
)

func TestLoadConfig_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("DIACHECK_MODEL_PATH", "/env/model.yaml")
	t.Setenv("DIACHECK_LOG_LEVEL", "warn")

	modelPath = "/flag/model.yaml"
	logLevel = ""
	t.Cleanup(func() { modelPath, logLevel = "", "" })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.ModelPath != "/flag/model.yaml" {
		t.Errorf("ModelPath = %s, want flag value", cfg.ModelPath)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, want environment value", cfg.LogLevel)
	}
}

func TestFlagName(t *testing.T) {
	if got := flagName("diabetes_pedigree"); got != "diabetes-pedigree" {
		t.Errorf("flagName() = %s, want diabetes-pedigree", got)
	}
}

func TestPredictCommand_RegistersFieldFlags(t *testing.T) {
	for key := range predictInputs {
		if predictCmd.Flags().Lookup(flagName(key)) == nil {
			t.Errorf("missing flag --%s", flagName(key))
		}
	}
	if len(predictInputs) != 8 {
		t.Errorf("expected 8 field flags, got %d", len(predictInputs))
	}
}
