package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config configuration struct
type Config struct {
	Level      int    `json:"level" yaml:"level"`
	Format     string `json:"format" yaml:"format"`
	Output     string `json:"output" yaml:"output"`
	OutputFile string `json:"output_file" yaml:"output_file"`
	// SensitiveFields are masked in log fields; matched case-insensitively by substring.
	SensitiveFields []string `json:"sensitive_fields" yaml:"sensitive_fields"`
}

var defaultSensitiveFields = []string{"authorization", "token", "secret", "password"}

// GetConfig returns the logger configuration, or defaults when the section is absent
func GetConfig(v *viper.Viper) *Config {
	if !v.IsSet("logger") {
		return Default()
	}

	cfg := &Config{
		Level:           v.GetInt("logger.level"),
		Format:          strings.ToLower(v.GetString("logger.format")),
		Output:          strings.ToLower(v.GetString("logger.output")),
		OutputFile:      v.GetString("logger.output_file"),
		SensitiveFields: v.GetStringSlice("logger.sensitive_fields"),
	}
	if cfg.Level == 0 {
		cfg.Level = 4
	}
	if len(cfg.SensitiveFields) == 0 {
		cfg.SensitiveFields = defaultSensitiveFields
	}
	return cfg
}

// Default returns info level text logs on stdout
func Default() *Config {
	return &Config{
		Level:           4,
		Format:          "text",
		Output:          "stdout",
		SensitiveFields: defaultSensitiveFields,
	}
}
