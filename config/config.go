// Package config loads optional conversion defaults from a YAML file and
// the environment. Command-line flags override anything loaded here.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Conversion struct {
		Mode     string   `yaml:"mode"`
		Engine   string   `yaml:"engine"`
		Language []string `yaml:"language"`
		DPI      int      `yaml:"dpi"`
		Workers  int      `yaml:"workers"`
		NoFormat bool     `yaml:"no_format"`
	} `yaml:"conversion"`

	Output struct {
		FontName string `yaml:"font_name"`
		FontSize int    `yaml:"font_size"`
	} `yaml:"output"`

	Cleanup struct {
		RemoveTokens []string `yaml:"remove_tokens"`
	} `yaml:"cleanup"`

	Tools struct {
		PopplerPath string `yaml:"poppler_path"`
		PaddleBin   string `yaml:"paddle_bin"`
		VisionBin   string `yaml:"vision_bin"`
	} `yaml:"tools"`
}

// Load reads a config from path. With an empty path it tries the default
// locations and falls back to built-in defaults when none exist.
func Load(path string) (*Config, error) {
	if path == "" {
		locations := []string{
			"pdfocr2word.yaml",
			"pdfocr2word.yml",
			filepath.Join(os.Getenv("HOME"), ".config/pdfocr2word/config.yaml"),
			"/etc/pdfocr2word/config.yaml",
		}

		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	config := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %v", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error parsing config file: %v", err)
		}
	}

	mergeWithEnv(config)
	applyDefaults(config)

	return config, nil
}

func mergeWithEnv(config *Config) {
	if v := os.Getenv("PDFOCR2WORD_POPPLER_PATH"); v != "" {
		config.Tools.PopplerPath = v
	}
	if v := os.Getenv("PDFOCR2WORD_PADDLE_BIN"); v != "" {
		config.Tools.PaddleBin = v
	}
	if v := os.Getenv("PDFOCR2WORD_VISION_BIN"); v != "" {
		config.Tools.VisionBin = v
	}
}

func applyDefaults(config *Config) {
	if config.Conversion.Mode == "" {
		config.Conversion.Mode = "ocr"
	}
	if config.Conversion.Engine == "" {
		config.Conversion.Engine = "tesseract"
	}
	if config.Conversion.DPI == 0 {
		config.Conversion.DPI = 300
	}
	if config.Conversion.Workers == 0 {
		config.Conversion.Workers = runtime.NumCPU()
	}
	if config.Output.FontName == "" {
		config.Output.FontName = "SimSun"
	}
	if config.Output.FontSize == 0 {
		config.Output.FontSize = 12
	}
}
