package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv      = "SEO_ENGINE_CONFIG"
	openRouterKeyEnv   = "OPENROUTER_API_KEY"
	openRouterModelEnv = "OPENROUTER_MODEL"
	serpEndpointEnv    = "SERP_ENDPOINT"
	serpProviderEnv    = "SERP_PROVIDER"
	exportDirEnv       = "SEO_ENGINE_EXPORT_DIR"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Serp       SerpConfig       `yaml:"serp"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`
	NLP        NLPConfig        `yaml:"nlp"`
	Export     ExportConfig     `yaml:"export"`
	Publisher  string           `yaml:"publisher"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SerpConfig selects and parameterizes the SERP acquisition strategy.
type SerpConfig struct {
	Provider    string `yaml:"provider"`
	Endpoint    string `yaml:"endpoint"`
	ResultCount int    `yaml:"resultCount"`
}

// AnalysisConfig parameterizes extraction and scoring.
type AnalysisConfig struct {
	Scorer      string `yaml:"scorer"`
	MaxFeatures int    `yaml:"maxFeatures"`
	Seed        int64  `yaml:"seed"`
}

// OpenRouterConfig defines how to contact the text-generation API.
type OpenRouterConfig struct {
	APIKey         string  `yaml:"apiKey"`
	Model          string  `yaml:"model"`
	MaxTokens      int     `yaml:"maxTokens"`
	Temperature    float32 `yaml:"temperature"`
	TimeoutSeconds int     `yaml:"timeoutSeconds"`
}

// NLPConfig selects the entity-extraction strategy.
type NLPConfig struct {
	Extractor string `yaml:"extractor"`
	ModelName string `yaml:"modelName"`
	ModelDir  string `yaml:"modelDir"`
}

// ExportConfig describes where finished analyses are written.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides. It never fails; broken files fall back to defaults.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(openRouterKeyEnv); v != "" {
		c.OpenRouter.APIKey = v
	}
	if v := os.Getenv(openRouterModelEnv); v != "" {
		c.OpenRouter.Model = v
	}
	if v := os.Getenv(serpEndpointEnv); v != "" {
		c.Serp.Endpoint = v
	}
	if v := os.Getenv(serpProviderEnv); v != "" {
		c.Serp.Provider = v
	}
	if v := os.Getenv(exportDirEnv); v != "" {
		c.Export.Dir = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Serp.Provider != "" {
		base.Serp.Provider = override.Serp.Provider
	}
	if override.Serp.Endpoint != "" {
		base.Serp.Endpoint = override.Serp.Endpoint
	}
	if override.Serp.ResultCount > 0 {
		base.Serp.ResultCount = override.Serp.ResultCount
	}

	if override.Analysis.Scorer != "" {
		base.Analysis.Scorer = override.Analysis.Scorer
	}
	if override.Analysis.MaxFeatures > 0 {
		base.Analysis.MaxFeatures = override.Analysis.MaxFeatures
	}
	if override.Analysis.Seed != 0 {
		base.Analysis.Seed = override.Analysis.Seed
	}

	if override.OpenRouter.APIKey != "" {
		base.OpenRouter.APIKey = override.OpenRouter.APIKey
	}
	if override.OpenRouter.Model != "" {
		base.OpenRouter.Model = override.OpenRouter.Model
	}
	if override.OpenRouter.MaxTokens > 0 {
		base.OpenRouter.MaxTokens = override.OpenRouter.MaxTokens
	}
	if override.OpenRouter.Temperature > 0 {
		base.OpenRouter.Temperature = override.OpenRouter.Temperature
	}
	if override.OpenRouter.TimeoutSeconds > 0 {
		base.OpenRouter.TimeoutSeconds = override.OpenRouter.TimeoutSeconds
	}

	if override.NLP.Extractor != "" {
		base.NLP.Extractor = override.NLP.Extractor
	}
	if override.NLP.ModelName != "" {
		base.NLP.ModelName = override.NLP.ModelName
	}
	if override.NLP.ModelDir != "" {
		base.NLP.ModelDir = override.NLP.ModelDir
	}

	if override.Export.Dir != "" {
		base.Export.Dir = override.Export.Dir
	}
	if override.Publisher != "" {
		base.Publisher = override.Publisher
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Serp: SerpConfig{
			Provider:    "synthetic",
			Endpoint:    "http://localhost:8888/search",
			ResultCount: 10,
		},
		Analysis: AnalysisConfig{
			Scorer:      "tfidf",
			MaxFeatures: 50,
			Seed:        1,
		},
		OpenRouter: OpenRouterConfig{
			Model:          "openai/gpt-3.5-turbo",
			MaxTokens:      500,
			Temperature:    0.7,
			TimeoutSeconds: 20,
		},
		NLP: NLPConfig{
			Extractor: "keyword",
			ModelName: "KnightsAnalytics/distilbert-NER",
			ModelDir:  "./models",
		},
		Export:    ExportConfig{Dir: "./analyses"},
		Publisher: "SEO Content Generator",
	}
}
