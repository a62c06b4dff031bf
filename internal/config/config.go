// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - METRICS_ENABLED: Expõe /metrics no formato Prometheus (default: true)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita OpenTelemetry (default: false)
//   - TRACING_ENDPOINT: Endpoint OTLP gRPC (default: localhost:4317)
//   - TRACING_SAMPLE_RATIO: Fração de traces amostrados (default: 1.0)
//
// ## Rescore
//   - RESCORE_DEFAULT_NORMALIZER: min_max ou z_score (default: z_score)
//   - RESCORE_DEFAULT_MIN_SCORE: Limite inferior do min_max (default: 1.0)
//   - RESCORE_DEFAULT_MAX_SCORE: Limite superior do min_max (default: 5.0)
//   - RESCORE_DEFAULT_FACTOR: Fator pós-normalização (default: 0.0)
//   - RESCORE_DEFAULT_FACTOR_MODE: sum, multiply, increase_by_percent (default: increase_by_percent)
//   - RESCORE_DEFAULT_ON_SCORE_SAME: avg, min, max (default: avg)
//   - RESCORE_MAX_WINDOW_SIZE: Maior janela aceita por requisição (default: 10000)
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/prefeitura-rio/app-busca-rescore/internal/models"
	"github.com/prefeitura-rio/app-busca-rescore/internal/utils"
)

type Config struct {
	ServerPort     string
	LogLevel       string
	MetricsEnabled bool

	// Tracing configuration
	TracingEnabled     bool
	TracingEndpoint    string
	TracingSampleRatio float64

	// Rescore configuration
	Rescore RescoreConfig
}

// RescoreConfig contém os defaults aplicados às requisições de normalização
type RescoreConfig struct {
	// Defaults usados quando a requisição omite um parâmetro
	Defaults models.NormalizationConfig

	// Maior window_size aceito (default 10000)
	MaxWindowSize int
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	defaults := models.DefaultNormalizationConfig()

	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MetricsEnabled: getEnv("METRICS_ENABLED", "true") == "true",

		TracingEnabled:     getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint:    getEnv("TRACING_ENDPOINT", "localhost:4317"),
		TracingSampleRatio: getEnvFloat("TRACING_SAMPLE_RATIO", 1.0),

		Rescore: RescoreConfig{
			Defaults: models.NormalizationConfig{
				Normalizer:  models.NormalizerType(getEnvIdentifier("RESCORE_DEFAULT_NORMALIZER", string(defaults.Normalizer))),
				MinScore:    float32(getEnvFloat("RESCORE_DEFAULT_MIN_SCORE", float64(defaults.MinScore))),
				MaxScore:    float32(getEnvFloat("RESCORE_DEFAULT_MAX_SCORE", float64(defaults.MaxScore))),
				Factor:      float32(getEnvFloat("RESCORE_DEFAULT_FACTOR", float64(defaults.Factor))),
				FactorMode:  models.FactorMode(getEnvIdentifier("RESCORE_DEFAULT_FACTOR_MODE", string(defaults.FactorMode))),
				OnScoreSame: models.SameScorePolicy(getEnvIdentifier("RESCORE_DEFAULT_ON_SCORE_SAME", string(defaults.OnScoreSame))),
			},
			MaxWindowSize: getEnvInt("RESCORE_MAX_WINDOW_SIZE", 10000),
		},
	}

	cfg.Rescore.Defaults = sanitizeDefaults(cfg.Rescore.Defaults, defaults)

	return cfg
}

// sanitizeDefaults troca identificadores desconhecidos pelos defaults do rescorer
func sanitizeDefaults(cfg, fallback models.NormalizationConfig) models.NormalizationConfig {
	if !cfg.Normalizer.IsValid() {
		slog.Warn("RESCORE_DEFAULT_NORMALIZER inválido, usando default", "value", cfg.Normalizer, "default", fallback.Normalizer)
		cfg.Normalizer = fallback.Normalizer
	}
	if !cfg.FactorMode.IsValid() {
		slog.Warn("RESCORE_DEFAULT_FACTOR_MODE inválido, usando default", "value", cfg.FactorMode, "default", fallback.FactorMode)
		cfg.FactorMode = fallback.FactorMode
	}
	if !cfg.OnScoreSame.IsValid() {
		slog.Warn("RESCORE_DEFAULT_ON_SCORE_SAME inválido, usando default", "value", cfg.OnScoreSame, "default", fallback.OnScoreSame)
		cfg.OnScoreSame = fallback.OnScoreSame
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvIdentifier lê um identificador ignorando caixa, acentos e espaços
func getEnvIdentifier(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return utils.NormalizeIdentifier(value)
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
