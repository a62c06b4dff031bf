// Comando normalize aplica a normalização de scores a uma lista JSON fora do servidor.
//
// Uso:
//
//	normalize -input results.json -normalizer min_max -min 1 -max 4 -factor 0.6
//	cat results.json | normalize -explain
//
// A entrada é um array de {"id", "score"} ordenado por score decrescente.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/prefeitura-rio/app-busca-rescore/internal/config"
	"github.com/prefeitura-rio/app-busca-rescore/internal/logger"
	"github.com/prefeitura-rio/app-busca-rescore/internal/models"
	"github.com/prefeitura-rio/app-busca-rescore/internal/search"
)

func main() {
	cfg := config.LoadConfig()
	log := logger.New(cfg.LogLevel, false)

	if err := run(os.Args[1:], os.Stdin, os.Stdout, cfg, log); err != nil {
		fmt.Fprintf(os.Stderr, "normalize: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	input      string
	window     int
	explain    bool
	scoresOnly bool
	pretty     bool
	params     models.NormalizationParams
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	fs.SetOutput(output)

	opts := &options{}
	fs.StringVar(&opts.input, "input", "", "Arquivo JSON de entrada (default: stdin)")
	fs.IntVar(&opts.window, "window", 0, "Resultados do topo a normalizar (0 = todos)")
	fs.BoolVar(&opts.explain, "explain", false, "Imprime a explicação do score final")
	fs.BoolVar(&opts.scoresOnly, "scores-only", false, "Imprime apenas os scores")
	fs.BoolVar(&opts.pretty, "pretty", false, "JSON indentado")

	normalizer := fs.String("normalizer", "", "min_max ou z_score")
	minScore := fs.Float64("min", 0, "Limite inferior (min_max)")
	maxScore := fs.Float64("max", 0, "Limite superior (min_max)")
	factor := fs.Float64("factor", 0, "Fator pós-normalização")
	factorMode := fs.String("factor-mode", "", "sum, multiply ou increase_by_percent")
	onScoreSame := fs.String("on-score-same", "", "avg, min ou max (min_max)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Só flags informadas sobrescrevem os defaults
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "normalizer":
			opts.params.NormalizerType = normalizer
		case "min":
			opts.params.MinScore = float32Ptr(*minScore)
		case "max":
			opts.params.MaxScore = float32Ptr(*maxScore)
		case "factor":
			opts.params.Factor = float32Ptr(*factor)
		case "factor-mode":
			opts.params.FactorMode = factorMode
		case "on-score-same":
			opts.params.OnScoreSame = onScoreSame
		}
	})

	if opts.window < 0 {
		return nil, fmt.Errorf("window deve ser >= 0: %d", opts.window)
	}

	return opts, nil
}

func run(args []string, stdin io.Reader, stdout io.Writer, cfg *config.Config, log *slog.Logger) error {
	opts, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}

	normCfg := opts.params.ToConfig(cfg.Rescore.Defaults)

	encoder := json.NewEncoder(stdout)
	if opts.pretty {
		encoder.SetIndent("", "  ")
	}

	if opts.explain {
		return encoder.Encode(search.Explain(normCfg))
	}

	results, err := readResults(opts.input, stdin)
	if err != nil {
		return err
	}

	rescorer := search.NewRescorer(cfg.Rescore.MaxWindowSize, log)
	results, err = rescorer.Rescore(context.Background(), results, opts.window, normCfg)
	if err != nil {
		return err
	}

	if opts.scoresOnly {
		return encoder.Encode(results.Scores())
	}
	return encoder.Encode(results)
}

func readResults(path string, stdin io.Reader) (models.RankedResultSet, error) {
	reader := stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("erro ao abrir %s: %w", path, err)
		}
		defer f.Close()
		reader = f
	}

	var results models.RankedResultSet
	if err := json.NewDecoder(reader).Decode(&results); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	validate := validator.New()
	for i, doc := range results {
		if err := validate.Struct(doc); err != nil {
			return nil, fmt.Errorf("resultado %d inválido: %w", i, err)
		}
	}

	return results, nil
}

func float32Ptr(v float64) *float32 {
	f := float32(v)
	return &f
}
