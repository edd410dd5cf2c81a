// Command bitpacket decodes a hex packet transmission and prints its version
// sum and value.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/calebcase/bitpacket"
	"github.com/calebcase/bitpacket/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "bitpacket: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bitpacket", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "TOML config file")
	input := fs.String("input", "", "transmission file, - for stdin")
	format := fs.String("format", "", "output format: text|json|yaml")
	tree := fs.Bool("tree", false, "include the decoded packet tree")
	logLevel := fs.String("log-level", "", "log level")

	err := fs.Parse(args)
	if err != nil {
		return err
	}

	cfg := defaultConfig()
	if *configPath != "" {
		cfg, err = loadConfig(*configPath, cfg)
		if err != nil {
			return err
		}
	}

	// Flags win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "format":
			cfg.Format = *format
		case "tree":
			cfg.Tree = *tree
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	err = validate(cfg)
	if err != nil {
		return err
	}

	lcfg := logging.DefaultConfig()
	lcfg.Level = cfg.LogLevel
	logging.ApplyEnv(&lcfg)

	log, err := logging.New(stderr, "bitpacket", lcfg)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	r := stdin
	if cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer f.Close()

		r = f
	}

	log.Debug().Str("input", cfg.Input).Str("format", cfg.Format).Msg("reading transmission")

	report, err := bitpacket.NewDecoder(r).Analyze()
	if err != nil {
		log.Error().Err(err).Str("input", cfg.Input).Msg("decode failed")

		return err
	}

	log.Debug().
		Int("packets", report.Packets).
		Int("depth", report.Depth).
		Uint64("version_sum", report.VersionSum).
		Uint64("value", report.Value).
		Msg("decoded transmission")

	if !cfg.Tree {
		report.Tree = nil
	}

	return write(stdout, cfg, report)
}

func write(w io.Writer, cfg config, report *bitpacket.Report) error {
	switch cfg.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		err := enc.Encode(report)
		if err != nil {
			return err
		}

		return enc.Close()
	}

	_, err := fmt.Fprintf(w, "%d\n%d\n", report.VersionSum, report.Value)
	if err != nil {
		return err
	}

	if cfg.Tree {
		_, err = fmt.Fprintln(w, report.Expression)
	}

	return err
}
