package main

import (
	"github.com/cockroachdb/errors"
	"github.com/gostonefire/collections/internal/conf"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
	"io"
	"os"
)

// Config - Settings shared by all demos, read from an optional YAML file and overridden by flags
type Config struct {
	LogLevel      string `yaml:"log_level"`
	TableCapacity int64  `yaml:"table_capacity"`
	PQCapacity    int    `yaml:"pq_capacity"`
	Quit          string `yaml:"quit"`
}

// flagValues - Destinations of the persistent flags
type flagValues struct {
	configFile    string
	logLevel      string
	tableCapacity int64
	pqCapacity    int
	quit          string
}

func defaultConfig() Config {
	return Config{
		LogLevel:      "info",
		TableCapacity: conf.InitialTableCapacity,
		PQCapacity:    conf.PQCapacity,
		Quit:          "quit",
	}
}

// addFlags - Registers the persistent flags with defaults taken from defaultConfig
func addFlags(f *pflag.FlagSet, fv *flagValues) {
	d := defaultConfig()
	f.StringVar(&fv.configFile, "config", "", "YAML file with settings, flags given on the command line take precedence")
	f.StringVar(&fv.logLevel, "log-level", d.LogLevel, "log level written to stderr (debug, info, warn, error)")
	f.Int64Var(&fv.tableCapacity, "table-capacity", d.TableCapacity, "initial number of slots of the hash table demo")
	f.IntVar(&fv.pqCapacity, "pq-capacity", d.PQCapacity, "initial capacity of the priority queue demo")
	f.StringVar(&fv.quit, "quit", d.Quit, "line that ends a demo")
}

// loadConfig - Reads a YAML config file on top of cfg. Unknown keys are rejected, an empty file changes nothing.
func loadConfig(path string, cfg *Config) (err error) {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening config file %s", path)
	}
	defer func() { _ = file.Close() }()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(err, "parsing config file %s", path)
	}

	return nil
}

// resolveConfig - Builds the effective config: defaults, then the config file, then flags explicitly set
func resolveConfig(f *pflag.FlagSet, fv flagValues) (cfg Config, err error) {
	cfg = defaultConfig()

	if fv.configFile != "" {
		if err = loadConfig(fv.configFile, &cfg); err != nil {
			return
		}
	}

	if f.Changed("log-level") {
		cfg.LogLevel = fv.logLevel
	}
	if f.Changed("table-capacity") {
		cfg.TableCapacity = fv.tableCapacity
	}
	if f.Changed("pq-capacity") {
		cfg.PQCapacity = fv.pqCapacity
	}
	if f.Changed("quit") {
		cfg.Quit = fv.quit
	}

	if cfg.TableCapacity < 1 {
		err = errors.Newf("table capacity must be at least 1, got %d", cfg.TableCapacity)
	}

	return
}
