// 6 Oct 2026

// Package config holds the settings shared by the tools. Everything
// has a default, so a config file is only needed to change something.
// Files can be yaml or toml, decided by the file name.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/komkom/toml"
)

// Config is the set of tunables. Tags are given for both yaml and json,
// since toml gets to us as json.
type Config struct {
	GeneNames   []string `yaml:"gene_names" json:"gene_names"`     // CDS genes we extract
	PepFile     string   `yaml:"pep_file" json:"pep_file"`         // where translations go
	DescFile    string   `yaml:"desc_file" json:"desc_file"`       // protein / organism table
	Kingdom     string   `yaml:"kingdom" json:"kingdom"`           // lineage if nothing better is known
	Placeholder string   `yaml:"placeholder" json:"placeholder"`   // for missing values in tables
	Width       int      `yaml:"width" json:"width"`               // fasta line width, 0 for one line
	KronaSuffix string   `yaml:"krona_suffix" json:"krona_suffix"` // per sample report names
}

// Default returns the built in settings.
func Default() *Config {
	return &Config{
		GeneNames:   []string{"COX1", "cox1", "COI"},
		PepFile:     "cox1.pep.fasta",
		DescFile:    "gene.describe.tsv",
		Kingdom:     "k__Eukaryota",
		Placeholder: "-",
		Width:       0,
		KronaSuffix: ".krona_report",
	}
}

// IsGene says if name is one of the genes we want. Case matters.
// NCBI use "cox1" and "COX1", but "Cox1" has been seen for something else.
func (c *Config) IsGene(name string) bool {
	for _, g := range c.GeneNames {
		if g == name {
			return true
		}
	}
	return false
}

// AddGenes appends extra gene names, as given on a command line
// separated by commas.
func (c *Config) AddGenes(csv string) {
	for _, g := range strings.Split(csv, ",") {
		if g = strings.TrimSpace(g); g != "" && !c.IsGene(g) {
			c.GeneNames = append(c.GeneNames, g)
		}
	}
}

// decodeYAML reads yaml on top of whatever is already in cfg.
func decodeYAML(rdr io.Reader, cfg *Config) error {
	b, err := io.ReadAll(rdr)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, cfg)
}

// decodeTOML lets the toml package turn the input into json, then
// decodes that.
func decodeTOML(rdr io.Reader, cfg *Config) error {
	return json.NewDecoder(toml.New(rdr)).Decode(cfg)
}

// Load reads a config file. An empty name gives the defaults.
func Load(fname string) (*Config, error) {
	cfg := Default()
	if fname == "" {
		return cfg, nil
	}
	var decode func(io.Reader, *Config) error
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".yaml", ".yml":
		decode = decodeYAML
	case ".toml":
		decode = decodeTOML
	default:
		return nil, fmt.Errorf("config %s: want a .yaml, .yml or .toml file", fname)
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	if err := decode(fp, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", fname, err)
	}
	if len(cfg.GeneNames) == 0 {
		return nil, fmt.Errorf("config %s: gene_names is empty", fname)
	}
	return cfg, nil
}
