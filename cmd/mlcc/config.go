package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// solverConfigFile carries optional solver tuning defaults. Zero values
// mean "keep the built-in default"; explicit command-line flags win
// over both.
type solverConfigFile struct {
	Substitution struct {
		Iterations int   `yaml:"iterations"`
		Restarts   int   `yaml:"restarts"`
		Seed       int64 `yaml:"seed"`
	} `yaml:"substitution"`
	Transposition struct {
		MinKeyLen  int   `yaml:"min_keylen"`
		MaxKeyLen  int   `yaml:"max_keylen"`
		Iterations int   `yaml:"iterations"`
		Restarts   int   `yaml:"restarts"`
		Seed       int64 `yaml:"seed"`
	} `yaml:"transposition"`
	Vigenere struct {
		MinKeyLen    int `yaml:"min_keylen"`
		MaxKeyLen    int `yaml:"max_keylen"`
		MaxEnumerate int `yaml:"max_enumerate"`
	} `yaml:"vigenere"`
}

// solverCfg holds the loaded config; nil when --config was not given.
var solverCfg *solverConfigFile

func loadSolverConfig(path string) (*solverConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg solverConfigFile
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
