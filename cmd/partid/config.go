package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/tassa-yoniso-manasi-karoto/go-partid"
)

const configRelPath = "partid/config.yaml"

// config mirrors config.yaml. Zero values keep the library defaults.
type config struct {
	Store        string          `yaml:"store"`
	Engine       string          `yaml:"engine"` // auto or dictionary
	WaitTimeout  time.Duration   `yaml:"wait_timeout"`
	PollInterval time.Duration   `yaml:"poll_interval"`
	Sources      []partid.Source `yaml:"sources"`
}

// loadConfig reads path, or the XDG config file when path is empty.
// A missing default file is not an error.
func loadConfig(path string) (config, error) {
	var cfg config
	explicit := path != ""
	if !explicit {
		found, err := xdg.SearchConfigFile(configRelPath)
		if err != nil {
			return cfg, nil
		}
		path = found
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	switch cfg.Engine {
	case "", "auto", "dictionary":
	default:
		return cfg, fmt.Errorf("config: unknown engine %q (want auto or dictionary)", cfg.Engine)
	}
	return cfg, nil
}

func (c config) managerOptions() []partid.Option {
	var opts []partid.Option
	if c.WaitTimeout > 0 {
		opts = append(opts, partid.WithWaitTimeout(c.WaitTimeout))
	}
	if c.PollInterval > 0 {
		opts = append(opts, partid.WithPollInterval(c.PollInterval))
	}
	if len(c.Sources) > 0 {
		opts = append(opts, partid.WithSources(c.Sources...))
	}
	return opts
}

// newEngine opens the user dictionary and, unless disabled, starts loading
// the statistical analyzer.
func (c config) newEngine() (*partid.Engine, error) {
	store, err := partid.NewFileStore(c.Store)
	if err != nil {
		return nil, err
	}
	dict := partid.NewDictionary(store)
	var mgr *partid.Manager
	if c.Engine != "dictionary" {
		mgr = partid.NewManager(c.managerOptions()...)
		mgr.Start()
	}
	return partid.NewEngine(dict, mgr)
}
