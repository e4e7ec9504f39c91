package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds everything the demo walkthrough needs to know about
// the replica set it is simulating and the gossip fan-out to wire
// between them. Shaped after the teacher's config.Config, but scoped
// down to what a demo of the library actually needs — there is no
// IMAP, auth or storage section because the library underneath has no
// configuration of its own.
type Config struct {
	PrometheusAddr string
	Replicas       []string
	Mesh           bool
}

// LoadConfig reads a TOML file into Config, the same
// toml.DecodeFile call the teacher's config.LoadConfig makes.
func LoadConfig(configFile string) (*Config, error) {
	conf := new(Config)

	if _, err := toml.DecodeFile(configFile, conf); err != nil {
		return nil, fmt.Errorf("failed to read in TOML config file at '%s' with: %v", configFile, err)
	}

	if len(conf.Replicas) == 0 {
		conf.Replicas = []string{"replica-a", "replica-b", "replica-c"}
	}

	return conf, nil
}
