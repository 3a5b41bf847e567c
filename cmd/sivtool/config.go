package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// keyProfile names one (ctr_key, mac_key) pair, hex-encoded, for the CLI's
// --profile flag. Keeping keys in a config file rather than directly on the
// command line avoids them ending up in shell history.
type keyProfile struct {
	CtrKeyHex string `toml:"ctr_key"`
	MacKeyHex string `toml:"mac_key"`
}

type profileFile struct {
	Profiles map[string]keyProfile `toml:"profiles"`
}

func loadProfile(path, name string) (keyProfile, error) {
	var f profileFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return keyProfile{}, fmt.Errorf("sivtool: reading %s: %w", path, err)
	}

	p, ok := f.Profiles[name]
	if !ok {
		return keyProfile{}, fmt.Errorf("sivtool: no profile named %q in %s", name, path)
	}
	return p, nil
}
