package cmd

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"unityrand/rand"
)

// loadState reads the four state words from a JSON file written by an
// earlier run (or by any other implementation using the same layout).
func loadState(path string) (rand.State, error) {
	var st rand.State
	data, err := os.ReadFile(path)
	if err != nil {
		return st, errors.Wrap(err, "read state file")
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, errors.Wrapf(err, "parse state file %s", path)
	}
	return st, nil
}

func saveState(path string, st rand.State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode state")
	}
	data = append(data, '\n')
	return errors.Wrapf(os.WriteFile(path, data, 0644), "write state file %s", path)
}
