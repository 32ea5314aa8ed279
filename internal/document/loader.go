package document

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/TaleSale/Foundry-JSON-reader/internal/lang"
)

// LoadJournal reads and parses a journal JSON file.
func LoadJournal(path string) (*Journal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal file: %w", err)
	}

	var j Journal
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("failed to parse journal JSON: %w", err)
	}

	return &j, nil
}

// LoadWorld reads and parses a world bundle JSON file.
func LoadWorld(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}

	var w World
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse world JSON: %w", err)
	}

	return &w, nil
}

// LoadDictionary reads a language JSON file into a localization dictionary.
func LoadDictionary(path string) (lang.Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read language file: %w", err)
	}

	var dict lang.Dictionary
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("failed to parse language JSON: %w", err)
	}

	return dict, nil
}
