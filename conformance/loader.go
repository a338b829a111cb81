package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadedScenario pairs a Scenario with the directory its image path is
// relative to, so the runner can resolve Image without the caller
// having to track it separately.
type LoadedScenario struct {
	Dir      string
	Scenario Scenario
}

// LoadAll walks dir for *.yaml manifests and loads every scenario they
// describe.
func LoadAll(dir string) ([]LoadedScenario, error) {
	var loaded []LoadedScenario

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}
		scenarios, err := loadFile(path)
		if err != nil {
			return fmt.Errorf("conformance: %s: %w", path, err)
		}
		for _, s := range scenarios {
			loaded = append(loaded, LoadedScenario{Dir: filepath.Dir(path), Scenario: s})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loaded, nil
}

func loadFile(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sf scenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, err
	}
	return sf.Scenarios, nil
}
