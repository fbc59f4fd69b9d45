package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/healthbridge/telemed-triage/pkg/logging"
)

//go:embed symptoms.json
var defaultSymptomsJSON []byte

//go:embed medicines.json
var defaultMedicinesJSON []byte

// medicinesFile matches the on-disk shape of the medicines catalog.
type medicinesFile struct {
	Conditions []ConditionEntry `json:"conditions"`
}

// Load builds the reference catalog. Paths override the catalogs embedded
// in the binary; a missing or corrupt file is logged and degrades to an
// empty catalog rather than failing the process.
func Load(symptomsPath, medicinesPath string, logger *logging.Logger) *Catalog {
	if logger == nil {
		logger = logging.Default()
	}

	catalog := &Catalog{}

	symptomsRaw, err := readSource(symptomsPath, defaultSymptomsJSON)
	if err != nil {
		logger.Error("failed to read symptoms dataset", "path", symptomsPath, "error", err)
	} else if err := json.Unmarshal(symptomsRaw, &catalog.Symptoms); err != nil {
		logger.Error("failed to parse symptoms dataset", "error", err)
		catalog.Symptoms = nil
	}

	medicinesRaw, err := readSource(medicinesPath, defaultMedicinesJSON)
	if err != nil {
		logger.Error("failed to read medicines dataset", "path", medicinesPath, "error", err)
	} else {
		var file medicinesFile
		if err := json.Unmarshal(medicinesRaw, &file); err != nil {
			logger.Error("failed to parse medicines dataset", "error", err)
		} else {
			catalog.Conditions = file.Conditions
		}
	}

	logger.Info("reference dataset loaded",
		"symptom_entries", len(catalog.Symptoms),
		"condition_entries", len(catalog.Conditions),
	)
	return catalog
}

func readSource(path string, embedded []byte) ([]byte, error) {
	if path == "" {
		return embedded, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	return raw, nil
}
