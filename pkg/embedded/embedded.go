package embedded

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed data/chord_examples.json
var ChordExamplesJSON []byte

// ChordExample is one annotated chord symbol used for teaching.
type ChordExample struct {
	Symbol      string `json:"symbol"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// ChordExamples decodes the embedded example list.
func ChordExamples() ([]ChordExample, error) {
	var doc struct {
		Examples []ChordExample `json:"examples"`
	}
	if err := json.Unmarshal(ChordExamplesJSON, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode chord examples: %w", err)
	}
	return doc.Examples, nil
}
