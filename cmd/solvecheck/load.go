package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/solvability/card"
)

// readSnapshot decodes a layout snapshot file.
func readSnapshot(path string) (card.Position, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return card.Position{}, fmt.Errorf("failed to read layout: %w", err)
	}
	var pos card.Position
	if err := json.Unmarshal(data, &pos); err != nil {
		return card.Position{}, fmt.Errorf("failed to decode layout: %w", err)
	}

	return pos, nil
}
