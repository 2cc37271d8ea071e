package scenario

import (
	"fmt"
	"os"

	hjson "github.com/hjson/hjson-go/v4"
)

// LoadOverrides replaces the built-in preset table from an HJSON file
// (comment-friendly JSON, so operators can annotate their assumptions).
// Expected shape:
//
//	{
//	  presets: [
//	    { name: "Bear", market_share_pct: 5, adjustment_rate_pct: 20,
//	      success_rate_pct: 25, avg_bid_eth: 0.03 }
//	  ]
//	}
//
// A missing file is not an error (built-ins stay active); a malformed file or
// an empty preset list is, and leaves the active table untouched.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read scenario overrides: %w", err)
	}

	var file struct {
		Presets []Preset `json:"presets"`
	}
	if err := hjson.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(file.Presets) == 0 {
		return fmt.Errorf("%s defines no presets", path)
	}
	for i, p := range file.Presets {
		if p.Name == "" {
			return fmt.Errorf("%s: preset %d has no name", path, i)
		}
		if p.Name == CustomName {
			return fmt.Errorf("%s: %q is reserved", path, CustomName)
		}
	}

	mu.Lock()
	presets = file.Presets
	mu.Unlock()

	fmt.Printf("[SCENARIO] Loaded %d preset overrides from %s\n", len(file.Presets), path)
	return nil
}

// ResetBuiltins restores the canonical preset table. Used by tests and by
// operators reloading a bad override file.
func ResetBuiltins() {
	mu.Lock()
	presets = builtinPresets()
	mu.Unlock()
}
