package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListOrderAndSentinel(t *testing.T) {
	names := List()
	expected := []string{Conservative, Realistic, Optimistic, CustomName}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d names, got %d (%v)", len(expected), len(names), names)
	}
	for i, n := range expected {
		if names[i] != n {
			t.Errorf("Position %d: expected %s, got %s", i, n, names[i])
		}
	}
}

func TestLookup(t *testing.T) {
	p, ok := Lookup(Realistic)
	if !ok {
		t.Fatal("Realistic preset missing")
	}
	if p.MarketSharePct != 25 || p.AdjustmentRatePct != 40 || p.SuccessRatePct != 50 || p.AvgBidETH != 0.10 {
		t.Errorf("Realistic preset values wrong: %+v", p)
	}

	// Custom is a sentinel, never a real preset.
	if _, ok := Lookup(CustomName); ok {
		t.Error("Custom should not resolve to a preset")
	}
	if _, ok := Lookup("Moonshot"); ok {
		t.Error("Unknown name should not resolve")
	}
}

func TestLoadOverrides(t *testing.T) {
	defer ResetBuiltins()

	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.hjson")
	content := `{
  // operator-tuned bear case
  presets: [
    { name: "Bear", market_share_pct: 5, adjustment_rate_pct: 20, success_rate_pct: 25, avg_bid_eth: 0.03 }
  ]
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := LoadOverrides(path); err != nil {
		t.Fatalf("LoadOverrides failed: %v", err)
	}

	p, ok := Lookup("Bear")
	if !ok {
		t.Fatal("Override preset not found after load")
	}
	if p.AvgBidETH != 0.03 {
		t.Errorf("Expected avg bid 0.03, got %f", p.AvgBidETH)
	}
	names := List()
	if len(names) != 2 || names[1] != CustomName {
		t.Errorf("Expected [Bear Custom], got %v", names)
	}
}

func TestLoadOverridesMissingFileKeepsBuiltins(t *testing.T) {
	defer ResetBuiltins()

	if err := LoadOverrides(filepath.Join(t.TempDir(), "nope.hjson")); err != nil {
		t.Fatalf("Missing file should not error, got %v", err)
	}
	if _, ok := Lookup(Realistic); !ok {
		t.Error("Built-ins should survive a missing override file")
	}
}

func TestLoadOverridesRejectsReservedName(t *testing.T) {
	defer ResetBuiltins()

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.hjson")
	content := `{ presets: [ { name: "Custom", market_share_pct: 5, adjustment_rate_pct: 5, success_rate_pct: 5, avg_bid_eth: 0.01 } ] }`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := LoadOverrides(path); err == nil {
		t.Error("Expected error for reserved Custom name")
	}
	// Bad file must leave the active table untouched.
	if _, ok := Lookup(Optimistic); !ok {
		t.Error("Built-ins should survive a rejected override file")
	}
}
