package main

import (
	"fmt"
	"net/http"
	"os"

	"fold_valuation/pkg/api/config"
	apicontent "fold_valuation/pkg/api/content"
	"fold_valuation/pkg/api/valuation"
	corecontent "fold_valuation/pkg/core/content"
	"fold_valuation/pkg/core/scenario"
	"fold_valuation/pkg/core/session"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// ServerConfig is config/server.yaml. Every field has a working default so
// the binary runs with no config file at all.
type ServerConfig struct {
	Listen            string `yaml:"listen"`
	ContentDir        string `yaml:"content_dir"`
	ScenarioOverrides string `yaml:"scenario_overrides"`
}

func loadConfig() ServerConfig {
	cfg := ServerConfig{
		Listen:            ":8080",
		ContentDir:        "resources/faq",
		ScenarioOverrides: "config/scenarios.hjson",
	}
	data, err := os.ReadFile("config/server.yaml")
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			fmt.Printf("[WARNING] Bad config/server.yaml, using defaults: %v\n", err)
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Listen = ":" + port
	}
	return cfg
}

func main() {
	// Load environment variables
	godotenv.Load()
	cfg := loadConfig()

	// Optional operator preset overrides
	if err := scenario.LoadOverrides(cfg.ScenarioOverrides); err != nil {
		fmt.Printf("[WARNING] Scenario overrides rejected, keeping built-ins: %v\n", err)
	}

	// Static reference content
	library, err := corecontent.LoadFromDirectory(cfg.ContentDir)
	if err != nil {
		fmt.Printf("[FATAL] Failed to load content library: %v\n", err)
		os.Exit(1)
	}

	// Session registry (in-memory; sessions die with the process)
	sessions := session.NewManager()

	// Valuation session endpoints
	valuationHandler := valuation.NewHandler(sessions)
	http.HandleFunc("/api/valuation/session", valuationHandler.HandleCreateSession)
	http.HandleFunc("/api/valuation/field", valuationHandler.HandleSetField)
	http.HandleFunc("/api/valuation/preset", valuationHandler.HandleApplyPreset)
	http.HandleFunc("/api/valuation/snapshot", valuationHandler.HandleSnapshot)
	http.HandleFunc("/api/valuation/projections", valuationHandler.HandleProjections)

	// Model configuration endpoint
	http.HandleFunc("/api/config", config.HandleConfig)

	// Reference content endpoints
	contentHandler := apicontent.NewHandler(library)
	http.HandleFunc("/api/content/faq", contentHandler.HandleFAQ)

	fmt.Printf("API server starting on %s...\n", cfg.Listen)
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/valuation/session")
	fmt.Println("  - POST /api/valuation/field")
	fmt.Println("  - POST /api/valuation/preset")
	fmt.Println("  - GET  /api/valuation/snapshot")
	fmt.Println("  - GET  /api/valuation/projections")
	fmt.Println("  - GET  /api/content/faq")

	if err := http.ListenAndServe(cfg.Listen, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
