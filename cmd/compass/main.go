// Command compass reads a construction problem (JSON) from a file or
// stdin, runs the solver, and prints the result JSON to stdout.
//
// Usage:
//
//	compass -problem problem.json [-config limits.yaml] [-pretty]
//	        [-max-depth N] [-max-states N] [-wall-ms N]
//
// Limit precedence: built-in defaults < YAML config < flags. Each run is
// tagged with a UUID in the stderr log line so results can be correlated
// with upstream request logs.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/compass/solver"
)

// config mirrors the optional YAML limits file:
//
//	limits:
//	  max_depth: 12
//	  max_states: 200000
//	  wall_ms: 500
type config struct {
	Limits struct {
		MaxDepth  int `yaml:"max_depth"`
		MaxStates int `yaml:"max_states"`
		WallMS    int `yaml:"wall_ms"`
	} `yaml:"limits"`
}

func main() {
	problemPath := flag.String("problem", "-", "problem JSON file, or - for stdin")
	configPath := flag.String("config", "", "optional YAML limits file")
	maxDepth := flag.Int("max-depth", 0, "override max construction depth")
	maxStates := flag.Int("max-states", 0, "override max search states")
	wallMS := flag.Int("wall-ms", 0, "override wall-clock budget in milliseconds")
	pretty := flag.Bool("pretty", false, "indent the result JSON")
	flag.Parse()

	runID := uuid.NewString()
	logger := log.New(os.Stderr, "compass ", log.LstdFlags)

	opts, err := buildOptions(*configPath, *maxDepth, *maxStates, *wallMS)
	if err != nil {
		logger.Fatalf("run %s: %v", runID, err)
	}

	problem, err := readProblem(*problemPath)
	if err != nil {
		logger.Fatalf("run %s: %v", runID, err)
	}

	result, err := solver.Solve(problem, opts...)
	if err != nil {
		logger.Fatalf("run %s: invalid problem: %v", runID, err)
	}

	out, err := encodeResult(result, *pretty)
	if err != nil {
		logger.Fatalf("run %s: %v", runID, err)
	}
	fmt.Println(string(out))

	logger.Printf("run %s: %s in %.2fms (%d states explored)",
		runID, result.Status, result.Performance.CalculationTimeMS, result.Performance.StatesExplored)
}

// buildOptions merges the YAML config and flag overrides into solver options.
func buildOptions(configPath string, maxDepth, maxStates, wallMS int) ([]solver.Option, error) {
	var cfg config
	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Flags win over the config file.
	if maxDepth == 0 {
		maxDepth = cfg.Limits.MaxDepth
	}
	if maxStates == 0 {
		maxStates = cfg.Limits.MaxStates
	}
	if wallMS == 0 {
		wallMS = cfg.Limits.WallMS
	}

	var opts []solver.Option
	if maxDepth > 0 {
		opts = append(opts, solver.WithMaxDepth(maxDepth))
	}
	if maxStates > 0 {
		opts = append(opts, solver.WithMaxStates(maxStates))
	}
	if wallMS > 0 {
		opts = append(opts, solver.WithWallClock(time.Duration(wallMS)*time.Millisecond))
	}

	return opts, nil
}

// readProblem loads and decodes the problem JSON.
func readProblem(path string) (solver.Problem, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return solver.Problem{}, fmt.Errorf("read problem: %w", err)
	}

	var problem solver.Problem
	if err = json.Unmarshal(raw, &problem); err != nil {
		return solver.Problem{}, fmt.Errorf("decode problem: %w", err)
	}

	return problem, nil
}

// encodeResult serializes the result, optionally indented.
func encodeResult(result solver.Result, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(result, "", "  ")
	}

	return json.Marshal(result)
}
