package state

import (
	"encoding/json" // JSON encoding and decoding of the state file
	"os"
	"time"

	"setup-devenv/internal/logger"
)

// FontState represents a font archive that was downloaded and extracted.
// It stores the download URL used and the list of files placed into the
// font directory, so `status` can report them and a future cleanup knows
// what to remove.
type FontState struct {
	URL   string   `json:"url"`   // Download URL used
	Files []string `json:"files"` // Extracted font file paths
}

// State holds the entire saved state for the bootstrapper. It is pure
// bookkeeping: steps are gated by filesystem existence checks, never by
// this file, so a deleted state file only loses the `status` report.
type State struct {
	Fonts map[string]FontState `json:"fonts"` // Map from font name to its FontState
	Steps map[string]string    `json:"steps"` // Map from step name to completion timestamp (RFC3339)
}

// MarkStep records the completion time of a named step.
func (s *State) MarkStep(name string) {
	s.Steps[name] = time.Now().UTC().Format(time.RFC3339)
}

// Load loads the saved state from a JSON file at the given path.
// If the file does not exist or cannot be read, it returns a new empty
// State. It ensures the maps are non-nil to prevent nil map writes.
func Load(path string) *State {
	file, err := os.ReadFile(path)
	if err != nil {
		// File missing or unreadable: start from an empty initialized state
		return &State{
			Fonts: make(map[string]FontState),
			Steps: make(map[string]string),
		}
	}

	var st State
	_ = json.Unmarshal(file, &st)

	// Ensure maps are initialized if the JSON contained null for these fields
	if st.Fonts == nil {
		st.Fonts = make(map[string]FontState)
	}
	if st.Steps == nil {
		st.Steps = make(map[string]string)
	}

	return &st
}

// Save writes the given State to a JSON file at the given path,
// pretty-printed for readability. Errors during marshalling or writing are
// logged but not propagated: losing the state file never aborts a run.
func Save(path string, st *State) {
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal state: %v\n", err)
		return
	}

	logger.Debug("[DEBUG] Writing state to %s:\n%s\n", path, string(file))

	if err := os.WriteFile(path, file, 0644); err != nil {
		logger.Error("[ERROR] Failed to write state file %s: %v\n", path, err)
	}
}
