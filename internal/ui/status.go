package ui

import (
	"fmt"
	"strings"

	"conway/internal/runner"
	"conway/pkg/core"
)

// StatusLine summarizes a run on a single line for terminal front ends.
func StatusLine(stats runner.Stats, paused bool) string {
	state := "running"
	if paused {
		state = "paused"
	}
	return fmt.Sprintf("gen %d  live %d  restarts %d  [%s]", stats.Generation, stats.Live, stats.Restarts, state)
}

// PanelLines lays out the run stats followed by the simulation parameters,
// one entry per line, for the GUI status panel. history marks the cycle
// history overlay as shown.
func PanelLines(stats runner.Stats, params core.ParameterSnapshot, paused, history bool) []string {
	lines := []string{
		fmt.Sprintf("Generation  %d", stats.Generation),
		fmt.Sprintf("Live cells  %d", stats.Live),
		fmt.Sprintf("Restarts    %d", stats.Restarts),
	}
	if paused {
		lines = append(lines, "PAUSED")
	}
	if history {
		lines = append(lines, "HISTORY")
	}
	for _, group := range params.Groups {
		if group.Name == "State" {
			continue
		}
		lines = append(lines, "", strings.ToUpper(group.Name))
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("%-11s %s", p.Label, p.Value))
		}
	}
	lines = append(lines, "", "space pause  n step", "r restart  c clear", "h history  click toggle", "q quit")
	return lines
}
