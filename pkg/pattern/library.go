package pattern

import (
	"sort"
	"strings"
)

var library = map[string]Pattern{
	// Smallest spaceship; travels diagonally with period 4.
	"glider": MustParse(
		".O.",
		"..O",
		"OOO",
	),
	// Lightweight spaceship.
	"spaceship": MustParse(
		".O..O",
		"O....",
		"O...O",
		".OOOO",
	),
	"rake": MustParse(
		"..O........",
		"...O.......",
		"OO..OO.....",
		"OO..OO.....",
		"...........",
		"...........",
		"..O........",
		"...O.......",
	),
	"reflector": MustParse(
		"........",
		".OO..OO.",
		".OO..OO.",
		"........",
		"........",
		"........",
		"........",
		"........",
	),
	"replicator": MustParse(
		".O.O.",
		"O...O",
		".....",
		"O...O",
		".O.O.",
	),
	"breeder": MustParse(
		"................",
		"................",
		"....OO..........",
		"....OO..........",
		"................",
		"................",
		"........O.......",
		"........O.......",
		"........O.......",
		"........O.......",
		"................",
		"................",
		"..........O.....",
		"..........O.....",
		"..........O.....",
		"..........O.....",
	),
	"train": MustParse(
		"........",
		".OOO....",
		"....OOO.",
		"........",
		"........",
	),
	// Gosper glider gun; emits a glider every 30 generations.
	"gun": MustParse(
		"........................O...........",
		"......................O.O...........",
		"............OO......OO............OO",
		"...........O...O....OO............OO",
		"OO........O.....O...OO..............",
		"OO........O...O.OO....O.O...........",
		"..........O.....O.......O...........",
		"...........O...O....................",
		"............OO......................",
	),
	// Period 3.
	"pulsar": MustParse(
		"..OOO...OOO..",
		".............",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		"..OOO...OOO..",
		".............",
		"..OOO...OOO..",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		".............",
		"..OOO...OOO..",
	),
	// Period 2.
	"clock": MustParse(
		"..O.",
		"O.O.",
		".O.O",
		".O..",
	),
	// Period 2.
	"beacon": MustParse(
		"......",
		".OO...",
		".OO...",
		"...OO.",
		"...OO.",
		"......",
	),
	// Period 2.
	"toad": MustParse(
		"....",
		".OOO",
		"OOO.",
		"....",
	),
}

// Get returns the library pattern called name. Lookup ignores case and a
// leading "--" so command-line style names such as "--glider" resolve.
func Get(name string) (Pattern, error) {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "--"))
	p, ok := library[key]
	if !ok {
		return Pattern{}, &UnknownPatternError{Name: name}
	}
	return p, nil
}

// Names lists the library pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
