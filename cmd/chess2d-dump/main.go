// chess2d-dump prints the starting position and its legal moves, or
// writes the position as an SVG image. Useful for debugging the rules
// engine without launching the GUI.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/ilyakm/chess2d/internal/export"
	"github.com/ilyakm/chess2d/internal/rules"
)

var svgOut = flag.String("svg", "", "write the position as an SVG file")

func main() {
	flag.Parse()

	state := rules.NewState()

	if *svgOut != "" {
		if err := export.WriteSVGFile(*svgOut, state); err != nil {
			log.Fatal("could not write SVG: ", err)
		}
		log.Printf("Wrote %s", *svgOut)
		return
	}

	fmt.Println(state)
	fmt.Printf("%v to move\n\n", state.ToMove)

	moves := state.LegalMoves()
	origins := make([]rules.Position, 0, len(moves))
	for from := range moves {
		origins = append(origins, from)
	}
	sort.Slice(origins, func(i, j int) bool {
		if origins[i].File != origins[j].File {
			return origins[i].File < origins[j].File
		}
		return origins[i].Rank < origins[j].Rank
	})

	total := 0
	for _, from := range origins {
		dests := make([]string, 0, len(moves[from]))
		for to := range moves[from] {
			dests = append(dests, to.String())
		}
		sort.Strings(dests)
		total += len(dests)
		fmt.Printf("%s %v: %v\n", state.Board[from], from, dests)
	}
	fmt.Printf("\n%d legal moves\n", total)
}
