package main

import (
	"flag"
	"fmt"

	"github.com/andreyeyy/fen-generator/pkg/fengen"
)

func main() {
	count := flag.Int("n", 1, "how many positions to generate")
	grid := flag.Bool("grid", false, "also print the board grid")
	flag.Parse()

	src := fengen.NewSource()
	for i := 0; i < *count; i++ {
		board := fengen.RandomBoard(src)
		fmt.Println(board.FEN())
		if *grid {
			fmt.Println(board.Grid())
		}
	}
}
