package main

import (
	"fmt"
	"strings"

	"github.com/xgzlucario/sortarr"
)

func main() {
	words := strings.Fields("the quick brown fox jumps over the lazy dog and the cat")

	for _, name := range []string{"incremental", "doubling", "fibonacci"} {
		fmt.Println("policy:", name)

		a, err := sortarr.NewNamed(name, sortarr.WithObserver[string](sortarr.ObserverFunc[string](
			func(s sortarr.Snapshot[string]) {
				fmt.Printf("  resize %d -> %d at %d words, first %q\n", s.From, s.Capacity, s.Count, s.Samples[0])
			},
		)))
		if err != nil {
			panic(err)
		}

		for _, w := range words {
			a.Insert(w)
		}
		fmt.Println("  sorted:", a.Items(), "cap:", a.Cap())
	}
}
