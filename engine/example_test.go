package engine_test

import (
	"fmt"

	"github.com/brewpair/brewpair/engine"
	"github.com/brewpair/brewpair/roster"
)

// ExampleMatch pairs four colleagues of whom two couples already met:
// the round bridges the history instead of repeating it.
func ExampleMatch() {
	entries := []roster.Entry{
		{Identity: "ada@corp.example", Active: true},
		{Identity: "bob@corp.example", Active: true},
		{Identity: "cyd@corp.example", Active: true},
		{Identity: "dee@corp.example", Active: true},
	}
	history := []roster.Meeting{
		{A: "ada@corp.example", B: "bob@corp.example"},
		{A: "cyd@corp.example", B: "dee@corp.example"},
	}

	res, err := engine.Match(entries, history, engine.WithSeed(1))
	if err != nil {
		fmt.Println("match failed:", err)

		return
	}

	fmt.Printf("pairs: %d\n", len(res.Pairs))
	fmt.Printf("new pairings: %.0f%%\n", 100*res.Diagnostics.NewPairShare)
	fmt.Printf("cross-community: %.0f%%\n", 100*res.Diagnostics.CrossCommunityShare)
	// Output:
	// pairs: 2
	// new pairings: 100%
	// cross-community: 100%
}
