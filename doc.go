/*
Package parley is an interactive terminal prompt-and-validate engine.

It presents a question, restricts acceptable answers to an enumerated set of
choices or a numeric domain, loops until a valid answer is given, and
supports a universal cancel vocabulary ("quit", "exit", "leave") that ends
the whole interactive session from any prompt. A companion text wrapper
keeps prompts and option descriptions inside a fixed display width with
hanging indentation.

# Usage

Create a Session and call its prompt methods. Every method blocks on the
configured input stream until the user supplies a valid answer or an exit
word.

	package main

	import (
		"errors"
		"fmt"

		"github.com/aretw0/parley"
		"github.com/aretw0/parley/pkg/domain"
	)

	func main() {
		session := parley.New()

		options := domain.NewOptionSet().
			Add("t", "Thor").
			Add("i", "Iron Man").
			Add("c", "Captain America").
			Add("h", "The Hulk")

		answer, err := session.Choose("Who is the strongest Avenger?", options)
		if errors.Is(err, domain.ErrExitRequested) {
			return // user cancelled the session
		}
		if err != nil {
			panic(err)
		}
		fmt.Println("you picked", answer)
	}

Choice matching is deliberately exact: no trimming, no case folding. Numeric
prompts apply a deterministic coercion rule to the raw text (a literal
decimal point means float, otherwise integer) and optionally enforce an
inclusive range.

Cancellation is cooperative and textual. When the user enters an exit word
the session prints a farewell once and every prompt returns
domain.ErrExitRequested; callers check it with errors.Is at the top level
and must not swallow it in intermediate layers.
*/
package parley
