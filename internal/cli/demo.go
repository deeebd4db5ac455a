package cli

import (
	"fmt"
	"os"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/internal/presentation/tui"
	"github.com/aretw0/parley/pkg/domain"
)

// RunDemo walks through every prompt kind once, mirroring the library's
// documented behavior for a first-time user.
func RunDemo(opts RunOptions) error {
	if !opts.Plain && tui.IsInteractive(os.Stdout) {
		tui.PrintBanner(os.Stdout, parley.Version)
	}

	session := newSession(opts)

	n, err := session.Number("Step right up and pick a number, any number!", domain.AsEntered)
	if err != nil {
		return err
	}
	fmt.Printf("Returns %v\n\n", n.Value())

	n, err = session.NumberInRange("Now only an integer between 1 and 10!", domain.NewRange(1, 10), domain.AsInt)
	if err != nil {
		return err
	}
	fmt.Printf("Returns %v\n\n", n.Value())

	answer, err := session.Choose("Who is the strongest Avenger?",
		domain.NewOptionSet().
			Add("t", "Thor").
			Add("i", "Iron Man").
			Add("c", "Captain America").
			Add("h", "The Hulk"))
	if err != nil {
		return err
	}
	fmt.Printf("Returns %v\n\n", answer)

	yn, err := session.YesNo("Did you enjoy that?")
	if err != nil {
		return err
	}
	fmt.Printf("Returns %v\n\n", yn)

	tf, err := session.TrueFalse("True or False - an African swallow could carry a coconut:")
	if err != nil {
		return err
	}
	fmt.Printf("Returns %v\n\n", tf)

	return nil
}
