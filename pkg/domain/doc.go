/*
Package domain contains the core domain models for the Parley engine.

It defines the fundamental entities of a prompt session: the ordered
OptionSet of valid answers, the tagged Number produced by coercion, the
inclusive Range constraint, and the sentinel errors that drive control
flow. This package is kept pure and free of I/O so that the validation
loops and any host frontend share one vocabulary.

# Key Entities

  - OptionSet: insertion-ordered key -> description mapping for choice prompts.
  - Number: a value tagged as integer or float by the coercion rule.
  - Range: an inclusive numeric domain, normalized so Min <= Max.
  - Config: the immutable exit-word vocabulary and display widths.
  - ErrExitRequested / ConfigError: control-flow signal vs. caller mistake.
*/
package domain
