// Command grumpr queries a word corpus for matches, anagrams, and fuzzy
// neighbours through a pipeline of chained subcommands: an initial
// "library" stage loads a corpus, any number of refinement stages
// (filter, match, anna, fuzzy, has) narrow it, and one terminal stage
// (show, write, stats) reports the result.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("grumpr failed")
	}
}
