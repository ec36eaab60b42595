package journal

import (
	"fmt"
	"math/rand"

	"github.com/theirongolddev/ecotrack/internal/cli"
)

// Quotes is the fixed motivational pool; selection is uniform.
var Quotes = []string{
	"Small steps can lead to huge impacts.",
	"Change starts with you!",
	"Every day is a new chance to reduce your footprint.",
	"Be the reason the planet smiles.",
	"Living green is living smart.",
}

// PickQuote returns one quote selected with the given random source.
func PickQuote(r *rand.Rand) string {
	return Quotes[r.Intn(len(Quotes))]
}

// ShowQuote prints a randomly selected motivational quote.
func (j *Journal) ShowQuote() {
	fmt.Fprintln(j.out)
	fmt.Fprintln(j.out, cli.RenderQuote(PickQuote(j.Rand)))
	fmt.Fprintln(j.out)
}
