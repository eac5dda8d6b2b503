// Package lorem produces filler text for generated content by shuffling the
// sentences of an embedded passage.
package lorem

import (
	_ "embed"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"
)

//go:embed lorem.txt
var corpus string

// Corpus returns the embedded passage the generator draws from.
func Corpus() string {
	return corpus
}

// Generator draws random text from a passage. It is safe for concurrent use.
type Generator struct {
	mu        sync.Mutex
	rnd       *rand.Rand
	fragments []string
}

// New returns a Generator over the embedded passage using src for randomness.
func New(src rand.Source) *Generator {
	return NewFromText(corpus, src)
}

// NewFromText returns a Generator over text using src for randomness.
func NewFromText(text string, src rand.Source) *Generator {
	var fragments []string
	for _, f := range strings.Split(text, ".") {
		if strings.TrimSpace(f) != "" {
			fragments = append(fragments, f)
		}
	}
	return &Generator{rnd: rand.New(src), fragments: fragments}
}

// Default returns a Generator over the embedded passage seeded from the clock.
func Default() *Generator {
	seed := uint64(time.Now().UnixNano())
	return New(rand.NewPCG(seed, seed>>1|1))
}

// Between returns a random integer in [lo, hi]. A reversed range is swapped.
func (g *Generator) Between(lo, hi int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.between(lo, hi)
}

// Text returns between lo and hi characters of shuffled passage, capitalised
// and terminated with a full stop.
func (g *Generator) Text(lo, hi int) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := strings.TrimSpace(strings.Join(g.shuffled(), "."))
	s = truncate(s, g.between(lo, hi))

	return upperFirst(s) + "."
}

// Sentence returns one shuffled sentence cut to between lo and hi characters,
// without surrounding spaces or commas.
func (g *Generator) Sentence(lo, hi int) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	fragments := g.shuffled()
	if len(fragments) == 0 {
		return ""
	}
	s := truncate(strings.TrimSpace(fragments[0]), g.between(lo, hi))

	return strings.Trim(s, " ,")
}

func (g *Generator) between(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + g.rnd.IntN(hi-lo+1)
}

func (g *Generator) shuffled() []string {
	out := make([]string, len(g.fragments))
	copy(out, g.fragments)
	g.rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
