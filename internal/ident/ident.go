// Package ident assigns stable identifiers to entities: human-readable slugs
// for players and tagged 32-bit hashes for tournaments and matches.
package ident

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonWord    = regexp.MustCompile(`[^\w\s]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Slugify lowercases s, strips everything that is not a word character or
// whitespace (periods, apostrophes, hyphens), and collapses whitespace runs
// into single hyphens. The only hyphens in a slug are word separators.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, ".", "")
	s = nonWord.ReplaceAllString(s, "")
	return whitespace.ReplaceAllString(s, "-")
}

// SlugAllocator hands out unique slug-based IDs for one run. The first use of
// a slug yields the bare slug; every later use yields slug-N with N increasing
// monotonically. Suffixes are never reused, even if a name disappears from
// later input.
type SlugAllocator struct {
	uses map[string]int
}

func NewSlugAllocator() *SlugAllocator {
	return &SlugAllocator{uses: make(map[string]int)}
}

// Next returns the ID for the next new entity whose name slugifies to slug.
func (a *SlugAllocator) Next(slug string) string {
	a.uses[slug]++
	n := a.uses[slug]
	if n == 1 {
		return slug
	}
	return slug + "-" + strconv.Itoa(n)
}

// Generator produces tagged identifiers from composite key strings. It exists
// so the hash behind tournament and match IDs can be swapped without touching
// call sites.
type Generator interface {
	ID(tag, key string) string
}

// PolyGenerator is the default Generator: a 32-bit additive polynomial hash
// (hash = hash*31 + charcode, wrapped to 32 bits, absolute value). It is not
// collision-free; colliding keys are a tolerated data-quality risk, not an
// integrity violation.
type PolyGenerator struct{}

func (PolyGenerator) ID(tag, key string) string {
	var h int32
	for _, r := range key {
		h = h*31 + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return tag + strconv.FormatInt(v, 10)
}
