package rectunion

import "sort"

// bracket is one entry of the sweep status structure: a transversal
// (vertical) frame side currently crossing the sweep line. depth is the
// number of open rectangle interiors covering points immediately
// following (to the right of) the bracket; it is never negative.
type bracket struct {
	vside int32 // vertical side arena id
	left  bool  // opening end of its pair
	depth int32
}

// bracketKey identifies a bracket position without a depth.
type bracketKey struct {
	vside int32
	left  bool
}

// bracketSet is the ordered sweep status over vertical sides. It always
// holds an even number of entries: every frame contributes the pair
// (left side, opening) and (right side, closing) while one of its
// horizontal sides has been opened and not yet closed.
//
// The set is a sorted slice: location is a binary search and
// insertion/removal shifts the tail. The depth updates that dominate the
// work are range walks between the pair being inserted or removed in
// either representation, so a balanced tree would only change the
// shifting term.
type bracketSet struct {
	vsides []side
	items  []bracket
}

// cmp orders bracket keys: by the vertical side's total side order
// (coordinate, opening-before-closing, extent), then side id, then the
// pair-end flag. The last two tiebreaks only make the order total;
// every query about a nonempty gap between adjacent brackets is
// unaffected by ordering within one coordinate.
func (bs *bracketSet) cmp(a, b bracketKey) int {
	if a.vside != b.vside {
		if c := cmpSides(&bs.vsides[a.vside], &bs.vsides[b.vside]); c != 0 {
			return c
		}
		if a.vside < b.vside {
			return -1
		}
		return 1
	}
	if a.left != b.left {
		if a.left {
			return -1
		}
		return 1
	}
	return 0
}

// lowerBound returns the first index whose bracket is >= key.
func (bs *bracketSet) lowerBound(key bracketKey) int {
	return sort.Search(len(bs.items), func(i int) bool {
		return bs.cmp(bracketKey{bs.items[i].vside, bs.items[i].left}, key) >= 0
	})
}

// upperBound returns the first index whose bracket is > key.
func (bs *bracketSet) upperBound(key bracketKey) int {
	return sort.Search(len(bs.items), func(i int) bool {
		return bs.cmp(bracketKey{bs.items[i].vside, bs.items[i].left}, key) > 0
	})
}

// insertFrame adds the bracket pair of frame f. The new opening bracket
// seeds its depth from its predecessor; every bracket strictly between
// the pair is incremented; the new closing bracket's depth is the last
// incremented depth minus one.
func (bs *bracketSet) insertFrame(f int32) {
	keyFrom := bracketKey{sideID(f, true), true}
	keyTo := bracketKey{sideID(f, false), false}
	posFrom := bs.lowerBound(keyFrom)
	posTo := bs.lowerBound(keyTo)

	seed := int32(1)
	if posFrom > 0 {
		seed = bs.items[posFrom-1].depth + 1
	}
	nesting := seed
	for i := posFrom; i < posTo; i++ {
		bs.items[i].depth++
		nesting = bs.items[i].depth
	}

	bs.items = append(bs.items, bracket{}, bracket{})
	copy(bs.items[posTo+2:], bs.items[posTo:])
	bs.items[posTo+1] = bracket{vside: keyTo.vside, left: false, depth: nesting - 1}
	copy(bs.items[posFrom+1:posTo+1], bs.items[posFrom:posTo])
	bs.items[posFrom] = bracket{vside: keyFrom.vside, left: true, depth: seed}
}

// removeFrame erases the bracket pair of frame f, decrementing every
// bracket strictly between the pair.
func (bs *bracketSet) removeFrame(f int32) {
	keyFrom := bracketKey{sideID(f, true), true}
	keyTo := bracketKey{sideID(f, false), false}
	posFrom := bs.lowerBound(keyFrom)
	if posFrom >= len(bs.items) || bs.items[posFrom].vside != keyFrom.vside || !bs.items[posFrom].left {
		corrupt("bracket set", "removing absent opening bracket of frame %d", f)
	}
	posTo := bs.lowerBound(keyTo)
	if posTo >= len(bs.items) || bs.items[posTo].vside != keyTo.vside || bs.items[posTo].left {
		corrupt("bracket set", "removing absent closing bracket of frame %d", f)
	}
	for i := posFrom + 1; i < posTo; i++ {
		bs.items[i].depth--
		if bs.items[i].depth < 0 {
			corrupt("bracket set", "negative covering depth at %d", i)
		}
	}
	copy(bs.items[posTo:], bs.items[posTo+1:])
	copy(bs.items[posFrom:], bs.items[posFrom+1:])
	bs.items = bs.items[:len(bs.items)-2]
}

// lower returns the index of the greatest bracket strictly below key,
// or -1.
func (bs *bracketSet) lower(key bracketKey) int {
	return bs.lowerBound(key) - 1
}

// rangeInclusive returns the half-open index range [lo, hi) of brackets
// between keyFrom and keyTo, both bounds included when present.
func (bs *bracketSet) rangeInclusive(keyFrom, keyTo bracketKey) (lo, hi int) {
	return bs.lowerBound(keyFrom), bs.upperBound(keyTo)
}

func (bs *bracketSet) len() int { return len(bs.items) }
