// Package basename names numbering systems.
//
// Every integer radix gets a pronounceable name built from a small set of root
// words: 6 is "seximal", 24 is "tetraseximal", 19 is "untriseximal" and -2 is
// "negabinary". A radix that is not a root is split into the factor pair that
// needs the fewest roots, preferring the pair whose factors are closest. A
// prime has no such pair and is named after its predecessor, wrapped as
// "un..." in the final position and "hen...sna" everywhere else.
//
// A Namer owns the memo table of factorizations and is safe for concurrent
// use:
//
//	namer, err := basename.New()
//	if err != nil {
//	    return err
//	}
//	defer namer.Close()
//
//	name, _ := namer.Name(24) // "tetraseximal"
package basename
