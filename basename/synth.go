package basename

import "fmt"

// form selects which morpheme a walk emits and how primes are wrapped.
type form int

const (
	suffixForm form = iota
	prefixForm
	abbrevForm
	abbrevHeadForm
)

// head is the form of every factor but the last.
func (f form) head() form {
	if f == abbrevForm || f == abbrevHeadForm {
		return abbrevHeadForm
	}
	return prefixForm
}

func (f form) morpheme(m Morpheme) string {
	switch f {
	case suffixForm:
		return m.Suffix
	case prefixForm:
		return m.Prefix
	default:
		return m.Abbreviation
	}
}

// wrap returns the strings around the predecessor of a prime.
func (f form) wrap() (before, after string) {
	switch f {
	case suffixForm:
		return "un", ""
	case prefixForm:
		return "hen", "sna"
	case abbrevForm:
		return "u", ""
	default:
		return "h", "s"
	}
}

func (f form) join(buf []byte, part string) []byte {
	if f == abbrevForm || f == abbrevHeadForm {
		return append(buf, part...)
	}
	return appendJoined(buf, part)
}

// Join concatenates two name parts, merging the vowels that meet at the seam:
// a trailing 'i' swallows a leading 'i' or 'u', and a trailing 'a' or 'o' is
// dropped before any vowel.
func Join(left, right string) string {
	return string(appendJoined([]byte(left), right))
}

func appendJoined(left []byte, right string) []byte {
	if len(left) == 0 || len(right) == 0 {
		return append(left, right...)
	}
	last := left[len(left)-1]
	switch {
	case last == 'i' && (right[0] == 'i' || right[0] == 'u'):
		right = right[1:]
	case (last == 'a' || last == 'o') && isVowel(right[0]):
		left = left[:len(left)-1]
	}
	return append(left, right...)
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// synthesize appends the name of n in form f to buf.
func (r *Resolver) synthesize(buf []byte, n int64, f form) ([]byte, error) {
	rec, err := r.Resolve(n)
	if err != nil {
		return buf, err
	}

	switch rec.BestFactor {
	case n:
		m, ok := LookupMorpheme(n)
		if !ok {
			return buf, fmt.Errorf("%w: %d", ErrUnknownRoot, n)
		}
		return f.join(buf, f.morpheme(m)), nil
	case 1:
		before, after := f.wrap()
		buf = f.join(buf, before)
		if buf, err = r.synthesize(buf, n-1, f); err != nil {
			return buf, err
		}
		return f.join(buf, after), nil
	default:
		if buf, err = r.synthesize(buf, rec.BestFactor, f.head()); err != nil {
			return buf, err
		}
		return r.synthesize(buf, n/rec.BestFactor, f)
	}
}

// render synthesizes the unsigned name of n in form f.
func (r *Resolver) render(n int64, f form) (string, error) {
	buf, err := r.synthesize(nil, n, f)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
