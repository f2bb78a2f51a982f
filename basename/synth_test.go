package basename_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/namebase/basename"
)

func TestJoin(t *testing.T) {
	cases := []struct {
		left, right, want string
	}{
		{"bi", "unary", "binary"},
		{"bi", "icosi", "bicosi"},
		{"tetra", "octal", "tetroctal"},
		{"octo", "elevenary", "octelevenary"},
		{"penta", "quinary", "pentaquinary"},
		{"hexa", "gesimal", "hexagesimal"},
		{"nega", "binary", "negabinary"},
		{"nega", "unary", "negunary"},
		{"hen", "bi", "henbi"},
		{"tri", "seximal", "triseximal"},
		{"", "octal", "octal"},
		{"octo", "", "octo"},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, basename.Join(c.left, c.right), "Join(%q, %q)", c.left, c.right)
	}
}
