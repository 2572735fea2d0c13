package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Messe Kontakte 2025", "messe-kontakte-2025"},
		{"  Standard Lead-Formular  ", "standard-lead-formular"},
		{"Zürich Hauptmesse", "z-rich-hauptmesse"},
		{"UPPER case", "upper-case"},
		{"---", "leads"},
		{"", "leads"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in, "leads"), "input %q", tc.in)
	}
}
