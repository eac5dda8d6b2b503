package urlsafe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnwards/sampledata/internal/urlsafe"
)

func TestString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Big data 2024-05-01 10:11:12", "big-data-2024-05-01-10-11-12"},
		{"bigd-20240501101112", "bigd-20240501101112"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Crème brûlée, s'il vous plaît!", "creme-brulee-s-il-vous-plait"},
		{"Ünïcödé", "unicode"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, urlsafe.String(tc.in))
		})
	}
}
