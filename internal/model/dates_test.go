package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChronologicalOrder(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"ordered", "2020-01", "2021-06", true},
		{"same month", "2020-01", "2020-01", true},
		{"inverted", "2021-06", "2020-01", false},
		{"blank start", "", "2020-01", true},
		{"blank end", "2020-01", "", true},
		{"open ended", "2020-01", OpenEnded, true},
		{"unparseable start", "January 2020", "2021-01", false},
		{"unparseable end", "2020-01", "soon", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ChronologicalOrder(tc.start, tc.end))
		})
	}
}
