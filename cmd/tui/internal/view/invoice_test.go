package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "Short", in: "Urn", n: 10, want: "Urn"},
		{name: "ExactLength", in: "Cloisonné", n: 9, want: "Cloisonné"},
		{name: "Cut", in: "Basic Cremation Container", n: 10, want: "Basic Cre…"},
		{name: "MultibyteAtBoundary", in: "Essence Cloisonné Heart Opal", n: 17, want: "Essence Cloisonn…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.in, tt.n))
		})
	}
}
