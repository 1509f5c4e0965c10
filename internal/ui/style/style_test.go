package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/taxa/internal/ui/style"
)

func TestGuides(t *testing.T) {
	// Animalia
	// ├─ Chordata
	// │  └─ Mammalia
	// └─ Mollusca
	//    └─ Bivalvia
	var g style.Guides
	got := []string{
		g.Next(0, true),
		g.Next(1, false),
		g.Next(2, true),
		g.Next(1, true),
		g.Next(2, true),
	}

	assert.Equal(t, []string{
		"",
		"├─ ",
		"│  └─ ",
		"└─ ",
		"   └─ ",
	}, got)
}

func TestGuides_SkippedDepth(t *testing.T) {
	var g style.Guides
	assert.Equal(t, "│  │  ├─ ", g.Next(3, false))
}
