package nav_test

import (
	"testing"

	"github.com/nfrund/demosite/internal/nav"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		width int
		want  nav.ViewportMode
	}{
		{0, nav.ModeCompact},
		{320, nav.ModeCompact},
		{699, nav.ModeCompact},
		{700, nav.ModeExpanded},
		{1440, nav.ModeExpanded},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nav.Classify(tt.width), "width %d", tt.width)
	}
}

func TestViewport(t *testing.T) {
	t.Run("classifies on creation", func(t *testing.T) {
		v := nav.NewViewport(480)
		assert.True(t, v.Compact())

		v = nav.NewViewport(0)
		assert.Equal(t, nav.DefaultViewportWidth, v.Width)
		assert.Equal(t, nav.ModeExpanded, v.Mode)
	})

	t.Run("resize recomputes mode", func(t *testing.T) {
		v := nav.NewViewport(1024)
		v.Resize(600)
		assert.Equal(t, nav.ModeCompact, v.Mode)
		v.Resize(-5)
		assert.Equal(t, 600, v.Width, "invalid widths are ignored")
	})

	t.Run("scroll sets shadow flag", func(t *testing.T) {
		v := nav.NewViewport(1024)
		v.Scroll(120)
		assert.True(t, v.Scrolled)
		v.Scroll(0)
		assert.False(t, v.Scrolled)
	})
}
