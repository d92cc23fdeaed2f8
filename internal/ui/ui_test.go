package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToLogical(t *testing.T) {
	tests := []struct {
		name         string
		px, py       float64
		viewW, viewH int
		wantX, wantY float64
		wantOK       bool
	}{
		{"same size", 400, 300, 800, 600, 400, 300, true},
		{"double scale", 800, 600, 1600, 1200, 400, 300, true},
		{"half scale", 100, 75, 400, 300, 200, 150, true},
		{"stretched", 50, 50, 100, 200, 400, 150, true},
		{"origin", 0, 0, 800, 600, 0, 0, true},
		{"right edge outside", 800, 10, 800, 600, 0, 0, false},
		{"negative", -1, 10, 800, 600, 0, 0, false},
		{"empty view", 1, 1, 0, 600, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := ToLogical(tt.px, tt.py, tt.viewW, tt.viewH)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.wantX, x, 1e-9)
			assert.InDelta(t, tt.wantY, y, 1e-9)
		})
	}
}

func TestToScreenInvertsToLogical(t *testing.T) {
	px, py := ToScreen(123, 456, 1280, 960)
	x, y, ok := ToLogical(px, py, 1280, 960)
	assert.True(t, ok)
	assert.InDelta(t, 123, x, 1e-9)
	assert.InDelta(t, 456, y, 1e-9)
}

func TestButton(t *testing.T) {
	b := NewButton(400, 300, 200, 40, "START")
	assert.Equal(t, 300.0, b.X)
	assert.Equal(t, 280.0, b.Y)

	assert.True(t, b.Contains(400, 300))
	assert.True(t, b.Contains(300, 280))
	assert.False(t, b.Contains(500, 300))
	assert.False(t, b.Contains(400, 320))

	assert.True(t, b.IsClicked(Input{Click: true, X: 350, Y: 290}))
	assert.False(t, b.IsClicked(Input{Click: false, X: 350, Y: 290}))
	assert.False(t, b.IsClicked(Input{Click: true, X: 10, Y: 10}))
}
