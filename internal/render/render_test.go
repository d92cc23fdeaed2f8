package render

import (
	"image/color"
	"testing"
	"time"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/component"

	"github.com/stretchr/testify/assert"
)

func TestHUDLines(t *testing.T) {
	snap := app.Snapshot{
		Score:         240,
		SpawnInterval: 1800 * time.Millisecond,
		Turrets: []component.Turret{
			{Active: true, Ammo: 5},
			{Active: false, Ammo: 40},
			{Active: true, Ammo: 12},
		},
	}
	assert.Equal(t, []string{"SCORE 240 / 1000", "AMMO 17", "WAVE 1.8s"}, HUDLines(snap))
}

func TestFade(t *testing.T) {
	c := color.RGBA{200, 100, 50, 250}
	assert.Equal(t, c, Fade(c, 1))
	assert.Equal(t, color.RGBA{}, Fade(c, 0))
	assert.Equal(t, color.RGBA{100, 50, 25, 125}, Fade(c, 0.5))
}

func TestDarkenColor(t *testing.T) {
	assert.Equal(t, color.RGBA{50, 25, 12, 255}, DarkenColor(color.RGBA{100, 50, 25, 255}))
}
