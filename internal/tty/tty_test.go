package tty

import (
	"strings"
	"testing"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/utils"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gridCanvas struct {
	w, h  int
	cells [][]rune
}

func newGridCanvas(w, h int) *gridCanvas {
	cells := make([][]rune, h)
	for i := range cells {
		cells[i] = make([]rune, w)
	}
	return &gridCanvas{w: w, h: h, cells: cells}
}

func (g *gridCanvas) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	g.cells[y][x] = mainc
}

func (g *gridCanvas) Size() (int, int) { return g.w, g.h }

func (g *gridCanvas) row(y int) string { return string(g.cells[y]) }

func (g *gridCanvas) at(x, y float64) rune {
	col, row := toCell(x, y, g.w, g.h)
	return g.cells[row][col]
}

func TestDrawGround(t *testing.T) {
	game := app.NewGame(utils.NewPRNGService(1))
	c := newGridCanvas(80, 24)
	Draw(c, game.Snapshot())

	for _, city := range game.World.Cities {
		assert.Equal(t, glyphCity, c.at(city.Position.X, city.Position.Y))
	}
	for _, tr := range game.World.Turrets {
		assert.Equal(t, glyphTurret, c.at(tr.Position.X, tr.Position.Y))
	}
	assert.True(t, strings.HasPrefix(c.row(0), "SCORE 0/1000"))
	assert.Contains(t, c.row(12), "press Enter to start")
}

func TestDrawEntities(t *testing.T) {
	snap := app.Snapshot{
		Status: component.StatusPlaying,
		Rockets: []component.Rocket{
			{Position: component.Position{X: 100, Y: 100}},
		},
		Missiles: []component.Missile{
			{Position: component.Position{X: 400, Y: 400}, Target: component.Position{X: 400, Y: 200}},
		},
		Explosions: []component.Explosion{
			{Position: component.Position{X: 600, Y: 300}, Radius: 40, MaxRadius: 46, MaxLife: 60},
		},
		Cities: []component.City{
			{Position: component.Position{X: 150, Y: 560}, Active: false},
		},
	}
	c := newGridCanvas(80, 24)
	Draw(c, snap)

	assert.Equal(t, glyphRocket, c.at(100, 100))
	assert.Equal(t, glyphMissile, c.at(400, 400))
	assert.Equal(t, glyphTarget, c.at(400, 200))
	assert.Equal(t, glyphExplosion, c.at(600, 300))
	assert.Equal(t, ' ', c.at(700, 300))
	assert.Equal(t, glyphRuin, c.at(150, 560))
}

func TestDrawTinyCanvas(t *testing.T) {
	game := app.NewGame(utils.NewPRNGService(1))
	assert.NotPanics(t, func() { Draw(newGridCanvas(3, 2), game.Snapshot()) })
	assert.NotPanics(t, func() { Draw(newGridCanvas(0, 0), game.Snapshot()) })
}

func newTestHost(t *testing.T) *Host {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return NewHost(screen, app.NewGame(utils.NewPRNGService(1)), nil)
}

func TestHostKeys(t *testing.T) {
	h := newTestHost(t)

	assert.True(t, h.HandleKey(tcell.KeyRune, 'p'), "pause in menu is ignored")
	assert.Equal(t, component.StatusStart, h.game.Status())

	assert.True(t, h.HandleKey(tcell.KeyEnter, 0))
	assert.Equal(t, component.StatusPlaying, h.game.Status())

	h.HandleKey(tcell.KeyRune, 'p')
	assert.Equal(t, component.StatusPaused, h.game.Status())
	h.HandleKey(tcell.KeyRune, 'p')
	assert.Equal(t, component.StatusPlaying, h.game.Status())

	assert.False(t, h.HandleKey(tcell.KeyRune, 'q'))
	assert.False(t, h.HandleKey(tcell.KeyEscape, 0))
}

func TestHostReplayAndMenu(t *testing.T) {
	h := newTestHost(t)
	h.HandleKey(tcell.KeyEnter, 0)
	for _, tr := range h.game.World.Turrets {
		tr.Active = false
	}
	h.game.Step(0)
	require.Equal(t, component.StatusLost, h.game.Status())

	h.HandleKey(tcell.KeyEnter, 0)
	assert.Equal(t, component.StatusPlaying, h.game.Status())
	assert.Equal(t, 3, h.game.World.ActiveTurrets())

	for _, tr := range h.game.World.Turrets {
		tr.Active = false
	}
	h.game.Step(0)
	h.HandleKey(tcell.KeyRune, 'm')
	assert.Equal(t, component.StatusStart, h.game.Status())
}

func TestHostMouseFiresOnPress(t *testing.T) {
	h := newTestHost(t)
	h.HandleKey(tcell.KeyEnter, 0)

	// Клетка (40, 8) на экране 80x24 - это (405, 212.5) на поле.
	h.HandleMouse(40, 8, tcell.Button1)
	require.Len(t, h.game.World.Missiles, 1)
	m := h.game.World.Missiles[0]
	assert.InDelta(t, 405, m.Target.X, 1e-9)
	assert.InDelta(t, 212.5, m.Target.Y, 1e-9)

	h.HandleMouse(41, 8, tcell.Button1)
	assert.Len(t, h.game.World.Missiles, 1, "held button does not fire again")

	h.HandleMouse(41, 8, tcell.ButtonNone)
	h.HandleMouse(41, 8, tcell.Button1)
	assert.Len(t, h.game.World.Missiles, 2)
}
