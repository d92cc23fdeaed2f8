// Package tty рисует партию символами в терминале и переводит клавиши
// и мышь терминала в команды игры.
package tty

import (
	"fmt"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"

	"github.com/gdamore/tcell/v2"
)

// Canvas - часть tcell.Screen, которая нужна для рисования.
type Canvas interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Size() (width, height int)
}

var (
	styleBase      = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleGround    = styleBase.Foreground(tcell.NewRGBColor(120, 90, 60))
	styleCity      = styleBase.Foreground(tcell.NewRGBColor(70, 170, 230))
	styleRuin      = styleBase.Foreground(tcell.ColorGray)
	styleTurret    = styleBase.Foreground(tcell.NewRGBColor(90, 200, 90))
	styleDead      = styleBase.Foreground(tcell.NewRGBColor(128, 64, 64))
	styleRocket    = styleBase.Foreground(tcell.NewRGBColor(230, 60, 50))
	styleMissile   = styleBase.Foreground(tcell.ColorWhite)
	styleExplosion = styleBase.Foreground(tcell.NewRGBColor(255, 180, 60))
	styleImpact    = styleBase.Foreground(tcell.NewRGBColor(255, 70, 40))
	styleWon       = styleBase.Foreground(tcell.NewRGBColor(80, 220, 120)).Bold(true)
	styleLost      = styleBase.Foreground(tcell.NewRGBColor(220, 60, 60)).Bold(true)
)

const (
	glyphCity      = '▟'
	glyphRuin      = '_'
	glyphTurret    = '▲'
	glyphRocket    = '*'
	glyphMissile   = '|'
	glyphTarget    = 'x'
	glyphExplosion = '#'
	glyphGround    = '▀'
)

// toCell переводит логические координаты в клетку терминала.
func toCell(x, y float64, cols, rows int) (col, row int) {
	col = int(x * float64(cols) / config.GameWidth)
	row = int(y * float64(rows) / config.GameHeight)
	return col, row
}

// Draw рисует снимок на весь экран. Верхняя строка - счёт и статус.
func Draw(c Canvas, snap app.Snapshot) {
	cols, rows := c.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c.SetContent(col, row, ' ', nil, styleBase)
		}
	}

	put := func(x, y float64, r rune, style tcell.Style) {
		col, row := toCell(x, y, cols, rows)
		if col >= 0 && col < cols && row >= 1 && row < rows {
			c.SetContent(col, row, r, nil, style)
		}
	}

	_, groundRow := toCell(0, config.TurretY+25, cols, rows)
	if groundRow < rows {
		for col := 0; col < cols; col++ {
			c.SetContent(col, groundRow, glyphGround, nil, styleGround)
		}
	}

	for _, e := range snap.Explosions {
		style := styleExplosion
		if e.Kind == component.Impact {
			style = styleImpact
		}
		// Закрашиваем клетки, центры которых внутри радиуса.
		cw := config.GameWidth / float64(cols)
		ch := config.GameHeight / float64(rows)
		minCol, minRow := toCell(e.Position.X-e.Radius, e.Position.Y-e.Radius, cols, rows)
		maxCol, maxRow := toCell(e.Position.X+e.Radius, e.Position.Y+e.Radius, cols, rows)
		for row := minRow; row <= maxRow; row++ {
			for col := minCol; col <= maxCol; col++ {
				cx := (float64(col) + 0.5) * cw
				cy := (float64(row) + 0.5) * ch
				if e.Position.DistanceTo(component.Position{X: cx, Y: cy}) < e.Radius {
					put(cx, cy, glyphExplosion, style)
				}
			}
		}
	}

	for _, city := range snap.Cities {
		if city.Active {
			put(city.Position.X, city.Position.Y, glyphCity, styleCity)
		} else {
			put(city.Position.X, city.Position.Y, glyphRuin, styleRuin)
		}
	}
	for _, t := range snap.Turrets {
		style := styleTurret
		if !t.Active {
			style = styleDead
		}
		put(t.Position.X, t.Position.Y, glyphTurret, style)
	}
	for _, m := range snap.Missiles {
		put(m.Target.X, m.Target.Y, glyphTarget, styleMissile)
		put(m.Position.X, m.Position.Y, glyphMissile, styleMissile)
	}
	for _, r := range snap.Rockets {
		put(r.Position.X, r.Position.Y, glyphRocket, styleRocket)
	}

	drawText(c, 0, 0, hudLine(snap), styleBase)

	switch snap.Status {
	case component.StatusStart:
		drawCentered(c, rows/2, "MISSILE DEFENSE - press Enter to start", styleBase.Bold(true))
	case component.StatusPaused:
		drawCentered(c, rows/2, "PAUSED - press P to continue", styleBase.Bold(true))
	case component.StatusWon:
		drawCentered(c, rows/2, fmt.Sprintf("YOU WIN - score %d", snap.Score), styleWon)
		drawCentered(c, rows/2+1, "Enter: play again   M: menu", styleBase)
	case component.StatusLost:
		drawCentered(c, rows/2, fmt.Sprintf("GAME OVER - score %d", snap.Score), styleLost)
		drawCentered(c, rows/2+1, "Enter: play again   M: menu", styleBase)
	}
}

func hudLine(snap app.Snapshot) string {
	ammo := make([]any, 0, len(snap.Turrets))
	for _, t := range snap.Turrets {
		if t.Active {
			ammo = append(ammo, t.Ammo)
		} else {
			ammo = append(ammo, "-")
		}
	}
	return fmt.Sprintf("SCORE %d/%d  AMMO %v  %s", snap.Score, config.WinScore, ammo, snap.Status)
}

func drawText(c Canvas, col, row int, s string, style tcell.Style) {
	cols, rows := c.Size()
	if row < 0 || row >= rows {
		return
	}
	for _, r := range s {
		if col >= cols {
			return
		}
		c.SetContent(col, row, r, nil, style)
		col++
	}
}

func drawCentered(c Canvas, row int, s string, style tcell.Style) {
	cols, _ := c.Size()
	col := (cols - len([]rune(s))) / 2
	if col < 0 {
		col = 0
	}
	drawText(c, col, row, s, style)
}
