package render

import (
	"fmt"
	"image/color"
	"math"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const groundTop = 575

// Renderer рисует Snapshot в логическое поле 800x600, а Present растягивает
// поле на экран окна.
type Renderer struct {
	face  font.Face
	field *ebiten.Image
}

func NewRenderer() *Renderer {
	return &Renderer{face: basicfont.Face7x13}
}

func (r *Renderer) Face() font.Face {
	return r.face
}

// Field возвращает поле для рисования поверх мира (оверлеи, кнопки).
func (r *Renderer) Field() *ebiten.Image {
	if r.field == nil {
		r.field = ebiten.NewImage(config.GameWidth, config.GameHeight)
	}
	return r.field
}

// DrawWorld рисует землю, ракеты, перехватчики и взрывы.
func (r *Renderer) DrawWorld(snap app.Snapshot) {
	dst := r.Field()
	dst.Fill(config.BackgroundColor)
	vector.DrawFilledRect(dst, 0, groundTop, config.GameWidth, config.GameHeight-groundTop, config.GroundColor, false)

	for _, c := range snap.Cities {
		drawCity(dst, c)
	}
	for _, t := range snap.Turrets {
		drawTurret(dst, r.face, t)
	}

	for _, rk := range snap.Rockets {
		// След от точки появления по направлению полёта.
		tail := math.Min(40, rk.Position.Y-config.RocketSpawnY)
		tx := rk.Position.X - math.Cos(rk.Angle)*tail
		ty := rk.Position.Y - math.Sin(rk.Angle)*tail
		vector.StrokeLine(dst, float32(tx), float32(ty), float32(rk.Position.X), float32(rk.Position.Y), 1, config.RocketTrailColor, true)
		vector.DrawFilledCircle(dst, float32(rk.Position.X), float32(rk.Position.Y), 2.5, config.RocketColor, true)
	}

	for _, m := range snap.Missiles {
		vector.StrokeLine(dst, float32(m.Start.X), float32(m.Start.Y), float32(m.Position.X), float32(m.Position.Y), 1, Fade(config.MissileColor, 0.4), true)
		vector.DrawFilledCircle(dst, float32(m.Position.X), float32(m.Position.Y), 2, config.MissileColor, true)
		drawCross(dst, m.Target.X, m.Target.Y, config.CrosshairColor)
	}

	for _, e := range snap.Explosions {
		if e.Radius <= 0 {
			continue
		}
		k := 1 - float64(e.Life)/float64(e.MaxLife)
		if e.Kind == component.Impact {
			vector.DrawFilledCircle(dst, float32(e.Position.X), float32(e.Position.Y), float32(e.Radius), Fade(config.ImpactColor, 0.4+0.6*k), true)
			continue
		}
		vector.DrawFilledCircle(dst, float32(e.Position.X), float32(e.Position.Y), float32(e.Radius), Fade(config.ExplosionOuter, 0.5+0.5*k), true)
		vector.DrawFilledCircle(dst, float32(e.Position.X), float32(e.Position.Y), float32(e.Radius*0.6), Fade(config.ExplosionInner, 0.5+0.5*k), true)
	}
}

func drawCity(dst *ebiten.Image, c component.City) {
	x, y := float32(c.Position.X), float32(c.Position.Y)
	if !c.Active {
		vector.DrawFilledRect(dst, x-10, y+6, 20, 4, config.CityRuinColor, false)
		return
	}
	vector.DrawFilledRect(dst, x-10, y-4, 20, 14, config.CityColor, false)
	vector.DrawFilledRect(dst, x-6, y-10, 5, 6, config.CityColor, false)
	vector.DrawFilledRect(dst, x+2, y-8, 4, 4, config.CityColor, false)
}

func drawTurret(dst *ebiten.Image, face font.Face, t component.Turret) {
	x, y := float32(t.Position.X), float32(t.Position.Y)
	clr := config.TurretColor
	if !t.Active {
		clr = config.TurretDeadColor
	} else if t.Ammo == 0 {
		clr = DarkenColor(config.TurretColor)
	}
	vector.DrawFilledRect(dst, x-15, y, 30, groundTop-y, clr, false)
	vector.DrawFilledCircle(dst, x, y, 10, clr, true)

	if t.Active {
		label := fmt.Sprintf("%d", t.Ammo)
		w := text.BoundString(face, label).Dx()
		text.Draw(dst, label, face, int(x)-w/2, groundTop+15, config.TextLightColor)
	}
}

func drawCross(dst *ebiten.Image, x, y float64, clr color.Color) {
	const s = 4
	vector.StrokeLine(dst, float32(x-s), float32(y-s), float32(x+s), float32(y+s), 1, clr, true)
	vector.StrokeLine(dst, float32(x-s), float32(y+s), float32(x+s), float32(y-s), 1, clr, true)
}

// HUDLines - строки верхней панели.
func HUDLines(snap app.Snapshot) []string {
	ammo := 0
	for _, t := range snap.Turrets {
		if t.Active {
			ammo += t.Ammo
		}
	}
	return []string{
		fmt.Sprintf("SCORE %d / %d", snap.Score, config.WinScore),
		fmt.Sprintf("AMMO %d", ammo),
		fmt.Sprintf("WAVE %.1fs", snap.SpawnInterval.Seconds()),
	}
}

// DrawHUD рисует счёт и прочее в верхней строке.
func (r *Renderer) DrawHUD(snap app.Snapshot) {
	dst := r.Field()
	x := 10
	for _, line := range HUDLines(snap) {
		text.Draw(dst, line, r.face, x, 20, config.TextLightColor)
		x += text.BoundString(r.face, line).Dx() + 30
	}
}

// DrawOverlay затемняет поле и пишет заголовок по центру.
func (r *Renderer) DrawOverlay(title string, clr color.Color, lines ...string) {
	dst := r.Field()
	vector.DrawFilledRect(dst, 0, 0, config.GameWidth, config.GameHeight, config.OverlayColor, false)

	r.drawCentered(title, config.GameHeight/2-80, clr)
	for i, line := range lines {
		r.drawCentered(line, config.GameHeight/2-50+i*20, config.TextLightColor)
	}
}

func (r *Renderer) drawCentered(s string, y int, clr color.Color) {
	w := text.BoundString(r.face, s).Dx()
	text.Draw(r.Field(), s, r.face, config.GameWidth/2-w/2, y, clr)
}

// Present растягивает поле на весь экран.
func (r *Renderer) Present(screen *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/config.GameWidth, float64(sh)/config.GameHeight)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.Field(), op)
}
