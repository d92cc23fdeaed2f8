// internal/ui/button.go
package ui

import (
	"image/color"

	"go-missile-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI. Координаты логические.
type Button struct {
	X, Y, W, H float64
	Text       string
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
}

// NewButton создает кнопку с центром в (cx, cy).
func NewButton(cx, cy, w, h float64, label string) *Button {
	return &Button{
		X:          cx - w/2,
		Y:          cy - h/2,
		W:          w,
		H:          h,
		Text:       label,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// IsClicked - был ли в этом кадре клик по кнопке.
func (b *Button) IsClicked(in Input) bool {
	return in.Click && b.Contains(in.X, in.Y)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(dst *ebiten.Image, face font.Face, hovered bool) {
	bg := b.BgColor
	if hovered {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, true)
	vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, b.TextColor, true)

	bounds := text.BoundString(face, b.Text)
	tx := int(b.X+b.W/2) - bounds.Dx()/2
	ty := int(b.Y+b.H/2) + bounds.Dy()/2
	text.Draw(dst, b.Text, face, tx, ty, b.TextColor)
}
