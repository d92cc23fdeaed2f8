package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input - то, что хост успел собрать за кадр. Координаты уже в логическом поле.
type Input struct {
	Click   bool
	X, Y    float64
	Pause   bool // P или Esc
	Confirm bool // Enter или пробел
	Back    bool // M: в меню
}

// PollInput читает клавиатуру и мышь ebiten. viewW и viewH - размер экрана.
func PollInput(viewW, viewH int) Input {
	var in Input
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		in.X, in.Y, in.Click = ToLogical(float64(cx), float64(cy), viewW, viewH)
	}
	in.Pause = inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Back = inpututil.IsKeyJustPressed(ebiten.KeyM)
	return in
}

// Cursor возвращает положение курсора в логических координатах.
func Cursor(viewW, viewH int) (x, y float64, ok bool) {
	cx, cy := ebiten.CursorPosition()
	return ToLogical(float64(cx), float64(cy), viewW, viewH)
}
