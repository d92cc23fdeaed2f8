package ui

import "go-missile-defense/internal/config"

// ToLogical переводит координаты экрана размером viewW x viewH в координаты
// поля 800x600. ok = false, если точка за пределами экрана или экран пустой.
func ToLogical(px, py float64, viewW, viewH int) (x, y float64, ok bool) {
	if viewW <= 0 || viewH <= 0 {
		return 0, 0, false
	}
	if px < 0 || py < 0 || px >= float64(viewW) || py >= float64(viewH) {
		return 0, 0, false
	}
	x = px * config.GameWidth / float64(viewW)
	y = py * config.GameHeight / float64(viewH)
	return x, y, true
}

// ToScreen - обратное преобразование, для отрисовки.
func ToScreen(x, y float64, viewW, viewH int) (px, py float64) {
	return x * float64(viewW) / config.GameWidth, y * float64(viewH) / config.GameHeight
}
