package component

// Status - состояние партии
type Status int

const (
	StatusStart Status = iota
	StatusPlaying
	StatusPaused
	StatusWon
	StatusLost
)

var statusNames = [...]string{"START", "PLAYING", "PAUSED", "WON", "LOST"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "UNKNOWN"
	}
	return statusNames[s]
}

// Terminal - партия закончена победой или поражением.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}
