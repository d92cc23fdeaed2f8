package utils

// SequenceRandom отдаёт заранее заданные значения по кругу. Нужен тестам,
// чтобы появление ракет было предсказуемым.
// Floats - доли в [0, 1), Range масштабирует их в [min, max).
type SequenceRandom struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

var _ Random = (*SequenceRandom)(nil)

func (s *SequenceRandom) Range(min, max float64) float64 {
	if len(s.Floats) == 0 {
		return min
	}
	f := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return min + f*(max-min)
}

func (s *SequenceRandom) Intn(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	return v % n
}
