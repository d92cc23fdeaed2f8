// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// Random - источник случайности для систем. В тестах подменяется
// заранее заданной последовательностью.
type Random interface {
	// Range возвращает число в [min, max).
	Range(min, max float64) float64
	// Intn возвращает целое в [0, n).
	Intn(n int) int
}

// PRNGService - обертка над генератором случайных чисел Go с заданным сидом,
// чтобы одна и та же партия воспроизводилась целиком.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

var _ Random = (*PRNGService)(nil)

// NewPRNGService создает сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (s *PRNGService) Seed() int64 {
	return s.seed
}

func (s *PRNGService) Range(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Pick выбирает случайный элемент. Для пустого среза ok = false.
func Pick[T any](r Random, items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[r.Intn(len(items))], true
}
