// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a uniform value in [min, max). A degenerate range returns min.
func (s *PRNGService) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// VecRange draws each component independently from [min[i], max[i]).
func (s *PRNGService) VecRange(min, max mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		s.Range(min[0], max[0]),
		s.Range(min[1], max[1]),
		s.Range(min[2], max[2]),
	}
}

// PlanarDirection returns a random unit vector in the xy plane.
func (s *PRNGService) PlanarDirection() mgl64.Vec3 {
	angle := s.rng.Float64() * 2 * math.Pi
	return mgl64.Vec3{math.Cos(angle), math.Sin(angle), 0}
}
