//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

// NameGenerator produces a non-empty full name on demand.
type NameGenerator interface {
	RandomName() string
}

// TextGenerator produces a capitalized sentence of exactly words words,
// terminated by a period.
type TextGenerator interface {
	RandomText(words int) string
}

// LineSink displays text lines in the order they are given.
type LineSink interface {
	Display(line string)
}

// RandomSource returns uniform values in [0,1).
// *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}
