package generator

import (
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"
)

const loremText = `
Lorem ipsum dolor sit amet, consectetur adipiscing elit. Integer consequat nec arcu a commodo. Fusce vitae libero sem.
Sed auctor ligula purus, non cursus neque suscipit a. Sed quis ligula scelerisque, efficitur eros nec, euismod diam.
Mauris et libero eu ex porta consequat. Nullam commodo auctor gravida. Nullam eros neque, commodo quis risus at, mollis
accumsan libero. Quisque pellentesque lobortis felis nec maximus. Suspendisse potenti. Sed vitae tincidunt nunc, sed
porttitor nulla. Lorem ipsum dolor sit amet, consectetur adipiscing elit. Donec non elementum est. Vestibulum dapibus
convallis diam eget faucibus. Aenean in felis ac lectus auctor volutpat. Vestibulum dignissim mollis pulvinar. Nunc
quis ultrices dui.
`

// loremWords keeps inner commas, periods are dropped.
var loremWords = strings.Fields(strings.ReplaceAll(loremText, ".", ""))

// Lorem builds single-sentence bodies out of lorem ipsum words.
type Lorem struct {
	rng *rand.Rand
}

// NewLorem uses rng for picks, or the global source when rng is nil.
func NewLorem(rng *rand.Rand) Lorem {
	return Lorem{rng: rng}
}

// RandomText returns a sentence of exactly words words: first letter
// capitalized, the rest lowercased, no trailing comma, ending with a period.
// It returns an empty string when words is not positive.
func (l Lorem) RandomText(words int) string {
	if words < 1 {
		return ""
	}
	picked := make([]string, words)
	for i := range picked {
		picked[i] = pick(l.rng, loremWords)
	}
	return Sentence(picked)
}

// Sentence joins words into a capitalized sentence terminated by a period.
func Sentence(words []string) string {
	s := strings.Trim(strings.Join(words, " "), ", ")
	s = strings.ToLower(s)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s + "."
	}
	return string(unicode.ToUpper(r)) + s[size:] + "."
}
