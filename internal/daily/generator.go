// Package daily generates the daily challenge. Generation is a pure
// function of the calendar date: nothing is persisted, the challenge
// "rolls over" simply because callers pass a new date.
package daily

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// Type identifies one of the five challenge kinds.
type Type string

const (
	TypeMath       Type = "math"
	TypeFraction   Type = "fraction"
	TypeElement    Type = "element"
	TypeVocabulary Type = "vocabulary"
	TypeTimeline   Type = "timeline"
)

// typeOrder is the cycle the day-of-epoch indexes into. The exact
// day-to-type assignment is not a contract; only the property that a
// short window of days sees more than one type is.
var typeOrder = []Type{TypeMath, TypeFraction, TypeElement, TypeVocabulary, TypeTimeline}

type MathProblem struct {
	Question string `json:"question"`
	Answer   int    `json:"answer"`
	Choices  []int  `json:"choices"`
}

type FractionPair struct {
	Left   string `json:"left"`
	Right  string `json:"right"`
	Answer string `json:"answer"` // "left", "right" or "equal"
}

type ElementQuestion struct {
	Symbol  string   `json:"symbol"`
	Answer  string   `json:"answer"`
	Choices []string `json:"choices"`
}

type VocabularyWord struct {
	Scrambled string `json:"scrambled"`
	Answer    string `json:"answer"`
	Hint      string `json:"hint"`
}

type TimelineEvent struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

type Timeline struct {
	Events       []TimelineEvent `json:"events"`
	CorrectOrder []int           `json:"correctOrder"`
}

// Challenge is one generated daily challenge. Exactly one payload field
// is populated, matching Type.
type Challenge struct {
	Date       string            `json:"date"`
	Seed       int64             `json:"seed"`
	Type       Type              `json:"type"`
	Math       []MathProblem     `json:"math,omitempty"`
	Fractions  []FractionPair    `json:"fractions,omitempty"`
	Elements   []ElementQuestion `json:"elements,omitempty"`
	Vocabulary []VocabularyWord  `json:"vocabulary,omitempty"`
	Timeline   *Timeline         `json:"timeline,omitempty"`
}

// Generate builds the challenge for the given calendar date. It is
// deterministic with respect to the local year/month/day of date and is
// total: every valid date yields a structurally valid challenge.
func Generate(date time.Time) Challenge {
	year, month, day := date.Date()

	seed := seedFor(year, int(month), day)
	rng := rand.New(rand.NewSource(seed))

	c := Challenge{
		Date: fmt.Sprintf("%04d-%02d-%02d", year, int(month), day),
		Seed: seed,
		Type: typeFor(year, int(month), day),
	}

	switch c.Type {
	case TypeMath:
		c.Math = generateMath(rng)
	case TypeFraction:
		c.Fractions = generateFractions(rng)
	case TypeElement:
		c.Elements = generateElements(rng)
	case TypeVocabulary:
		c.Vocabulary = generateVocabulary(rng)
	case TypeTimeline:
		c.Timeline = generateTimeline(rng)
	}
	return c
}

// seedFor mixes the numeric date encoding through a splitmix64 finalizer
// so nearby dates land on unrelated seeds.
func seedFor(year, month, day int) int64 {
	x := uint64(year)*10000 + uint64(month)*100 + uint64(day)
	x += 0x9e3779b97f4a7c15
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x >> 1) // keep it positive
}

// typeFor cycles through the five types by day-of-epoch, so consecutive
// days always pick different types.
func typeFor(year, month, day int) Type {
	epochDays := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Unix() / 86400
	idx := int(epochDays % int64(len(typeOrder)))
	if idx < 0 {
		idx += len(typeOrder)
	}
	return typeOrder[idx]
}

func generateMath(rng *rand.Rand) []MathProblem {
	problems := make([]MathProblem, 0, 5)
	for i := 0; i < 5; i++ {
		var question string
		var answer int
		switch rng.Intn(3) {
		case 0:
			a, b := rng.Intn(90)+10, rng.Intn(90)+10
			question = fmt.Sprintf("%d + %d = ?", a, b)
			answer = a + b
		case 1:
			a, b := rng.Intn(90)+10, rng.Intn(90)+10
			if b > a {
				a, b = b, a
			}
			question = fmt.Sprintf("%d - %d = ?", a, b)
			answer = a - b
		default:
			a, b := rng.Intn(11)+2, rng.Intn(11)+2
			question = fmt.Sprintf("%d × %d = ?", a, b)
			answer = a * b
		}
		problems = append(problems, MathProblem{
			Question: question,
			Answer:   answer,
			Choices:  numericChoices(rng, answer),
		})
	}
	return problems
}

// numericChoices returns 4 distinct values including answer, shuffled.
func numericChoices(rng *rand.Rand, answer int) []int {
	seen := map[int]bool{answer: true}
	choices := []int{answer}
	for len(choices) < 4 {
		delta := rng.Intn(10) + 1
		if rng.Intn(2) == 0 {
			delta = -delta
		}
		candidate := answer + delta
		if candidate < 0 || seen[candidate] {
			continue
		}
		seen[candidate] = true
		choices = append(choices, candidate)
	}
	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices
}

func generateFractions(rng *rand.Rand) []FractionPair {
	pairs := make([]FractionPair, 0, 5)
	for i := 0; i < 5; i++ {
		ln, ld := rng.Intn(9)+1, rng.Intn(11)+2
		rn, rd := rng.Intn(9)+1, rng.Intn(11)+2

		answer := "equal"
		switch {
		case ln*rd > rn*ld:
			answer = "left"
		case ln*rd < rn*ld:
			answer = "right"
		}
		pairs = append(pairs, FractionPair{
			Left:   fmt.Sprintf("%d/%d", ln, ld),
			Right:  fmt.Sprintf("%d/%d", rn, rd),
			Answer: answer,
		})
	}
	return pairs
}

func generateElements(rng *rand.Rand) []ElementQuestion {
	perm := rng.Perm(len(elementPool))
	questions := make([]ElementQuestion, 0, 5)
	for _, idx := range perm[:5] {
		el := elementPool[idx]

		choices := []string{el.Name}
		seen := map[string]bool{el.Name: true}
		for len(choices) < 4 {
			other := elementPool[rng.Intn(len(elementPool))].Name
			if seen[other] {
				continue
			}
			seen[other] = true
			choices = append(choices, other)
		}
		rng.Shuffle(len(choices), func(i, j int) {
			choices[i], choices[j] = choices[j], choices[i]
		})

		questions = append(questions, ElementQuestion{
			Symbol:  el.Symbol,
			Answer:  el.Name,
			Choices: choices,
		})
	}
	return questions
}

func generateVocabulary(rng *rand.Rand) []VocabularyWord {
	perm := rng.Perm(len(vocabularyPool))
	words := make([]VocabularyWord, 0, 3)
	for _, idx := range perm[:3] {
		entry := vocabularyPool[idx]
		words = append(words, VocabularyWord{
			Scrambled: scramble(rng, entry.Word),
			Answer:    entry.Word,
			Hint:      entry.Hint,
		})
	}
	return words
}

// scramble shuffles the letters of word, retrying a few times so the
// result usually differs from the original.
func scramble(rng *rand.Rand, word string) string {
	letters := []rune(word)
	for attempt := 0; attempt < 10; attempt++ {
		rng.Shuffle(len(letters), func(i, j int) {
			letters[i], letters[j] = letters[j], letters[i]
		})
		if string(letters) != word {
			break
		}
	}
	return string(letters)
}

func generateTimeline(rng *rand.Rand) *Timeline {
	perm := rng.Perm(len(timelinePool))
	events := make([]TimelineEvent, 0, 4)
	for _, idx := range perm[:4] {
		events = append(events, timelinePool[idx])
	}

	order := []int{0, 1, 2, 3}
	sort.SliceStable(order, func(i, j int) bool {
		return events[order[i]].Year < events[order[j]].Year
	})

	return &Timeline{Events: events, CorrectOrder: order}
}
