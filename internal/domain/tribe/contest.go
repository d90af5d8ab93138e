package tribe

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ResponseWindow is the time the player has to answer an issued contest.
// A late answer fails regardless of correctness.
const ResponseWindow = 30 * time.Second

var ErrNoContent = errors.New("contest content table is empty")

// QA is a prompt with one accepted answer.
type QA struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// Anagram pairs a phrase with its scrambled form.
type Anagram struct {
	Phrase    string `json:"phrase"`
	Scrambled string `json:"scrambled"`
}

// ContestContent holds the fixed tables the contest builder draws from.
type ContestContent struct {
	Traits   []string  `json:"traits"`
	Riddles  []QA      `json:"riddles"`
	Puzzles  []QA      `json:"puzzles"`
	Anagrams []Anagram `json:"anagrams"`
}

var contestKinds = []ContestKind{
	ContestTraitRecall,
	ContestTribeOrder,
	ContestNumberGuess,
	ContestRiddle,
	ContestLogic,
	ContestAnagram,
}

func RandomContestKind(rng Rand) ContestKind {
	return contestKinds[rng.Intn(len(contestKinds))]
}

// BuildContest issues a ticket of the given kind against the current tribe.
func BuildContest(kind ContestKind, mates []Agent, content ContestContent, rng Rand, now time.Time) (ContestTicket, error) {
	ticket := ContestTicket{Kind: kind, IssuedAt: now}

	switch kind {
	case ContestTraitRecall:
		if len(content.Traits) == 0 {
			return ContestTicket{}, ErrNoContent
		}
		ticket.Prompt = "Name one attribute or flaw of any character in the game."
		ticket.ValidAnswers = content.Traits
	case ContestTribeOrder:
		names := mateNames(mates)
		ordered := append([]string(nil), names...)
		sort.Strings(ordered)
		scrambled := sample(rng, names, len(names))
		ticket.Prompt = fmt.Sprintf(
			"List your tribe mates in alphabetical order, separated by commas: %s",
			strings.Join(scrambled, ", "))
		ticket.Answer = strings.Join(ordered, ", ")
	case ContestNumberGuess:
		ticket.Prompt = "Guess the correct number between 1 and 10."
		ticket.Answer = strconv.Itoa(1 + rng.Intn(10))
	case ContestRiddle:
		qa, err := pickQA(content.Riddles, rng)
		if err != nil {
			return ContestTicket{}, err
		}
		ticket.Prompt = qa.Prompt
		ticket.Answer = qa.Answer
	case ContestLogic:
		qa, err := pickQA(content.Puzzles, rng)
		if err != nil {
			return ContestTicket{}, err
		}
		ticket.Prompt = qa.Prompt
		ticket.Answer = qa.Answer
	case ContestAnagram:
		if len(content.Anagrams) == 0 {
			return ContestTicket{}, ErrNoContent
		}
		an := content.Anagrams[rng.Intn(len(content.Anagrams))]
		ticket.Prompt = fmt.Sprintf("Unscramble this phrase: %s", an.Scrambled)
		ticket.Answer = an.Phrase
	default:
		return ContestTicket{}, fmt.Errorf("unsupported contest kind %q", kind)
	}

	return ticket, nil
}

// Grade scores the player's response. Timeouts and malformed numeric input
// are plain failures, indistinguishable from a wrong answer.
func (t ContestTicket) Grade(answer string, now time.Time) bool {
	if now.Sub(t.IssuedAt) > ResponseWindow {
		return false
	}

	got := normalizeAnswer(answer)

	switch t.Kind {
	case ContestTraitRecall:
		for _, valid := range t.ValidAnswers {
			if got == normalizeAnswer(valid) {
				return true
			}
		}
		return false
	case ContestNumberGuess:
		guess, err := strconv.Atoi(got)
		if err != nil {
			return false
		}
		want, err := strconv.Atoi(t.Answer)
		if err != nil {
			return false
		}
		return guess == want
	case ContestTribeOrder:
		return equalNameLists(splitNames(got), splitNames(normalizeAnswer(t.Answer)))
	default:
		return got == normalizeAnswer(t.Answer)
	}
}

func pickQA(pool []QA, rng Rand) (QA, error) {
	if len(pool) == 0 {
		return QA{}, ErrNoContent
	}
	return pool[rng.Intn(len(pool))], nil
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func splitNames(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func equalNameLists(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
