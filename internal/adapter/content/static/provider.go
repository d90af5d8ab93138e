package staticcontent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"castaway/internal/domain/tribe"
)

const contentFileName = "content.json"

// Provider serves the contest content tables. With no Root configured it
// falls back to the built-in defaults; with a Root it reads content.json
// from that directory once per call, so edits show up without a restart.
type Provider struct {
	Root string
}

func (p Provider) Content(_ context.Context) (tribe.ContestContent, error) {
	if p.Root == "" {
		return defaultContent(), nil
	}

	b, err := os.ReadFile(filepath.Join(p.Root, contentFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultContent(), nil
		}
		return tribe.ContestContent{}, fmt.Errorf("read contest content: %w", err)
	}

	var content tribe.ContestContent
	if err := json.Unmarshal(b, &content); err != nil {
		return tribe.ContestContent{}, fmt.Errorf("parse contest content: %w", err)
	}
	fillDefaults(&content)
	return content, nil
}

// fillDefaults keeps a partial override file usable: any table left empty
// falls back to the built-in one.
func fillDefaults(content *tribe.ContestContent) {
	defaults := defaultContent()
	if len(content.Traits) == 0 {
		content.Traits = defaults.Traits
	}
	if len(content.Riddles) == 0 {
		content.Riddles = defaults.Riddles
	}
	if len(content.Puzzles) == 0 {
		content.Puzzles = defaults.Puzzles
	}
	if len(content.Anagrams) == 0 {
		content.Anagrams = defaults.Anagrams
	}
}

func defaultContent() tribe.ContestContent {
	return tribe.ContestContent{
		Traits: tribe.DefaultTraitTable().ValidTraits(),
		Riddles: []tribe.QA{
			{Prompt: "I grant safety, but remain hidden unless found. What am I?", Answer: "idol"},
			{Prompt: "With fire and parchment, I speak for the tribe. What am I?", Answer: "tribal council"},
			{Prompt: "The more you win me, the longer you stay in the game. What am I?", Answer: "immunity"},
		},
		Puzzles: []tribe.QA{
			{Prompt: "There are three players left: Jerri, Rupert, and Cirie. Jerri and Rupert both voted for Cirie. Cirie didn't vote for Jerri. Who was eliminated?", Answer: "cirie"},
			{Prompt: "You find a Hidden Immunity Idol. Do you play it before or after the votes are read?", Answer: "before"},
			{Prompt: "On an island, I help you live / boil me first before I give", Answer: "water"},
		},
		Anagrams: []tribe.Anagram{
			{Phrase: "fire represents life", Scrambled: "perresents file rife"},
			{Phrase: "the tribe has spoken", Scrambled: "sah nopesk brite the"},
			{Phrase: "final three", Scrambled: "treeh nifla"},
		},
	}
}
