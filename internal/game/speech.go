package game

import (
	"fmt"
	"strings"
)

const (
	commandHint    = "To hear the definition please say definition, to hear it in a sentence please say example, to repeat the word please say repeat, or say skip for a new word."
	unrecognized   = "Command not recognized. Please try a different command."
	noWordRightNow = "Sorry, no word is available right now."
	goodbye        = "Ending game. Goodbye."
)

func welcomeSpeech(t Table) string {
	return "Welcome to Spelling Bee. Please select difficulty by saying " + t.spokenList() + "."
}

func selectDifficultySpeech(t Table) string {
	return "No difficulty selected. Please select difficulty by saying " + t.spokenList() + "."
}

func difficultyReprompt(t Table) string {
	return "Please select difficulty by saying " + t.spokenList() + "."
}

func wordSpeech(word string) string {
	return fmt.Sprintf("The word is %s.", word)
}

func spellReprompt(word string) string {
	return fmt.Sprintf("Please spell the word %s, or say a command.", word)
}

func stillSpeech(word string) string {
	return fmt.Sprintf("Sorry, no new word is available right now. The word is still %s.", word)
}

// spellOut renders "cat" as "c. a. t."
func spellOut(word string) string {
	rs := []rune(word)
	letters := make([]string, len(rs))
	for i, r := range rs {
		letters[i] = string(r)
	}
	return strings.Join(letters, ". ") + "."
}
