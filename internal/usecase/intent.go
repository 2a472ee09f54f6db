package usecase

import "strings"

// Intent is the classified meaning of an inbound chat message.
type Intent int

const (
	IntentUnrecognized Intent = iota
	IntentShowProfile
	IntentHunt
	IntentForge
	IntentShowBag
	IntentHeal
	IntentClaimDaily
)

// DefaultForgePrompt is used when a forge command carries no prompt text.
const DefaultForgePrompt = "A fantasy hero"

// Command is a classified message. Prompt is only set for IntentForge.
type Command struct {
	Intent Intent
	Prompt string
}

// classification keywords in priority order; first match wins
var intentKeywords = []struct {
	keyword string
	intent  Intent
}{
	{"profile", IntentShowProfile},
	{"hunt", IntentHunt},
	{"forge", IntentForge},
	{"bag", IntentShowBag},
	{"heal", IntentHeal},
	{"daily", IntentClaimDaily},
}

// Classify maps message text to a command by case-insensitive substring
// matching. Pure function, no side effects.
func Classify(text string) Command {
	lowered := strings.ToLower(text)

	for _, k := range intentKeywords {
		if !strings.Contains(lowered, k.keyword) {
			continue
		}
		cmd := Command{Intent: k.intent}
		if k.intent == IntentForge {
			cmd.Prompt = strings.TrimSpace(strings.Replace(lowered, "forge", "", 1))
			if cmd.Prompt == "" {
				cmd.Prompt = DefaultForgePrompt
			}
		}
		return cmd
	}

	return Command{Intent: IntentUnrecognized}
}
