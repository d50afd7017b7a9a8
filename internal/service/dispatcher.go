package service

import (
	"strings"

	"github.com/johnaaiton-art/sambo-habit-tracker/internal/habit"
)

const (
	accessDeniedReply   = "🔒 Access denied."
	unknownCommandReply = "❓ Unknown command. Type /help."

	helpReply = `🥋 Sambo Habit Tracker Bot
📊 ACTIVITY HABITS:
/1 - Prayer with first water
/2 - Qi Gong routine
/3 - Ball freestyling
/4 - Run/Stretch (20 min)
/5 - Strength/Stretch
🍽 CONSUMPTION (text message):
x, xx, xxx - Coffee (+ optional cost)
y, yy, yyy - Sugary drinks
z, zz, zzz - Flour products
Example: "xx 150" = 2 coffees, 150 rub
🌍 LANGUAGE LEARNING:
ch - Chinese session
he - Hebrew session
ta - Tatar session
Type /help to see this message again.`
)

// Dispatcher authorizes inbound commands and routes them to the matching
// recorder. The single configured caller ID is the entire authorization
// model; a mismatch gets a fixed denial without touching the store.
type Dispatcher struct {
	tracker      *Tracker
	authorizedID string
}

func NewDispatcher(tracker *Tracker, authorizedID string) *Dispatcher {
	return &Dispatcher{
		tracker:      tracker,
		authorizedID: authorizedID,
	}
}

// Dispatch classifies a free-text command: exact language code first, then
// a consumption letter by first character, otherwise unknown. The recorder's
// message is relayed verbatim whether or not it succeeded.
func (d *Dispatcher) Dispatch(callerID, text string) string {
	if callerID != d.authorizedID {
		return accessDeniedReply
	}

	text = strings.ToLower(strings.TrimSpace(text))
	if _, ok := habit.LanguageByCode(text); ok {
		_, msg := d.tracker.RecordLanguage(callerID, text)
		return msg
	}
	if text != "" && habit.IsConsumptionLetter(text[0]) {
		_, msg := d.tracker.RecordConsumption(callerID, text)
		return msg
	}
	return unknownCommandReply
}

// DispatchActivity routes a numbered activity command.
func (d *Dispatcher) DispatchActivity(callerID string, habitID int) string {
	if callerID != d.authorizedID {
		return accessDeniedReply
	}
	_, msg := d.tracker.RecordActivity(callerID, habitID)
	return msg
}

// Help returns the command overview sent for /start and /help.
func (d *Dispatcher) Help() string {
	return helpReply
}
