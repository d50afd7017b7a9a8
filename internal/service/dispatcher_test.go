package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *Tracker) {
	t.Helper()
	tracker, _ := newTestTracker(t)
	return NewDispatcher(tracker, testUserID), tracker
}

func TestDispatchDeniesForeignCaller(t *testing.T) {
	dispatcher, tracker := newTestDispatcher(t)

	assert.Equal(t, "🔒 Access denied.", dispatcher.Dispatch("99", "ch"))
	assert.Equal(t, "🔒 Access denied.", dispatcher.DispatchActivity("99", 1))

	// Denied commands never reach the store
	rows, err := tracker.store.Sheet("Language").AllRows()
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	rows, err = tracker.store.Sheet("Activity").AllRows()
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestDispatchClassifiesLanguageBeforeConsumption(t *testing.T) {
	dispatcher, _ := newTestDispatcher(t)

	// "ch" is an exact language code; "c" would not be
	reply := dispatcher.Dispatch(testUserID, "ch")
	assert.Equal(t, "✓ Chinese session #1 recorded at 14:03!", reply)
}

func TestDispatchRoutesConsumptionByFirstLetter(t *testing.T) {
	dispatcher, _ := newTestDispatcher(t)

	reply := dispatcher.Dispatch(testUserID, "zz 40")
	assert.Equal(t, "✓ Flour products x2 recorded (40 rub)! Total today: 2", reply)

	// Malformed consumption still routes to the recorder, which rejects it
	reply = dispatcher.Dispatch(testUserID, "xy")
	assert.Equal(t, "Invalid format. Use: x, xx, xx 150, y 75, z", reply)
}

func TestDispatchNormalizesText(t *testing.T) {
	dispatcher, _ := newTestDispatcher(t)

	reply := dispatcher.Dispatch(testUserID, "  CH ")
	assert.Equal(t, "✓ Chinese session #1 recorded at 14:03!", reply)
}

func TestDispatchUnknownCommand(t *testing.T) {
	dispatcher, _ := newTestDispatcher(t)

	for _, text := range []string{"hello", "", "qq", "12"} {
		assert.Equal(t, "❓ Unknown command. Type /help.", dispatcher.Dispatch(testUserID, text))
	}
}

func TestDispatchActivity(t *testing.T) {
	dispatcher, _ := newTestDispatcher(t)

	reply := dispatcher.DispatchActivity(testUserID, 4)
	assert.Equal(t, "✓ 20 minute run and stretch recorded at 14:03!", reply)

	reply = dispatcher.DispatchActivity(testUserID, 7)
	assert.Equal(t, "Invalid habit number. Use 1-5.", reply)
}

func TestHelpListsAllCommands(t *testing.T) {
	dispatcher, _ := newTestDispatcher(t)

	help := dispatcher.Help()
	for _, want := range []string{"/1", "/5", "xx 150", "ch", "he", "ta"} {
		assert.Contains(t, help, want)
	}
}
