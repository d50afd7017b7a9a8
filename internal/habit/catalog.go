// Package habit holds the static catalogs of tracked habits: the numbered
// daily activities, the consumption letters and the language codes. The
// catalogs are compiled in and never persisted; the store only ever sees
// their column labels.
package habit

// Activity is a set-once-per-day habit triggered by a numbered command.
type Activity struct {
	ID     int
	Column string
	Name   string
}

// Consumption is an accumulating count with an optional running cost,
// triggered by a repeated-letter message like "xx 150".
type Consumption struct {
	Letter      byte
	CountColumn string
	CostColumn  string
	Name        string
}

// Language is an accumulating session counter triggered by a two-letter code.
type Language struct {
	Code   string
	Column string
	Name   string
}

var activities = map[int]Activity{
	1: {ID: 1, Column: "Prayer", Name: "Prayer with first water"},
	2: {ID: 2, Column: "Qi Gong", Name: "Qi Gong routine"},
	3: {ID: 3, Column: "Ball", Name: "Freestyling on the ball"},
	4: {ID: 4, Column: "Run/Stretch", Name: "20 minute run and stretch"},
	5: {ID: 5, Column: "Strength/Stretch", Name: "Strengthening and stretching"},
}

var consumptions = map[byte]Consumption{
	'x': {Letter: 'x', CountColumn: "Coffee (x)", CostColumn: "Coffee Cost", Name: "Coffee"},
	'y': {Letter: 'y', CountColumn: "Sugary (y)", CostColumn: "Sugary Cost", Name: "Sugary drinks"},
	'z': {Letter: 'z', CountColumn: "Flour (z)", CostColumn: "Flour Cost", Name: "Flour products"},
}

var languages = map[string]Language{
	"ch": {Code: "ch", Column: "Chinese (ch)", Name: "Chinese"},
	"he": {Code: "he", Column: "Hebrew (he)", Name: "Hebrew"},
	"ta": {Code: "ta", Column: "Tatar (ta)", Name: "Tatar"},
}

func ActivityByID(id int) (Activity, bool) {
	a, ok := activities[id]
	return a, ok
}

func ConsumptionByLetter(letter byte) (Consumption, bool) {
	c, ok := consumptions[letter]
	return c, ok
}

func LanguageByCode(code string) (Language, bool) {
	l, ok := languages[code]
	return l, ok
}

// IsConsumptionLetter reports whether b selects one of the consumption habits.
func IsConsumptionLetter(b byte) bool {
	_, ok := consumptions[b]
	return ok
}
