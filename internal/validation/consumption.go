package validation

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidConsumption = errors.New("invalid consumption command")

// ConsumptionCommand is a parsed consumption message like "xx 150":
// a uniform run of one tracked letter, optionally followed by a cost.
type ConsumptionCommand struct {
	Letter byte
	Count  int
	Cost   int
}

// ParseConsumption parses a raw consumption message. The text is trimmed,
// lower-cased and split on whitespace. The first token must consist entirely
// of one repeated character from {x, y, z}; its length is the count. A mixed
// token like "xy" is rejected. The second token, if present, is parsed as a
// decimal cost and truncated to whole units; an unparseable cost falls back
// to 0 rather than failing the command.
func ParseConsumption(text string) (ConsumptionCommand, error) {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	if len(parts) == 0 {
		return ConsumptionCommand{}, ErrInvalidConsumption
	}

	run := parts[0]
	letter := run[0]
	if letter != 'x' && letter != 'y' && letter != 'z' {
		return ConsumptionCommand{}, ErrInvalidConsumption
	}
	for i := 1; i < len(run); i++ {
		if run[i] != letter {
			return ConsumptionCommand{}, ErrInvalidConsumption
		}
	}

	cmd := ConsumptionCommand{Letter: letter, Count: len(run)}
	if len(parts) > 1 {
		if cost, err := strconv.ParseFloat(parts[1], 64); err == nil {
			cmd.Cost = int(cost)
		}
	}
	return cmd, nil
}
