package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/roadtrack/internal/domain"
)

// parsePhaseID accepts a positive phase number, with or without a leading '#'.
func parsePhaseID(input string) (int, error) {
	if len(input) > 0 && input[0] == '#' {
		input = input[1:]
	}
	id, err := strconv.Atoi(input)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid phase %q: expected a positive number", input)
	}
	return id, nil
}

// loadFailure turns a load error into the message shown to the user. A
// corrupt saved document points at reset, anything else at retrying.
func loadFailure(err error) error {
	var le *domain.LoadError
	if !errors.As(err, &le) {
		return err
	}
	var corrupt *domain.CorruptPersistedStateError
	if errors.As(err, &corrupt) {
		return fmt.Errorf("error loading roadmap data: %w\nrun 'roadtrack reset %s' to start the track over", err, le.Track)
	}
	return fmt.Errorf("error loading roadmap data: %w\nretry the command", err)
}
