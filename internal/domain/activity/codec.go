package activity

import (
	"fmt"
	"strconv"
	"strings"

	"bakhaar/internal/core/apperror"
)

// FormatAction renders the legacy "<Direction>: <qty> <name>" encoding.
func FormatAction(dir Direction, qty int64, name string) string {
	return fmt.Sprintf("%s: %d %s", dir, qty, name)
}

// ParseAction decodes the legacy action encoding into its typed parts.
//
// The encoding is "<Direction>: <qty> <name...>". Item names may contain
// spaces. Unknown direction tokens are rejected rather than silently treated
// as outbound; callers ingesting legacy rows treat the error as "skip".
func ParseAction(s string) (Direction, int64, string, error) {
	parts := strings.SplitN(s, ": ", 2)
	if len(parts) < 2 {
		return "", 0, "", apperror.NewParse("action must be \"<direction>: <qty> <name>\"").
			WithDetail("action", s)
	}

	dir := Direction(parts[0])
	if !dir.Valid() {
		return "", 0, "", apperror.NewParse("unknown direction token").
			WithDetail("direction", parts[0])
	}

	detail := strings.SplitN(parts[1], " ", 2)
	qty, err := strconv.ParseInt(detail[0], 10, 64)
	if err != nil {
		return "", 0, "", apperror.NewParse("quantity is not an integer").
			WithDetail("quantity", detail[0]).
			WithCause(err)
	}

	name := ""
	if len(detail) == 2 {
		name = detail[1]
	}
	if name == "" {
		return "", 0, "", apperror.NewParse("item name is missing").
			WithDetail("action", s)
	}

	return dir, qty, name, nil
}

// FromLegacy builds an Activity from a stored legacy row. Rows whose action
// text does not parse come back with zeroed movement fields; Parsable()
// reports false for them and reconstruction skips them without error.
func FromLegacy(date, action, category, recipient, user, comment string, status Status) Activity {
	a := Activity{
		Date:         date,
		ItemCategory: category,
		Recipient:    recipient,
		User:         user,
		Comment:      comment,
		Status:       status,
	}
	if dir, qty, name, err := ParseAction(action); err == nil {
		a.Direction = dir
		a.Quantity = qty
		a.ItemName = name
	}
	return a
}
