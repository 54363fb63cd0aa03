package search

import (
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// Cursor is the decoded resume position: the composite sort key of the last row
// of the previous page. The query builder continues strictly after it. The
// encoded form is opaque to callers; only this package reads its insides.
type Cursor struct {
	DayOfWeekUTC    *int
	StartMinutesUTC *int
	ScheduleID      uuid.UUID
}

// cursorWire is the token payload: a JSON object, then base64url without
// padding. Field order is fixed by the struct so encoding is deterministic.
type cursorWire struct {
	ScheduleID      string `json:"schedule_id"`
	DayOfWeekUTC    *int   `json:"day_of_week_utc,omitempty"`
	StartMinutesUTC *int   `json:"start_minutes_utc,omitempty"`
}

// EncodeCursor serializes a resume position into an opaque token. The same
// position always yields the same token.
func EncodeCursor(c Cursor) string {
	payload, _ := json.Marshal(cursorWire{
		ScheduleID:      c.ScheduleID.String(),
		DayOfWeekUTC:    c.DayOfWeekUTC,
		StartMinutesUTC: c.StartMinutesUTC,
	})
	return base64.RawURLEncoding.EncodeToString(payload)
}

// DecodeCursor reverses the token encoding into the raw decoded mapping,
// without interpreting the fields. Fails when the token is not valid base64url
// or the payload is not a JSON object.
func DecodeCursor(token string) (map[string]any, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, &CursorError{Reason: "not base64url", Err: err}
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &CursorError{Reason: "payload is not a JSON object", Err: err}
	}
	return fields, nil
}

// ParseCursor decodes and validates a client-supplied token. An empty token
// means "first page" and yields a nil cursor. Everything else must be a
// well-formed payload whose schedule_id parses as a UUID; the two optional
// minute/day fields must be integers when present. No lookup is performed
// against storage: a stale but well-formed cursor simply matches nothing.
func ParseCursor(token string) (*Cursor, error) {
	if token == "" {
		return nil, nil
	}

	fields, err := DecodeCursor(token)
	if err != nil {
		return nil, err
	}

	rawID, ok := fields["schedule_id"]
	if !ok {
		return nil, &CursorError{Reason: "missing schedule_id"}
	}
	idStr, ok := rawID.(string)
	if !ok {
		return nil, &CursorError{Reason: "schedule_id is not a string"}
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, &CursorError{Reason: "schedule_id is not a valid identifier", Err: err}
	}

	c := &Cursor{ScheduleID: id}
	for key := range fields {
		switch key {
		case "schedule_id":
		case "day_of_week_utc":
			v, err := cursorInt(fields[key])
			if err != nil {
				return nil, &CursorError{Reason: "day_of_week_utc is not an integer", Err: err}
			}
			c.DayOfWeekUTC = v
		case "start_minutes_utc":
			v, err := cursorInt(fields[key])
			if err != nil {
				return nil, &CursorError{Reason: "start_minutes_utc is not an integer", Err: err}
			}
			c.StartMinutesUTC = v
		default:
			return nil, &CursorError{Reason: "unexpected field " + key}
		}
	}
	return c, nil
}

// cursorInt narrows a decoded JSON value to an integral number.
func cursorInt(v any) (*int, error) {
	f, ok := v.(float64)
	if !ok {
		return nil, errNotNumber
	}
	n := int(f)
	if float64(n) != f {
		return nil, errNotInteger
	}
	return &n, nil
}

var (
	errNotNumber  = errors.New("value is not a number")
	errNotInteger = errors.New("value is not an integer")
)
