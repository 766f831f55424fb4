package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimeRange is returned for time ranges not shaped like "HH:MM-HH:MM".
var ErrInvalidTimeRange = errors.New("invalid time range")

// Meeting is one weekly meeting of a section. Start and End are minutes after midnight.
type Meeting struct {
	Day   string
	Start int
	End   int
}

// ParseMeeting parses a day and a "HH:MM-HH:MM" (or "HH:MM - HH:MM") range.
func ParseMeeting(day string, timeRange string) (Meeting, error) {
	from, to, ok := strings.Cut(timeRange, "-")
	if !ok {
		return Meeting{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, timeRange)
	}
	start, err := parseClock(strings.TrimSpace(from))
	if err != nil {
		return Meeting{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, timeRange)
	}
	end, err := parseClock(strings.TrimSpace(to))
	if err != nil {
		return Meeting{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, timeRange)
	}
	return Meeting{Day: strings.TrimSpace(day), Start: start, End: end}, nil
}

func parseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, ErrInvalidTimeRange
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, ErrInvalidTimeRange
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, ErrInvalidTimeRange
	}
	return h*60 + m, nil
}

// TimeRange formats the meeting as "HH:MM-HH:MM".
func (m Meeting) TimeRange() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", m.Start/60, m.Start%60, m.End/60, m.End%60)
}

func (m Meeting) String() string {
	return m.Day + " " + m.TimeRange()
}

type meetingJSON struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

func (m Meeting) MarshalJSON() ([]byte, error) {
	return json.Marshal(meetingJSON{Day: m.Day, Time: m.TimeRange()})
}

func (m *Meeting) UnmarshalJSON(data []byte) error {
	var raw meetingJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseMeeting(raw.Day, raw.Time)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
