package model

import (
	"bytes"
	"fmt"
	"time"
)

const naiveLayout = "2006-01-02T15:04:05.999999999"

// Допустимые форматы дат в порядке проверки.
var dateTimeLayouts = []string{time.RFC3339Nano, naiveLayout, time.DateOnly}

// DateTime - момент времени, который сериализуется обратно в том же формате, в котором был получен:
// с часовым поясом, без него или только дата.
type DateTime struct {
	time.Time
	layout string
}

// NewDateTime создает DateTime в формате RFC 3339.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

// ParseDateTime разбирает строку в одном из допустимых форматов.
func ParseDateTime(s string) (DateTime, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateTime{Time: t, layout: layout}, nil
		}
	}
	return DateTime{}, fmt.Errorf("invalid datetime %q: expected RFC 3339, YYYY-MM-DDTHH:MM:SS or YYYY-MM-DD", s)
}

func (d DateTime) String() string {
	layout := d.layout
	if layout == "" {
		layout = time.RFC3339Nano
	}
	return d.Time.Format(layout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid datetime %s: expected a string", data)
	}
	parsed, err := ParseDateTime(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
