package entity

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day in the host's local calendar. It is a comparable
// value type, so two dates can be checked with ==. The zero value means
// "no date".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func Today() Date {
	return DateOf(time.Now())
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// Next returns the following calendar day, rolling over months and years.
func (d Date) Next() Date {
	return DateOf(d.Time().AddDate(0, 0, 1))
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("date must be a quoted YYYY-MM-DD string")
	}
	t, err := time.ParseInLocation(dateLayout, string(data[1:len(data)-1]), time.Local)
	if err != nil {
		return errors.New("parsing date error: " + err.Error())
	}
	*d = DateOf(t)
	return nil
}
