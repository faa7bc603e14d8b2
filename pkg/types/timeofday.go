package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimeOfDay wall-clock время с точностью до минуты, хранится как минуты с полуночи.
// Валидный диапазон для хранения 0..1439 ("00:00".."23:59"); промежуточные значения
// арифметики (например, конец слота ровно в полночь) могут выходить за 1439.
type TimeOfDay int

const minutesPerDay = 24 * 60

// NewTimeOfDay создает TimeOfDay из часов и минут
func NewTimeOfDay(hours, minutes int) TimeOfDay {
	return TimeOfDay(hours*60 + minutes)
}

// NewTimeOfDayFromTime извлекает wall-clock время из time.Time
func NewTimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// ParseTimeOfDay парсит строку строго формата "HH:MM"
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time format %q, expected HH:MM", s)
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("invalid time format %q, expected HH:MM", s)
		}
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return NewTimeOfDay(hours, minutes), nil
}

// Minutes возвращает минуты с полуночи
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// AddMinutes возвращает время через m минут
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	return t + TimeOfDay(m)
}

// IsBefore строгое сравнение: t < other
func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t < other
}

// IsAfter строгое сравнение: t > other
func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t > other
}

// Validate проверяет, что значение попадает в валидный суточный диапазон
func (t TimeOfDay) Validate() error {
	if t < 0 || t >= minutesPerDay {
		return fmt.Errorf("time of day %d minutes out of range [0, %d)", int(t), minutesPerDay)
	}
	return nil
}

// String форматирует время как "HH:MM"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// At совмещает дату и время дня в time.Time (локальная зона даты)
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), int(t)/60, int(t)%60, 0, 0, date.Location())
}

// MarshalJSON сериализует время как строку "HH:MM"
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON парсит время из строки "HH:MM"
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer, в БД время хранится как "HH:MM"
func (t TimeOfDay) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t.String(), nil
}

// Scan реализует sql.Scanner
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}
