package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate interpreta uma data no formato YYYY-MM-DD. Texto vazio retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}
