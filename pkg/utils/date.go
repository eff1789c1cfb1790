package utils

import "time"

// ParsePeriod interpreta um período mensal no formato mm-yyyy e retorna o
// primeiro dia do mês em UTC
func ParsePeriod(period string) (*time.Time, error) {
	var date time.Time

	if period != "" {
		incomingDate, err := time.Parse("01-2006", period)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// EndOfMonth retorna o último dia do mês da data informada
func EndOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location()).
		AddDate(0, 1, -1)
}
