package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// BirthData is a local civil birth moment, its IANA zone name and the place.
// Times carry minute precision.
type BirthData struct {
	Year        int         `json:"year"`
	Month       int         `json:"month"`
	Day         int         `json:"day"`
	Hour        int         `json:"hour"`
	Minute      int         `json:"minute"`
	Zone        string      `json:"zone"`
	Coordinates Coordinates `json:"coordinates"`
}

// ParseBirthData builds BirthData from "YYYY-MM-DD" and "HH:MM" strings.
func ParseBirthData(date, clock, zone string, lat, lon float64) (BirthData, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return BirthData{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidBirth, date)
	}

	c, err := time.Parse(ClockLayout, strings.TrimSpace(clock))
	if err != nil {
		return BirthData{}, fmt.Errorf("%w: time %q must be HH:MM", ErrInvalidBirth, clock)
	}

	b := BirthData{
		Year:        d.Year(),
		Month:       int(d.Month()),
		Day:         d.Day(),
		Hour:        c.Hour(),
		Minute:      c.Minute(),
		Zone:        strings.TrimSpace(zone),
		Coordinates: Coordinates{Lat: lat, Lon: lon},
	}
	if err := b.Validate(); err != nil {
		return BirthData{}, err
	}

	return b, nil
}

func (b BirthData) Validate() error {
	if b.Month < 1 || b.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidBirth, b.Month)
	}

	// time.Date normalizes overflowing days, so a changed day means it did not exist.
	t := time.Date(b.Year, time.Month(b.Month), b.Day, 0, 0, 0, 0, time.UTC)
	if b.Day < 1 || t.Day() != b.Day || int(t.Month()) != b.Month {
		return fmt.Errorf("%w: no day %d in %04d-%02d", ErrInvalidBirth, b.Day, b.Year, b.Month)
	}

	if b.Hour < 0 || b.Hour > 23 || b.Minute < 0 || b.Minute > 59 {
		return fmt.Errorf("%w: time %02d:%02d", ErrInvalidBirth, b.Hour, b.Minute)
	}

	if strings.TrimSpace(b.Zone) == "" {
		return fmt.Errorf("%w: time zone is required", ErrInvalidBirth)
	}

	if err := b.Coordinates.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBirth, err)
	}

	return nil
}

func (b BirthData) DateString() string {
	return fmt.Sprintf("%04d-%02d-%02d", b.Year, b.Month, b.Day)
}

func (b BirthData) ClockString() string {
	return fmt.Sprintf("%02d:%02d", b.Hour, b.Minute)
}

// Key identifies the chart this birth produces; equal keys give equal charts.
func (b BirthData) Key() string {
	return b.DateString() + "T" + b.ClockString() + "|" + b.Zone + "|" + b.Coordinates.String()
}
