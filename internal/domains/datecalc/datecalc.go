// Package datecalc does calendar date arithmetic on ISO dates (YYYY-MM-DD).
package datecalc

import (
	"strings"
	"time"

	"toolbox/go-backend/internal/domains/contracts"
	"toolbox/go-backend/pkg/models"
)

const Layout = "2006-01-02"

// MaxShiftDays keeps shifted dates within four-digit years.
const MaxShiftDays = 3_000_000

func Parse(value string) (time.Time, error) {
	d, err := time.Parse(Layout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, contracts.InvalidInputf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return d, nil
}

// Diff returns the whole days from a to b; it is negative when b precedes a.
func Diff(a, b string) (models.DateDiff, error) {
	da, err := Parse(a)
	if err != nil {
		return models.DateDiff{}, err
	}
	db, err := Parse(b)
	if err != nil {
		return models.DateDiff{}, err
	}
	days := int((db.Unix() - da.Unix()) / 86400)
	return models.DateDiff{A: da.Format(Layout), B: db.Format(Layout), Days: days}, nil
}

func Add(date string, days int) (models.DateShift, error) {
	d, err := Parse(date)
	if err != nil {
		return models.DateShift{}, err
	}
	if days > MaxShiftDays || days < -MaxShiftDays {
		return models.DateShift{}, contracts.InvalidInputf("days must be within ±%d", MaxShiftDays)
	}
	shifted := d.AddDate(0, 0, days)
	if shifted.Year() < 1 || shifted.Year() > 9999 {
		return models.DateShift{}, contracts.InvalidInput("resulting date is out of range")
	}
	return models.DateShift{Date: d.Format(Layout), Days: days, Result: shifted.Format(Layout)}, nil
}

// Today returns the current UTC date in ISO form for form defaults.
func Today(now func() time.Time) string {
	if now == nil {
		now = time.Now
	}
	return now().UTC().Format(Layout)
}
