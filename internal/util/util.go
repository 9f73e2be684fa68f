// Package util holds small helpers shared by the use cases and delivery layer.
package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// DateLayout is the format of date_ref bucket keys.
	DateLayout = "2006-01-02"

	shortIDLength = 12
)

// ShortID returns a short opaque random identifier for users and log rows.
func ShortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:shortIDLength]
}

// DateRef returns the date bucket of t in loc.
func DateRef(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}

	return t.In(loc).Format(DateLayout)
}

// ParseDateRef validates a YYYY-MM-DD bucket key.
func ParseDateRef(s string) (string, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", errors.Wrapf(err, "invalid date %q", s)
	}

	return d.Format(DateLayout), nil
}

// PreviousDateRef returns the bucket before dateRef, or "" when dateRef is not a date.
func PreviousDateRef(dateRef string) string {
	d, err := time.Parse(DateLayout, dateRef)
	if err != nil {
		return ""
	}

	return d.AddDate(0, 0, -1).Format(DateLayout)
}

// LoadLocation resolves an IANA zone name; empty means UTC.
func LoadLocation(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown timezone %q", name)
	}

	return loc, nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
