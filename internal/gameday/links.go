package gameday

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// The canonical game identifier: gid_YYYY_MM_DD_<away token>_<home token>_<n>
// where each team token is 6 characters, the first 3 being the team's short
// code, and n disambiguates double-headers.
var gidRegex = regexp.MustCompile(`(gid_(\d{4})_(\d{2})_(\d{2})_(\w{6})_(\w{6})_\d)`)

// GameLink is the identity parsed out of a game document location.
type GameLink struct {
	GID       string
	Date      time.Time
	AwayShort string
	HomeShort string
}

// ParseGameLink extracts the canonical identity from a game location string.
func ParseGameLink(link string) (GameLink, error) {
	match := gidRegex.FindStringSubmatch(link)
	if match == nil {
		return GameLink{}, fmt.Errorf("no game identifier in link %q", link)
	}

	year, _ := strconv.Atoi(match[2])
	month, _ := strconv.Atoi(match[3])
	day, _ := strconv.Atoi(match[4])

	return GameLink{
		GID:       match[1],
		Date:      time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC),
		AwayShort: match[5][:3],
		HomeShort: match[6][:3],
	}, nil
}

// DayPath builds the zero-padded index resource path for one calendar day.
func DayPath(day time.Time) string {
	return fmt.Sprintf("year_%04d/month_%02d/day_%02d", day.Year(), int(day.Month()), day.Day())
}
