package calendar

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// LoadLocation resolves an IANA zone name. Empty or "Local" means the process zone.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", name, err)
	}
	return loc, nil
}

// LocationFromEnv reads APP_TIMEZONE, falling back to the process zone when it is
// unset or unknown.
func LocationFromEnv() *time.Location {
	loc, err := LoadLocation(os.Getenv("APP_TIMEZONE"))
	if err != nil {
		log.Printf("[calendar] %v, using local time zone", err)
		return time.Local
	}
	return loc
}
