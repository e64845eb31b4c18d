package team

import "fmt"

// Team is one franchise from the pre-populated registry. The importer only
// looks teams up by their three-letter short code; it never creates them.
type Team struct {
	ID    int64
	Name  string
	Short string
}

func (t Team) Validate() error {
	if t.Short == "" {
		return fmt.Errorf("team short code is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
