package memory

import "github.com/diamondstats/gameday/internal/domain/team"

// SeedTeams is the pre-populated team registry the importer consults. Short
// codes are the first three characters of the gid team tokens.
func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Los Angeles Angels", Short: "ana"},
		{ID: 2, Name: "Arizona Diamondbacks", Short: "ari"},
		{ID: 3, Name: "Atlanta Braves", Short: "atl"},
		{ID: 4, Name: "Baltimore Orioles", Short: "bal"},
		{ID: 5, Name: "Boston Red Sox", Short: "bos"},
		{ID: 6, Name: "Chicago White Sox", Short: "cha"},
		{ID: 7, Name: "Chicago Cubs", Short: "chn"},
		{ID: 8, Name: "Cincinnati Reds", Short: "cin"},
		{ID: 9, Name: "Cleveland Indians", Short: "cle"},
		{ID: 10, Name: "Colorado Rockies", Short: "col"},
		{ID: 11, Name: "Detroit Tigers", Short: "det"},
		{ID: 12, Name: "Florida Marlins", Short: "flo"},
		{ID: 13, Name: "Houston Astros", Short: "hou"},
		{ID: 14, Name: "Kansas City Royals", Short: "kca"},
		{ID: 15, Name: "Los Angeles Dodgers", Short: "lan"},
		{ID: 16, Name: "Milwaukee Brewers", Short: "mil"},
		{ID: 17, Name: "Minnesota Twins", Short: "min"},
		{ID: 18, Name: "New York Yankees", Short: "nya"},
		{ID: 19, Name: "New York Mets", Short: "nyn"},
		{ID: 20, Name: "Oakland Athletics", Short: "oak"},
		{ID: 21, Name: "Philadelphia Phillies", Short: "phi"},
		{ID: 22, Name: "Pittsburgh Pirates", Short: "pit"},
		{ID: 23, Name: "San Diego Padres", Short: "sdn"},
		{ID: 24, Name: "Seattle Mariners", Short: "sea"},
		{ID: 25, Name: "San Francisco Giants", Short: "sfn"},
		{ID: 26, Name: "St. Louis Cardinals", Short: "sln"},
		{ID: 27, Name: "Tampa Bay Rays", Short: "tba"},
		{ID: 28, Name: "Texas Rangers", Short: "tex"},
		{ID: 29, Name: "Toronto Blue Jays", Short: "tor"},
		{ID: 30, Name: "Washington Nationals", Short: "was"},
	}
}
