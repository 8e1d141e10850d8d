package services

// teamInfo is the static NFL franchise reference the upstream responses are
// resolved against.
type teamInfo struct {
	Name     string
	Stadium  string
	Division string
}

var nflTeams = map[string]teamInfo{
	"ARI": {"Arizona Cardinals", "State Farm Stadium", "NFC West"},
	"ATL": {"Atlanta Falcons", "Mercedes-Benz Stadium", "NFC South"},
	"BAL": {"Baltimore Ravens", "M&T Bank Stadium", "AFC North"},
	"BUF": {"Buffalo Bills", "Highmark Stadium", "AFC East"},
	"CAR": {"Carolina Panthers", "Bank of America Stadium", "NFC South"},
	"CHI": {"Chicago Bears", "Soldier Field", "NFC North"},
	"CIN": {"Cincinnati Bengals", "Paycor Stadium", "AFC North"},
	"CLE": {"Cleveland Browns", "Cleveland Browns Stadium", "AFC North"},
	"DAL": {"Dallas Cowboys", "AT&T Stadium", "NFC East"},
	"DEN": {"Denver Broncos", "Empower Field at Mile High", "AFC West"},
	"DET": {"Detroit Lions", "Ford Field", "NFC North"},
	"GB":  {"Green Bay Packers", "Lambeau Field", "NFC North"},
	"HOU": {"Houston Texans", "NRG Stadium", "AFC South"},
	"IND": {"Indianapolis Colts", "Lucas Oil Stadium", "AFC South"},
	"JAX": {"Jacksonville Jaguars", "EverBank Stadium", "AFC South"},
	"KC":  {"Kansas City Chiefs", "Arrowhead Stadium", "AFC West"},
	"LAC": {"Los Angeles Chargers", "SoFi Stadium", "AFC West"},
	"LAR": {"Los Angeles Rams", "SoFi Stadium", "NFC West"},
	"LV":  {"Las Vegas Raiders", "Allegiant Stadium", "AFC West"},
	"MIA": {"Miami Dolphins", "Hard Rock Stadium", "AFC East"},
	"MIN": {"Minnesota Vikings", "U.S. Bank Stadium", "NFC North"},
	"NE":  {"New England Patriots", "Gillette Stadium", "AFC East"},
	"NO":  {"New Orleans Saints", "Caesars Superdome", "NFC South"},
	"NYG": {"New York Giants", "MetLife Stadium", "NFC East"},
	"NYJ": {"New York Jets", "MetLife Stadium", "AFC East"},
	"PHI": {"Philadelphia Eagles", "Lincoln Financial Field", "NFC East"},
	"PIT": {"Pittsburgh Steelers", "Acrisure Stadium", "AFC North"},
	"SEA": {"Seattle Seahawks", "Lumen Field", "NFC West"},
	"SF":  {"San Francisco 49ers", "Levi's Stadium", "NFC West"},
	"TB":  {"Tampa Bay Buccaneers", "Raymond James Stadium", "NFC South"},
	"TEN": {"Tennessee Titans", "Nissan Stadium", "AFC South"},
	"WSH": {"Washington Commanders", "FedExField", "NFC East"},
}

func fullTeamName(abbreviation string) string {
	if info, ok := nflTeams[abbreviation]; ok {
		return info.Name
	}
	return abbreviation
}

func venueName(homeAbbreviation string, neutralSite bool) string {
	if neutralSite {
		return "Neutral Site"
	}
	if info, ok := nflTeams[homeAbbreviation]; ok {
		return info.Stadium
	}
	return "Unknown Stadium"
}

// sameDivision reports whether two teams share an organizational division.
func sameDivision(a, b string) bool {
	infoA, okA := nflTeams[a]
	infoB, okB := nflTeams[b]
	return okA && okB && infoA.Division == infoB.Division
}
