// Package exhibit holds the static table of Science Centre exhibits and
// the synonym matching used to resolve free-text navigation requests.
package exhibit

import "strings"

// Exhibit is one entry in the museum's navigation table.
type Exhibit struct {
	DisplayName string   `json:"displayName"`
	Synonyms    []string `json:"synonyms"`
}

// Exhibits is the full navigation table. Display names are the canonical
// identifiers used by the on-site wayfinding system.
var Exhibits = []Exhibit{
	{DisplayName: "Climate Change", Synonyms: []string{"climate change", "climate"}},
	{DisplayName: "Dialogue with Time", Synonyms: []string{"dialog", "with time"}},
	{DisplayName: "Earth Alive", Synonyms: []string{"earth", "alive"}},
	{DisplayName: "Energy Story", Synonyms: []string{"energy", "story"}},
	{DisplayName: "Everyday Science", Synonyms: []string{"everyday", "science"}},
	{DisplayName: "Future Makers", Synonyms: []string{"future", "maker"}},
	{DisplayName: "Going Viral", Synonyms: []string{"viral", "virus"}},
	{DisplayName: "Know Your Poo", Synonyms: []string{"poo", "bowl"}},
	{DisplayName: "Laser Maze", Synonyms: []string{"laser"}},
	{DisplayName: "Phobia", Synonyms: []string{"scare", "phobia", "scary"}},
	{DisplayName: "Mirror Maze", Synonyms: []string{"mirror"}},
	{DisplayName: "Savage Garden", Synonyms: []string{"garden", "plant", "flower", "savage"}},
	{DisplayName: "Smart Nation PlayScape", Synonyms: []string{"smart", "nation", "playscape"}},
	{DisplayName: "Some Call It Science", Synonyms: []string{"it science", "some call"}},
	{DisplayName: "MEP-04", Synonyms: []string{"mind", "eye", "Mind", "mind's", "Mind's", "Eye"}},
	{DisplayName: "Tinkering Studio", Synonyms: []string{"tinker", "tinkering"}},
	{DisplayName: "Urban Mutations", Synonyms: []string{"urban", "mutate", "mutation"}},
	{DisplayName: "Quanta School", Synonyms: []string{"quanta", "quantum", "school"}},
	{DisplayName: "Animal Zone", Synonyms: []string{"animal", "zone"}},
	{DisplayName: "Bioethics", Synonyms: []string{"bioethic"}},
	{DisplayName: "ATRIUM", Synonyms: []string{"atrium", "ATRIUM"}},
	{DisplayName: "Male Toilet", Synonyms: []string{"toilet"}},
	{DisplayName: "Disabled Toilet", Synonyms: []string{"disabled", "disabled toi", "disabled wash"}},
	{DisplayName: "Mechanics Alive", Synonyms: []string{"Mechanic", "Mechanics", "mechanic"}},
}

// Match resolves a free-text navigation request to an exhibit by
// case-insensitive synonym containment. The first matching table entry
// wins; ok is false when nothing matches.
func Match(query string) (Exhibit, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Exhibit{}, false
	}
	for _, ex := range Exhibits {
		for _, syn := range ex.Synonyms {
			if strings.Contains(q, strings.ToLower(syn)) {
				return ex, true
			}
		}
	}
	return Exhibit{}, false
}
