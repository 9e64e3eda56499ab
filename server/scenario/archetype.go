package scenario

import (
	"strings"

	"rangelab/server/ranges"
)

// Archetype is a stock opponent profile. VPIP doubles as the starting base
// range percentage; PFR and aggression factor are descriptive only.
type Archetype struct {
	Name             string  `json:"name"`
	VPIP             int     `json:"vpip"`
	PFR              int     `json:"pfr"`
	AggressionFactor float64 `json:"aggression_factor"`
	Description      string  `json:"description"`
}

var Archetypes = []Archetype{
	{Name: "rock", VPIP: 10, PFR: 6, AggressionFactor: 1.0, Description: "plays almost nothing, raises only monsters"},
	{Name: "nit", VPIP: 14, PFR: 10, AggressionFactor: 1.5, Description: "tight and risk-averse"},
	{Name: "tag", VPIP: 22, PFR: 18, AggressionFactor: 2.5, Description: "tight-aggressive regular"},
	{Name: "lag", VPIP: 28, PFR: 23, AggressionFactor: 3.0, Description: "loose-aggressive, applies constant pressure"},
	{Name: "maniac", VPIP: 45, PFR: 35, AggressionFactor: 4.5, Description: "raises relentlessly with any two"},
	{Name: "fish", VPIP: 40, PFR: 12, AggressionFactor: 0.8, Description: "loose-passive, calls too much"},
	{Name: "station", VPIP: 50, PFR: 8, AggressionFactor: 0.5, Description: "calls down with anything"},
}

// ArchetypeByName looks an archetype up case-insensitively.
func ArchetypeByName(name string) (Archetype, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, a := range Archetypes {
		if a.Name == name {
			return a, true
		}
	}
	return Archetype{}, false
}

// BaseRange is the starting range percentage the adjusters work from.
func (a Archetype) BaseRange() int { return a.VPIP }

// Range materializes the archetype's VPIP as a top-percentile matrix.
func (a Archetype) Range() *ranges.Matrix {
	return ranges.TopPercent(float64(a.VPIP))
}
