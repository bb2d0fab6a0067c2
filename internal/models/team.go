package models

// Player is a roster entry as delivered by the data provider.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname,omitempty"`
	TeamID   string `json:"team_id,omitempty"`
	Role     string `json:"role,omitempty"`
	Country  string `json:"country,omitempty"`
}

// Team identity with roster.
type Team struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	ShortName string   `json:"short_name"`
	Region    string   `json:"region,omitempty"`
	Roster    []Player `json:"roster,omitempty"`
}

// RosterIDs returns the set of player IDs on the roster.
func (t Team) RosterIDs() map[string]bool {
	ids := make(map[string]bool, len(t.Roster))
	for _, p := range t.Roster {
		ids[p.ID] = true
	}
	return ids
}
