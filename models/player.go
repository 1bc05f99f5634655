package models

// Position holds the world coordinates of a player as reported by the host
type Position struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
	Z float64 `json:"z" bson:"z"`
}

// NearbyPlayer holds a player the host reports as close to the reporter
type NearbyPlayer struct {
	FivemID  int      `json:"fivemId" bson:"fivemId"`
	Name     string   `json:"name" bson:"name"`
	Distance *float64 `json:"distance,omitempty" bson:"distance,omitempty"`
}

// PlayerData holds the reporter identity returned by requestPlayerData
type PlayerData struct {
	FivemID       int               `json:"fivemId" bson:"fivemId"`
	Name          string            `json:"name" bson:"name"`
	Identifiers   map[string]string `json:"identifiers" bson:"identifiers"`
	Position      *Position         `json:"position,omitempty" bson:"position,omitempty"`
	NearbyPlayers []NearbyPlayer    `json:"nearbyPlayers" bson:"nearbyPlayers"`
}

// IsNearby reports whether the given player id is in the nearby list
func (p PlayerData) IsNearby(fivemID int) bool {
	for _, n := range p.NearbyPlayers {
		if n.FivemID == fivemID {
			return true
		}
	}
	return false
}
