package attributes

import "fmt"

var gen3Ribbons = []string{
	"Cool", "Cool Super", "Cool Hyper", "Cool Master",
	"Beauty", "Beauty Super", "Beauty Hyper", "Beauty Master",
	"Cute", "Cute Super", "Cute Hyper", "Cute Master",
	"Smart", "Smart Super", "Smart Hyper", "Smart Master",
	"Tough", "Tough Super", "Tough Hyper", "Tough Master",
	"Champion", "Winning", "Victory", "Artist", "Effort",
	"Marine", "Land", "Sky", "Country", "National", "Earth", "World",
}

// Kalos-era ribbons. Beauty Master keeps its Generation III identity.
var gen6Ribbons = []string{
	"Kalos Champion", "Sinnoh Champion", "Best Friends", "Training",
	"Skillful Battler", "Expert Battler", "Alert", "Shock", "Downcast",
	"Careless", "Relax", "Snooze", "Smile", "Gorgeous", "Royal",
	"Gorgeous Royal", "Footprint", "Record", "Legend", "Classic", "Premier",
	"Event", "Birthday", "Special", "Souvenir", "Wishing", "Battle Champion",
	"Regional Champion", "National Champion", "World Champion",
	"Hoenn Champion", "Contest Star", "Coolness Master",
	"Cuteness Master", "Cleverness Master", "Toughness Master",
}

func hexByte(v uint8) string { return fmt.Sprintf("0x%02X", v) }
