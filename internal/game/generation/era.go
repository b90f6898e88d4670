package generation

import "strconv"

type eraInfo struct {
	name           string
	maxEV          int
	maxIV          int
	hasPersonality bool
	trainerIDBits  int
}

var eraTable = [...]eraInfo{
	GameBoy:         {"Game Boy", 65535, 15, false, 16},
	AdvanceGamecube: {"Advance/GameCube", 255, 31, true, 32},
	Modern:          {"Modern", 255, 31, true, 32},
}

var _ = [1]struct{}{}[len(eraTable)-int(numEras)]

// Eras returns every era, oldest first.
func Eras() []Era { return []Era{GameBoy, AdvanceGamecube, Modern} }

func (e Era) String() string {
	if e < 0 || e >= numEras {
		return "Era(" + strconv.Itoa(int(e)) + ")"
	}
	return eraTable[e].name
}

// MaxEV is the largest effort value (stat experience in the Game Boy era).
func (e Era) MaxEV() int { return eraTable[e].maxEV }

// MaxIV is the largest individual value.
func (e Era) MaxIV() int { return eraTable[e].maxIV }

// HasPersonality reports whether records in this era carry a 32-bit personality.
func (e Era) HasPersonality() bool { return eraTable[e].hasPersonality }

// TrainerIDBits is 16 for Game Boy games and 32 (public + secret) afterward.
func (e Era) TrainerIDBits() int { return eraTable[e].trainerIDBits }
