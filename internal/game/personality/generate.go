package personality

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/rng"
	"github.com/cory-johannsen/pkmn/internal/game/stats"
	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

// AbilitySlot selects which of a species' two regular abilities applies.
type AbilitySlot int

const (
	AnyAbility AbilitySlot = iota
	FirstAbility
	SecondAbility
)

func (s AbilitySlot) String() string {
	switch s {
	case FirstAbility:
		return "first"
	case SecondAbility:
		return "second"
	default:
		return "any"
	}
}

// AbilitySlotFromPersonality returns the slot selected by the personality's
// lowest bit.
func AbilitySlotFromPersonality(pid uint32) AbilitySlot {
	if pid&1 == 0 {
		return FirstAbility
	}
	return SecondAbility
}

// Request describes the personality value to synthesize.
type Request struct {
	TrainerID uint32
	Profile   GenderProfile
	// Gender is AnyGender when unconstrained.
	Gender Gender
	Shiny  bool
	// Nature is nil when unconstrained.
	Nature  *stats.Nature
	Ability AbilitySlot
	// MaxAttempts bounds the rejection loop; 0 means unbounded.
	MaxAttempts int
}

func (r Request) validate() error {
	if err := r.Profile.Validate(); err != nil {
		return err
	}
	if r.Gender < AnyGender || r.Gender > Genderless {
		return validate.Invalid("gender", r.Gender.String(), "unknown gender")
	}
	if !r.Profile.Allows(r.Gender) {
		return validate.Invalid("gender", r.Gender.String(), "not possible for this species' gender ratio")
	}
	if r.Nature != nil {
		if err := stats.CheckNature(*r.Nature); err != nil {
			return err
		}
	}
	if r.Ability < AnyAbility || r.Ability > SecondAbility {
		return validate.Invalid("ability slot", strconv.Itoa(int(r.Ability)), "unknown ability slot")
	}
	return validate.CheckMinimum("max_attempts", r.MaxAttempts, 0)
}

// lowByteRange returns the inclusive low-byte range that yields the requested
// gender, or ok=false when the low byte is free.
func (r Request) lowByteRange() (lo, hi int, ok bool) {
	if r.Gender != Male && r.Gender != Female {
		return 0, 0, false
	}
	t, gendered := r.Profile.Threshold(generation.Modern)
	if !gendered {
		return 0, 0, false
	}
	if r.Gender == Female {
		return 0, t - 1, true
	}
	return t, 0xFF, true
}

func (r Request) accepts(pid uint32) bool {
	if r.Gender != AnyGender {
		g, err := ModernGender(r.Profile, pid)
		if err != nil || g != r.Gender {
			return false
		}
	}
	if IsShiny(pid, r.TrainerID) != r.Shiny {
		return false
	}
	if r.Nature != nil && stats.NatureFromPersonality(pid) != *r.Nature {
		return false
	}
	if r.Ability != AnyAbility && AbilitySlotFromPersonality(pid) != r.Ability {
		return false
	}
	return true
}

// Generate synthesizes a personality value satisfying every constraint in req.
//
// Each candidate is shaped before it is tested: the low byte is drawn inside
// the requested gender band, bit 0 carries the ability slot, and bits 19..31
// are flipped to force or break shininess without touching the low byte. Only
// the nature is left to chance, so about 25 candidates are drawn on average.
//
// Precondition: req.Gender is allowed by req.Profile.
// Postcondition: the result satisfies req, or the error wraps
// ErrGenerationExhausted after req.MaxAttempts candidates.
func Generate(req Request, src rng.Source) (uint32, error) {
	pid, _, err := generate(req, src)
	return pid, err
}

func generate(req Request, src rng.Source) (uint32, int, error) {
	if err := req.validate(); err != nil {
		return 0, 0, err
	}
	lo, hi, genderBand := req.lowByteRange()
	for attempt := 1; req.MaxAttempts == 0 || attempt <= req.MaxAttempts; attempt++ {
		pid := rng.Uint32(src)

		if genderBand {
			low := rng.Between(src, lo, hi)
			if req.Ability != AnyAbility {
				low = low&^1 | abilityBit(req.Ability)
				if low < lo {
					low += 2
				} else if low > hi {
					low -= 2
				}
			}
			pid = pid&^0xFF | uint32(low)
		} else if req.Ability != AnyAbility {
			pid = pid&^1 | uint32(abilityBit(req.Ability))
		}

		if req.Shiny {
			residue := shinyResidue(pid, req.TrainerID)
			pid ^= uint32(residue&^0x7) << 16
		} else if IsShiny(pid, req.TrainerID) {
			pid ^= 1 << 19
		}

		if req.accepts(pid) {
			return pid, attempt, nil
		}
	}
	return 0, req.MaxAttempts, &validate.ExhaustedError{Attempts: req.MaxAttempts}
}

func abilityBit(s AbilitySlot) int {
	if s == SecondAbility {
		return 1
	}
	return 0
}

// Generator synthesizes personalities with a default attempt budget and logs
// every result.
type Generator struct {
	logger      *zap.Logger
	maxAttempts int
}

// NewGenerator creates a Generator. maxAttempts applies to requests that do
// not set their own budget; 0 leaves them unbounded.
//
// Precondition: logger must be non-nil; maxAttempts >= 0.
func NewGenerator(logger *zap.Logger, maxAttempts int) *Generator {
	return &Generator{logger: logger, maxAttempts: maxAttempts}
}

// Generate runs Generate with src and logs the outcome.
//
// Postcondition: successes are logged at debug level, exhaustion at warn level.
func (g *Generator) Generate(req Request, src rng.Source) (uint32, error) {
	if req.MaxAttempts == 0 {
		req.MaxAttempts = g.maxAttempts
	}
	pid, attempts, err := generate(req, src)
	if err != nil {
		g.logger.Warn("personality generation failed",
			zap.Stringer("gender", req.Gender),
			zap.Bool("shiny", req.Shiny),
			zap.Stringer("ability", req.Ability),
			zap.Int("max_attempts", req.MaxAttempts),
			zap.Error(err),
		)
		return 0, err
	}
	g.logger.Debug("personality generated",
		zap.Uint32("personality", pid),
		zap.Int("attempts", attempts),
		zap.Stringer("gender", req.Gender),
		zap.Bool("shiny", req.Shiny),
		zap.Stringer("nature", stats.NatureFromPersonality(pid)),
		zap.Stringer("ability", req.Ability),
	)
	return pid, nil
}
