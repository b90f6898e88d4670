// Package battle implements the variable move-power formulas, Hidden Power,
// critical hits and base damage.
//
// Every formula is integer arithmetic on validated inputs; out-of-domain
// inputs are rejected instead of producing a power.
package battle

import (
	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/validate"
)

func checkHP(prefix string, current, max int) error {
	if err := validate.CheckMinimum(prefix+"_max_hp", max, 1); err != nil {
		return err
	}
	return validate.CheckBounds(prefix+"_current_hp", current, 1, max)
}

// FlailPower is the power of Flail and Reversal. p = 48*current/max selects
// the tier: below 2 → 200, 5 → 150, 10 → 100, 17 → 80, 33 → 40, else 20.
//
// Precondition: 1 <= current <= max.
func FlailPower(attackerCurrentHP, attackerMaxHP int) (int, error) {
	if err := checkHP("attacker", attackerCurrentHP, attackerMaxHP); err != nil {
		return 0, err
	}
	p := 48 * attackerCurrentHP / attackerMaxHP
	switch {
	case p < 2:
		return 200, nil
	case p < 5:
		return 150, nil
	case p < 10:
		return 100, nil
	case p < 17:
		return 80, nil
	case p < 33:
		return 40, nil
	default:
		return 20, nil
	}
}

// ReversalPower is FlailPower.
func ReversalPower(attackerCurrentHP, attackerMaxHP int) (int, error) {
	return FlailPower(attackerCurrentHP, attackerMaxHP)
}

// EruptionPower is the power of Eruption and Water Spout: 150*current/max,
// never below 1.
func EruptionPower(attackerCurrentHP, attackerMaxHP int) (int, error) {
	if err := checkHP("attacker", attackerCurrentHP, attackerMaxHP); err != nil {
		return 0, err
	}
	return max(1, 150*attackerCurrentHP/attackerMaxHP), nil
}

// WaterSpoutPower is EruptionPower.
func WaterSpoutPower(attackerCurrentHP, attackerMaxHP int) (int, error) {
	return EruptionPower(attackerCurrentHP, attackerMaxHP)
}

// BrinePower doubles to 130 when the target is at or below half HP.
func BrinePower(targetCurrentHP, targetMaxHP int) (int, error) {
	if err := checkHP("target", targetCurrentHP, targetMaxHP); err != nil {
		return 0, err
	}
	if 2*targetCurrentHP <= targetMaxHP {
		return 130, nil
	}
	return 65, nil
}

// CrushGripPower is the power of Crush Grip and Wring Out. Generation IV
// adds one to 120*current/max; later generations floor it at 1.
//
// Precondition: gen >= 4.
func CrushGripPower(gen, targetCurrentHP, targetMaxHP int) (int, error) {
	if err := generation.CheckGeneration(gen); err != nil {
		return 0, err
	}
	if err := checkHP("target", targetCurrentHP, targetMaxHP); err != nil {
		return 0, err
	}
	p := 120 * targetCurrentHP / targetMaxHP
	switch generation.EraOf(gen) {
	case generation.GameBoy, generation.AdvanceGamecube:
		return 0, validate.Invalid("generation", roman(gen), "Crush Grip was introduced in Generation IV")
	case generation.Modern:
		if gen == 4 {
			return p + 1, nil
		}
	}
	return max(1, p), nil
}

// WringOutPower is CrushGripPower.
func WringOutPower(gen, targetCurrentHP, targetMaxHP int) (int, error) {
	return CrushGripPower(gen, targetCurrentHP, targetMaxHP)
}

// ElectroBallPower grows with how many times faster the attacker is:
// 4x → 150, 3x → 120, 2x → 80, 1x → 60, slower → 40.
func ElectroBallPower(attackerSpeed, targetSpeed int) (int, error) {
	if err := validate.CheckMinimum("attacker_speed", attackerSpeed, 1); err != nil {
		return 0, err
	}
	if err := validate.CheckMinimum("target_speed", targetSpeed, 1); err != nil {
		return 0, err
	}
	switch {
	case 4*targetSpeed <= attackerSpeed:
		return 150, nil
	case 3*targetSpeed <= attackerSpeed:
		return 120, nil
	case 2*targetSpeed <= attackerSpeed:
		return 80, nil
	case targetSpeed <= attackerSpeed:
		return 60, nil
	default:
		return 40, nil
	}
}

// GyroBallPower is 1 + 25*target/attacker speed, capped at 150.
func GyroBallPower(attackerSpeed, targetSpeed int) (int, error) {
	if err := validate.CheckMinimum("attacker_speed", attackerSpeed, 1); err != nil {
		return 0, err
	}
	if err := validate.CheckMinimum("target_speed", targetSpeed, 1); err != nil {
		return 0, err
	}
	return min(150, 1+25*targetSpeed/attackerSpeed), nil
}

func weightTier(kg float64) int {
	switch {
	case kg < 10:
		return 20
	case kg < 25:
		return 40
	case kg < 50:
		return 60
	case kg < 100:
		return 80
	case kg < 200:
		return 100
	default:
		return 120
	}
}

// LowKickPower has a flat 50 power before Generation III and scales with
// the target's weight in kilograms afterward.
func LowKickPower(gen int, targetWeight float64) (int, error) {
	if err := generation.CheckGeneration(gen); err != nil {
		return 0, err
	}
	if err := validate.CheckFloatMinimum("target_weight", targetWeight, 0, true); err != nil {
		return 0, err
	}
	if generation.EraOf(gen) == generation.GameBoy {
		return 50, nil
	}
	return weightTier(targetWeight), nil
}

// GrassKnotPower scales with the target's weight in kilograms.
func GrassKnotPower(targetWeight float64) (int, error) {
	if err := validate.CheckFloatMinimum("target_weight", targetWeight, 0, true); err != nil {
		return 0, err
	}
	return weightTier(targetWeight), nil
}

// HeatCrashPower is the power of Heat Crash and Heavy Slam, which grows as
// the target gets lighter relative to the attacker.
func HeatCrashPower(attackerWeight, targetWeight float64) (int, error) {
	if err := validate.CheckFloatMinimum("attacker_weight", attackerWeight, 0, true); err != nil {
		return 0, err
	}
	if err := validate.CheckFloatMinimum("target_weight", targetWeight, 0, true); err != nil {
		return 0, err
	}
	switch {
	case 2*targetWeight > attackerWeight:
		return 40, nil
	case 3*targetWeight > attackerWeight:
		return 60, nil
	case 4*targetWeight > attackerWeight:
		return 80, nil
	case 5*targetWeight > attackerWeight:
		return 100, nil
	default:
		return 120, nil
	}
}

// HeavySlamPower is HeatCrashPower.
func HeavySlamPower(attackerWeight, targetWeight float64) (int, error) {
	return HeatCrashPower(attackerWeight, targetWeight)
}

// StatStages holds the positive stat stages that Power Trip and Punishment
// count. Each is in [0,6].
type StatStages struct {
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int
	Evasion        int
	Accuracy       int
}

func (s StatStages) sum() (int, error) {
	total := 0
	for _, st := range []struct {
		name  string
		value int
	}{
		{"attack_stat_stage", s.Attack},
		{"defense_stat_stage", s.Defense},
		{"special_attack_stat_stage", s.SpecialAttack},
		{"special_defense_stat_stage", s.SpecialDefense},
		{"speed_stat_stage", s.Speed},
		{"evasion_stat_stage", s.Evasion},
		{"accuracy_stat_stage", s.Accuracy},
	} {
		if err := validate.CheckBounds(st.name, st.value, 0, 6); err != nil {
			return 0, err
		}
		total += st.value
	}
	return total, nil
}

// PowerTripPower is 20 plus 20 per positive stage on the attacker.
func PowerTripPower(stages StatStages) (int, error) {
	n, err := stages.sum()
	if err != nil {
		return 0, err
	}
	return 20 + 20*n, nil
}

// StoredPowerPower is PowerTripPower.
func StoredPowerPower(stages StatStages) (int, error) {
	return PowerTripPower(stages)
}

// PunishmentPower is 60 plus 20 per positive stage on the target, capped at 200.
func PunishmentPower(stages StatStages) (int, error) {
	n, err := stages.sum()
	if err != nil {
		return 0, err
	}
	return min(200, 60+20*n), nil
}

// ReturnPower is friendship/2.5, never below 1.
func ReturnPower(friendship int) (int, error) {
	if err := validate.CheckBounds("friendship", friendship, 0, 255); err != nil {
		return 0, err
	}
	return max(1, 2*friendship/5), nil
}

// FrustrationPower is (255-friendship)/2.5, never below 1.
func FrustrationPower(friendship int) (int, error) {
	if err := validate.CheckBounds("friendship", friendship, 0, 255); err != nil {
		return 0, err
	}
	return max(1, 2*(255-friendship)/5), nil
}

// SpitUpPower is 100 per Stockpile layer used.
func SpitUpPower(stockpileUsed int) (int, error) {
	if err := validate.CheckBounds("num_stockpile_used", stockpileUsed, 0, 3); err != nil {
		return 0, err
	}
	return 100 * stockpileUsed, nil
}

var trumpCardPowers = [...]int{200, 80, 60, 50, 40}

// TrumpCardPower rises as the move's remaining PP falls.
func TrumpCardPower(ppRemainingAfterUse int) (int, error) {
	if err := validate.CheckBounds("pp_remaining_after_use", ppRemainingAfterUse, 0, len(trumpCardPowers)-1); err != nil {
		return 0, err
	}
	return trumpCardPowers[ppRemainingAfterUse], nil
}

// FuryCutterPowers returns the successive powers of consecutive Fury Cutter
// hits in generation gen.
func FuryCutterPowers(gen int) ([]int, error) {
	if err := generation.CheckGeneration(gen); err != nil {
		return nil, err
	}
	switch {
	case gen == 1:
		return nil, validate.Invalid("generation", roman(gen), "Fury Cutter was introduced in Generation II")
	case gen <= 4:
		return []int{10, 20, 40, 80, 160}, nil
	case gen == 5:
		return []int{20, 40, 80, 160}, nil
	default:
		return []int{40, 80, 160}, nil
	}
}

func roman(gen int) string {
	return [...]string{"0", "I", "II", "III", "IV", "V", "VI"}[gen]
}
