package typechart

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/gocarina/gocsv"

	"github.com/cory-johannsen/pkmn/internal/game/generation"
)

var (
	//go:embed data/gen1.csv
	gen1CSV []byte
	//go:embed data/modern.csv
	modernCSV []byte
)

// efficacy is one non-neutral cell of a chart, as a percentage.
type efficacy struct {
	Attacking    Type `csv:"attacking_type"`
	Defending    Type `csv:"defending_type"`
	DamageFactor int  `csv:"damage_factor"`
}

type pair struct{ attacking, defending Type }

type chart map[pair]int

// Shadow move effectiveness as used by XD.
const (
	shadowVersusShadow = 50
	shadowVersusOther  = 200
)

var loadCharts = sync.OnceValues(func() ([2]chart, error) {
	var charts [2]chart
	for i, data := range [][]byte{gen1CSV, modernCSV} {
		var rows []*efficacy
		if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
			return charts, fmt.Errorf("parsing type chart %d: %w", i, err)
		}
		c := make(chart, len(rows))
		for _, r := range rows {
			c[pair{r.Attacking, r.Defending}] = r.DamageFactor
		}
		charts[i] = c
	}
	return charts, nil
})

// DamageModifier returns the multiplier an attacking type applies against a
// single defending type in generation gen.
//
// Precondition: gen in [1,6]; both types exist in gen.
// Postcondition: the result is one of 0, 0.5, 1 or 2.
func DamageModifier(gen int, attacking, defending Type) (float64, error) {
	if err := generation.CheckGeneration(gen); err != nil {
		return 0, err
	}
	for _, t := range []struct {
		field string
		value Type
	}{{"attacking type", attacking}, {"defending type", defending}} {
		if err := CheckAvailable(t.field, t.value, gen); err != nil {
			return 0, err
		}
	}

	// Before Generation VI, Ghost and Dark were resisted by Steel.
	if gen <= 5 && (attacking == Ghost || attacking == Dark) && defending == Steel {
		return 0.5, nil
	}
	if attacking == Shadow {
		if defending == Shadow {
			return shadowVersusShadow / 100.0, nil
		}
		return shadowVersusOther / 100.0, nil
	}

	charts, err := loadCharts()
	if err != nil {
		return 0, err
	}
	c := charts[1]
	if gen == 1 {
		c = charts[0]
	}
	if factor, ok := c[pair{attacking, defending}]; ok {
		return float64(factor) / 100, nil
	}
	return 1, nil
}

// DualDamageModifier multiplies the modifiers against both defending types.
// defending2 may be None for single-typed defenders.
func DualDamageModifier(gen int, attacking, defending1, defending2 Type) (float64, error) {
	m1, err := DamageModifier(gen, attacking, defending1)
	if err != nil {
		return 0, err
	}
	if defending2 == None || defending2 == defending1 {
		return m1, nil
	}
	m2, err := DamageModifier(gen, attacking, defending2)
	if err != nil {
		return 0, err
	}
	return m1 * m2, nil
}
