package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/pkmn/internal/game/pokedex"
	"github.com/cory-johannsen/pkmn/internal/game/typechart"
)

// ErrOrphanOverride is returned by Load when an override row names a species
// or move with no base row.
var ErrOrphanOverride = errors.New("override references unknown entry")

// PokedexRepository persists species and move definitions.
type PokedexRepository struct {
	db *pgxpool.Pool
}

// NewPokedexRepository creates a PokedexRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewPokedexRepository(db *pgxpool.Pool) *PokedexRepository {
	return &PokedexRepository{db: db}
}

// UpsertSpecies writes def and replaces its overrides in one transaction.
//
// Precondition: def must not be nil and must pass Validate.
// Postcondition: The stored row and overrides equal def, or nothing changed.
func (r *PokedexRepository) UpsertSpecies(ctx context.Context, def *pokedex.SpeciesDef) error {
	if err := def.Validate(); err != nil {
		return fmt.Errorf("species %q: %w", def.Name, err)
	}
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		b := def.BaseStats
		_, err := tx.Exec(ctx, `
			INSERT INTO species
				(name, introduced, chance_male, chance_female,
				 hp, attack, defense, speed, special_attack, special_defense, special,
				 abilities, hidden_ability, height, weight, base_friendship)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
			ON CONFLICT (name) DO UPDATE SET
				introduced = EXCLUDED.introduced,
				chance_male = EXCLUDED.chance_male,
				chance_female = EXCLUDED.chance_female,
				hp = EXCLUDED.hp,
				attack = EXCLUDED.attack,
				defense = EXCLUDED.defense,
				speed = EXCLUDED.speed,
				special_attack = EXCLUDED.special_attack,
				special_defense = EXCLUDED.special_defense,
				special = EXCLUDED.special,
				abilities = EXCLUDED.abilities,
				hidden_ability = EXCLUDED.hidden_ability,
				height = EXCLUDED.height,
				weight = EXCLUDED.weight,
				base_friendship = EXCLUDED.base_friendship`,
			def.Name, def.Introduced, def.Gender.ChanceMale, def.Gender.ChanceFemale,
			b.HP, b.Attack, b.Defense, b.Speed, b.SpecialAttack, b.SpecialDefense, b.Special,
			def.Abilities, def.HiddenAbility, def.Height, def.Weight, def.BaseFriendship,
		)
		if err != nil {
			return fmt.Errorf("upserting species %q: %w", def.Name, err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM species_overrides WHERE species_name = $1`, def.Name); err != nil {
			return fmt.Errorf("clearing species overrides: %w", err)
		}
		for _, o := range def.Overrides {
			if o.BaseStats == nil {
				continue
			}
			s := o.BaseStats
			_, err := tx.Exec(ctx, `
				INSERT INTO species_overrides
					(species_name, through_generation,
					 hp, attack, defense, speed, special_attack, special_defense, special)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
				def.Name, o.Through,
				s.HP, s.Attack, s.Defense, s.Speed, s.SpecialAttack, s.SpecialDefense, s.Special,
			)
			if err != nil {
				return fmt.Errorf("inserting species override: %w", err)
			}
		}
		return nil
	})
}

// UpsertMove writes def and replaces its overrides in one transaction.
//
// Precondition: def must not be nil and must pass Validate.
// Postcondition: The stored row and overrides equal def, or nothing changed.
func (r *PokedexRepository) UpsertMove(ctx context.Context, def *pokedex.MoveDef) error {
	if err := def.Validate(); err != nil {
		return fmt.Errorf("move %q: %w", def.Name, err)
	}
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO moves (name, introduced, type, power, pp)
			VALUES ($1,$2,$3,$4,$5)
			ON CONFLICT (name) DO UPDATE SET
				introduced = EXCLUDED.introduced,
				type = EXCLUDED.type,
				power = EXCLUDED.power,
				pp = EXCLUDED.pp`,
			def.Name, def.Introduced, def.Type.String(), def.Power, def.PP,
		)
		if err != nil {
			return fmt.Errorf("upserting move %q: %w", def.Name, err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM move_overrides WHERE move_name = $1`, def.Name); err != nil {
			return fmt.Errorf("clearing move overrides: %w", err)
		}
		for _, o := range def.Overrides {
			var typ *string
			if o.Type != nil {
				s := o.Type.String()
				typ = &s
			}
			_, err := tx.Exec(ctx, `
				INSERT INTO move_overrides (move_name, through_generation, type, power, pp)
				VALUES ($1,$2,$3,$4,$5)`,
				def.Name, o.Through, typ, o.Power, o.PP,
			)
			if err != nil {
				return fmt.Errorf("inserting move override: %w", err)
			}
		}
		return nil
	})
}

// Load reads every species and move into a new in-memory pokedex.
//
// Postcondition: Returns a Memory holding every stored definition, or a
// non-nil error if any row fails to scan or validate.
func (r *PokedexRepository) Load(ctx context.Context) (*pokedex.Memory, error) {
	species, err := r.loadSpecies(ctx)
	if err != nil {
		return nil, err
	}
	moves, err := r.loadMoves(ctx)
	if err != nil {
		return nil, err
	}
	mem := pokedex.NewMemory()
	for _, d := range species {
		if err := mem.RegisterSpecies(d); err != nil {
			return nil, err
		}
	}
	for _, d := range moves {
		if err := mem.RegisterMove(d); err != nil {
			return nil, err
		}
	}
	return mem, nil
}

func (r *PokedexRepository) loadSpecies(ctx context.Context) ([]*pokedex.SpeciesDef, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name, introduced, chance_male, chance_female,
		       hp, attack, defense, speed, special_attack, special_defense, special,
		       abilities, hidden_ability, height, weight, base_friendship
		FROM species ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing species: %w", err)
	}
	defer rows.Close()

	var out []*pokedex.SpeciesDef
	byName := make(map[string]*pokedex.SpeciesDef)
	for rows.Next() {
		var d pokedex.SpeciesDef
		b := &d.BaseStats
		if err := rows.Scan(
			&d.Name, &d.Introduced, &d.Gender.ChanceMale, &d.Gender.ChanceFemale,
			&b.HP, &b.Attack, &b.Defense, &b.Speed, &b.SpecialAttack, &b.SpecialDefense, &b.Special,
			&d.Abilities, &d.HiddenAbility, &d.Height, &d.Weight, &d.BaseFriendship,
		); err != nil {
			return nil, fmt.Errorf("scanning species: %w", err)
		}
		out = append(out, &d)
		byName[d.Name] = &d
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ovRows, err := r.db.Query(ctx, `
		SELECT species_name, through_generation,
		       hp, attack, defense, speed, special_attack, special_defense, special
		FROM species_overrides ORDER BY species_name ASC, through_generation ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing species overrides: %w", err)
	}
	defer ovRows.Close()

	for ovRows.Next() {
		var (
			name string
			o    pokedex.SpeciesOverride
			s    pokedex.BaseStats
		)
		if err := ovRows.Scan(
			&name, &o.Through,
			&s.HP, &s.Attack, &s.Defense, &s.Speed, &s.SpecialAttack, &s.SpecialDefense, &s.Special,
		); err != nil {
			return nil, fmt.Errorf("scanning species override: %w", err)
		}
		d, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("species %q: %w", name, ErrOrphanOverride)
		}
		o.BaseStats = &s
		d.Overrides = append(d.Overrides, o)
	}
	return out, ovRows.Err()
}

func (r *PokedexRepository) loadMoves(ctx context.Context) ([]*pokedex.MoveDef, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name, introduced, type, power, pp
		FROM moves ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing moves: %w", err)
	}
	defer rows.Close()

	var out []*pokedex.MoveDef
	byName := make(map[string]*pokedex.MoveDef)
	for rows.Next() {
		var (
			d   pokedex.MoveDef
			typ string
		)
		if err := rows.Scan(&d.Name, &d.Introduced, &typ, &d.Power, &d.PP); err != nil {
			return nil, fmt.Errorf("scanning move: %w", err)
		}
		if d.Type, err = typechart.ParseType(typ); err != nil {
			return nil, fmt.Errorf("move %q: %w", d.Name, err)
		}
		out = append(out, &d)
		byName[d.Name] = &d
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ovRows, err := r.db.Query(ctx, `
		SELECT move_name, through_generation, type, power, pp
		FROM move_overrides ORDER BY move_name ASC, through_generation ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing move overrides: %w", err)
	}
	defer ovRows.Close()

	for ovRows.Next() {
		var (
			name string
			o    pokedex.MoveOverride
			typ  *string
		)
		if err := ovRows.Scan(&name, &o.Through, &typ, &o.Power, &o.PP); err != nil {
			return nil, fmt.Errorf("scanning move override: %w", err)
		}
		d, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("move %q: %w", name, ErrOrphanOverride)
		}
		if typ != nil {
			t, err := typechart.ParseType(*typ)
			if err != nil {
				return nil, fmt.Errorf("move %q override: %w", name, err)
			}
			o.Type = &t
		}
		d.Overrides = append(d.Overrides, o)
	}
	return out, ovRows.Err()
}
