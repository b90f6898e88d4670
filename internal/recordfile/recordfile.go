// Package recordfile reads and writes conversion records as YAML documents.
package recordfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/pkmn/internal/game/attributes"
	"github.com/cory-johannsen/pkmn/internal/game/convert"
	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/personality"
	"github.com/cory-johannsen/pkmn/internal/game/stats"
)

// statKeys are the YAML keys of spread entries.
var statKeys = map[stats.Kind]string{
	stats.HP:             "hp",
	stats.Attack:         "attack",
	stats.Defense:        "defense",
	stats.Speed:          "speed",
	stats.Special:        "special",
	stats.SpecialAttack:  "special_attack",
	stats.SpecialDefense: "special_defense",
}

// File is the on-disk form of a convert.Record.
type File struct {
	Game       string         `yaml:"game"`
	Species    string         `yaml:"species"`
	Form       string         `yaml:"form,omitempty"`
	Nickname   string         `yaml:"nickname,omitempty"`
	Level      int            `yaml:"level"`
	Experience int            `yaml:"experience"`
	Moves      []MoveFile     `yaml:"moves"`
	EVs        map[string]int `yaml:"evs"`
	IVs        map[string]int `yaml:"ivs"`
	Stats      map[string]int `yaml:"stats,omitempty"`
	Trainer    TrainerFile    `yaml:"trainer"`
	Condition  string         `yaml:"condition,omitempty"`
	HeldItem   string         `yaml:"held_item,omitempty"`
	Friendship int            `yaml:"friendship,omitempty"`
	Modern     *ModernFile    `yaml:"modern,omitempty"`
}

// MoveFile is one move slot.
type MoveFile struct {
	Name string `yaml:"name"`
	PP   int    `yaml:"pp"`
}

// TrainerFile is the original trainer.
type TrainerFile struct {
	Name   string                `yaml:"name"`
	ID     personality.TrainerID `yaml:"id"`
	Gender string                `yaml:"gender,omitempty"`
}

// ModernFile holds the Generation III+ attributes.
type ModernFile struct {
	Personality uint32         `yaml:"personality"`
	Ability     string         `yaml:"ability"`
	Ball        string         `yaml:"ball"`
	Markings    []string       `yaml:"markings,omitempty"`
	Ribbons     []string       `yaml:"ribbons,omitempty"`
	Contest     map[string]int `yaml:"contest,omitempty"`
}

// ReportFile is the on-disk form of a convert.Report.
type ReportFile struct {
	ID                     string   `yaml:"id"`
	From                   string   `yaml:"from"`
	To                     string   `yaml:"to"`
	SecretIDSynthesized    bool     `yaml:"secret_id_synthesized,omitempty"`
	SecretIDDropped        bool     `yaml:"secret_id_dropped,omitempty"`
	PersonalitySynthesized bool     `yaml:"personality_synthesized,omitempty"`
	ShininessLost          bool     `yaml:"shininess_lost,omitempty"`
	Dropped                []string `yaml:"dropped,omitempty"`
	Defaulted              []string `yaml:"defaulted,omitempty"`
}

// ReadFile decodes the record stored at path.
func ReadFile(path string) (convert.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return convert.Record{}, fmt.Errorf("reading %q: %w", path, err)
	}
	rec, err := Decode(bytes.NewReader(data))
	if err != nil {
		return convert.Record{}, fmt.Errorf("parsing %q: %w", path, err)
	}
	return rec, nil
}

// Decode reads one YAML record document. Unknown keys are rejected.
//
// A Game Boy era record may omit the HP IV; it is then derived from the
// other four IVs.
//
// Postcondition: the returned record has well-formed spreads for its game.
// Range checks are left to convert.Validate.
func Decode(r io.Reader) (convert.Record, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return convert.Record{}, errors.New("empty record document")
		}
		return convert.Record{}, err
	}
	return f.Record()
}

// Record converts the file form into a convert.Record.
func (f File) Record() (convert.Record, error) {
	g, err := generation.ParseGame(f.Game)
	if err != nil {
		return convert.Record{}, err
	}
	era := generation.Classify(g)
	rec := convert.Record{
		Game:       g,
		Species:    f.Species,
		Form:       f.Form,
		Nickname:   f.Nickname,
		Level:      f.Level,
		Experience: f.Experience,
		HeldItem:   f.HeldItem,
		Friendship: f.Friendship,
		Trainer:    convert.OriginalTrainer{Name: f.Trainer.Name, ID: f.Trainer.ID},
	}
	for _, m := range f.Moves {
		rec.Moves = append(rec.Moves, convert.Move{Name: m.Name, PP: m.PP})
	}

	ivs := f.IVs
	if _, ok := ivs[statKeys[stats.HP]]; era == generation.GameBoy && !ok {
		ivs = withDerivedHP(ivs)
	}
	if rec.EVs, err = spread("evs", stats.InputLayout(era), f.EVs); err != nil {
		return convert.Record{}, err
	}
	if rec.IVs, err = spread("ivs", stats.InputLayout(era), ivs); err != nil {
		return convert.Record{}, err
	}
	if len(f.Stats) > 0 {
		if rec.Stats, err = spread("stats", stats.ComputedLayout(g), f.Stats); err != nil {
			return convert.Record{}, err
		}
	}
	if f.Trainer.Gender != "" {
		if rec.Trainer.Gender, err = personality.ParseGender(f.Trainer.Gender); err != nil {
			return convert.Record{}, err
		}
	}
	if f.Condition != "" {
		if rec.Condition, err = attributes.ParseCondition(f.Condition); err != nil {
			return convert.Record{}, err
		}
	}
	if f.Modern != nil {
		if rec.Modern, err = f.Modern.fields(); err != nil {
			return convert.Record{}, err
		}
	}
	return rec, nil
}

func (m *ModernFile) fields() (*convert.ModernFields, error) {
	out := &convert.ModernFields{
		Personality: m.Personality,
		Ability:     m.Ability,
		Ball:        m.Ball,
		Ribbons:     append([]string(nil), m.Ribbons...),
	}
	for _, name := range m.Markings {
		mk, err := attributes.ParseMarking(name)
		if err != nil {
			return nil, err
		}
		out.Markings = append(out.Markings, mk)
	}
	if len(m.Contest) > 0 {
		out.Contest = make(map[attributes.ContestStat]int, len(m.Contest))
		for name, v := range m.Contest {
			c, err := attributes.ParseContestStat(name)
			if err != nil {
				return nil, err
			}
			out.Contest[c] = v
		}
	}
	return out, nil
}

func withDerivedHP(ivs map[string]int) map[string]int {
	out := make(map[string]int, len(ivs)+1)
	for k, v := range ivs {
		out[k] = v
	}
	out[statKeys[stats.HP]] = stats.GBHPIV(
		ivs[statKeys[stats.Attack]], ivs[statKeys[stats.Defense]],
		ivs[statKeys[stats.Speed]], ivs[statKeys[stats.Special]],
	)
	return out
}

func spread(field string, layout stats.Layout, values map[string]int) (stats.Spread, error) {
	byKind := make(map[stats.Kind]int, len(values))
	for key, v := range values {
		k, ok := kindForKey(key)
		if !ok {
			return stats.Spread{}, fmt.Errorf("%s: unknown stat key %q", field, key)
		}
		byKind[k] = v
	}
	s, err := stats.NewSpread(layout, byKind)
	if err != nil {
		return stats.Spread{}, fmt.Errorf("%s: %w", field, err)
	}
	return s, nil
}

func kindForKey(key string) (stats.Kind, bool) {
	for k, name := range statKeys {
		if name == key {
			return k, true
		}
	}
	return 0, false
}

func spreadMap(s stats.Spread) map[string]int {
	out := make(map[string]int)
	for k, v := range s.Map() {
		out[statKeys[k]] = v
	}
	return out
}

// FromRecord converts rec into its file form.
func FromRecord(rec convert.Record) File {
	f := File{
		Game:       rec.Game.String(),
		Species:    rec.Species,
		Form:       rec.Form,
		Nickname:   rec.Nickname,
		Level:      rec.Level,
		Experience: rec.Experience,
		EVs:        spreadMap(rec.EVs),
		IVs:        spreadMap(rec.IVs),
		Trainer:    TrainerFile{Name: rec.Trainer.Name, ID: rec.Trainer.ID},
		HeldItem:   rec.HeldItem,
		Friendship: rec.Friendship,
	}
	for _, m := range rec.Moves {
		f.Moves = append(f.Moves, MoveFile{Name: m.Name, PP: m.PP})
	}
	if rec.Stats.Sum() > 0 {
		f.Stats = spreadMap(rec.Stats)
	}
	if rec.Trainer.Gender != personality.AnyGender {
		f.Trainer.Gender = rec.Trainer.Gender.String()
	}
	if rec.Condition != attributes.NoCondition {
		f.Condition = rec.Condition.String()
	}
	if m := rec.Modern; m != nil {
		mf := &ModernFile{
			Personality: m.Personality,
			Ability:     m.Ability,
			Ball:        m.Ball,
			Ribbons:     append([]string(nil), m.Ribbons...),
		}
		for _, mk := range m.Markings {
			mf.Markings = append(mf.Markings, mk.String())
		}
		if len(m.Contest) > 0 {
			mf.Contest = make(map[string]int, len(m.Contest))
			for c, v := range m.Contest {
				mf.Contest[c.String()] = v
			}
		}
		f.Modern = mf
	}
	return f
}

// FromReport converts rep into its file form.
func FromReport(rep convert.Report) ReportFile {
	return ReportFile{
		ID:                     rep.ID.String(),
		From:                   rep.From.String(),
		To:                     rep.To.String(),
		SecretIDSynthesized:    rep.SecretIDSynthesized,
		SecretIDDropped:        rep.SecretIDDropped,
		PersonalitySynthesized: rep.PersonalitySynthesized,
		ShininessLost:          rep.ShininessLost,
		Dropped:                rep.Dropped,
		Defaulted:              rep.Defaulted,
	}
}

// Encode writes rec as a YAML document, followed by rep as a second document
// when rep is non-nil.
func Encode(w io.Writer, rec convert.Record, rep *convert.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromRecord(rec)); err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	if rep != nil {
		if err := enc.Encode(FromReport(*rep)); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
	}
	return enc.Close()
}
