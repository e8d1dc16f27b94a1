// Package save decodes persisted team, player and manager records, filling
// fields introduced after the record was written with safe defaults.
package save

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ardakvanc11/fmtest-sub003/internal/factory"
	"github.com/ardakvanc11/fmtest-sub003/internal/model"
)

// CurrentVersion is the snapshot format this package writes.
const CurrentVersion = 1

// Defaults for fields missing from older records.
const (
	DefaultReputation      = 1.0
	DefaultTrust           = 50
	DefaultInjuryProneness = 10
)

// ErrUnsupportedVersion is returned for snapshots newer than CurrentVersion.
var ErrUnsupportedVersion = errors.New("unsupported snapshot version")

// Snapshot is a whole saved game.
type Snapshot struct {
	Version int                   `json:"version"`
	Teams   []model.Team          `json:"teams"`
	Manager *model.ManagerProfile `json:"manager,omitempty"`
}

// DecodePlayer decodes one player. Missing morale and condition default to a
// fresh player's values; missing collections become empty.
func DecodePlayer(data []byte) (model.Player, error) {
	p := model.Player{
		Morale:          factory.DefaultMorale,
		Condition:       factory.DefaultCondition,
		InjuryProneness: DefaultInjuryProneness,
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Player{}, fmt.Errorf("decode player: %w", err)
	}
	if p.InjuryHistory == nil {
		p.InjuryHistory = []model.InjuryRecord{}
	}
	return p, nil
}

type teamEnvelope struct {
	Players []json.RawMessage `json:"players"`
}

// DecodeTeam decodes a team and each of its players.
func DecodeTeam(data []byte) (model.Team, error) {
	t := model.Team{Reputation: DefaultReputation}
	if err := json.Unmarshal(data, &t); err != nil {
		return model.Team{}, fmt.Errorf("decode team: %w", err)
	}
	var env teamEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return model.Team{}, fmt.Errorf("decode team players: %w", err)
	}
	t.Players = make([]model.Player, 0, len(env.Players))
	for i, raw := range env.Players {
		p, err := DecodePlayer(raw)
		if err != nil {
			return model.Team{}, fmt.Errorf("player %d: %w", i, err)
		}
		t.Players = append(t.Players, p)
	}
	fillTeam(&t)
	return t, nil
}

func fillTeam(t *model.Team) {
	if t.PendingTransfers == nil {
		t.PendingTransfers = []model.PendingTransfer{}
	}
	if t.Finance.Income == nil {
		t.Finance.Income = map[string]float64{}
	}
	if t.Finance.Expense == nil {
		t.Finance.Expense = map[string]float64{}
	}
}

// DecodeManager decodes the manager profile. Missing stats stay zero and
// missing trust scores start neutral.
func DecodeManager(data []byte) (model.ManagerProfile, error) {
	m := model.ManagerProfile{
		Trust: model.Trust{Board: DefaultTrust, Fans: DefaultTrust, Players: DefaultTrust},
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return model.ManagerProfile{}, fmt.Errorf("decode manager: %w", err)
	}
	if m.StaffRelations == nil {
		m.StaffRelations = []model.Relation{}
	}
	if m.PlayerRelations == nil {
		m.PlayerRelations = []model.Relation{}
	}
	if m.MonthlyLedger == nil {
		m.MonthlyLedger = map[string]model.LedgerEntry{}
	}
	return m, nil
}

type snapshotEnvelope struct {
	Version int               `json:"version"`
	Teams   []json.RawMessage `json:"teams"`
	Manager json.RawMessage   `json:"manager"`
}

// DecodeSnapshot decodes a saved game. A missing version is read as version 1.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var env snapshotEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if env.Version == 0 {
		env.Version = CurrentVersion
	}
	if env.Version > CurrentVersion {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
	}
	s := Snapshot{Version: env.Version, Teams: make([]model.Team, 0, len(env.Teams))}
	for i, raw := range env.Teams {
		t, err := DecodeTeam(raw)
		if err != nil {
			return Snapshot{}, fmt.Errorf("team %d: %w", i, err)
		}
		s.Teams = append(s.Teams, t)
	}
	if len(env.Manager) > 0 && string(env.Manager) != "null" {
		m, err := DecodeManager(env.Manager)
		if err != nil {
			return Snapshot{}, err
		}
		s.Manager = &m
	}
	return s, nil
}

// Encode marshals a record field for field. Snapshots are stamped with CurrentVersion.
func Encode(v any) ([]byte, error) {
	if s, ok := v.(Snapshot); ok {
		s.Version = CurrentVersion
		v = s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return b, nil
}
