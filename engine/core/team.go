package core

import (
	"fmt"
	"strings"
)

// Team partitions actors into sides
type Team uint8

const (
	TeamBlue Team = iota
	TeamRed
)

// Side assignments
const (
	PlayerTeam = TeamBlue
	EnemyTeam  = TeamRed
)

var teamNames = map[Team]string{
	TeamBlue: "blue",
	TeamRed:  "red",
}

func (t Team) String() string {
	if name, ok := teamNames[t]; ok {
		return name
	}
	return fmt.Sprintf("team(%d)", uint8(t))
}

// IsFoe reports whether actors of t and other fight each other. All
// blocking and targeting rules go through here so more teams only need a
// new predicate.
func (t Team) IsFoe(other Team) bool { return t != other }

// Opponent returns the side that acts in the other phase
func (t Team) Opponent() Team {
	if t == TeamBlue {
		return TeamRed
	}
	return TeamBlue
}

// UnmarshalText parses "blue"/"red" (case-insensitive)
func (t *Team) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	for team, name := range teamNames {
		if name == s {
			*t = team
			return nil
		}
	}
	return fmt.Errorf("unknown team %q", s)
}

// UnitType is the kind of unit an actor represents
type UnitType uint8

const (
	UnitInfantry UnitType = iota
	UnitTank
)

var unitTypeNames = map[UnitType]string{
	UnitInfantry: "infantry",
	UnitTank:     "tank",
}

func (u UnitType) String() string {
	if name, ok := unitTypeNames[u]; ok {
		return name
	}
	return fmt.Sprintf("unit(%d)", uint8(u))
}

// UnmarshalText parses "infantry"/"tank" (case-insensitive)
func (u *UnitType) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	for ut, name := range unitTypeNames {
		if name == s {
			*u = ut
			return nil
		}
	}
	return fmt.Errorf("unknown unit type %q", s)
}
