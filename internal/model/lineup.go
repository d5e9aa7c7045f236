package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AlternateName maps a player's name in an external data feed to the name used in a contest
type AlternateName struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty"`
	ContestName  string    `json:"contestName,omitempty" bson:"contestName,omitempty"`
	ExternalName string    `json:"externalName,omitempty" bson:"externalName,omitempty"`
	LastUsedDate time.Time `json:"lastUsedDate,omitzero" bson:"lastUsedDate,omitempty"`
}

// Sport identifies the league a missing name was reported for
type Sport int

const (
	SportMLB Sport = iota + 1
	SportNBA
	SportNFL
	SportNHL
)

var sportNames = map[Sport]string{
	SportMLB: "MLB",
	SportNBA: "NBA",
	SportNFL: "NFL",
	SportNHL: "NHL",
}

func (s Sport) String() string {
	if name, ok := sportNames[s]; ok {
		return name
	}
	return "Sport(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether s is one of the known sports
func (s Sport) Valid() bool {
	_, ok := sportNames[s]
	return ok
}

// ParseSport accepts either the sport name (case-insensitive) or its number
func ParseSport(value string) (Sport, error) {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil {
		if s := Sport(n); s.Valid() {
			return s, nil
		}
		return 0, fmt.Errorf("unknown sport %q", value)
	}
	for s, name := range sportNames {
		if strings.EqualFold(name, value) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown sport %q", value)
}

// UnmarshalJSON accepts the numeric form used on the wire as well as the name
func (s *Sport) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*s = Sport(n)
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseSport(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MissingName is a feed name with no alternate-name mapping, with its encounter count
type MissingName struct {
	ID    string `json:"id,omitempty" bson:"_id,omitempty"`
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Team  string `json:"team,omitempty" bson:"team,omitempty"`
	Sport Sport  `json:"sport,omitempty" bson:"sport,omitempty"`
	Count int    `json:"count,omitempty" bson:"count,omitempty"`
}
