package assets

import (
	"fmt"
)

// Version is the project file revision written for the whole run.
type Version uint32

const (
	GameMaker80 Version = 800
	GameMaker81 Version = 810
)

func (v Version) Valid() bool {
	return v == GameMaker80 || v == GameMaker81
}

func (v Version) String() string {
	switch v {
	case GameMaker80:
		return "GameMaker 8.0"
	case GameMaker81:
		return "GameMaker 8.1"
	}
	return fmt.Sprintf("unknown version %d", uint32(v))
}

// Extension is the file extension the authoring tool expects for projects of
// this revision, without the dot.
func (v Version) Extension() string {
	if v == GameMaker81 {
		return "gm81"
	}
	return "gmk"
}
