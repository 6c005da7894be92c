package density

import (
	"errors"
	"fmt"
)

// Level is a QR error correction level.
// Higher levels survive more damage but hold less data per symbol.
type Level int

const (
	LevelL Level = iota
	LevelM
	LevelQ
	LevelH
)

// Levels in canonical order, first one is the default
var Levels = []Level{LevelL, LevelM, LevelQ, LevelH}

// MaxVersion is the largest supported QR version
const MaxVersion = 40

var ErrOutOfRange = errors.New("out of range")

func ParseLevel(s string) (Level, error) {
	switch s {
	case "L":
		return LevelL, nil
	case "M":
		return LevelM, nil
	case "Q":
		return LevelQ, nil
	case "H":
		return LevelH, nil
	}
	return 0, fmt.Errorf("unknown ecc level %q: %w", s, ErrOutOfRange)
}

func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	}
	return "?"
}

// Capacity returns how many raw bytes fit into one QR code of the given
// version at the given error correction level.
func Capacity(l Level, version int) (int, error) {
	if l < LevelL || l > LevelH {
		return 0, fmt.Errorf("ecc level %d: %w", int(l), ErrOutOfRange)
	}
	if version < 1 || version > MaxVersion {
		return 0, fmt.Errorf("version %d, supported 1..%d: %w", version, MaxVersion, ErrOutOfRange)
	}
	return capacities[l][version-1], nil
}

// Byte mode capacities indexed by version-1.
// A version n code with ecc level L holds capacities[LevelL][n-1] bytes.
var capacities = [4][MaxVersion]int{
	LevelL: {
		17, 32, 53, 78, 106, 134, 154, 192, 230, 271,
		321, 367, 425, 458, 520, 586, 644, 718, 792, 858,
		929, 1003, 1091, 1171, 1273, 1367, 1465, 1528, 1628, 1732,
		1840, 1952, 2068, 2188, 2303, 2431, 2563, 2699, 2809, 2953,
	},
	LevelM: {
		14, 26, 42, 62, 84, 106, 122, 152, 180, 213,
		251, 287, 331, 362, 412, 450, 504, 560, 624, 666,
		711, 779, 857, 911, 997, 1059, 1125, 1190, 1264, 1370,
		1452, 1538, 1628, 1722, 1809, 1911, 1989, 2099, 2213, 2331,
	},
	LevelQ: {
		11, 20, 32, 46, 60, 74, 86, 108, 130, 151,
		177, 203, 241, 258, 292, 322, 364, 394, 442, 482,
		509, 565, 611, 661, 715, 751, 805, 868, 908, 982,
		1030, 1112, 1168, 1228, 1283, 1351, 1423, 1499, 1579, 1663,
	},
	LevelH: {
		7, 14, 24, 34, 44, 58, 64, 84, 98, 119,
		137, 155, 177, 194, 220, 250, 280, 310, 338, 382,
		403, 439, 461, 511, 535, 593, 625, 658, 698, 742,
		790, 842, 898, 958, 983, 1051, 1093, 1139, 1219, 1273,
	},
}
