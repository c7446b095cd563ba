package model

// Tower defaults
const (
	DefaultDiskCount  = 5
	DefaultTowerNames = "ABC"
)

// Tower is a named stack of disks, bottom first
type Tower struct {
	Name  rune
	Disks []int
}

// Top returns the disk on top of the tower
func (t *Tower) Top() (int, bool) {
	if len(t.Disks) == 0 {
		return 0, false
	}
	return t.Disks[len(t.Disks)-1], true
}

// IsEmpty returns true if the tower holds no disks
func (t *Tower) IsEmpty() bool {
	return len(t.Disks) == 0
}

// Towers is the ordered set of towers in a stack game. The first tower is
// where all disks start.
type Towers []Tower

// NewTowers creates towers with the given names and all disks stacked on
// the first one
func NewTowers(names string, disks int) Towers {
	towers := make(Towers, 0, len(names))
	for _, name := range names {
		towers = append(towers, Tower{Name: name, Disks: []int{}})
	}
	if len(towers) > 0 {
		towers[0].Disks = SolvedTower(disks)
	}
	return towers
}

// SolvedTower returns the fully ordered stack [disks, ..., 2, 1]
func SolvedTower(disks int) []int {
	result := make([]int, 0, disks)
	for size := disks; size > 0; size-- {
		result = append(result, size)
	}
	return result
}

// Index returns the position of the named tower, or -1
func (ts Towers) Index(name rune) int {
	for i := range ts {
		if ts[i].Name == name {
			return i
		}
	}
	return -1
}

// Get returns the named tower, or nil if there is no such tower
func (ts Towers) Get(name rune) *Tower {
	if i := ts.Index(name); i >= 0 {
		return &ts[i]
	}
	return nil
}

// Names returns the tower names in order
func (ts Towers) Names() []rune {
	names := make([]rune, len(ts))
	for i := range ts {
		names[i] = ts[i].Name
	}
	return names
}

// DiskCount returns the total number of disks across all towers
func (ts Towers) DiskCount() int {
	total := 0
	for i := range ts {
		total += len(ts[i].Disks)
	}
	return total
}

// Clone returns an independent copy of the towers
func (ts Towers) Clone() Towers {
	result := make(Towers, len(ts))
	for i := range ts {
		disks := make([]int, len(ts[i].Disks))
		copy(disks, ts[i].Disks)
		result[i] = Tower{Name: ts[i].Name, Disks: disks}
	}
	return result
}

// Levels returns a level-major snapshot with the highest level first.
// Each row holds one disk size per tower, 0 where the tower has no disk at
// that level.
func (ts Towers) Levels(height int) [][]int {
	levels := make([][]int, 0, height)
	for level := height - 1; level >= 0; level-- {
		row := make([]int, len(ts))
		for i := range ts {
			if level < len(ts[i].Disks) {
				row[i] = ts[i].Disks[level]
			}
		}
		levels = append(levels, row)
	}
	return levels
}
