package game

type Lane uint8

const (
	LaneA Lane = iota
	LaneS
	LaneD
	LaneF
)

// NLanes is the number of lanes on the playfield
const NLanes = 4

var laneNames = [NLanes]string{"A", "S", "D", "F"}

func (l Lane) Valid() bool {
	return l < NLanes
}

func (l Lane) String() string {
	if !l.Valid() {
		return "?"
	}
	return laneNames[l]
}

// KeyState is the pressed flag of every lane key
type KeyState [NLanes]bool

// Set records the state of a lane key, invalid lanes are ignored
func (k *KeyState) Set(l Lane, pressed bool) bool {
	if !l.Valid() {
		return false
	}
	k[l] = pressed
	return true
}

func (k KeyState) Pressed(l Lane) bool {
	return l.Valid() && k[l]
}
