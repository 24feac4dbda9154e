package generator

// State is a step of the generation state machine.
type State int

const (
	StateInit State = iota
	StateConfigResolved
	StateValidated
	StateDirectoryEnsured
	StateStyleEmitted
	StateComponentEmitted
	StateIndexEmitted
	StateDone
	StateErrored
)

var stateNames = map[State]string{
	StateInit:             "init",
	StateConfigResolved:   "config-resolved",
	StateValidated:        "validated",
	StateDirectoryEnsured: "directory-ensured",
	StateStyleEmitted:     "style-emitted",
	StateComponentEmitted: "component-emitted",
	StateIndexEmitted:     "index-emitted",
	StateDone:             "done",
	StateErrored:          "errored",
}

// String returns the state name used in logs.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
