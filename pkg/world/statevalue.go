package world

import "time"

// StateKind discriminates the variants of a StateValue.
type StateKind int

const (
	StateInt StateKind = iota
	StateBool
	StateString
	StateTime
	StateList
)

func (k StateKind) String() string {
	switch k {
	case StateInt:
		return "int"
	case StateBool:
		return "bool"
	case StateString:
		return "string"
	case StateTime:
		return "time"
	case StateList:
		return "list"
	default:
		return "unknown"
	}
}

// StateValue is a tagged variant for auxiliary entity state. Game content
// stores counters, ad hoc flags, timestamps and word lists under string keys
// without the engine knowing their meaning.
type StateValue struct {
	Kind StateKind
	Int  int
	Bool bool
	Str  string
	Time time.Time
	List []string
}

func IntValue(n int) StateValue       { return StateValue{Kind: StateInt, Int: n} }
func BoolValue(b bool) StateValue     { return StateValue{Kind: StateBool, Bool: b} }
func StringValue(s string) StateValue { return StateValue{Kind: StateString, Str: s} }
func TimeValue(t time.Time) StateValue {
	return StateValue{Kind: StateTime, Time: t}
}
func ListValue(items ...string) StateValue {
	return StateValue{Kind: StateList, List: items}
}
