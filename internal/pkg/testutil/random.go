package testutil

import "fmt"

// ScriptedSource replays a fixed list of draws. Each value is reduced into
// [0, n) so scripts can be written in terms of the wanted candidate offset.
type ScriptedSource struct {
	Values []int64
	Calls  int
}

// NewScriptedSource returns a source that replays values in order
func NewScriptedSource(values ...int64) *ScriptedSource {
	return &ScriptedSource{Values: values}
}

// Int63n returns the next scripted value modulo n. It panics once the script is exhausted.
func (s *ScriptedSource) Int63n(n int64) int64 {
	if s.Calls >= len(s.Values) {
		panic(fmt.Sprintf("scripted source exhausted after %d draws", s.Calls))
	}
	v := s.Values[s.Calls] % n
	s.Calls++
	return v
}
