package tuning

import _ "embed"

//go:embed tuning.yaml
var defaultYAML []byte

// DefaultYAML returns a copy of the embedded tuning file, for writing a starter file to disk.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}
