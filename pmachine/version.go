package pmachine

import "fmt"

// Version identifies an interpreter generation. Generations are ordered,
// so later interpreters compare greater.
type Version uint8

const (
	SCI0Early Version = iota
	SCI0Late
	SCI01
	SCI1EGA
	SCI1Early
	SCI1Middle
	SCI1Late
	SCI11
)

var versionNames = map[Version]string{
	SCI0Early:  "sci0early",
	SCI0Late:   "sci0",
	SCI01:      "sci01",
	SCI1EGA:    "sci1ega",
	SCI1Early:  "sci1early",
	SCI1Middle: "sci1middle",
	SCI1Late:   "sci1",
	SCI11:      "sci11",
}

func (v Version) String() string {
	if name, ok := versionNames[v]; ok {
		return name
	}
	return "Version(UNKNOWN)"
}

// ParseVersion accepts the names produced by Version.String.
func ParseVersion(s string) (Version, error) {
	for v, name := range versionNames {
		if name == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown interpreter version: %q", s)
}
