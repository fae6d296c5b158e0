// Package util holds the tool's own version metadata, kept separate
// from cmd/ so it can be imported without pulling in cobra — mirrors
// reqtraq's util.Version, repurposed from the requirements tracer's own
// version to cbindgen's.
package util

type VersionType struct {
	Major    uint
	Minor    uint
	Revision uint
}

var Version = VersionType{
	Major:    0,
	Minor:    1,
	Revision: 0,
}
