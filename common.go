package ber

/*
common.go contains small helpers and import aliases used by myriad
components throughout this package, mirroring the teacher's habit of
aliasing stdlib functions once rather than re-spelling them at each
call site.
*/

import (
	"errors"
	"strconv"
	"strings"
)

var (
	mkerr func(string) error           = errors.New
	itoa  func(int) string             = strconv.Itoa
	atoi  func(string) (int, error)    = strconv.Atoi
	join  func([]string, string) string = strings.Join
)

/*
mkerrf builds an error from pre-stringified parts without resorting to
fmt.Sprintf in the hot decode path.
*/
func mkerrf(parts ...string) error {
	return mkerr(join(parts, ""))
}

func bool2str(b bool) (s string) {
	if s = "false"; b {
		s = "true"
	}
	return
}
