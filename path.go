package mdu

import "strings"

// joinPath concatenates dir and name into a single path, inserting a "/"
// separator only when dir does not already end in one.
//
// This is the Go-native form of the source's make_path: there, the caller
// supplies a fixed-size output buffer and the function's own contract is a
// buffer-overrun discipline. Go strings are immutable and this function
// simply returns a new one; the separator-insertion rule is preserved
// exactly.
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}

	return dir + "/" + name
}
