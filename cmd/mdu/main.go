// Command mdu reports the aggregate on-disk block usage of one or more
// filesystem subtrees, optionally parallelized across a worker pool.
//
// Usage:
//
//	mdu [-j N] [-v] <path> [<path> ...]
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lurr3t/multithreaded-du"
)

func main() {
	cfg, err := mdu.ParseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, mdu.ErrNoPaths) {
			fmt.Fprintln(os.Stderr, "usage: mdu [-j N] [-v] <path> [<path> ...]")
		} else {
			fmt.Fprintln(os.Stderr, err)
		}

		os.Exit(1)
	}

	os.Exit(mdu.Run(cfg))
}
