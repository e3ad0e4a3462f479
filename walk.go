package mdu

import "io"

// walkEnv carries the collaborators the walker needs but does not own:
// where to print the permission diagnostic, how to flip the permission
// flag, and how to route a discovered subdirectory (recurse immediately in
// sequential mode, enqueue a task in parallel mode).
//
// This mirrors the source's get_size_of_dir taking either a bool* or a
// Task_queue* depending on mode: rather than a void* plus a multithread
// bool, the two modes get their own onSubdir closures with the same
// walkDir underneath.
type walkEnv struct {
	stderr                io.Writer
	markPermissionFailure func()
	onSubdir              func(childPath string) int64
}

// walkPath computes the block contribution of path: 0 if it cannot be
// lstat'd, its own blocks if it is not a directory, or its own blocks plus
// its contents' sum (via walkDir) if it is.
//
// Matches get_block_size/get_block_size_mult's shared lstat-then-branch
// opening, including returning 0 (not propagating an error) when path
// itself can no longer be lstat'd: a path that disappears between being
// named as a task and being walked contributes nothing rather than aborting
// the whole traversal.
func walkPath(env *walkEnv, path string) int64 {
	info, err := lstatEntry(path)
	if err != nil {
		return 0
	}

	if !info.isDir {
		return info.blocks
	}

	return walkDir(env, path, info)
}

// walkDir returns one directory's own blocks plus the contribution of its
// enumerated entries, matching the source's get_size_of_dir.
func walkDir(env *walkEnv, dirPath string, dirInfo entryInfo) int64 {
	h, err := openDirRaw(dirPath)
	if err != nil {
		ioErr := &IOError{Path: dirPath, Op: "open", Err: err}

		io.WriteString(env.stderr, ioErr.diagnosticLine())
		env.markPermissionFailure()

		return dirInfo.blocks
	}

	// Best-effort: a readdir-level error, like the source's readdir()
	// returning NULL, simply stops enumeration with whatever was already
	// read.
	names, _ := readAllDirNames(h)

	if err := closeDirHandle(h); err != nil {
		fatalf("mdu: couldn't close directory '%s': %v\n", dirPath, err)
	}

	sum := dirInfo.blocks

	for _, name := range names {
		if name == ".." {
			continue
		}

		childPath := joinPath(dirPath, name)

		childInfo, err := lstatEntry(childPath)
		if err != nil {
			// Kept from the source: a child lstat failure (the entry was
			// removed mid-enumeration, say) aborts the rest of this
			// directory's entries, crediting only the parent's own blocks
			// for whatever was not yet examined. A "skip and continue"
			// policy would silently change totals under exactly the
			// TOCTOU races this is hardest to test against.
			sum += dirInfo.blocks

			break
		}

		if name == "." {
			// Kept from the source: "." is enumerated and lstat'd like any
			// other entry, so its blocks are credited on top of dirInfo's
			// own contribution, double-counting this directory's own
			// allocation.
			sum += childInfo.blocks

			continue
		}

		if childInfo.isDir {
			sum += env.onSubdir(childPath)
		} else {
			sum += childInfo.blocks
		}
	}

	return sum
}
