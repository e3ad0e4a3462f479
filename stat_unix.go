//go:build unix

package mdu

import (
	"os"

	"golang.org/x/sys/unix"
)

// entryInfo is the subset of lstat(2) output the walker needs: whether the
// path is a directory, and its block count in 512-byte units, unconverted
// regardless of the filesystem's underlying block size.
type entryInfo struct {
	isDir  bool
	blocks int64
}

// lstatEntry lstats path without following symlinks, matching the source's
// use of lstat (not stat) throughout get_block_size/get_size_of_dir. It
// reaches for golang.org/x/sys/unix rather than os.Lstat because the
// stdlib's os.Lstat loses the raw Stat_t.Blocks field behind an io/fs.FileInfo
// that only exposes logical Size(), not physical block allocation.
func lstatEntry(path string) (entryInfo, error) {
	var st unix.Stat_t

	if err := unix.Lstat(path, &st); err != nil {
		return entryInfo{}, err
	}

	return entryInfo{
		isDir:  st.Mode&unix.S_IFMT == unix.S_IFDIR,
		blocks: int64(st.Blocks),
	}, nil
}

// dirHandle wraps an open directory fd for enumeration.
type dirHandle = *os.File

// openDirRaw opens path for directory enumeration, refusing to follow
// symlinks, matching the openDirEnumerator permission-check shape in
// calvinalkan-fileproc's io_unix.go: open with O_DIRECTORY|O_NOFOLLOW via
// the unix package, then wrap the fd in an *os.File for
// (*os.File).Readdirnames.
func openDirRaw(path string) (dirHandle, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC|unix.O_NOFOLLOW, 0)
	if err != nil {
		return nil, err
	}

	return os.NewFile(uintptr(fd), path), nil
}

func closeDirHandle(h dirHandle) error {
	return h.Close()
}

// readAllDirNames reads every entry name from an open directory.
//
// (*os.File).Readdirnames deliberately filters out "." and ".." (as does
// golang.org/x/sys/unix.ParseDirent: both trace to the same upstream
// dirent-parsing logic). The walker needs to see the "." self-entry the way
// the source's raw readdir(3) does: it is credited as its own contribution,
// double-counting the directory's own allocation. Rather than hand-parsing
// getdents64 buffers solely to recover an entry every higher-level Go
// directory-reading API throws away, "." is synthesized back onto the
// front of the result. It is exactly one well-understood entry, and
// walk.go's lstat of it produces the identical blocks value the source's
// raw "." dirent would have yielded.
func readAllDirNames(h dirHandle) ([]string, error) {
	names, err := h.Readdirnames(-1)
	if err != nil {
		return names, err
	}

	withDot := make([]string, 0, len(names)+1)
	withDot = append(withDot, ".")
	withDot = append(withDot, names...)

	return withDot, nil
}
