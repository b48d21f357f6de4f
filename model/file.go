package model

import (
	"io/fs"
)

// File is a directory or archive entry as listed by cchmod ls.
type File struct {
	Path string
	Mode fs.FileMode
}

func (f File) IsDir() bool {
	return f.Mode.IsDir()
}

// Perm returns the permission bits of the entry.
func (f File) Perm() Mode {
	return ModeFromFileMode(f.Mode)
}

// PermString renders the permission bits in the given format.
func (f File) PermString(format Format) string {
	return format.Render(f.Perm())
}
