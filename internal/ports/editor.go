package ports

import "os/exec"

// EditorOpener defines the interface for editing a file in an external editor
type EditorOpener interface {
	// Command returns the process that edits path; the caller runs it
	Command(path string) (*exec.Cmd, error)
}
