package ports

// Clipboard defines the interface for copying exported text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error

	// Available returns false when no clipboard utility can be reached
	Available() bool
}
