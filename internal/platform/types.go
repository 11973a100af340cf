package platform

// ListOptions controls window listing.
type ListOptions struct {
	PID   int    // Filter by process ID (0 = unset)
	App   string // Filter by process/executable name
	Title string // Filter by title substring
}

// TargetOptions identifies a single window to act on. Empty options resolve
// to the current foreground window.
type TargetOptions struct {
	Title  string // Title substring match
	PID    int    // Process ID (first visible window wins)
	Handle uint64 // Exact native handle
}

// IsZero reports whether no targeting criteria were given.
func (t TargetOptions) IsZero() bool {
	return t.Title == "" && t.PID == 0 && t.Handle == 0
}
