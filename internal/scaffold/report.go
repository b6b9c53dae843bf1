package scaffold

// Report summarizes a finished (or aborted) copy. Paths are slash-separated
// and relative to Destination; the destination itself is ".".
type Report struct {
	Template     string   `json:"template"`
	Destination  string   `json:"destination"`
	CreatedDirs  []string `json:"created_dirs"`
	ExistingDirs []string `json:"existing_dirs"`
	Files        []string `json:"files"`
	// RawFiles lists files copied byte-for-byte because they are not text.
	RawFiles []string `json:"raw_files,omitempty"`
}

// HasExisting reports whether any destination directory already existed.
func (r *Report) HasExisting() bool {
	return len(r.ExistingDirs) > 0
}
