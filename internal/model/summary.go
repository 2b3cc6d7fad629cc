package model

// FileError is a failure that was isolated to a single file.
type FileError struct {
	Path Path
	Err  error
}

// RunSummary collects the outcome of a bulk rewrite.
type RunSummary struct {
	DryRun     bool
	Scanned    int
	Candidates int
	Fixed      []Path
	Failed     []FileError
}

// FixedCount returns the number of files that were rewritten.
func (s RunSummary) FixedCount() int {
	return len(s.Fixed)
}
