package models

// RunRequest represents the CLI state for a suite run request
type RunRequest struct {
	Suite               string
	Seed                int64
	SeedSet             bool
	Trials              int
	MaxSize             int
	SizePolicy          string
	ConfigPath          string
	Target              string
	Verbose             bool
	Interactive         bool
	ForceInteractive    bool
	ForceNonInteractive bool
}

// NewRunRequest creates a request with zero values ready for flag binding
func NewRunRequest() *RunRequest {
	return &RunRequest{}
}
