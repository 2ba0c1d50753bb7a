package main

// Exit codes. Every failure exits with ExitError.
const (
	ExitSuccess = 0 // Success
	ExitError   = 1 // Any error
)
