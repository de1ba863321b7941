package main

// noopProgress satisfies domain.ProgressManager for `bincc structure` runs
// with progress turned off (--quiet, or progress = false in the config),
// where no progress output is wanted at all.
type noopProgress struct{}

func (noopProgress) Initialize(int)                {}
func (noopProgress) StartTask(string)               {}
func (noopProgress) CompleteTask(string, bool)      {}
func (noopProgress) Finish()                        {}
