package domain

// ProgressManager reports batch-mode progress to the user while many
// functions from one or more binaries are structured in sequence.
// Grounded on the teacher's service.ProgressManager interface; the
// concrete implementation in service/progress.go wraps
// schollz/progressbar/v3.
type ProgressManager interface {
	Initialize(total int)
	StartTask(name string)
	CompleteTask(name string, success bool)
	Finish()
}
