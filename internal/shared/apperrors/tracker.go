package apperrors

type Level string

const (
	LevelError Level = "ERROR"
	LevelWarn  Level = "WARN"
)

type Tracker interface {
	Track(level Level, errorText string, ctx map[string]interface{})

	// Flush blocks until tracked events are delivered; the process exits right after a run.
	Flush()
}
