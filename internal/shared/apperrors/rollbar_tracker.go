package apperrors

import (
	"errors"

	"github.com/stvp/rollbar"
)

type RollbarTracker struct {
	project string
}

func NewRollbarTracker(token, project, env string) *RollbarTracker {
	rollbar.Environment = env
	rollbar.Token = token

	return &RollbarTracker{
		project: project,
	}
}

func (t RollbarTracker) Track(level Level, errorText string, ctx map[string]interface{}) {
	fields := []*rollbar.Field{}

	if ctx != nil {
		fields = append(fields, &rollbar.Field{
			Name: "props",
			Data: ctx,
		})
	}

	fields = append(fields, &rollbar.Field{
		Name: "project",
		Data: t.project,
	})

	var rollbarLevel string
	switch level {
	case LevelError:
		rollbarLevel = rollbar.ERR
	case LevelWarn:
		rollbarLevel = rollbar.WARN
	default:
		panic("invalid level " + level)
	}

	rollbar.Error(rollbarLevel, errors.New(errorText), fields...)
}

func (t RollbarTracker) Flush() {
	rollbar.Wait()
}
