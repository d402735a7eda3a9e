package calculation

import (
	"time"

	"github.com/google/uuid"
)

// nowFunc returns the report timestamp (override in tests for determinism).
var nowFunc = func() time.Time { return time.Now().UTC() }

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// idFunc returns a new report identifier.
var idFunc = uuid.NewString

// SetIDFunc overrides the report identifier provider (use only in tests).
func SetIDFunc(f func() string) { idFunc = f }
