package idgen

import "github.com/google/uuid"

// NewFunc returns a new random (version 4) UUID. Tests may replace it to get
// deterministic identifiers.
var NewFunc = uuid.New

// New is a thin wrapper around NewFunc.
func New() uuid.UUID { return NewFunc() }
