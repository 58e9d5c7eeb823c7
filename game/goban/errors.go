package goban

import "github.com/pkg/errors"

// The illegal-move family. These are expected, recoverable failures: callers
// branch on them with errors.Is. Contract violations (block of a non-stone
// point, invalid player) panic instead.
var (
	ErrPass             = errors.New("pass is not a board move")
	ErrOccupied         = errors.New("point is occupied")
	ErrKoPoint          = errors.New("point is the ko point")
	ErrSuicide          = errors.New("move is suicide")
	ErrCaptureForbidden = errors.New("move would capture")
)
