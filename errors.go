package scrollscene

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned when a model name was never registered.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyRegistered is returned when a model name is registered twice.
	ErrAlreadyRegistered = errors.New("already registered")
	// ErrAlreadyBound is returned when a Binder is set up more than once.
	ErrAlreadyBound = errors.New("scroll animation already bound")
	// ErrOutOfOrder is returned when a keyframe is placed before the keyframe declared ahead of it.
	ErrOutOfOrder = errors.New("keyframe out of order")
	// ErrNoAssets is returned when a Pipeline is created without any requests.
	ErrNoAssets = errors.New("no assets requested")
	// ErrDuplicateAsset is returned when two requests share a name.
	ErrDuplicateAsset = errors.New("duplicate asset name")
)
