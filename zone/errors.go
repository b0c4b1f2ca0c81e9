package zone

import "errors"

var (
	ErrNotFound        = errors.New("no uncovered position")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAmbiguous       = errors.New("more than one uncovered position")
)
