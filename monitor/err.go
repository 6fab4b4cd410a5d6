package monitor

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	ErrCommand  = errors.New(f("unknown command"))
	ErrArgument = errors.New(f("invalid argument"))
	ErrLimit    = errors.New(f("instruction limit reached"))
)
