package types

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// Experiment is one toggleable experimental feature gate.
type Experiment struct {
	Name    string
	Enabled bool
}

func (e *Experiment) Marshal(io wire.IO) {
	io.String(&e.Name)
	io.Bool(&e.Enabled)
}

// Experiments is the experiments block of the level settings: a fixed-width
// little-endian count (unlike most lists on the wire) followed by the
// entries, then a flag recording whether any experiment was ever enabled on
// the world.
type Experiments struct {
	Experiments []Experiment
	EverToggled bool
}

func (e *Experiments) Marshal(io wire.IO) {
	count := uint32(len(e.Experiments))
	io.Uint32(&count)

	if r, ok := io.(*wire.Reader); ok {
		// Each entry occupies at least two bytes, so a count beyond the
		// frame remainder is hostile.
		if int64(count) > int64(r.Remaining()) {
			io.Fail(fmt.Errorf("%w: experiments count %d exceeds frame", errs.ErrTruncated, count))
			return
		}
		e.Experiments = make([]Experiment, count)
	}
	for i := range e.Experiments {
		e.Experiments[i].Marshal(io)
	}

	io.Bool(&e.EverToggled)
}
