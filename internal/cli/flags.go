package cli

// Options mirrors the front-end glue's command-line surface from §6: a
// positional script path plus mutually exclusive flags selecting which
// public operation runs.
type Options struct {
	Path            string
	RemoveUseless   bool
	HoistInvariants bool
	Optimize        bool
	Passthrough     bool
	JSON            bool
	Verbose         bool
	Stdout          bool
	Diff            bool
}

// Mode identifies which of the three public operations (or pass-through)
// an invocation selected.
type Mode int

const (
	ModeOptimize Mode = iota
	ModeRemoveUseless
	ModeHoistInvariants
	ModePassthrough
)

// resolveMode applies the flags' mutual exclusivity and the spec's default:
// optimize runs unless another single mode flag was set.
func (o Options) resolveMode() (Mode, error) {
	set := 0
	mode := ModeOptimize
	if o.RemoveUseless {
		set++
		mode = ModeRemoveUseless
	}
	if o.HoistInvariants {
		set++
		mode = ModeHoistInvariants
	}
	if o.Optimize {
		set++
		mode = ModeOptimize
	}
	if o.Passthrough {
		set++
		mode = ModePassthrough
	}
	if set > 1 {
		return mode, errMutuallyExclusive
	}
	return mode, nil
}
