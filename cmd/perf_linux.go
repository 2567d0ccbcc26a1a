//go:build linux

package cmd

import (
	"github.com/hodgesds/perf-utils"
	"github.com/sgostarter/i/l"
)

// countInstructions runs f under a hardware instruction counter. When the
// counter can not be opened f still runs and the failure is logged.
func countInstructions(f func() error) (err error) {
	var ran bool
	pv, perr := perf.CPUInstructions(func() error {
		ran = true
		err = f()
		return err
	})
	if perr != nil && err == nil {
		logger.WithFields(l.ErrorField(perr)).Error("instruction counter unavailable")
		if !ran {
			err = f()
		}
		return
	}
	if pv != nil {
		logger.WithFields(l.UInt64Field("instructions", pv.Value)).Info("perf")
	}
	return
}
