//go:build !darwin && !linux && !windows

package notify

func newDarwinPlayer() Player  { return &beepOnlyPlayer{} }
func newLinuxPlayer() Player   { return &beepOnlyPlayer{} }
func newWindowsPlayer() Player { return &beepOnlyPlayer{} }
