//go:build !linux && !darwin

package taskrt

// chanSignal backs a signal on platforms without a pollable self-pipe
// (e.g. Windows). The pending-token bookkeeping lives entirely in signal
// itself; select falls back to the channel-based wait in pollset_other.go.
type chanSignal struct{}

func newSignalImpl() (signalImpl, error) {
	return chanSignal{}, nil
}

func (chanSignal) push() error { return nil }
func (chanSignal) pop() error  { return nil }
func (chanSignal) fd() int     { return -1 }
func (chanSignal) close() error {
	return nil
}
