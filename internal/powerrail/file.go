package powerrail

import "log/slog"

// FileRail drives the power rail through a single board-specific parameter
// file. The file protocol is one ASCII byte: 'Y' for on, 'N' for off.
type FileRail struct {
	path   string
	logger *slog.Logger
}

// NewFileRail returns a FileRail bound to cfg.Path.
func NewFileRail(cfg Config, logger *slog.Logger) *FileRail {
	return &FileRail{
		path:   cfg.Path,
		logger: logger.With("component", "powerrail"),
	}
}

// SetPower switches the rail on or off.
func (r *FileRail) SetPower(on bool) error {
	b := byte('N')
	if on {
		b = 'Y'
	}
	if err := writeStateByte(r.path, b); err != nil {
		return err
	}
	r.logger.Debug("power rail set",
		"backend", BackendFile,
		"on", on,
	)
	return nil
}

// GetPower reads the current rail state.
func (r *FileRail) GetPower() (State, error) {
	b, err := readStateByte(r.path)
	if err != nil {
		return StateUnknown, err
	}
	switch b {
	case 'Y':
		return StateOn, nil
	case 'N':
		return StateOff, nil
	}
	return StateUnknown, nil
}
