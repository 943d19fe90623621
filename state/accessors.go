package state

// get returns the raw value at name after checking name exists, is of the
// given Kind, and the index fits v. All typed getters below delegate here.
func (m *Model) get(v Vector, name string, want Kind) (float64, error) {
	vr, err := m.lookup(name, want)
	if err != nil {
		return 0, err
	}
	if vr.index < 0 || vr.index >= len(v) {
		return 0, ErrIndexOutOfBounds
	}
	return v[vr.index], nil
}

// set overwrites the raw value at name, valid regardless of the
// variable's Accumulate flag (overwrite is always legal; Add is not for
// non-accumulator variables).
func (m *Model) set(v Vector, name string, want Kind, value float64) error {
	vr, err := m.lookup(name, want)
	if err != nil {
		return err
	}
	if vr.index < 0 || vr.index >= len(v) {
		return ErrIndexOutOfBounds
	}
	v[vr.index] = value
	return nil
}

// add increments the raw value at name. ErrNonAccumulatorAdd if the
// variable's config has Accumulate == false, per spec.md §4.1.
func (m *Model) add(v Vector, name string, want Kind, delta float64) error {
	vr, err := m.lookup(name, want)
	if err != nil {
		return err
	}
	if !vr.config.Accumulate {
		return ErrNonAccumulatorAdd
	}
	if vr.index < 0 || vr.index >= len(v) {
		return ErrIndexOutOfBounds
	}
	v[vr.index] += delta
	return nil
}

// GetDistance reads a Distance-kind variable, in meters.
func (m *Model) GetDistance(v Vector, name string) (float64, error) { return m.get(v, name, Distance) }

// SetDistance overwrites a Distance-kind variable, in meters.
func (m *Model) SetDistance(v Vector, name string, value float64) error {
	return m.set(v, name, Distance, value)
}

// AddDistance accumulates onto a Distance-kind variable, in meters.
func (m *Model) AddDistance(v Vector, name string, delta float64) error {
	return m.add(v, name, Distance, delta)
}

// GetTime reads a Time-kind variable, in seconds.
func (m *Model) GetTime(v Vector, name string) (float64, error) { return m.get(v, name, Time) }

// SetTime overwrites a Time-kind variable, in seconds.
func (m *Model) SetTime(v Vector, name string, value float64) error {
	return m.set(v, name, Time, value)
}

// AddTime accumulates onto a Time-kind variable, in seconds.
func (m *Model) AddTime(v Vector, name string, delta float64) error {
	return m.add(v, name, Time, delta)
}

// GetSpeed reads a Speed-kind variable, in meters per second.
func (m *Model) GetSpeed(v Vector, name string) (float64, error) { return m.get(v, name, Speed) }

// SetSpeed overwrites a Speed-kind variable, in meters per second.
func (m *Model) SetSpeed(v Vector, name string, value float64) error {
	return m.set(v, name, Speed, value)
}

// AddSpeed accumulates onto a Speed-kind variable, in meters per second.
func (m *Model) AddSpeed(v Vector, name string, delta float64) error {
	return m.add(v, name, Speed, delta)
}

// GetEnergy reads an Energy-kind variable, in joules.
func (m *Model) GetEnergy(v Vector, name string) (float64, error) { return m.get(v, name, Energy) }

// SetEnergy overwrites an Energy-kind variable, in joules.
func (m *Model) SetEnergy(v Vector, name string, value float64) error {
	return m.set(v, name, Energy, value)
}

// AddEnergy accumulates onto an Energy-kind variable, in joules.
func (m *Model) AddEnergy(v Vector, name string, delta float64) error {
	return m.add(v, name, Energy, delta)
}

// GetRatio reads a Ratio-kind variable, in [0,1] (not clamped by the getter
// itself; clamping is the traversal model's responsibility, per spec.md
// §4.2's SoC clamping rule — see unit.ClampRatio).
func (m *Model) GetRatio(v Vector, name string) (float64, error) { return m.get(v, name, Ratio) }

// SetRatio overwrites a Ratio-kind variable.
func (m *Model) SetRatio(v Vector, name string, value float64) error {
	return m.set(v, name, Ratio, value)
}

// AddRatio accumulates onto a Ratio-kind variable.
func (m *Model) AddRatio(v Vector, name string, delta float64) error {
	return m.add(v, name, Ratio, delta)
}

// GetCustom reads a Custom-kind variable.
func (m *Model) GetCustom(v Vector, name string) (float64, error) { return m.get(v, name, Custom) }

// SetCustom overwrites a Custom-kind variable.
func (m *Model) SetCustom(v Vector, name string, value float64) error {
	return m.set(v, name, Custom, value)
}

// AddCustom accumulates onto a Custom-kind variable.
func (m *Model) AddCustom(v Vector, name string, delta float64) error {
	return m.add(v, name, Custom, delta)
}
