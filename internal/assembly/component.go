package assembly

// ComponentSpec describes one manufactured dimension. Tolerance is taken to
// span Sigma standard deviations, so a 3-sigma tolerance of 0.09 gives a
// standard deviation of 0.03.
type ComponentSpec struct {
	Name      string
	Nominal   float64
	Tolerance float64
	Sigma     float64
}

func (c ComponentSpec) StdDev() float64 {
	return c.Tolerance / c.Sigma
}

func (c ComponentSpec) Validate() error {
	if err := mustBeFinite(c.field("nominal"), c.Nominal); err != nil {
		return err
	}
	if err := mustBePositive(c.field("tolerance"), c.Tolerance); err != nil {
		return err
	}
	return mustBePositive(c.field("sigma"), c.Sigma)
}

func (c ComponentSpec) field(name string) string {
	if c.Name == "" {
		return name
	}
	return c.Name + "." + name
}

// ToleranceBand is the inclusive range of acceptable interference.
type ToleranceBand struct {
	Lower float64
	Upper float64
}

func (b ToleranceBand) Validate() error {
	if err := mustBeFinite("band.lower", b.Lower); err != nil {
		return err
	}
	if err := mustBeFinite("band.upper", b.Upper); err != nil {
		return err
	}
	if !(b.Lower < b.Upper) {
		return &ConfigError{Field: "band.lower", Value: b.Lower, Reason: "must be below band.upper"}
	}
	return nil
}

func (b ToleranceBand) Contains(v float64) bool {
	return WithinTolerance(v, b.Lower, b.Upper)
}
