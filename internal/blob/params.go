package blob

// Params holds the tuned constants of the blob. The values are empirical;
// DefaultParams reproduces the reference look.
type Params struct {
	SurfaceSize int
	BaseRadius  float64
	// Margin is how far the surface extends past the visible button on
	// each side. Pointer coordinates relative to the button are shifted by
	// it to land in surface space.
	Margin float64

	// TimeStep advances the wobble clock once per tick, so wobble speed is
	// tied to the tick rate.
	TimeStep float64

	BounceStiffness float64
	BounceDamping   float64

	EdgeThreshold   float64 // fraction of BaseRadius
	PullSpan        float64 // fraction of BaseRadius
	DropMinRadius   float64
	DropRadiusGain  float64
	DropReach       float64
	DropReachGain   float64
	DropFollowRate  float64
	DropReturnRate  float64 // hovering, inside the threshold
	DropIdleRate    float64
	DropRadiusRate  float64
	DropStretch     float64
	RecoilMinRadius float64

	RimStiffness float64
	RimDamping   float64

	ExitBounce  float64
	ExitRipple  float64
	ClickRipple float64
	ClickBounce float64
}

func DefaultParams() Params {
	return Params{
		SurfaceSize: 300,
		BaseRadius:  75,
		Margin:      60,

		TimeStep: 0.03,

		BounceStiffness: 0.12,
		BounceDamping:   0.88,

		EdgeThreshold:   0.4,
		PullSpan:        0.7,
		DropMinRadius:   18,
		DropRadiusGain:  35,
		DropReach:       0.9,
		DropReachGain:   0.5,
		DropFollowRate:  0.25,
		DropReturnRate:  0.15,
		DropIdleRate:    0.2,
		DropRadiusRate:  0.18,
		DropStretch:     0.4,
		RecoilMinRadius: 10,

		RimStiffness: 0.06,
		RimDamping:   0.82,

		ExitBounce:  30,
		ExitRipple:  20,
		ClickRipple: 25,
		ClickBounce: 10,
	}
}
