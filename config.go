package quantum

// Engine-wide defaults.
const (
	DefaultWeight             = 1.0
	DefaultCoherence          = 1.0
	DefaultMaxIterations      = 100
	DefaultInitialTemperature = 10.0
	DefaultCoolingRate        = 0.95

	// MinTemperature floors the cooling schedule so the acceptance rule
	// never degenerates into pure hill-climbing.
	MinTemperature = 0.01
)

// Config holds the engine defaults applied when a caller leaves a
// context or parameter field unset.
type Config struct {
	Coherence          float64
	MaxIterations      int
	InitialTemperature float64
	CoolingRate        float64
}

func NewConfig() *Config {
	return &Config{
		Coherence:          DefaultCoherence,
		MaxIterations:      DefaultMaxIterations,
		InitialTemperature: DefaultInitialTemperature,
		CoolingRate:        DefaultCoolingRate,
	}
}
