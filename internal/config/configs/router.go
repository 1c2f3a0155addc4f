package configs

// Router configures weighted campaign selection.
type Router struct {
	// Seed fixes the random source so that selections are reproducible.
	// Zero seeds from the clock.
	Seed uint64 `env:"SEED" envDefault:"0"`
}
