// Package config holds the training specification shared by the trainer,
// the CLI front-end, and the persisted model header.
package config

import "fmt"

// Default parameter values, matching common word2vec/paragraph-vector
// training defaults.
const (
	DefaultDimension        = 100
	DefaultHierarchicalSoft = false
	DefaultCBOW             = true
	DefaultNegativeSamples  = 5
	DefaultIterations       = 5
	DefaultWindow           = 5
	DefaultSample           = 1e-3
	DefaultThreads          = 4
	DefaultAlpha            = 0.05
)

// TrainSpec mirrors the original tool's TTrainSpec: the parameters of a
// training run, plus the dataset path. It is itself part of the persisted
// model (see internal/persistence).
type TrainSpec struct {
	Dimension          int
	HierarchicalSoftMax bool
	CBOW                bool
	NegativeSamples     int
	Iterations          int
	Window              int
	Sample              float64
	Threads             int
	Alpha               float64
	TrainFilename       string
}

// Default returns a TrainSpec populated with the standard defaults.
func Default() TrainSpec {
	return TrainSpec{
		Dimension:           DefaultDimension,
		HierarchicalSoftMax: DefaultHierarchicalSoft,
		CBOW:                DefaultCBOW,
		NegativeSamples:     DefaultNegativeSamples,
		Iterations:          DefaultIterations,
		Window:              DefaultWindow,
		Sample:              DefaultSample,
		Threads:             DefaultThreads,
		Alpha:               DefaultAlpha,
	}
}

// Validate rejects parameter combinations that cannot run.
func (s TrainSpec) Validate() error {
	if s.TrainFilename == "" {
		return fmt.Errorf("config: train filename is required")
	}
	if s.Dimension <= 0 {
		return fmt.Errorf("config: dimension must be positive, got %d", s.Dimension)
	}
	if s.Window <= 0 {
		return fmt.Errorf("config: window must be positive, got %d", s.Window)
	}
	if s.Threads <= 0 {
		return fmt.Errorf("config: threads must be positive, got %d", s.Threads)
	}
	if s.Iterations <= 0 {
		return fmt.Errorf("config: iterations must be positive, got %d", s.Iterations)
	}
	if s.NegativeSamples < 0 {
		return fmt.Errorf("config: negative samples must not be negative, got %d", s.NegativeSamples)
	}
	if s.Sample < 0 {
		return fmt.Errorf("config: sample threshold must not be negative, got %g", s.Sample)
	}
	if s.Alpha <= 0 {
		return fmt.Errorf("config: alpha must be positive, got %g", s.Alpha)
	}
	// hs=false && ns_num=0 is permitted: it runs and produces no weight
	// updates. Not an error here; the trainer logs a warning when it sees
	// the combination.
	return nil
}

func (s TrainSpec) String() string {
	return fmt.Sprintf(
		"dim=%d hs=%t cbow=%t ns_num=%d iters=%d window=%d sample=%g threads=%d alpha=%g file=%q",
		s.Dimension, s.HierarchicalSoftMax, s.CBOW, s.NegativeSamples, s.Iterations,
		s.Window, s.Sample, s.Threads, s.Alpha, s.TrainFilename,
	)
}
