package trainer

import "github.com/Draif/doc2vec/internal/logging"

// logReporter adapts a *logging.Logger to alpha.Reporter, the sink the
// shared learning-rate controller uses for its rate-limited progress
// lines.
type logReporter struct {
	log *logging.Logger
}

func (r logReporter) Report(progress, wordsPerSec, current float64) {
	r.log.Info("progress %.1f%% %.1fk words/sec alpha=%.6f", progress, wordsPerSec, current)
}
