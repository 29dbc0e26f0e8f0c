package status

import "time"

type ReporterOpt func(*Reporter)

// WithInterval sets how often a snapshot is taken.
func WithInterval(d time.Duration) ReporterOpt {
	return func(r *Reporter) {
		r.interval = d
	}
}

// WithStatusFile sets the path the JSON snapshot is written to. Empty
// disables the file.
func WithStatusFile(path string) ReporterOpt {
	return func(r *Reporter) {
		r.path = path
	}
}

// WithPublisher mirrors snapshots onto the status subject.
func WithPublisher(pub Publisher) ReporterOpt {
	return func(r *Reporter) {
		r.pub = pub
	}
}
