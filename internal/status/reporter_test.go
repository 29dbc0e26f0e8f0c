package status

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-monster/internal/game"
	"github.com/pixil98/go-testutil"
)

type recordingPublisher struct {
	subjects []string
	payloads [][]byte
}

func (r *recordingPublisher) Publish(subject string, data []byte) error {
	r.subjects = append(r.subjects, subject)
	r.payloads = append(r.payloads, data)
	return nil
}

func TestReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monster.json")
	pub := &recordingPublisher{}
	world := game.NewWorld(game.WithSeed(1))

	r := NewReporter(world, WithStatusFile(path), WithPublisher(pub))
	err := r.report()
	testutil.AssertEqual(t, "error", err, nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading status file: %v", err)
	}

	var stats game.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		t.Fatalf("decoding status file: %v", err)
	}
	testutil.AssertEqual(t, "stability", stats.Stability, 100)
	testutil.AssertEqual(t, "hunger", stats.Hunger, 3)
	testutil.AssertEqual(t, "crashed", stats.Crashed, false)

	testutil.AssertEqual(t, "publish count", len(pub.subjects), 1)
	testutil.AssertEqual(t, "subject", pub.subjects[0], StatusSubject)
}

func TestReportWithoutFile(t *testing.T) {
	pub := &recordingPublisher{}
	r := NewReporter(game.NewWorld(game.WithSeed(1)), WithPublisher(pub))

	err := r.report()
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "published", len(pub.payloads), 1)
}
