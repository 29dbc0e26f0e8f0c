package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestSessionQueueBounded(t *testing.T) {
	s := newSession()

	for i := 0; i < sessionQueueDepth+10; i++ {
		s.Push("line")
	}

	received := 0
	for range drainLines(s) {
		received++
	}

	testutil.AssertEqual(t, "received", received, sessionQueueDepth)
	testutil.AssertEqual(t, "dropped", s.dropped, 10)
}

func TestSessionCloseUnblocksReader(t *testing.T) {
	s := newSession()
	s.Push("last words")

	done := make(chan []string)
	go func() {
		var got []string
		for b := range s.Messages() {
			got = append(got, string(b))
		}
		done <- got
	}()

	s.close()
	got := <-done

	testutil.AssertEqual(t, "delivered before close", len(got), 1)
	testutil.AssertEqual(t, "line", got[0], "last words")
}

func TestSessionPushAfterClose(t *testing.T) {
	s := newSession()
	s.close()

	// Must not panic or send on the closed channel.
	s.Push("into the void")
	s.close()

	_, open := <-s.Messages()
	testutil.AssertEqual(t, "closed", open, false)
}
