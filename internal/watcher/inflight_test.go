package watcher

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestInflightSetClaims(t *testing.T) {
	s := newInflightSet()

	if !s.TryAdd("/videos/standup.mp4") {
		t.Fatal("first TryAdd = false, want true")
	}
	if s.TryAdd("/videos/standup.mp4") {
		t.Fatal("second TryAdd = true, want false")
	}
	if !s.TryAdd("/videos/retro.mp4") {
		t.Fatal("TryAdd for different path = false, want true")
	}

	s.Remove("/videos/standup.mp4")
	if !s.TryAdd("/videos/standup.mp4") {
		t.Fatal("TryAdd after Remove = false, want true")
	}
}

func TestInflightSetSingleWinner(t *testing.T) {
	s := newInflightSet()

	var wg sync.WaitGroup
	var wins atomic.Int32
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.TryAdd("/videos/allhands.mp4") {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := wins.Load(); got != 1 {
		t.Fatalf("winners = %d, want 1", got)
	}
}
