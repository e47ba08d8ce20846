package overlay

import (
	"testing"
	"time"
)

func TestLazyEntryDefaults(t *testing.T) {
	store := NewStore()
	defer store.Close()

	st := store.Get("r1")
	if st.Liked || st.Saved || st.Following || st.Muted || st.ManuallyPaused || st.Expanded {
		t.Error("Expected all flags to default to false")
	}
}

func TestSeed(t *testing.T) {
	store := NewStore()
	defer store.Close()

	store.Seed(map[string]bool{"r1": true}, map[string]bool{"r2": true})

	if !store.Liked("r1") {
		t.Error("Expected r1 to be seeded as liked")
	}
	if store.Saved("r1") {
		t.Error("Expected r1 to not be saved")
	}
	if !store.Saved("r2") {
		t.Error("Expected r2 to be seeded as saved")
	}
}

func TestToggles(t *testing.T) {
	store := NewStore()
	defer store.Close()

	if now := store.ToggleFollowing("r1"); !now {
		t.Error("Expected first follow toggle to return true")
	}
	if now := store.ToggleFollowing("r1"); now {
		t.Error("Expected second follow toggle to return false")
	}

	if now := store.ToggleExpanded("r1"); !now {
		t.Error("Expected expand toggle to return true")
	}

	store.SetManuallyPaused("r1", true)
	if !store.ManuallyPaused("r1") {
		t.Error("Expected manual pause to stick")
	}

	store.SetMuted("r1", true)
	if !store.Muted("r1") {
		t.Error("Expected mute to stick")
	}
}

func TestFlashSelfClears(t *testing.T) {
	store := NewStore()
	defer store.Close()

	changes := make(chan string, 8)
	store.SetChangeCallback(func(id string) { changes <- id })

	store.FlashShare("r1")
	if !store.Get("r1").ShareFlash {
		t.Fatal("Expected share flash to be raised immediately")
	}

	// raise event
	<-changes

	select {
	case <-changes:
	case <-time.After(ShareFlashDuration + 500*time.Millisecond):
		t.Fatal("Expected share flash to clear itself")
	}

	if store.Get("r1").ShareFlash {
		t.Error("Expected share flash to be cleared")
	}
}

func TestForgetStopsTimers(t *testing.T) {
	store := NewStore()
	defer store.Close()

	store.FlashAddedToCart("r1")
	store.SetLiked("r1", true)
	store.Forget("r1")

	if store.Get("r1").Liked {
		t.Error("Expected forgotten entry to reset to defaults")
	}
}

func TestCloseStopsActivity(t *testing.T) {
	store := NewStore()
	store.FlashShare("r1")
	store.Close()

	// Mutations after close are dropped rather than panicking.
	store.SetLiked("r1", true)
	time.Sleep(ShareFlashDuration + 100*time.Millisecond)
}
