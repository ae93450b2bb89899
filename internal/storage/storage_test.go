package storage

import (
	"sync"
	"testing"

	"github.com/lehigh-university-libraries/transcriber/internal/models"
	"github.com/lehigh-university-libraries/transcriber/internal/navigation"
)

func TestSessionsAreIsolated(t *testing.T) {
	store := New()
	store.Set("a", models.TranscriptionSession{ID: "a", Navigation: navigation.New()})
	store.Set("b", models.TranscriptionSession{ID: "b", Navigation: navigation.New()})

	store.Update("a", func(s *models.TranscriptionSession) {
		s.Navigation.Advance(10)
	})

	a, _ := store.Get("a")
	b, _ := store.Get("b")
	if a.Navigation.ImageIndex != 1 {
		t.Errorf("Expected session a to move, got %+v", a.Navigation)
	}
	if b.Navigation != navigation.New() {
		t.Errorf("Expected session b untouched, got %+v", b.Navigation)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	store := New()
	store.Set("a", models.TranscriptionSession{ID: "a", Navigation: navigation.New()})

	session, _ := store.Get("a")
	session.Navigation.Advance(10)

	stored, _ := store.Get("a")
	if stored.Navigation != navigation.New() {
		t.Errorf("Expected stored session to be unchanged, got %+v", stored.Navigation)
	}
}

func TestUpdateMissing(t *testing.T) {
	store := New()
	called := false
	if _, ok := store.Update("missing", func(*models.TranscriptionSession) { called = true }); ok {
		t.Error("Expected update of missing session to fail")
	}
	if called {
		t.Error("Expected fn not to run for a missing session")
	}
}

func TestConcurrentUpdates(t *testing.T) {
	store := New()
	store.Set("a", models.TranscriptionSession{ID: "a", Navigation: navigation.New()})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Update("a", func(s *models.TranscriptionSession) {
				s.Navigation.Advance(100)
			})
		}()
	}
	wg.Wait()

	session, _ := store.Get("a")
	if session.Navigation.ImageIndex != 50 || session.Navigation.PageCounter != 51 {
		t.Errorf("Expected {50 51}, got %+v", session.Navigation)
	}
}

func TestDelete(t *testing.T) {
	store := New()
	store.Set("a", models.TranscriptionSession{ID: "a"})

	if !store.Delete("a") {
		t.Error("Expected delete to report existing session")
	}
	if _, ok := store.Get("a"); ok {
		t.Error("Expected session to be gone")
	}
	if store.Delete("a") {
		t.Error("Expected second delete to report missing session")
	}
	if len(store.GetAll()) != 0 {
		t.Error("Expected empty store")
	}
}
