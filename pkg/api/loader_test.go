package api

import (
	"context"
	"errors"
	"testing"
)

func TestLoaderLoad_InstallsResult(t *testing.T) {
	var l Loader[string]
	installed, err := l.Load(context.Background(), func(ctx context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !installed {
		t.Fatal("expected result to be installed")
	}
	list, gen := l.Snapshot()
	if len(list) != 2 || gen != 1 {
		t.Fatalf("expected 2 items at generation 1, got %d at %d", len(list), gen)
	}
}

func TestLoaderLoad_StaleResponseDiscarded(t *testing.T) {
	var l Loader[string]
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan bool)

	// First load stalls until the second one completes.
	go func() {
		installed, _ := l.Load(context.Background(), func(ctx context.Context) ([]string, error) {
			close(started)
			<-release
			return []string{"stale"}, nil
		})
		done <- installed
	}()

	// Second load is issued after the first, so it must win.
	<-started
	installed, err := l.Load(context.Background(), func(ctx context.Context) ([]string, error) {
		return []string{"fresh"}, nil
	})
	if err != nil || !installed {
		t.Fatalf("fresh load should install: installed=%v err=%v", installed, err)
	}

	close(release)
	if staleInstalled := <-done; staleInstalled {
		t.Fatal("stale response must be discarded")
	}

	list, _ := l.Snapshot()
	if len(list) != 1 || list[0] != "fresh" {
		t.Fatalf("expected fresh list to survive, got %v", list)
	}
}

func TestLoaderLoad_ErrorKeepsPreviousList(t *testing.T) {
	var l Loader[string]
	if _, err := l.Load(context.Background(), func(ctx context.Context) ([]string, error) {
		return []string{"kept"}, nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := l.Load(context.Background(), func(ctx context.Context) ([]string, error) {
		return nil, errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected error to propagate")
	}

	list, _ := l.Snapshot()
	if len(list) != 1 || list[0] != "kept" {
		t.Fatalf("failed load must not clear the list, got %v", list)
	}
}
