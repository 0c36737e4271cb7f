package reactive

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func echoLoader(calls *int32) Loader[string, string] {
	return func(ctx context.Context, request string) (string, error) {
		atomic.AddInt32(calls, 1)
		return "value:" + request, nil
	}
}

func TestResourceIdleNeverLoads(t *testing.T) {
	var calls int32
	res := New(context.Background(), echoLoader(&calls))
	defer res.Close()

	snapshot := res.Snapshot()
	if snapshot.Status != StatusIdle || snapshot.HasRequest || snapshot.HasValue || snapshot.Err != nil {
		t.Fatalf("unexpected idle snapshot %+v", snapshot)
	}
	if res.Reload() {
		t.Fatal("Reload without request should report false")
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("loader called %d times while idle", calls)
	}
}

func TestResourceLoadsOnRequestAndIgnoresEqualRequest(t *testing.T) {
	var calls int32
	res := New(context.Background(), echoLoader(&calls))
	defer res.Close()

	res.SetRequest("Milan")
	waitFor(t, "resolved", func() bool { return res.Snapshot().Status == StatusResolved })

	res.SetRequest("Milan")
	time.Sleep(20 * time.Millisecond)

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
	value, ok := res.Value()
	if !ok || value != "value:Milan" {
		t.Fatalf("Value() = %q, %v", value, ok)
	}
}

func TestResourceReloadKeepsValueAndLoadsAgain(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	res := New(context.Background(), func(ctx context.Context, request string) (string, error) {
		n := atomic.AddInt32(&calls, 1)
		if n == 2 {
			select {
			case <-release:
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
		return request, nil
	})
	defer res.Close()

	res.SetRequest("Stockholm")
	waitFor(t, "first load", func() bool { return res.Snapshot().Status == StatusResolved })

	if !res.Reload() {
		t.Fatal("Reload reported false with a request present")
	}
	snapshot := res.Snapshot()
	if snapshot.Status != StatusReloading || !snapshot.IsLoading() {
		t.Fatalf("status after reload = %v", snapshot.Status)
	}
	if !snapshot.HasValue || snapshot.Value != "Stockholm" {
		t.Fatalf("value not kept while reloading: %+v", snapshot)
	}

	close(release)
	waitFor(t, "reload", func() bool { return res.Snapshot().Status == StatusResolved })
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
}

func TestResourceSupersededLoadIsCancelledAndDiscarded(t *testing.T) {
	slowStarted := make(chan struct{})
	releaseSlow := make(chan struct{})
	var slowCancelled int32

	res := New(context.Background(), func(ctx context.Context, request string) (string, error) {
		if request == "slow" {
			close(slowStarted)
			<-releaseSlow
			if ctx.Err() != nil {
				atomic.StoreInt32(&slowCancelled, 1)
			}
			// Late result deliberately ignores cancellation.
			return "stale", nil
		}
		return "fresh", nil
	})

	res.SetRequest("slow")
	<-slowStarted
	res.SetRequest("fast")
	waitFor(t, "fast load", func() bool { return res.Snapshot().Status == StatusResolved })

	close(releaseSlow)
	res.Close()

	if atomic.LoadInt32(&slowCancelled) != 1 {
		t.Fatal("superseded load context was not cancelled")
	}
	value, _ := res.Value()
	if value != "fresh" {
		t.Fatalf("Value() = %q, stale result overwrote newer state", value)
	}
}

func TestResourceErrorClearsValue(t *testing.T) {
	boom := errors.New("boom")
	res := New(context.Background(), func(ctx context.Context, request string) (string, error) {
		if request == "bad" {
			return "", boom
		}
		return request, nil
	})
	defer res.Close()

	res.SetRequest("good")
	waitFor(t, "good", func() bool { return res.Snapshot().Status == StatusResolved })
	res.SetRequest("bad")
	waitFor(t, "bad", func() bool { return res.Snapshot().Status == StatusError })

	if !errors.Is(res.Error(), boom) {
		t.Fatalf("Error() = %v", res.Error())
	}
	if _, ok := res.Value(); ok {
		t.Fatal("value should be cleared after an error")
	}
}

func TestResourceClearRequestCancelsPendingLoad(t *testing.T) {
	cancelled := make(chan struct{})
	res := New(context.Background(), func(ctx context.Context, request string) (string, error) {
		<-ctx.Done()
		close(cancelled)
		return "", ctx.Err()
	})
	defer res.Close()

	res.SetRequest("Milan")
	res.ClearRequest()

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("pending load was not cancelled")
	}
	snapshot := res.Snapshot()
	if snapshot.Status != StatusIdle || snapshot.HasRequest || snapshot.Err != nil {
		t.Fatalf("unexpected snapshot after clear: %+v", snapshot)
	}
}

func TestResourceSubscribersSeeOrderedTransitions(t *testing.T) {
	var (
		mu       sync.Mutex
		statuses []Status
	)
	release := make(chan struct{})
	res := New(context.Background(), func(ctx context.Context, request string) (string, error) {
		<-release
		return request, nil
	})
	defer res.Close()

	recorded := func() []Status {
		mu.Lock()
		defer mu.Unlock()
		return append([]Status(nil), statuses...)
	}
	unsubscribe := res.Subscribe(func(s Snapshot[string, string]) {
		mu.Lock()
		statuses = append(statuses, s.Status)
		mu.Unlock()
	})

	res.SetRequest("Milan")
	if got := recorded(); len(got) != 1 || got[0] != StatusLoading {
		t.Fatalf("statuses after SetRequest = %v", got)
	}

	close(release)
	waitFor(t, "resolved notification", func() bool { return len(recorded()) == 2 })
	if got := recorded(); got[1] != StatusResolved {
		t.Fatalf("statuses = %v", got)
	}

	unsubscribe()
	res.Reload()
	waitFor(t, "reloaded", func() bool { return res.Snapshot().Status == StatusResolved })

	if got := recorded(); len(got) != 2 {
		t.Fatalf("received %d notifications after unsubscribe", len(got)-2)
	}
}

func TestStatusText(t *testing.T) {
	text, _ := StatusReloading.MarshalText()
	if string(text) != "reloading" {
		t.Fatalf("MarshalText = %s", text)
	}
	if !StatusLoading.IsLoading() || StatusResolved.IsLoading() {
		t.Fatal("IsLoading mismatch")
	}
}

func TestStatusTextRoundTrip(t *testing.T) {
	for status := range statusNames {
		text, err := status.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d) returned error: %v", int(status), err)
		}
		var decoded Status
		if err := decoded.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s) returned error: %v", text, err)
		}
		if decoded != status {
			t.Fatalf("round trip of %s gave %s", status, decoded)
		}
	}

	var status Status
	if err := status.UnmarshalText([]byte("finished")); err == nil {
		t.Fatal("expected error for unknown status name")
	}
}
