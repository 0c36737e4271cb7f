package weather

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"weather-info/internal/domain/entity"
	"weather-info/internal/domain/gateway/api"
	"weather-info/internal/domain/model"
	httpclient "weather-info/pkg/http"
)

func TestMain(m *testing.M) {
	os.Setenv("MESSAGES_FILE_PATH", filepath.Join("..", "..", "..", "..", "configs", "messages.yml"))
	os.Exit(m.Run())
}

const (
	singlePayload = `{"temperature":21,"condition":"Sunny","icon":"assets/sunny.svg"}`
	multiPayload  = `[{"temperature":4,"condition":"Cloudy","icon":"assets/cloudy.svg","city":"Stockholm"},{"temperature":18,"condition":"Sunny","icon":"assets/sunny.svg","city":"Milan"}]`
)

type fakeGateway struct {
	single, multi int32
	singleBody    string
	multiBody     string
	err           error
}

func (g *fakeGateway) FetchSingleCity(ctx context.Context) (json.RawMessage, error) {
	atomic.AddInt32(&g.single, 1)
	if g.err != nil {
		return nil, g.err
	}
	return json.RawMessage(g.singleBody), nil
}

func (g *fakeGateway) FetchMultiCity(ctx context.Context) (json.RawMessage, error) {
	atomic.AddInt32(&g.multi, 1)
	if g.err != nil {
		return nil, g.err
	}
	return json.RawMessage(g.multiBody), nil
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{singleBody: singlePayload, multiBody: multiPayload}
}

func descriptor(state model.RequestState, multi bool, city entity.City) model.RequestDescriptor {
	d, _ := model.Describe(state, multi, city)
	return d
}

func TestLoadSingleCity(t *testing.T) {
	gateway := newFakeGateway()
	uc := NewWeatherUseCase(0, gateway)

	data, err := uc.Load(context.Background(), descriptor(model.RequestStateReady, false, entity.Stockholm))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if data.Temperature != 21 || data.Condition != "Sunny" || data.Icon != "assets/sunny.svg" {
		t.Fatalf("unexpected data %+v", data)
	}
	if gateway.single != 1 || gateway.multi != 0 {
		t.Fatalf("fetch counts single=%d multi=%d", gateway.single, gateway.multi)
	}
}

func TestLoadMultiCityPicksSelectedCity(t *testing.T) {
	gateway := newFakeGateway()
	uc := NewWeatherUseCase(0, gateway)

	data, err := uc.Load(context.Background(), descriptor(model.RequestStateReady, true, entity.Milan))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if data.City != entity.Milan || data.Temperature != 18 {
		t.Fatalf("unexpected data %+v", data)
	}
	if gateway.multi != 1 || gateway.single != 0 {
		t.Fatalf("fetch counts single=%d multi=%d", gateway.single, gateway.multi)
	}
}

func TestLoadMultiCityNotFound(t *testing.T) {
	gateway := newFakeGateway()
	gateway.multiBody = `[{"temperature":4,"condition":"Cloudy","icon":"x","city":"Stockholm"}]`
	uc := NewWeatherUseCase(0, gateway)

	_, err := uc.Load(context.Background(), descriptor(model.RequestStateReady, true, entity.Milan))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadSimulatedErrorAfterSuccessfulFetch(t *testing.T) {
	for _, multi := range []bool{false, true} {
		gateway := newFakeGateway()
		uc := NewWeatherUseCase(0, gateway)

		_, err := uc.Load(context.Background(), descriptor(model.RequestStateSimulateError, multi, entity.Milan))
		if !errors.Is(err, ErrSimulated) {
			t.Fatalf("multi=%v: expected ErrSimulated, got %v", multi, err)
		}
		if gateway.single+gateway.multi != 1 {
			t.Fatalf("multi=%v: the fixture must still be fetched once", multi)
		}
	}
}

func TestLoadTransportFailure(t *testing.T) {
	gateway := newFakeGateway()
	gateway.err = errors.New("connection refused")
	uc := NewWeatherUseCase(0, gateway)

	_, err := uc.Load(context.Background(), descriptor(model.RequestStateSimulateError, false, entity.Stockholm))
	if !errors.Is(err, ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
	if errors.Is(err, ErrSimulated) {
		t.Fatal("transport failure must win over the simulated failure")
	}
}

func TestLoadMalformedPayload(t *testing.T) {
	gateway := newFakeGateway()
	gateway.singleBody = `{"temperature":"warm"}`
	uc := NewWeatherUseCase(0, gateway)

	_, err := uc.Load(context.Background(), descriptor(model.RequestStateReady, false, entity.Stockholm))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestLoadMalformedPayloadOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"temperature":21,`))
	}))
	defer srv.Close()

	uc := NewWeatherUseCase(0, api.NewWeatherGateway(srv.URL, httpclient.ClientOptions{}))

	tests := []struct {
		name  string
		state model.RequestState
		want  error
	}{
		{"ready parses and fails to decode", model.RequestStateReady, ErrDecode},
		{"simulated error wins over parsing", model.RequestStateSimulateError, ErrSimulated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Load(context.Background(), descriptor(tt.state, false, entity.Stockholm))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if errors.Is(err, ErrFetch) {
				t.Fatalf("a 200 response is not a fetch failure: %v", err)
			}
		})
	}
}

func TestLoadIdleDescriptor(t *testing.T) {
	gateway := newFakeGateway()
	uc := NewWeatherUseCase(0, gateway)

	_, err := uc.Load(context.Background(), model.RequestDescriptor{RequestState: model.RequestStateIdle})
	if !errors.Is(err, ErrNoRequest) {
		t.Fatalf("expected ErrNoRequest, got %v", err)
	}
	if gateway.single+gateway.multi != 0 {
		t.Fatal("idle descriptor must not fetch")
	}
}

func TestLoadDelayIsCancellable(t *testing.T) {
	gateway := newFakeGateway()
	uc := NewWeatherUseCase(time.Hour, gateway)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := uc.Load(ctx, descriptor(model.RequestStateReady, false, entity.Stockholm))
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Load did not return after cancellation")
	}
	if gateway.single != 0 {
		t.Fatal("cancelled load must not fetch")
	}
}

func TestLoadWaitsForDelay(t *testing.T) {
	gateway := newFakeGateway()
	uc := NewWeatherUseCase(30*time.Millisecond, gateway)

	start := time.Now()
	if _, err := uc.Load(context.Background(), descriptor(model.RequestStateReady, false, entity.Stockholm)); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Fatalf("Load returned after %v, before the delay", elapsed)
	}
}
