package lead

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/contentquiz/internal/store"
)

type fakeSink struct {
	endpoint string
	err      error
	delay    time.Duration

	mu       sync.Mutex
	payloads []Payload
}

func (s *fakeSink) Submit(_ context.Context, p Payload) error {
	time.Sleep(s.delay)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, p)
	return s.err
}

func (s *fakeSink) Endpoint() string { return s.endpoint }

type fakeRecorder struct {
	events []store.LeadEventData
}

func (r *fakeRecorder) AppendLeadEvent(_ context.Context, data store.LeadEventData) error {
	r.events = append(r.events, data)
	return nil
}

func validForm() Form {
	return Form{
		Name:        "Ahmed Ali",
		CountryCode: "+20",
		LocalPhone:  "0100000000",
		Website:     "www.example.com",
		Problems:    "I need help with content strategy",
	}
}

func newTestSubmitter(sink Sink, rec Recorder) *Submitter {
	s := NewSubmitter(sink, rec)
	s.newID = func() string { return "lead-1" }
	return s
}

func TestSubmit_InvalidFormSkipsSink(t *testing.T) {
	sink := &fakeSink{endpoint: "https://hooks.example.com/lead"}
	rec := &fakeRecorder{}
	s := newTestSubmitter(sink, rec)

	err := s.Submit(t.Context(), "sess-1", Form{
		Name:        "Al",
		CountryCode: "+20",
		LocalPhone:  "123",
		Website:     "notaurl",
		Problems:    "short",
	})

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 4)
	assert.Empty(t, sink.payloads)
	assert.Empty(t, rec.events)
}

func TestSubmit_ValidFormDispatchesOnce(t *testing.T) {
	sink := &fakeSink{endpoint: "https://hooks.example.com/lead"}
	rec := &fakeRecorder{}
	s := newTestSubmitter(sink, rec)

	require.NoError(t, s.Submit(t.Context(), "sess-1", validForm()))

	require.Len(t, sink.payloads, 1)
	assert.Equal(t, Payload{
		Name:     "Ahmed Ali",
		WhatsApp: "+200100000000",
		Website:  "www.example.com",
		Problems: "I need help with content strategy",
	}, sink.payloads[0])

	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	assert.Equal(t, "lead-1", ev.LeadID)
	assert.Equal(t, "sess-1", ev.SessionID)
	assert.Equal(t, "https://hooks.example.com/lead", ev.Endpoint)
	assert.True(t, ev.Delivered)
	assert.Empty(t, ev.ErrorMessage)
}

func TestSubmit_TransportFailure(t *testing.T) {
	sink := &fakeSink{endpoint: "https://hooks.example.com/lead", err: errors.New("connection reset")}
	rec := &fakeRecorder{}
	s := newTestSubmitter(sink, rec)

	err := s.Submit(t.Context(), "sess-1", validForm())

	require.Error(t, err)
	assert.ErrorIs(t, err, sink.err)
	assert.Len(t, sink.payloads, 1, "no automatic retry")
	require.Len(t, rec.events, 1)
	assert.False(t, rec.events[0].Delivered)
	assert.Equal(t, "connection reset", rec.events[0].ErrorMessage)
}

func TestSubmit_SecondDeliveryTooSoon(t *testing.T) {
	sink := &fakeSink{endpoint: "https://hooks.example.com/lead"}
	s := newTestSubmitter(sink, nil)

	require.NoError(t, s.Submit(t.Context(), "sess-1", validForm()))
	assert.ErrorIs(t, s.Submit(t.Context(), "sess-1", validForm()), ErrTooSoon)
	assert.Len(t, sink.payloads, 1)
}

func TestSubmit_ConcurrentDeliveriesSpaced(t *testing.T) {
	sink := &fakeSink{endpoint: "https://hooks.example.com/lead", delay: 50 * time.Millisecond}
	s := newTestSubmitter(sink, nil)

	const callers = 5
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = s.Submit(t.Context(), "sess-1", validForm())
		}()
	}
	wg.Wait()

	var delivered, tooSoon int
	for _, err := range errs {
		switch {
		case err == nil:
			delivered++
		case errors.Is(err, ErrTooSoon):
			tooSoon++
		}
	}
	assert.Equal(t, 1, delivered)
	assert.Equal(t, callers-1, tooSoon)
	assert.Len(t, sink.payloads, 1)
}

func TestSubmit_RetryAfterFailureAllowed(t *testing.T) {
	sink := &fakeSink{endpoint: "https://hooks.example.com/lead", err: errors.New("timeout")}
	s := newTestSubmitter(sink, nil)

	require.Error(t, s.Submit(t.Context(), "sess-1", validForm()))
	sink.err = nil
	require.NoError(t, s.Submit(t.Context(), "sess-1", validForm()))
	assert.Len(t, sink.payloads, 2)
}

func TestSubmit_NoEndpoint(t *testing.T) {
	tests := []struct {
		name string
		sink Sink
	}{
		{"nil sink", nil},
		{"empty endpoint", &fakeSink{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSubmitter(tt.sink, nil)
			assert.False(t, s.Configured())
			assert.ErrorIs(t, s.Submit(t.Context(), "", validForm()), ErrNoEndpoint)
		})
	}
}

func TestHTTPSink_PostsPayload(t *testing.T) {
	var (
		mu          sync.Mutex
		gotMethod   string
		gotType     string
		gotBody     map[string]string
		requestSeen int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		requestSeen++
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>ignored</html>"))
	}))
	defer srv.Close()

	sink := NewHTTPSink(srv.URL, srv.Client())
	err := sink.Submit(t.Context(), validForm().Payload())

	require.NoError(t, err, "status codes are not interpreted")
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, requestSeen)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "text/plain;charset=utf-8", gotType)
	assert.Equal(t, map[string]string{
		"name":     "Ahmed Ali",
		"whatsapp": "+200100000000",
		"website":  "www.example.com",
		"problems": "I need help with content strategy",
	}, gotBody)
}

func TestHTTPSink_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewHTTPSink(url, nil).Submit(t.Context(), validForm().Payload())
	assert.Error(t, err)
}
