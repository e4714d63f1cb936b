package leave

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavedesk/leavedesk/internal/platform/httpx"
	"github.com/leavedesk/leavedesk/internal/verify"
)

type countingFinder struct {
	*Store
	mu      sync.Mutex
	lookups int
}

func (f *countingFinder) FindOne(serviceCode, idNumber string) (Record, bool) {
	f.mu.Lock()
	f.lookups++
	f.mu.Unlock()
	return f.Store.FindOne(serviceCode, idNumber)
}

type stubVerifier struct {
	err   error
	calls int
	token string
	ip    string
}

func (s *stubVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	s.calls++
	s.token = token
	s.ip = remoteIP
	return s.err
}

type outcomeRecorder struct {
	outcomes []string
}

func (r *outcomeRecorder) ObserveLookup(outcome string) {
	r.outcomes = append(r.outcomes, outcome)
}

func validRequest() LookupRequest {
	return LookupRequest{ServiceCode: "GSL25021372778", IDNumber: "1088576044", CaptchaToken: "token", RemoteIP: "203.0.113.7"}
}

func TestServiceLookupFound(t *testing.T) {
	finder := &countingFinder{Store: NewStore(scenarioSeed())}
	recorder := &outcomeRecorder{}
	svc := NewService(ServiceParams{Store: finder, Mode: verify.Disabled(), Recorder: recorder})

	rec, err := svc.Lookup(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 16, rec.Days)
	assert.Equal(t, "GSL25021372778", rec.ServiceCode)
	assert.Equal(t, []string{OutcomeFound}, recorder.outcomes)
}

func TestServiceLookupNotFound(t *testing.T) {
	svc := NewService(ServiceParams{Store: NewStore(scenarioSeed())})

	req := validRequest()
	req.IDNumber = "1088576045"
	_, err := svc.Lookup(context.Background(), req)
	require.ErrorIs(t, err, ErrNotFound)
	assert.True(t, errors.Is(err, httpx.ErrNotFound))
}

func TestServiceInvalidInputSkipsStoreAndVerifier(t *testing.T) {
	finder := &countingFinder{Store: NewStore(scenarioSeed())}
	verifier := &stubVerifier{}
	recorder := &outcomeRecorder{}
	svc := NewService(ServiceParams{Store: finder, Mode: verify.Enabled("secret"), Verifier: verifier, Recorder: recorder})

	req := validRequest()
	req.ServiceCode = "SHORT"
	_, err := svc.Lookup(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, finder.lookups)
	assert.Zero(t, verifier.calls)
	assert.Equal(t, []string{OutcomeInvalid}, recorder.outcomes)
}

func TestServiceVerificationFailureSkipsStore(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	finder := &countingFinder{Store: NewStore(scenarioSeed())}
	verifier := &stubVerifier{err: verify.ErrRejected}
	recorder := &outcomeRecorder{}
	svc := NewService(ServiceParams{Logger: logger, Store: finder, Mode: verify.Enabled("secret"), Verifier: verifier, Recorder: recorder})

	_, err := svc.Lookup(context.Background(), validRequest())

	var verr *VerificationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, verify.ErrRejected)
	assert.ErrorIs(t, err, httpx.ErrForbidden)
	assert.Zero(t, finder.lookups, "store must not be queried")
	assert.Equal(t, "token", verifier.token)
	assert.Equal(t, "203.0.113.7", verifier.ip)
	assert.Equal(t, []string{OutcomeRejected}, recorder.outcomes)
	assert.Contains(t, logs.String(), "security_event=true")
	assert.NotContains(t, logs.String(), "leave record not found")
}

func TestServiceVerificationPassThenLookup(t *testing.T) {
	finder := &countingFinder{Store: NewStore(scenarioSeed())}
	verifier := &stubVerifier{}
	svc := NewService(ServiceParams{Store: finder, Mode: verify.Enabled("secret"), Verifier: verifier})

	_, err := svc.Lookup(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, verifier.calls)
	assert.Equal(t, 1, finder.lookups)
}

func TestServiceEnabledWithoutVerifierFailsClosed(t *testing.T) {
	finder := &countingFinder{Store: NewStore(scenarioSeed())}
	svc := NewService(ServiceParams{Store: finder, Mode: verify.Enabled("secret")})

	_, err := svc.Lookup(context.Background(), validRequest())
	require.ErrorIs(t, err, verify.ErrUnavailable)
	assert.Zero(t, finder.lookups)
}

func TestServiceDisabledModeIgnoresVerifier(t *testing.T) {
	verifier := &stubVerifier{err: verify.ErrRejected}
	svc := NewService(ServiceParams{Store: NewStore(scenarioSeed()), Mode: verify.Disabled(), Verifier: verifier})

	_, err := svc.Lookup(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Zero(t, verifier.calls)
}

func TestServiceListRedacts(t *testing.T) {
	svc := NewService(ServiceParams{Store: NewStore(SeedRecords())})
	leaves, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, leaves, len(SeedRecords()))
}

func TestPipelineStopsAtFirstRejection(t *testing.T) {
	var order []string
	stop := errors.New("stop")
	p := Pipeline{
		func(ctx context.Context, req *LookupRequest) error { order = append(order, "a"); return nil },
		func(ctx context.Context, req *LookupRequest) error { order = append(order, "b"); return stop },
		func(ctx context.Context, req *LookupRequest) error { order = append(order, "c"); return nil },
	}
	err := p.Run(context.Background(), &LookupRequest{})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, "a,b", strings.Join(order, ","))
}

func TestServiceConcurrentLookups(t *testing.T) {
	svc := NewService(ServiceParams{Store: NewStore(SeedRecords())})
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := svc.Lookup(context.Background(), validRequest())
			if err != nil || rec.Days != 16 {
				t.Errorf("lookup: %+v %v", rec, err)
			}
		}()
	}
	wg.Wait()
}
