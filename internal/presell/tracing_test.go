package presell_test

import (
	"context"
	"presell/internal/capture"
	mockcapture "presell/internal/capture/mock"
	"presell/internal/presell"
	"presell/pkg/domain"
	mocknotify "presell/pkg/notify/mock"
	"presell/pkg/storage"
	mockstorage "presell/pkg/storage/mock"
	"presell/pkg/telemetry"
	"presell/pkg/urlguard"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

func TestService_Create_JobCarriesTraceContext(t *testing.T) {
	prevProp := otel.GetTextMapPropagator()
	t.Cleanup(func() { otel.SetTextMapPropagator(prevProp) })
	otel.SetTextMapPropagator(telemetry.Propagator())

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	allowList, err := urlguard.NewAllowList("hotmart.com")
	require.NoError(t, err)

	s, err := presell.New(st, urlguard.New(allowList, urlguard.Options{}),
		mockcapture.NewMockBackend(ctrl), mocknotify.NewMockNotifier(ctrl), presell.Options{
			MaxAttempts: 3,
			Capture: capture.Options{
				DefaultBudget:  time.Second,
				PersistTimeout: time.Second,
				TracerProvider: tp,
			},
		})
	require.NoError(t, err)

	var carrier map[string]string
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			tx.EXPECT().StorePresell(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p domain.Presell) (*domain.Presell, error) {
					p.ID = domain.PresellID(uuid.New())

					return &p, nil
				})
			tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
				func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
					job, ok := args.(presell.CaptureJobArgs)
					require.True(t, ok)
					carrier = job.TraceContext

					return true, nil
				})

			return cb(tx)
		})

	_, err = s.Create(context.Background(), domain.UserID(uuid.New()), "https://pay.hotmart.com/offer")
	require.NoError(t, err)
	require.Contains(t, carrier, "traceparent")

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, "presell.EnqueueCapture", spans[0].Name())

	linked := trace.SpanContextFromContext(telemetry.Extract(context.Background(), carrier))
	require.Equal(t, spans[0].SpanContext().TraceID(), linked.TraceID())
	require.Equal(t, spans[0].SpanContext().SpanID(), linked.SpanID())
}
