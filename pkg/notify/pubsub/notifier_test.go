package pubsub_test

import (
	"context"
	"encoding/json"
	"presell/pkg/domain"
	"presell/pkg/notify"
	notifypubsub "presell/pkg/notify/pubsub"
	"presell/pkg/telemetry"
	"testing"
	"time"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func newTopic(t *testing.T) (*pstest.Server, *pubsub.Topic) {
	t.Helper()
	ctx := context.Background()

	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	client, err := pubsub.NewClient(ctx, "project-id", option.WithGRPCConn(conn))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	topic, err := client.CreateTopic(ctx, "presell-captures")
	require.NoError(t, err)

	return srv, topic
}

func TestNotifier_CaptureCompleted(t *testing.T) {
	prevProp := otel.GetTextMapPropagator()
	t.Cleanup(func() { otel.SetTextMapPropagator(prevProp) })
	otel.SetTextMapPropagator(telemetry.Propagator())

	srv, topic := newTopic(t)
	n := notifypubsub.New(topic)
	t.Cleanup(n.Stop)

	desktop := "https://cdn.example.com/d.jpg"
	event := notify.Event{
		PresellID:    domain.PresellID(uuid.New()),
		CaptureToken: domain.NewCaptureToken(),
		State:        domain.CaptureStatePartial,
		Screenshots:  domain.CaptureOutcome{Desktop: &desktop},
		CapturedAt:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	require.NoError(t, n.CaptureCompleted(ctx, event))

	msgs := srv.Messages()
	require.Len(t, msgs, 1)
	require.Equal(t, notify.EventCaptureCompleted, msgs[0].Attributes["type"])
	require.Equal(t, event.PresellID.String(), msgs[0].Attributes["presellId"])
	require.Equal(t, "PARTIAL", msgs[0].Attributes["state"])
	require.Contains(t, msgs[0].Attributes["traceparent"], "4bf92f3577b34da6a3ce929d0e0e4736")

	var got notify.Event
	require.NoError(t, json.Unmarshal(msgs[0].Data, &got))
	require.Equal(t, event, got)
	require.JSONEq(t, `{"desktop":"https://cdn.example.com/d.jpg","mobile":null}`, string(mustJSON(t, got.Screenshots)))
}

func TestNotifier_NoTopic(t *testing.T) {
	n := notifypubsub.New(nil)
	require.Error(t, n.CaptureCompleted(context.Background(), notify.Event{}))
	n.Stop()
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)

	return b
}
