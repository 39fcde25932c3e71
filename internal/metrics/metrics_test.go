package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	inputs chan *cloudwatch.PutMetricDataInput
}

func (f *fakePutter) PutMetricData(_ context.Context, in *cloudwatch.PutMetricDataInput, _ ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	f.inputs <- in
	return &cloudwatch.PutMetricDataOutput{}, nil
}

func newTestClient() (*Client, *fakePutter) {
	fake := &fakePutter{inputs: make(chan *cloudwatch.PutMetricDataInput, 4)}
	return &Client{client: fake, enabled: true, environment: "production", namespace: "Test/Harmony"}, fake
}

func receive(t *testing.T, fake *fakePutter) *cloudwatch.PutMetricDataInput {
	t.Helper()
	select {
	case in := <-fake.inputs:
		return in
	case <-time.After(2 * time.Second):
		t.Fatal("no metric recorded")
		return nil
	}
}

func TestNewClientDisabledOutsideProduction(t *testing.T) {
	c, err := NewClient(context.Background(), "development", "Test/Harmony")
	require.NoError(t, err)
	assert.False(t, c.Enabled())

	// Must be a no-op rather than a nil dereference.
	c.RecordChordParse(context.Background(), "", false, time.Millisecond)
	c.RecordAPIRequest(context.Background(), "/health", 200, time.Millisecond)
}

func TestRecordChordParseError(t *testing.T) {
	c, fake := newTestClient()
	c.RecordChordParse(context.Background(), "invalid_alteration", false, time.Millisecond)

	in := receive(t, fake)
	assert.Equal(t, "Test/Harmony", aws.ToString(in.Namespace))
	require.Len(t, in.MetricData, 1)
	datum := in.MetricData[0]
	assert.Equal(t, "ChordParseErrors", aws.ToString(datum.MetricName))
	assert.Equal(t, types.StandardUnitCount, datum.Unit)
	assert.Equal(t, "Kind", aws.ToString(datum.Dimensions[0].Name))
	assert.Equal(t, "invalid_alteration", aws.ToString(datum.Dimensions[0].Value))
}

func TestRecordAPIRequestServerError(t *testing.T) {
	c, fake := newTestClient()
	c.RecordAPIRequest(context.Background(), "/api/v1/chords/parse", 500, 20*time.Millisecond)

	names := []string{
		aws.ToString(receive(t, fake).MetricData[0].MetricName),
		aws.ToString(receive(t, fake).MetricData[0].MetricName),
	}
	assert.ElementsMatch(t, []string{"APIErrors", "APILatency"}, names)
}

type countingRecorder struct {
	requests, parses int
}

func (r *countingRecorder) RecordAPIRequest(context.Context, string, int, time.Duration) {
	r.requests++
}

func (r *countingRecorder) RecordChordParse(context.Context, string, bool, time.Duration) {
	r.parses++
}

func TestFanout(t *testing.T) {
	a, b := &countingRecorder{}, &countingRecorder{}
	f := Fanout{a, b, Nop{}}

	f.RecordAPIRequest(context.Background(), "/health", 200, time.Millisecond)
	f.RecordChordParse(context.Background(), "", true, time.Millisecond)
	f.RecordChordParse(context.Background(), "conflicting_macro", false, time.Millisecond)

	assert.Equal(t, 1, a.requests)
	assert.Equal(t, 2, b.parses)
}
