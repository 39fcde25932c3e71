package metrics

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const (
	httpStatusServerError    = 500
	cloudwatchTimeoutSeconds = 5
)

// metricPutter is the part of the CloudWatch API the client uses.
type metricPutter interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Client wraps CloudWatch client for custom metrics
type Client struct {
	client      metricPutter
	enabled     bool
	environment string
	namespace   string
}

// NewClient creates a new CloudWatch metrics client. It is only enabled in
// production.
func NewClient(ctx context.Context, environment, namespace string) (*Client, error) {
	if environment != "production" {
		log.Printf("CloudWatch metrics disabled (environment: %s)", environment)
		return &Client{environment: environment, namespace: namespace}, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("Failed to load AWS config for CloudWatch: %v", err)
		return &Client{environment: environment, namespace: namespace}, nil
	}

	log.Printf("CloudWatch metrics enabled (namespace: %s)", namespace)
	return &Client{
		client:      cloudwatch.NewFromConfig(cfg),
		enabled:     true,
		environment: environment,
		namespace:   namespace,
	}, nil
}

// Enabled reports whether metrics are actually sent.
func (m *Client) Enabled() bool {
	return m.enabled
}

// RecordAPIRequest records an API request metric
func (m *Client) RecordAPIRequest(_ context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	go func() {
		metricName := "APIRequests"
		if statusCode >= httpStatusServerError {
			metricName = "APIErrors"
		}
		dimensions := m.dimensions("Endpoint", endpoint)

		if err := m.putMetric(metricName, 1, types.StandardUnitCount, dimensions); err != nil {
			log.Printf("Failed to record %s metric: %v", metricName, err)
		}
		latencyMs := float64(duration.Milliseconds())
		if err := m.putMetric("APILatency", latencyMs, types.StandardUnitMilliseconds, dimensions); err != nil {
			log.Printf("Failed to record APILatency metric: %v", err)
		}
	}()
}

// RecordChordParse counts parses, split by outcome. errorKind is empty on
// success.
func (m *Client) RecordChordParse(_ context.Context, errorKind string, cached bool, _ time.Duration) {
	if !m.enabled {
		return
	}

	go func() {
		if errorKind != "" {
			if err := m.putMetric("ChordParseErrors", 1, types.StandardUnitCount, m.dimensions("Kind", errorKind)); err != nil {
				log.Printf("Failed to record ChordParseErrors metric: %v", err)
			}
			return
		}
		if err := m.putMetric("ChordParses", 1, types.StandardUnitCount, m.dimensions("Cached", boolToString(cached))); err != nil {
			log.Printf("Failed to record ChordParses metric: %v", err)
		}
	}()
}

func (m *Client) dimensions(name, value string) []types.Dimension {
	return []types.Dimension{
		{
			Name:  aws.String(name),
			Value: aws.String(value),
		},
		{
			Name:  aws.String("Environment"),
			Value: aws.String(m.environment),
		},
	}
}

// putMetric sends a metric to CloudWatch
func (m *Client) putMetric(
	metricName string,
	value float64,
	unit types.StandardUnit,
	dimensions []types.Dimension,
) error {
	if !m.enabled || m.client == nil {
		return nil
	}

	timeout := time.Duration(cloudwatchTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Value:      aws.Float64(value),
				Unit:       unit,
				Timestamp:  aws.Time(time.Now()),
				Dimensions: dimensions,
			},
		},
	})
	return err
}

func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
