// MIT License
//
// Copyright (c) 2025-2026 Gotell Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

const (
	receivedCounterName         = "receiver_received_count"
	handledCounterName          = "receiver_handled_count"
	unhandledCounterName        = "receiver_unhandled_count"
	mailboxGaugeName            = "receiver_mailbox_size"
	handleDurationHistogramName = "receiver_handle_duration"
)

// ReceiverMetrics define the type of metrics we are collecting
// from a receiver
type ReceiverMetrics struct {
	// captures the count of messages pulled from the mailbox
	ReceivedCount metric.Int64Counter
	// captures the count of messages matched by a handler
	HandledCount metric.Int64Counter
	// captures the count of messages no handler matched
	UnhandledCount metric.Int64Counter
	// captures the mailbox size at observation time
	MailboxSize metric.Int64ObservableGauge
	// captures the duration of a handled message in milliseconds
	HandleDurationHistogram metric.Float64Histogram
}

// NewReceiverMetrics creates an instance of ReceiverMetrics. The mailboxLen
// callback is sampled whenever the meter's reader collects, so it must be
// safe to call from any goroutine.
func NewReceiverMetrics(meter metric.Meter, mailboxLen func() int64) (*ReceiverMetrics, error) {
	metrics := new(ReceiverMetrics)
	var err error

	if metrics.ReceivedCount, err = meter.Int64Counter(
		receivedCounterName,
		metric.WithDescription("The total number of messages pulled from the mailbox"),
	); err != nil {
		return nil, fmt.Errorf("failed to create received count instrument, %w", err)
	}

	if metrics.HandledCount, err = meter.Int64Counter(
		handledCounterName,
		metric.WithDescription("The total number of messages matched by a handler"),
	); err != nil {
		return nil, fmt.Errorf("failed to create handled count instrument, %w", err)
	}

	if metrics.UnhandledCount, err = meter.Int64Counter(
		unhandledCounterName,
		metric.WithDescription("The total number of messages no handler matched"),
	); err != nil {
		return nil, fmt.Errorf("failed to create unhandled count instrument, %w", err)
	}

	if metrics.MailboxSize, err = meter.Int64ObservableGauge(
		mailboxGaugeName,
		metric.WithDescription("The number of messages sitting in the mailbox at a point in time"),
		metric.WithInt64Callback(func(_ context.Context, observer metric.Int64Observer) error {
			observer.Observe(mailboxLen())
			return nil
		}),
	); err != nil {
		return nil, fmt.Errorf("failed to create mailbox size instrument, %w", err)
	}

	if metrics.HandleDurationHistogram, err = meter.Float64Histogram(
		handleDurationHistogramName,
		metric.WithDescription("The latency of a handled message in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, fmt.Errorf("failed to create handle duration instrument, %w", err)
	}

	return metrics, nil
}
