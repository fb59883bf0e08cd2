package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ShopMetrics holds the domain-level instruments. All recording methods
// are safe on a nil receiver so handlers never have to guard for it.
type ShopMetrics struct {
	customersCreated  metric.Int64Counter
	basketsCreated    metric.Int64Counter
	basketTransitions metric.Int64Counter
	itemsCreated      metric.Int64Counter
	batchElements     metric.Int64Counter
	recordsStreamed   metric.Int64Counter
}

// NewShopMetrics creates the shop instruments on the given meter.
func NewShopMetrics(meter metric.Meter) (*ShopMetrics, error) {
	customersCreated, err := meter.Int64Counter("shop.customers.created",
		metric.WithDescription("Number of customers created"))
	if err != nil {
		return nil, fmt.Errorf("failed to create customers counter: %w", err)
	}

	basketsCreated, err := meter.Int64Counter("shop.baskets.created",
		metric.WithDescription("Number of shopping baskets created"))
	if err != nil {
		return nil, fmt.Errorf("failed to create baskets counter: %w", err)
	}

	basketTransitions, err := meter.Int64Counter("shop.baskets.transitions",
		metric.WithDescription("Number of basket status transitions"))
	if err != nil {
		return nil, fmt.Errorf("failed to create transitions counter: %w", err)
	}

	itemsCreated, err := meter.Int64Counter("shop.items.created",
		metric.WithDescription("Number of basket items created"))
	if err != nil {
		return nil, fmt.Errorf("failed to create items counter: %w", err)
	}

	batchElements, err := meter.Int64Counter("shop.batch.elements",
		metric.WithDescription("Number of batch elements processed, by outcome"))
	if err != nil {
		return nil, fmt.Errorf("failed to create batch counter: %w", err)
	}

	recordsStreamed, err := meter.Int64Counter("shop.stream.records",
		metric.WithDescription("Number of records written to streaming responses"))
	if err != nil {
		return nil, fmt.Errorf("failed to create stream counter: %w", err)
	}

	return &ShopMetrics{
		customersCreated:  customersCreated,
		basketsCreated:    basketsCreated,
		basketTransitions: basketTransitions,
		itemsCreated:      itemsCreated,
		batchElements:     batchElements,
		recordsStreamed:   recordsStreamed,
	}, nil
}

// RecordCustomerCreated increments the customer creation counter.
func (m *ShopMetrics) RecordCustomerCreated(ctx context.Context) {
	if m == nil {
		return
	}
	m.customersCreated.Add(ctx, 1)
}

// RecordBasketCreated increments the basket creation counter.
func (m *ShopMetrics) RecordBasketCreated(ctx context.Context) {
	if m == nil {
		return
	}
	m.basketsCreated.Add(ctx, 1)
}

// RecordBasketTransition counts a status transition labelled with both sides.
func (m *ShopMetrics) RecordBasketTransition(ctx context.Context, from, to string) {
	if m == nil {
		return
	}
	m.basketTransitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from", from),
		attribute.String("to", to),
	))
}

// RecordItemCreated increments the item creation counter.
func (m *ShopMetrics) RecordItemCreated(ctx context.Context) {
	if m == nil {
		return
	}
	m.itemsCreated.Add(ctx, 1)
}

// RecordBatchOutcome counts processed batch elements per entity and outcome.
func (m *ShopMetrics) RecordBatchOutcome(ctx context.Context, entity string, succeeded, failed int) {
	if m == nil {
		return
	}
	if succeeded > 0 {
		m.batchElements.Add(ctx, int64(succeeded), metric.WithAttributes(
			attribute.String("entity", entity),
			attribute.String("outcome", "success"),
		))
	}
	if failed > 0 {
		m.batchElements.Add(ctx, int64(failed), metric.WithAttributes(
			attribute.String("entity", entity),
			attribute.String("outcome", "failure"),
		))
	}
}

// RecordStreamedRecords counts records written to an NDJSON response.
func (m *ShopMetrics) RecordStreamedRecords(ctx context.Context, entity string, count int64) {
	if m == nil {
		return
	}
	m.recordsStreamed.Add(ctx, count, metric.WithAttributes(
		attribute.String("entity", entity),
	))
}
