package telemetry

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// SpanSummary is the timing of one finished span.
type SpanSummary struct {
	Name     string        `json:"name"`
	Duration time.Duration `json:"duration"`
	Failed   bool          `json:"failed,omitempty"`
	Cached   bool          `json:"cached,omitempty"`
}

// SummaryProcessor implements sdktrace.SpanProcessor by keeping a summary of
// every ended span in memory.
type SummaryProcessor struct {
	mu        sync.Mutex
	summaries []SpanSummary
}

// NewSummaryProcessor returns an empty SummaryProcessor.
func NewSummaryProcessor() *SummaryProcessor {
	return &SummaryProcessor{}
}

// OnStart does nothing.
func (p *SummaryProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd records the span.
func (p *SummaryProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	summary := SpanSummary{
		Name:     s.Name(),
		Duration: s.EndTime().Sub(s.StartTime()),
		Failed:   s.Status().Code == codes.Error,
	}
	for _, attr := range s.Attributes() {
		if attr.Key == CachedAttribute {
			summary.Cached = attr.Value.AsBool()
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.summaries = append(p.summaries, summary)
}

// Summaries returns the recorded spans in the order they ended.
func (p *SummaryProcessor) Summaries() []SpanSummary {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.summaries)
}

// ForceFlush does nothing.
func (p *SummaryProcessor) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (p *SummaryProcessor) Shutdown(_ context.Context) error {
	return nil
}

// CachedAttribute marks a file span whose report came from the store.
const CachedAttribute = "jsstring.cached"

// Provider owns the SDK tracer provider installed for a run.
type Provider struct {
	tp      *sdktrace.TracerProvider
	summary *SummaryProcessor
}

// NewProvider creates an SDK tracer provider that summarizes spans and
// installs it as the global provider.
func NewProvider(extra ...sdktrace.SpanProcessor) *Provider {
	summary := NewSummaryProcessor()

	opts := []sdktrace.TracerProviderOption{sdktrace.WithSpanProcessor(summary)}
	for _, sp := range extra {
		opts = append(opts, sdktrace.WithSpanProcessor(sp))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	return &Provider{tp: tp, summary: summary}
}

// Summaries returns the spans ended so far.
func (p *Provider) Summaries() []SpanSummary {
	return p.summary.Summaries()
}

// Shutdown flushes and stops the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}
