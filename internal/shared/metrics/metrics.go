package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	selectionsTotal        atomic.Uint64
	structuresCreatedTotal atomic.Uint64
	publishedTotal         atomic.Uint64
	publishFailedTotal     atomic.Uint64

	structureBlocks = newHistogram([]float64{4, 6, 8, 10, 12, 16, 24})
)

// IncSelections counts stateless block selections.
func IncSelections() {
	selectionsTotal.Add(1)
}

// IncStructuresCreated counts persisted compositions.
func IncStructuresCreated() {
	structuresCreatedTotal.Add(1)
}

// IncPublished counts structures handed to the render pipeline.
func IncPublished() {
	publishedTotal.Add(1)
}

// IncPublishFailed counts failed publish attempts.
func IncPublishFailed() {
	publishFailedTotal.Add(1)
}

// ObserveStructureBlocks records how many blocks a composed structure holds.
func ObserveStructureBlocks(n int) {
	if n < 0 {
		n = 0
	}
	structureBlocks.Observe(float64(n))
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "block_selections_total", "Total stateless block selections", selectionsTotal.Load())
	writeCounter(&buf, "structures_created_total", "Total page structures composed and stored", structuresCreatedTotal.Load())
	writeCounter(&buf, "structures_published_total", "Total page structures handed to rendering", publishedTotal.Load())
	writeCounter(&buf, "structures_publish_failed_total", "Total failed publish attempts", publishFailedTotal.Load())
	writeHistogram(&buf, "structure_blocks", "Blocks per composed structure", structureBlocks.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe records value in the first bucket whose bound covers it.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
