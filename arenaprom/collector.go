// Package arenaprom exports arena statistics as Prometheus metrics.
// It lives outside the core package so that callers who do not scrape
// metrics never pull in the Prometheus client.
package arenaprom

import (
	"github.com/prometheus/client_golang/prometheus"

	arena "github.com/marciovmf/stdx-arena"
)

// Source is anything that can snapshot arena statistics.
// Both *arena.Arena and *arena.SafeArena satisfy it. Scraping a plain
// Arena is only safe from the goroutine that owns it; use SafeArena
// when the scrape happens on the Prometheus handler's goroutine.
type Source interface {
	Metrics() arena.ArenaMetrics
}

// Collector implements prometheus.Collector over an arena, reporting
// bytes in use, total capacity, chunk count, and utilization at scrape
// time.
type Collector struct {
	src Source

	bytesInUse    *prometheus.Desc
	capacityBytes *prometheus.Desc
	chunks        *prometheus.Desc
	utilization   *prometheus.Desc
}

// NewCollector creates a Collector for src. The name label distinguishes
// multiple arenas registered with the same registry.
func NewCollector(src Source, name string) *Collector {
	labels := prometheus.Labels{"arena": name}
	return &Collector{
		src: src,
		bytesInUse: prometheus.NewDesc(
			"arena_bytes_in_use",
			"Bytes currently allocated in the arena, including alignment padding.",
			nil, labels,
		),
		capacityBytes: prometheus.NewDesc(
			"arena_capacity_bytes",
			"Total capacity of all chunks held by the arena.",
			nil, labels,
		),
		chunks: prometheus.NewDesc(
			"arena_chunks",
			"Number of chunks currently held by the arena.",
			nil, labels,
		),
		utilization: prometheus.NewDesc(
			"arena_utilization_ratio",
			"Ratio of bytes in use to total capacity (0.0 to 1.0).",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.bytesInUse
	ch <- c.capacityBytes
	ch <- c.chunks
	ch <- c.utilization
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	m := c.src.Metrics()
	ch <- prometheus.MustNewConstMetric(c.bytesInUse, prometheus.GaugeValue, float64(m.SizeInUse))
	ch <- prometheus.MustNewConstMetric(c.capacityBytes, prometheus.GaugeValue, float64(m.Capacity))
	ch <- prometheus.MustNewConstMetric(c.chunks, prometheus.GaugeValue, float64(m.NumChunks))
	ch <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, m.Utilization)
}
