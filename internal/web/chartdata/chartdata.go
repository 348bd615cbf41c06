// Package chartdata assembles the line-chart dataset rendered by
// Chart.js in the asset-detail template. The transformation is pure:
// it never fetches and holds no state.
package chartdata

import (
	"fmt"

	"github.com/alphadash/dashboard/internal/model"
)

// Dataset is one plotted series. Data entries may be nil, which
// Chart.js renders as gaps within an otherwise present series.
type Dataset struct {
	Label       string     `json:"label"`
	Data        []*float64 `json:"data"`
	BorderColor string     `json:"borderColor"`
	Tension     float64    `json:"tension"`
}

// Config is the Chart.js "data" object for a time-ordered price chart.
type Config struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Build produces the chart configuration for a price series.
//
// The closing-price series is always present. An SMA overlay is added
// only when at least one point carries that value: a series absent from
// every point is suppressed entirely instead of plotting an empty line
// with a dangling legend entry.
func Build(symbol string, points []model.HistoricalPricePoint) Config {
	cfg := Config{
		Labels: make([]string, len(points)),
	}

	closes := make([]*float64, len(points))
	sma20 := make([]*float64, len(points))
	sma50 := make([]*float64, len(points))
	var hasSMA20, hasSMA50 bool

	for i, p := range points {
		cfg.Labels[i] = p.Date
		v := p.Close
		closes[i] = &v
		if p.SMA20 != nil {
			sma20[i] = p.SMA20
			hasSMA20 = true
		}
		if p.SMA50 != nil {
			sma50[i] = p.SMA50
			hasSMA50 = true
		}
	}

	cfg.Datasets = append(cfg.Datasets, Dataset{
		Label:       fmt.Sprintf("%s Closing Price", symbol),
		Data:        closes,
		BorderColor: "rgb(75, 192, 192)",
		Tension:     0.1,
	})

	if hasSMA20 {
		cfg.Datasets = append(cfg.Datasets, Dataset{
			Label:       "SMA 20",
			Data:        sma20,
			BorderColor: "rgb(255, 159, 64)",
			Tension:     0.1,
		})
	}
	if hasSMA50 {
		cfg.Datasets = append(cfg.Datasets, Dataset{
			Label:       "SMA 50",
			Data:        sma50,
			BorderColor: "rgb(153, 102, 255)",
			Tension:     0.1,
		})
	}

	return cfg
}
