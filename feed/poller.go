package feed

import (
	"context"
	"log"
	"time"

	"spinWheelServer/config"
)

// Fetcher is anything that can produce a price snapshot.
type Fetcher interface {
	Fetch(ctx context.Context) (Snapshot, error)
}

// Poller refreshes a Series from a Fetcher on a fixed interval.
type Poller struct {
	fetcher  Fetcher
	series   *Series
	interval time.Duration
}

func NewPoller(fetcher Fetcher, series *Series, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = config.DefaultPollInterval
	}
	return &Poller{fetcher: fetcher, series: series, interval: interval}
}

// Run polls once immediately and then on every tick until ctx is done.
// Failed polls are logged and the previous series is kept.
func (p *Poller) Run(ctx context.Context) error {
	log.Printf("📈 Price feed poller started (%s interval)", p.interval)

	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("📴 Price feed poller stopped")
			return nil
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, config.FeedRequestTimeout)
	defer cancel()

	snap, err := p.fetcher.Fetch(ctx)
	if err != nil {
		if parent.Err() == nil {
			log.Printf("⚠️  Price feed poll failed: %v", err)
		}
		return
	}

	p.series.Apply(snap, time.Now())
	log.Printf("📊 Price feed updated: %d points, latest %s", p.series.Len(), p.series.LatestPrice())
}
