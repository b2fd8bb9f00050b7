package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = 2 * time.Minute

type StaleBookingRejecter interface {
	RejectStalePending(ctx context.Context) (int, error)
}

// StartDailyScheduler registers the stale booking sweep on the given cron spec.
func StartDailyScheduler(spec string, rejecter StaleBookingRejecter) (*cron.Cron, error) {
	c := cron.New()

	// Default schedule runs every day at 00:05
	_, err := c.AddFunc(spec, func() {
		log.Println("Running daily stale booking sweep...")
		RunStaleBookingSweep(context.Background(), rejecter)
	})
	if err != nil {
		log.Println("Error registering stale booking sweep: ", err)
		return nil, err
	}

	c.Start()
	return c, nil
}

func RunStaleBookingSweep(ctx context.Context, rejecter StaleBookingRejecter) int {
	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	n, err := rejecter.RejectStalePending(ctx)
	if err != nil {
		log.Println("Error from stale booking sweep: ", err)
		return 0
	}
	log.Printf("Stale booking sweep rejected %d bookings\n", n)
	return n
}
