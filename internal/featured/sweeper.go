package featured

import (
	"log"
	"time"

	"dog-trainers-api/internal/logs"

	"github.com/robfig/cron/v3"
)

type LogServicePort interface {
	Log(entry logs.ActivityLog, metadata interface{}) error
}

// StartSweeper runs the placement lifecycle sweep every minute. The caller
// owns the returned cron and should Stop() it on shutdown.
func StartSweeper(svc FeaturedServiceAPI, logService LogServicePort) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@every 1m", func() {
		activated, expired, err := svc.Sweep(time.Now())
		if err != nil {
			log.Printf("placement sweep failed: %v", err)
			return
		}
		if activated == 0 && expired == 0 {
			return
		}

		log.Printf("placement sweep: activated=%d expired=%d", activated, expired)
		if logService != nil {
			_ = logService.Log(logs.ActivityLog{
				Level:   "info",
				Service: "featured",
				Action:  "placements_swept",
				Message: "featured placement lifecycle sweep",
			}, map[string]int{"activated": activated, "expired": expired})
		}
	})
	if err != nil {
		log.Printf("failed to schedule placement sweeper: %v", err)
		return c
	}

	c.Start()
	return c
}
