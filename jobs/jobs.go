package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"meditrack/services"
)

// StartDailyCensus logs a whole-collection census every day at 00:05.
// Console output only, there is no durable audit trail.
func StartDailyCensus(svc *services.PatientService) *cron.Cron {
	c := cron.New()

	c.AddFunc("5 0 * * *", func() {
		log.Println("Running Daily Patient Census...")
		RunCensus(svc)
	})

	c.Start()
	return c
}

func RunCensus(svc *services.PatientService) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stats, err := svc.Census(ctx)
	if err != nil {
		log.Println("Error from Census: ", err)
		return
	}
	log.Printf("Census: total=%d critical=%d icu=%d admitted=%d",
		stats.Total, stats.Critical, stats.ICU, stats.Admitted)
}
