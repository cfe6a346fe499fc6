// File: /jobs/booking_cleanup_job.go
package jobs

import (
	"log"
	"time"

	"eventfdr-api/services"
)

// BookingCleanupJob periodically expires bookings stuck in pending
// after the payment step never completed. Those bookings never counted
// against event capacity, so removing them is the whole compensation.
type BookingCleanupJob struct {
	bookings *services.BookingService
	ttl      time.Duration
	ticker   *time.Ticker
	done     chan bool
}

func NewBookingCleanupJob(bookings *services.BookingService, interval, ttl time.Duration) *BookingCleanupJob {
	return &BookingCleanupJob{
		bookings: bookings,
		ttl:      ttl,
		ticker:   time.NewTicker(interval),
		done:     make(chan bool),
	}
}

// Start begins the cleanup job
func (j *BookingCleanupJob) Start() {
	log.Println("Booking cleanup job started")

	go func() {
		// Run immediately on start
		j.cleanup()

		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				log.Println("Booking cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the cleanup job
func (j *BookingCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *BookingCleanupJob) cleanup() {
	expired, err := j.bookings.ExpireStalePending(j.ttl)
	if err != nil {
		log.Printf("Error during booking cleanup: %v", err)
		return
	}

	if expired > 0 {
		log.Printf("Expired %d stale pending bookings", expired)
	}
}
