package scheduler

import (
	"kanboard/connection"
	"kanboard/model"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

func StartScheduler() {
	c := cron.New()

	DB, err := connection.DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Hourly invite hygiene.
	_, err = c.AddFunc("0 * * * *", func() {
		PurgeExpiredInvites(DB)
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Scheduler started")

	// Block forever
	select {}
}

func PurgeExpiredInvites(db *gorm.DB) {
	result := db.Where("expires_at <= ?", time.Now()).Delete(&model.BoardInvite{})
	if result.Error != nil {
		log.Printf("Failed to purge expired invites: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Purged %d expired board invites", result.RowsAffected)
	}
}
