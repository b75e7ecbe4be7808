// scheduler/scheduler.go
package scheduler

import (
	"log"
	"safespace/connection"
	"safespace/model"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

func StartScheduler() {
	c := cron.New(cron.WithSeconds())

	DB, err := connection.DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Every minute: deactivate forwarded-case grants past their expiry.
	_, err = c.AddFunc("0 * * * * *", func() {
		SweepExpiredGrants(DB)
	})

	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Scheduler started")

	// Block forever
	select {}
}

func SweepExpiredGrants(db *gorm.DB) {
	result := db.Model(&model.CaseAccess{}).
		Where("is_active = ? AND expires_at < ?", "1", time.Now()).
		Update("is_active", "0")
	if result.Error != nil {
		log.Printf("Failed to sweep expired case access grants: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Deactivated %d expired case access grants", result.RowsAffected)
	}
}
