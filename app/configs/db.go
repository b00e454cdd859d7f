package configs

import (
	"context"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	pingAttempts = 3
	pingDelay    = 2 * time.Second
)

// DSN builds the MySQL data source name. clientFoundRows makes an update that matches a row
// count as affected even when no value changed.
func (e ENV) DSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
		e.DBUser,
		e.DBPassword,
		e.DBHost,
		e.DBPort,
		e.DBName,
	)
}

// OpenConnection returns a handle even when the database cannot be reached yet; the sync
// bootstrapper decides between remote and local data on its own probe.
func OpenConnection(env ENV) (*gorm.DB, error) {
	logLevel := logger.Warn
	if env.IsProduction() {
		logLevel = logger.Error
	}

	db, err := gorm.Open(mysql.Open(env.DSN()), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	for i := 1; i <= pingAttempts; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), env.RemoteTimeout)
		pingErr := sqlDB.PingContext(ctx)
		cancel()
		if pingErr == nil {
			log.Println("OpenConnection: database connection successful")
			return db, nil
		}
		log.Printf("OpenConnection: ping %d/%d failed: %v", i, pingAttempts, pingErr)
		if i < pingAttempts {
			time.Sleep(pingDelay)
		}
	}

	log.Println("OpenConnection: database unreachable, continuing without it")
	return db, nil
}
