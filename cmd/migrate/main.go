package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"messenger-backend/config"
	"messenger-backend/pkg/database"
)

const usage = `
Messenger Backend - Database CLI Tool

Usage:
  migrate [command] [flags]

Commands:
  up          Run GORM migrations
  status      Show database connection status
  seed        Seed the database with the admin user

Flags:
  -admin-user string  Admin username for seeding (default "admin")
  -admin-pass string  Admin password for seeding (default "Admin@123!")

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go seed -admin-user admin -admin-pass secret
`

func main() {
	adminUser := flag.String("admin-user", "admin", "Admin username for seeding")
	adminPass := flag.String("admin-pass", "Admin@123!", "Admin password for seeding")

	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.LoadConfig()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	switch flag.Arg(0) {
	case "up":
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations applied")
	case "status":
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("Failed to get database handle: %v", err)
		}
		if err := sqlDB.Ping(); err != nil {
			log.Fatalf("Database unreachable: %v", err)
		}
		log.Println("Database connection OK")
	case "seed":
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		admin, err := database.SeedAdmin(db, &database.SeedConfig{
			AdminUsername: *adminUser,
			AdminPassword: *adminPass,
		})
		if err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		log.Printf("Admin user ready: %s (id=%d)", admin.Username, admin.ID)
	default:
		flag.Usage()
		os.Exit(1)
	}
}
