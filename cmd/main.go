package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/interviewbook/interviewbook-server/cmd/api"
	"github.com/interviewbook/interviewbook-server/cmd/models"
	"github.com/interviewbook/interviewbook-server/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			runMigrations()
			return
		case "seed-admin":
			runSeedAdmin()
			return
		case "clear-db":
			runDatabaseClear()
			return
		default:
			log.Fatalf("Unknown command: %s", os.Args[1])
		}
	}

	startServer()
}

func runMigrations() {
	DB, err := db.NewPSQLStorage()
	if err != nil {
		log.Fatalf("Database initialization error: %v", err)
	}
	defer func() {
		sqlDB, _ := DB.DB()
		sqlDB.Close()
		log.Println("Database connection closed")
	}()
	log.Println("Connected to the database for migrations")

	if err := performMigrations(DB); err != nil {
		log.Fatalf("Migration error: %v", err)
	}
	log.Println("Migrations completed successfully")
}

func performMigrations(DB *gorm.DB) error {

	migrations := []struct {
		model interface{}
		name  string
	}{
		{&models.User{}, "User"},
		{&models.AvailabilitySlot{}, "AvailabilitySlot"},
		{&models.BlockedDate{}, "BlockedDate"},
		{&models.Booking{}, "Booking"},
		{&models.AdminSetting{}, "AdminSetting"},
	}

	log.Println("Starting database migrations...")
	for _, m := range migrations {
		log.Printf("Migrating %s table...", m.name)
		if err := DB.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("error migrating %s table: %w", m.name, err)
		}
		log.Printf("%s migration successful", m.name)
	}

	// A slot may be claimed once among non-cancelled bookings. Cancelled rows
	// are excluded so cancelling frees the slot for rebooking.
	if err := DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uniq_bookings_active_slot
		ON bookings (booking_date, booking_time)
		WHERE status <> 'cancelled'`).Error; err != nil {
		return fmt.Errorf("error creating booking slot index: %w", err)
	}
	log.Println("Booking slot uniqueness index created/verified")

	log.Println("All migrations completed successfully")
	return nil
}

// runSeedAdmin creates (or updates) the admin account from ADMIN_EMAIL,
// ADMIN_PASSWORD and ADMIN_NAME. There is no open registration endpoint.
func runSeedAdmin() {
	DB, err := db.NewPSQLStorage()
	if err != nil {
		log.Fatalf("Database initialization error: %v", err)
	}
	defer func() {
		sqlDB, _ := DB.DB()
		sqlDB.Close()
	}()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}
	if name == "" {
		name = "Administrator"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error hashing password: %v", err)
	}

	var user models.User
	err = DB.Where("email = ?", email).First(&user).Error
	switch err {
	case nil:
		user.FullName = name
		user.PasswordHash = string(hash)
		user.Role = models.RoleAdmin
		if err := DB.Save(&user).Error; err != nil {
			log.Fatalf("Error updating admin user: %v", err)
		}
		log.Printf("Admin user %s updated", email)
	case gorm.ErrRecordNotFound:
		user = models.User{
			FullName:     name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
		}
		if err := DB.Create(&user).Error; err != nil {
			log.Fatalf("Error creating admin user: %v", err)
		}
		log.Printf("Admin user %s created", email)
	default:
		log.Fatalf("Error looking up admin user: %v", err)
	}
}

func startServer() {
	DB, err := db.NewPSQLStorage()
	if err != nil {
		log.Fatalf("Database initialization error: %v", err)
	}
	defer func() {
		sqlDB, _ := DB.DB()
		sqlDB.Close()
		log.Println("Database connection closed")
	}()
	log.Println("Connected to the database")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}
	server := api.NewApiServer(":"+port, DB)

	go func() {
		if err := server.Run(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()
	log.Printf("Server running on port %s", port)

	<-quit
	log.Println("Shutting down server...")
}

func runDatabaseClear() {
	DB, err := db.NewPSQLStorage()
	if err != nil {
		log.Fatalf("Database initialization error: %v", err)
	}
	defer func() {
		sqlDB, _ := DB.DB()
		sqlDB.Close()
		log.Println("Database connection closed")
	}()

	log.Println("Preparing to clear database...")

	var confirmation string
	fmt.Print("Are you sure you want to clear the database? (yes/no): ")
	fmt.Scanln(&confirmation)

	if confirmation != "yes" {
		log.Println("Database clearing cancelled.")
		return
	}

	tables := []interface{}{
		&models.Booking{},
		&models.AvailabilitySlot{},
		&models.BlockedDate{},
		&models.AdminSetting{},
		&models.User{},
	}

	log.Println("Dropping tables...")
	for _, table := range tables {
		if err := DB.Migrator().DropTable(table); err != nil {
			log.Printf("Warning dropping table %T: %v", table, err)
		} else {
			log.Printf("Table %T dropped", table)
		}
	}

	log.Println("Database cleared successfully")
}
