package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"autoshop-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "autoshop_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase makes sure the default admin and the public services catalog
// exist. Safe to run on every startup.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		password := envOrDefault("ADMIN_PASSWORD", "admin123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Shop Admin",
				Username: envOrDefault("ADMIN_USERNAME", "admin@autoshop.local"),
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var itemCount int64
	DB.Model(&models.ServiceItem{}).Count(&itemCount)
	if itemCount == 0 {
		items := []models.ServiceItem{
			{Name: "Oil Change", Description: "Full synthetic oil and filter replacement", Price: 49.99, Available: true},
			{Name: "Tire Rotation", Description: "Rotate and balance all four tires", Price: 29.99, Available: true},
			{Name: "Brake Service", Description: "Pad replacement and rotor inspection", Price: 149.99, Available: true},
			{Name: "Engine Diagnostic", Description: "Computerized engine fault scan", Price: 89.99, Available: true},
			{Name: "Battery Replacement", Description: "Battery test and replacement", Price: 129.99, Available: true},
			{Name: "AC Service", Description: "Refrigerant recharge and leak check", Price: 99.99, Available: true},
			{Name: "Wheel Alignment", Description: "Four-wheel computerized alignment", Price: 79.99, Available: true},
			{Name: "Transmission Service", Description: "Fluid exchange and filter service", Price: 189.99, Available: true},
		}
		if err := DB.Create(&items).Error; err != nil {
			log.Printf("warning: failed to seed services catalog: %v", err)
		} else {
			log.Println("Services catalog seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.Account{},
		&models.Profile{},
		&models.ServiceItem{},
		&models.Booking{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
