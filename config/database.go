package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"frontdesk/models"
)

func getDBConfigByEnv(env string) (string, error) {
	var prefix string

	switch env {
	case "dev":
		prefix = "DEV"
	case "qc":
		prefix = "QC"
	case "prod":
		prefix = "PROD"
	default:
		return "", fmt.Errorf("unknown environment: %s", env)
	}

	get := func(key string) string {
		return viper.GetString(prefix + "_DB_" + key)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require TimeZone=Asia/Ho_Chi_Minh",
		get("HOST"), get("USER"), get("PASSWORD"), get("NAME"), get("PORT"))
	return dsn, nil
}

// ConnectDB opens the local directory database.
func ConnectDB(s Settings) (*gorm.DB, error) {
	dsn, err := getDBConfigByEnv(s.Env)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("fail to connect to db: %w", err)
	}

	log.Println("Successfully connected to db")
	return db, nil
}

// Migrate creates the tables the local directory reads.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.RoomCategory{}, &models.Room{}, &models.RoomStatus{}, &models.Holiday{}, &models.Operator{})
}
