package client

import (
	"log"
	"time"

	"shopping-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func InitMysqlClient(databaseURL string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		log.Fatal(err)
	}

	return db
}

// Migrate creates or updates the schema for all persisted entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	)
}

// SeedDemoData inserts the demo users and products when the tables are
// empty. Intended for development only, gated by SEED_DEMO_DATA.
func SeedDemoData(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&model.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		users := []*model.User{
			{Email: "user1@shopping.com", Password: "password1"},
			{Email: "user2@shopping.com", Password: "password2"},
		}
		if err := db.Create(&users).Error; err != nil {
			return err
		}
	}

	var productCount int64
	if err := db.Model(&model.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount == 0 {
		products := []*model.Product{
			{Name: "Chicken", ImageFileName: "chicken.png", Price: 20000},
			{Name: "Pizza", ImageFileName: "pizza.png", Price: 25000},
			{Name: "Sake", ImageFileName: "sake.png", Price: 30000},
		}
		if err := db.Create(&products).Error; err != nil {
			return err
		}
	}

	return nil
}
