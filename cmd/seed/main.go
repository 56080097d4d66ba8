package main

import (
	"context"
	"log"
	"time"

	"pushuplog/internal/config"
	"pushuplog/internal/db"
	"pushuplog/internal/logger"
	"pushuplog/internal/model"
	"pushuplog/internal/repository"
)

type seedRecord struct {
	date    model.Date
	pushups int
}

type seedUser struct {
	name    string
	email   string
	records []seedRecord
}

var seedData = []seedUser{
	{
		name:  "Alice",
		email: "alice@example.com",
		records: []seedRecord{
			{date: model.NewDate(2024, time.January, 1), pushups: 10},
			{date: model.NewDate(2024, time.January, 2), pushups: 15},
			{date: model.NewDate(2024, time.January, 3), pushups: 20},
		},
	},
	{
		name:  "Bob",
		email: "bob@example.com",
		records: []seedRecord{
			{date: model.NewDate(2024, time.January, 1), pushups: 30},
			{date: model.NewDate(2024, time.January, 4), pushups: 25},
		},
	},
	{
		name:    "Carol",
		email:   "carol@example.com",
		records: nil,
	},
}

func main() {
	cfg := config.Load()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("logger init: %v", err)
	}

	gormDB, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.User{}, &model.Record{}); err != nil {
		logger.Log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	recordRepo := repository.NewRecordRepository(gormDB)

	existing, err := userRepo.Count(ctx)
	if err != nil {
		logger.Log.Fatalf("count users: %v", err)
	}
	if existing > 0 {
		logger.Log.Infof("database already has %d users, nothing to seed", existing)
		return
	}

	users, records := 0, 0
	for _, su := range seedData {
		user := &model.User{Name: su.name, Email: su.email}
		if err := userRepo.Create(ctx, user); err != nil {
			logger.Log.Fatalf("create user %s: %v", su.name, err)
		}
		users++
		for _, sr := range su.records {
			record := &model.Record{
				Date:            sr.date,
				NumberOfPushups: sr.pushups,
				UserID:          &user.ID,
			}
			if err := recordRepo.Create(ctx, record); err != nil {
				logger.Log.Fatalf("create record for %s: %v", su.name, err)
			}
			records++
		}
	}

	logger.Log.Infof("seed completed: %d users, %d records", users, records)
}
