package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sudoLimin/OurCollege/internal/database"
	"github.com/sudoLimin/OurCollege/internal/modules/chat"
	"github.com/sudoLimin/OurCollege/internal/modules/group"
	"github.com/sudoLimin/OurCollege/internal/modules/material"
	"github.com/sudoLimin/OurCollege/internal/modules/notification"
	"github.com/sudoLimin/OurCollege/internal/modules/task"
	"github.com/sudoLimin/OurCollege/internal/modules/user"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "ourcollege.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&user.User{},
		&group.Group{},
		&group.Member{},
		&task.Task{},
		&chat.Message{},
		&material.StudyMaterial{},
		&notification.Notification{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM study_materials")
	db.Exec("DELETE FROM chat_messages")
	db.Exec("DELETE FROM tasks")
	db.Exec("DELETE FROM group_members")
	db.Exec("DELETE FROM groups")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")
	names := []string{"Alia", "Bekzat", "Dina", "Yerlan"}
	users := make([]user.User, 0, len(names))
	for _, name := range names {
		hash, _ := bcrypt.GenerateFromPassword([]byte("student123"), bcrypt.DefaultCost)
		u := user.User{
			Name:         name,
			Email:        fmt.Sprintf("%s@ourcollege.kz", strings.ToLower(name)),
			PasswordHash: string(hash),
		}
		db.Create(&u)
		users = append(users, u)
		log.Printf("User created: %s / student123", u.Email)
	}

	// ================== GROUPS ==================
	log.Println("Creating groups...")
	algebra := group.Group{Name: "Algebra II", CreatedBy: &users[0].ID}
	db.Create(&algebra)
	physics := group.Group{Name: "Physics Lab", CreatedBy: &users[1].ID}
	db.Create(&physics)

	for _, u := range users[:3] {
		db.Create(&group.Member{GroupID: algebra.ID, UserID: u.ID})
	}
	for _, u := range users[1:] {
		db.Create(&group.Member{GroupID: physics.ID, UserID: u.ID})
	}

	// ================== TASKS ==================
	log.Println("Creating tasks...")
	statuses := []string{task.StatusOpen, task.StatusInProgress, task.StatusDone}
	for i := 0; i < 6; i++ {
		creator := users[i%3]
		db.Create(&task.Task{
			GroupID:     &algebra.ID,
			CreatedBy:   &creator.ID,
			Title:       fmt.Sprintf("Problem set %d", i+1),
			Description: "Chapters covered in last week's session",
			Status:      statuses[i%len(statuses)],
			CreatedAt:   time.Now().AddDate(0, 0, -i*3),
		})
	}

	// ================== MATERIALS ==================
	log.Println("Creating materials...")
	url := "https://example.com/algebra-notes.pdf"
	db.Create(&material.StudyMaterial{
		GroupID:    &algebra.ID,
		UploadedBy: &users[0].ID,
		Title:      "Lecture notes, week 4",
		URL:        &url,
		CreatedAt:  time.Now(),
	})

	// ================== CHAT ==================
	log.Println("Creating chat history...")
	db.Create(&chat.Message{
		GroupID:   algebra.ID,
		UserID:    &users[0].ID,
		UserName:  users[0].Name,
		Content:   "Does anyone have the notes from Tuesday?",
		Timestamp: time.Now().Add(-2 * time.Hour),
	})
	db.Create(&chat.Message{
		GroupID:   algebra.ID,
		UserID:    &users[1].ID,
		UserName:  users[1].Name,
		Content:   "Uploaded them to materials just now.",
		Timestamp: time.Now().Add(-90 * time.Minute),
	})

	// ================== NOTIFICATIONS ==================
	log.Println("Creating notifications...")
	for _, u := range users[:3] {
		db.Create(&notification.Notification{
			UserID:    u.ID,
			Message:   "New material added: Lecture notes, week 4",
			CreatedAt: time.Now().Add(-time.Hour),
		})
	}

	log.Println("Seed complete.")
}
