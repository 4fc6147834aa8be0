package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		if clearData {
			clearTables(db)
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte("password"), cfg.Security.BCryptCost)

		seedUser(db, "admin@gearguard.local", "Ada Admin", "ADMIN", string(hash))
		managerID := seedUser(db, "manager@gearguard.local", "Morgan Manager", "MANAGER", string(hash))
		techOneID := seedUser(db, "tech1@gearguard.local", "Terry Technician", "TECHNICIAN", string(hash))
		techTwoID := seedUser(db, "tech2@gearguard.local", "Tracy Technician", "TECHNICIAN", string(hash))
		seedUser(db, "user@gearguard.local", "Riley Reporter", "USER", string(hash))

		teamID := seedTeam(db, "Mechanical Maintenance", "Handles pumps, presses and conveyor lines")
		seedMembership(db, techOneID, teamID, "LEAD")
		seedMembership(db, techTwoID, teamID, "MEMBER")

		pressID := seedEquipment(db, "Hydraulic Press 10T", "PRESS", "HP-10T-001", "Hall A", &teamID)
		seedEquipment(db, "Conveyor Belt North", "CONVEYOR", "CB-N-014", "Hall B", &teamID)
		seedEquipment(db, "Forklift 3", "VEHICLE", "FL-3-2021", "Yard", nil)

		seedRequest(db, "Press leaking hydraulic fluid", pressID, &teamID, managerID)

		fmt.Println("Seeding complete")
	},
}

func clearTables(db *sqlx.DB) {
	// Child tables first to keep foreign keys happy
	for _, table := range []string{"maintenance_requests", "equipment", "team_members", "maintenance_teams", "users"} {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			log.Fatalf("failed to clear table %s: %v", table, err)
		}
	}
	fmt.Println("Cleared existing data")
}

func seedUser(db *sqlx.DB, email, name, role, passwordHash string) string {
	var id string
	if err := db.Get(&id, "SELECT id FROM users WHERE email = $1", email); err == nil {
		fmt.Printf("user %s already exists\n", email)
		return id
	}

	id = uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO users (id, email, name, role, password_hash, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, true, now(), now())`,
		id, email, name, role, passwordHash)
	if err != nil {
		log.Fatalf("failed to insert user %s: %v", email, err)
	}
	fmt.Println("Seeded user:", email)
	return id
}

func seedTeam(db *sqlx.DB, name, description string) string {
	var id string
	if err := db.Get(&id, "SELECT id FROM maintenance_teams WHERE name = $1", name); err == nil {
		fmt.Printf("team %s already exists\n", name)
		return id
	}

	id = uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO maintenance_teams (id, name, description, created_at, updated_at)
		 VALUES ($1, $2, $3, now(), now())`,
		id, name, description)
	if err != nil {
		log.Fatalf("failed to insert team %s: %v", name, err)
	}
	fmt.Println("Seeded team:", name)
	return id
}

func seedMembership(db *sqlx.DB, userID, teamID, role string) {
	var exists int
	if err := db.Get(&exists, "SELECT 1 FROM team_members WHERE user_id = $1 AND team_id = $2", userID, teamID); err == nil {
		return
	}

	_, err := db.Exec(
		`INSERT INTO team_members (id, user_id, team_id, role, created_at)
		 VALUES ($1, $2, $3, $4, now())`,
		uuid.NewString(), userID, teamID, role)
	if err != nil {
		log.Fatalf("failed to insert team member %s: %v", userID, err)
	}
	fmt.Println("Seeded membership:", userID)
}

func seedEquipment(db *sqlx.DB, name, category, serialNumber, location string, teamID *string) string {
	var id string
	if err := db.Get(&id, "SELECT id FROM equipment WHERE serial_number = $1", serialNumber); err == nil {
		fmt.Printf("equipment %s already exists\n", serialNumber)
		return id
	}

	id = uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO equipment (id, name, category, serial_number, location, maintenance_team_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, 'OPERATIONAL', now(), now())`,
		id, name, category, serialNumber, location, teamID)
	if err != nil {
		log.Fatalf("failed to insert equipment %s: %v", name, err)
	}
	fmt.Println("Seeded equipment:", name)
	return id
}

func seedRequest(db *sqlx.DB, subject, equipmentID string, teamID *string, createdByID string) {
	var exists int
	if err := db.Get(&exists, "SELECT 1 FROM maintenance_requests WHERE subject = $1", subject); err == nil {
		return
	}

	_, err := db.Exec(
		`INSERT INTO maintenance_requests (id, subject, description, type, priority, status, equipment_id, team_id, created_by_id, created_at, updated_at)
		 VALUES ($1, $2, '', 'CORRECTIVE', 'HIGH', 'NEW', $3, $4, $5, now(), now())`,
		uuid.NewString(), subject, equipmentID, teamID, createdByID)
	if err != nil {
		log.Fatalf("failed to insert request %s: %v", subject, err)
	}
	fmt.Println("Seeded request:", subject)
}
