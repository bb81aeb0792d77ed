package cmd

import (
	"fmt"
	"log"

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
			for _, table := range []string{"shifts", "user_roles", "reservations", "room_maintenance_issues", "transactions", "customers", "rooms", "users", "roles"} {
				if _, err := db.Exec("DELETE FROM " + table); err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		roles := []string{"Admin", "Manager", "Receptionist", "Accountant", "Housekeeper"}
		for _, name := range roles {
			ensureRole(db, name)
		}

		users := []struct {
			Email string
			Name  string
			Roles []string
		}{
			{"admin@hotel.test", "Hotel Admin", []string{"Admin"}},
			{"manager@hotel.test", "Front Office Manager", []string{"Manager"}},
			{"rina@hotel.test", "Rina Receptionist", []string{"Receptionist"}},
			{"dewi@hotel.test", "Dewi Accountant", []string{"Accountant"}},
		}

		for _, u := range users {
			userID := ensureUser(db, u.Email, u.Name, string(hash))
			for _, roleName := range u.Roles {
				grantRole(db, userID, roleName)
			}
			fmt.Println("Seeded user:", u.Email)
		}

		rooms := []struct {
			Number string
			Type   string
			Floor  int
			Price  int64
		}{
			{"101", "standard", 1, 350000},
			{"102", "standard", 1, 350000},
			{"201", "deluxe", 2, 550000},
			{"202", "deluxe", 2, 550000},
			{"301", "suite", 3, 1200000},
		}

		for _, r := range rooms {
			var exists int
			if err := db.QueryRow("SELECT 1 FROM rooms WHERE room_number = $1", r.Number).Scan(&exists); err == nil {
				continue
			}
			if _, err := db.Exec(
				"INSERT INTO rooms (room_number, room_type, floor, price_per_night, status, created_at, updated_at) VALUES ($1, $2, $3, $4, 'available', now(), now())",
				r.Number, r.Type, r.Floor, r.Price); err != nil {
				log.Fatalf("failed to insert room %s: %v", r.Number, err)
			}
			fmt.Println("Seeded room:", r.Number)
		}

		fmt.Println("Seeding complete")
	},
}

func ensureRole(db *sqlx.DB, name string) {
	var id int64
	if err := db.QueryRow("SELECT id FROM roles WHERE name = $1", name).Scan(&id); err == nil {
		return
	}
	if _, err := db.Exec("INSERT INTO roles (name) VALUES ($1)", name); err != nil {
		log.Fatalf("failed to insert role %s: %v", name, err)
	}
}

func ensureUser(db *sqlx.DB, email, name, passwordHash string) int64 {
	var id int64
	if err := db.QueryRow("SELECT id FROM users WHERE email = $1", email).Scan(&id); err == nil {
		return id
	}
	if err := db.QueryRow(
		"INSERT INTO users (email, name, password_hash, is_active, created_at, updated_at) VALUES ($1, $2, $3, true, now(), now()) RETURNING id",
		email, name, passwordHash).Scan(&id); err != nil {
		log.Fatalf("failed to insert user %s: %v", email, err)
	}
	return id
}

func grantRole(db *sqlx.DB, userID int64, roleName string) {
	var roleID int64
	if err := db.QueryRow("SELECT id FROM roles WHERE name = $1", roleName).Scan(&roleID); err != nil {
		log.Fatalf("role not found %s: %v", roleName, err)
	}

	var exists int
	if err := db.QueryRow("SELECT 1 FROM user_roles WHERE user_id = $1 AND role_id = $2", userID, roleID).Scan(&exists); err == nil {
		return
	}
	if _, err := db.Exec(
		"INSERT INTO user_roles (user_id, role_id, assigned_at) VALUES ($1, $2, now())",
		userID, roleID); err != nil {
		log.Fatalf("failed to grant role %s: %v", roleName, err)
	}
}
