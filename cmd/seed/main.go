// Command main runs the database seeder.
package main

import (
	"flag"
	"log"

	"watchreview/internal/config"
	"watchreview/internal/database"
	"watchreview/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of users to create")
	numReviews := flag.Int("reviews", 40, "Number of reviews to create")
	numComments := flag.Int("comments", 60, "Number of comments to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)
	if err := s.Run(seed.Options{
		NumUsers:    *numUsers,
		NumReviews:  *numReviews,
		NumComments: *numComments,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("📧 All test users have the password: password123")
}
