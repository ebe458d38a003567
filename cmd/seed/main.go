// Command seed populates the database with development data.
package main

import (
	"flag"
	"log"

	"devconnector/internal/config"
	"devconnector/internal/database"
	"devconnector/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d posts, clean=%v\n", *numUsers, *numPosts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	users, err := s.SeedUsers(*numUsers)
	if err != nil {
		log.Fatalf("User seeding failed: %v", err)
	}
	log.Printf("%d users created", len(users))

	profiles, err := s.SeedProfiles(users)
	if err != nil {
		log.Fatalf("Profile seeding failed: %v", err)
	}
	log.Printf("%d profiles created", profiles)

	posts, err := s.SeedPosts(users, *numPosts)
	if err != nil {
		log.Fatalf("Post seeding failed: %v", err)
	}
	log.Printf("%d posts created", posts)

	log.Printf("All done. Every seeded user has the password %q", seed.SeedPassword)
}
