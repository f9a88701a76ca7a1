// Package seed populates the database with the watch catalog and demo
// users, reviews, and comments. Intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"watchreview/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much demo data the seeder generates.
type Options struct {
	NumUsers    int
	NumReviews  int
	NumComments int
	ShouldClean bool
}

// Seeder builds and persists demo data.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Seeder{db: db, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Run seeds the database: catalog watches, demo users, then reviews and
// comments referencing them.
func (s *Seeder) Run(opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users, %d reviews, %d comments...",
		opts.NumUsers, opts.NumReviews, opts.NumComments)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	watches, err := s.SeedCatalog()
	if err != nil {
		return fmt.Errorf("failed to seed watch catalog: %w", err)
	}
	log.Printf("✓ %d watches in catalog", len(watches))

	users, err := s.SeedUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d users created", len(users))

	reviews, err := s.SeedReviews(users, watches, opts.NumReviews)
	if err != nil {
		return fmt.Errorf("failed to create reviews: %w", err)
	}
	log.Printf("✓ %d reviews created", len(reviews))

	comments, err := s.SeedComments(users, reviews, opts.NumComments)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("✓ %d comments created", len(comments))

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

// ClearAll removes all rows. Deletion order matters for the foreign keys.
func (s *Seeder) ClearAll() error {
	log.Println("🗑️  Clearing existing data...")
	for _, table := range []string{"comments", "reviews", "watches", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedCatalog inserts the fixed watch catalog.
func (s *Seeder) SeedCatalog() ([]models.Watch, error) {
	watches := make([]models.Watch, len(catalog))
	copy(watches, catalog)
	for i := range watches {
		if err := s.db.Create(&watches[i]).Error; err != nil {
			return nil, err
		}
	}
	return watches, nil
}

// SeedUsers creates count demo users. The first few are well-known fixed
// accounts so manual testing has stable credentials. Every account has the
// password "password123".
func (s *Seeder) SeedUsers(count int) ([]models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)

	baseUsers := []string{"john_doe", "jane_doe", "alice_smith", "bob_johnson", "charlie_brown"}
	for _, name := range baseUsers {
		if len(users) >= count {
			break
		}
		user := models.User{
			Username: name,
			Email:    strings.ReplaceAll(name, "_", ".") + "@example.com",
			Password: string(hashed),
		}
		if err := s.db.Create(&user).Error; err != nil {
			log.Printf("Failed to create user %s: %v", name, err)
			continue
		}
		users = append(users, user)
	}

	for i := len(users); i < count; i++ {
		username := fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), i)
		user := models.User{
			Username: username,
			Email:    fmt.Sprintf("%s@example.com", username),
			Password: string(hashed),
		}
		if err := s.db.Create(&user).Error; err != nil {
			log.Printf("Failed to create user %s: %v", username, err)
			continue
		}
		users = append(users, user)
	}

	return users, nil
}

// SeedReviews creates up to count reviews. Each user reviews a watch at most
// once, so the effective ceiling is len(users) * len(watches).
func (s *Seeder) SeedReviews(users []models.User, watches []models.Watch, count int) ([]models.Review, error) {
	if len(users) == 0 || len(watches) == 0 {
		return nil, nil
	}

	reviews := make([]models.Review, 0, count)
	used := make(map[string]bool)

	for attempts := 0; len(reviews) < count && attempts < count*10; attempts++ {
		user := users[s.rng.Intn(len(users))]
		watch := watches[s.rng.Intn(len(watches))]

		key := user.ID + "/" + watch.ID
		if used[key] {
			continue
		}
		used[key] = true

		review := models.Review{
			UserID:     user.ID,
			WatchID:    watch.ID,
			ReviewText: reviewText(s.rng),
			Score:      s.rng.Intn(5) + 1,
		}
		if err := s.db.Create(&review).Error; err != nil {
			log.Printf("Failed to create review: %v", err)
			continue
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

// SeedComments creates count comments attached to random reviews.
func (s *Seeder) SeedComments(users []models.User, reviews []models.Review, count int) ([]models.Comment, error) {
	if len(users) == 0 || len(reviews) == 0 {
		return nil, nil
	}

	comments := make([]models.Comment, 0, count)
	for i := 0; i < count; i++ {
		user := users[s.rng.Intn(len(users))]
		review := reviews[s.rng.Intn(len(reviews))]

		comment := models.Comment{
			UserID:      user.ID,
			ReviewID:    review.ID,
			CommentText: commentText(s.rng),
		}
		if err := s.db.Create(&comment).Error; err != nil {
			log.Printf("Failed to create comment: %v", err)
			continue
		}
		comments = append(comments, comment)
	}

	return comments, nil
}

var reviewOpeners = []string{
	"Great watch!",
	"Love the design, but the strap is a bit tight.",
	"Stylish and timeless.",
	"A bit too expensive for my taste.",
	"Perfect for casual everyday wear.",
	"Amazing craftsmanship and looks great.",
	"Nice, but a bit too heavy.",
	"I prefer more classic designs.",
	"Wears larger than the case size suggests.",
	"The movement is buttery smooth.",
}

func reviewText(r *rand.Rand) string {
	opener := reviewOpeners[r.Intn(len(reviewOpeners))]
	if r.Float32() < 0.5 {
		return opener
	}
	return opener + " " + gofakeit.Sentence(r.Intn(10)+5)
}

var commentOpeners = []string{
	"Totally agree.",
	"Interesting take.",
	"I had the opposite experience.",
	"Thanks for the detailed review.",
	"How is the lume at night?",
	"Does it fit under a shirt cuff?",
}

func commentText(r *rand.Rand) string {
	opener := commentOpeners[r.Intn(len(commentOpeners))]
	if r.Float32() < 0.5 {
		return opener
	}
	return opener + " " + gofakeit.Sentence(r.Intn(8)+3)
}
