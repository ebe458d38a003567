// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"devconnector/internal/gravatar"
	"devconnector/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// SeedPassword is the plaintext password every seeded user gets.
const SeedPassword = "password123"

var statuses = []string{
	"Developer", "Junior Developer", "Senior Developer", "Manager",
	"Student or Learning", "Instructor or Teacher", "Intern",
}

var skillPool = []string{
	"Go", "JavaScript", "TypeScript", "Python", "Rust", "SQL", "HTML", "CSS",
	"React", "Vue", "Node.js", "PostgreSQL", "Redis", "Docker", "Kubernetes",
	"AWS", "GraphQL", "gRPC", "Terraform", "Linux",
}

// Seeder populates the database with realistic development data.
type Seeder struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewSeeder creates a Seeder bound to db.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db: db,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll truncates all seeded tables.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE comments, likes, posts, experiences, educations, profiles, users RESTART IDENTITY CASCADE;`
	if err := s.db.Exec(sql).Error; err != nil {
		// sqlite has no TRUNCATE; fall back to per-table deletes.
		for _, table := range []string{"comments", "likes", "posts", "experiences", "educations", "profiles", "users"} {
			if delErr := s.db.Exec("DELETE FROM " + table).Error; delErr != nil {
				return delErr
			}
		}
	}
	return nil
}

// SeedUsers creates n users, each with a hashed password and gravatar URL.
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		name := gofakeit.Name()
		email := fmt.Sprintf("%s%d@%s",
			strings.ToLower(strings.ReplaceAll(name, " ", ".")),
			gofakeit.Number(1, 9999), gofakeit.DomainName())
		users = append(users, &models.User{
			Name:     name,
			Email:    email,
			Password: string(hashed),
			Avatar:   gravatar.URL(email),
		})
	}
	if err := s.db.Create(&users).Error; err != nil {
		return nil, fmt.Errorf("create users: %w", err)
	}
	return users, nil
}

// SeedProfiles creates a profile for roughly three quarters of the users,
// with skills, social links and a few experience/education entries.
func (s *Seeder) SeedProfiles(users []*models.User) (int, error) {
	created := 0
	for _, user := range users {
		if s.r.Intn(4) == 0 {
			continue
		}

		profile := &models.Profile{
			UserID:         user.ID,
			Status:         statuses[s.r.Intn(len(statuses))],
			Company:        gofakeit.Company(),
			Website:        gofakeit.URL(),
			Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
			Bio:            gofakeit.Sentence(12),
			GithubUsername: gofakeit.Username(),
			Skills:         s.pickSkills(),
			Social: models.SocialLinks{
				Twitter:  "https://twitter.com/" + gofakeit.Username(),
				Linkedin: "https://www.linkedin.com/in/" + gofakeit.Username(),
			},
		}

		for i := 0; i < s.r.Intn(3)+1; i++ {
			profile.Experiences = append(profile.Experiences, models.Experience{
				Title:       gofakeit.JobTitle(),
				Company:     gofakeit.Company(),
				Location:    gofakeit.City(),
				From:        s.pastDate(8),
				To:          s.pastDate(2),
				Description: gofakeit.Sentence(10),
			})
		}
		if s.r.Intn(2) == 0 {
			profile.Education = append(profile.Education, models.Education{
				School:       gofakeit.Company() + " University",
				Degree:       "BSc",
				FieldOfStudy: "Computer Science",
				From:         s.pastDate(12),
				To:           s.pastDate(8),
				Description:  gofakeit.Sentence(8),
			})
		}

		if err := s.db.Create(profile).Error; err != nil {
			return created, fmt.Errorf("create profile: %w", err)
		}
		created++
	}
	return created, nil
}

// SeedPosts creates n posts spread across the users, with random likes and
// comments from other users.
func (s *Seeder) SeedPosts(users []*models.User, n int) (int, error) {
	if len(users) == 0 {
		return 0, nil
	}

	for i := 0; i < n; i++ {
		author := users[s.r.Intn(len(users))]
		post := &models.Post{
			UserID:    author.ID,
			Text:      gofakeit.Paragraph(1, 3, 8, " "),
			Name:      author.Name,
			Avatar:    author.Avatar,
			CreatedAt: s.pastTimestamp(90),
		}
		if err := s.db.Create(post).Error; err != nil {
			return i, fmt.Errorf("create post: %w", err)
		}

		for _, liker := range s.sampleUsers(users, s.r.Intn(6)) {
			like := &models.Like{PostID: post.ID, UserID: liker.ID}
			if err := s.db.Create(like).Error; err != nil {
				return i, fmt.Errorf("create like: %w", err)
			}
		}
		for _, commenter := range s.sampleUsers(users, s.r.Intn(4)) {
			comment := &models.Comment{
				PostID: post.ID,
				UserID: commenter.ID,
				Text:   gofakeit.Sentence(10),
				Name:   commenter.Name,
				Avatar: commenter.Avatar,
			}
			if err := s.db.Create(comment).Error; err != nil {
				return i, fmt.Errorf("create comment: %w", err)
			}
		}
	}
	return n, nil
}

func (s *Seeder) pickSkills() []string {
	count := s.r.Intn(5) + 3
	picked := make([]string, 0, count)
	seen := map[string]bool{}
	for len(picked) < count {
		skill := skillPool[s.r.Intn(len(skillPool))]
		if !seen[skill] {
			seen[skill] = true
			picked = append(picked, skill)
		}
	}
	return picked
}

// sampleUsers returns up to n distinct users.
func (s *Seeder) sampleUsers(users []*models.User, n int) []*models.User {
	if n > len(users) {
		n = len(users)
	}
	idx := s.r.Perm(len(users))[:n]
	sampled := make([]*models.User, 0, n)
	for _, i := range idx {
		sampled = append(sampled, users[i])
	}
	return sampled
}

func (s *Seeder) pastDate(maxYearsBack int) string {
	return s.pastTimestamp(maxYearsBack * 365).Format("2006-01-02")
}

func (s *Seeder) pastTimestamp(maxDaysBack int) time.Time {
	daysBack := s.r.Intn(maxDaysBack + 1)
	return time.Now().AddDate(0, 0, -daysBack).
		Add(-time.Duration(s.r.Intn(24)) * time.Hour)
}
