package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"expense-portal-backend/internal/config"
	"expense-portal-backend/internal/database"
	"expense-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed data structures matching the YAML files under scripts/data.
// Entities cross-reference each other by natural keys (emails and names),
// never by UUIDs, so the files stay hand-editable.

type UserData struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type MembershipData struct {
	UserEmail string `yaml:"user_email"`
	Role      string `yaml:"role"`
}

type OrganizationData struct {
	Name    string           `yaml:"name"`
	Members []MembershipData `yaml:"members"`
}

type CategoryData struct {
	OrganizationName string `yaml:"organization_name"`
	Name             string `yaml:"name"`
	Description      string `yaml:"description"`
}

type PolicyData struct {
	OrganizationName string `yaml:"organization_name"`
	CategoryName     string `yaml:"category_name"`
	UserEmail        string `yaml:"user_email,omitempty"` // empty means organization-wide
	MaxAmount        int64  `yaml:"max_amount"`
	Period           string `yaml:"period"`
	AutoApprove      bool   `yaml:"auto_approve"`
}

type GroupData struct {
	OrganizationName string   `yaml:"organization_name"`
	Name             string   `yaml:"name"`
	Description      string   `yaml:"description"`
	ParentGroupName  string   `yaml:"parent_group_name,omitempty"`
	MemberEmails     []string `yaml:"member_emails,omitempty"`
}

type MessageData struct {
	OrganizationName string `yaml:"organization_name"`
	AuthorEmail      string `yaml:"author_email"`
	Content          string `yaml:"content"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type CategoriesFile struct {
	Categories []CategoryData `yaml:"categories"`
}

type PoliciesFile struct {
	Policies []PolicyData `yaml:"policies"`
}

type GroupsFile struct {
	Groups []GroupData `yaml:"groups"`
}

type MessagesFile struct {
	Messages []MessageData `yaml:"messages"`
}

func main() {
	log.Println("Loading seed data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seedFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to seed data: %v", err)
	}

	log.Println("Seed data loaded successfully")
}

// connectWithRetry waits for Postgres readiness, useful when the database
// container is still starting.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func seedFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var usersFile UsersFile
	if err := readYAML(filepath.Join(dataDir, "users.yaml"), &usersFile); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	var orgsFile OrganizationsFile
	if err := readYAML(filepath.Join(dataDir, "organizations.yaml"), &orgsFile); err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	var categoriesFile CategoriesFile
	if err := readYAML(filepath.Join(dataDir, "categories.yaml"), &categoriesFile); err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	var policiesFile PoliciesFile
	if err := readYAML(filepath.Join(dataDir, "policies.yaml"), &policiesFile); err != nil {
		return fmt.Errorf("failed to load policies: %w", err)
	}

	var groupsFile GroupsFile
	if err := readYAML(filepath.Join(dataDir, "groups.yaml"), &groupsFile); err != nil {
		return fmt.Errorf("failed to load groups: %w", err)
	}

	var messagesFile MessagesFile
	if err := readYAML(filepath.Join(dataDir, "messages.yaml"), &messagesFile); err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		usersByEmail, err := seedUsers(tx, usersFile.Users)
		if err != nil {
			return err
		}

		orgsByName, err := seedOrganizations(tx, orgsFile.Organizations, usersByEmail)
		if err != nil {
			return err
		}

		categoriesByKey, err := seedCategories(tx, categoriesFile.Categories, orgsByName)
		if err != nil {
			return err
		}

		if err := seedPolicies(tx, policiesFile.Policies, orgsByName, categoriesByKey, usersByEmail); err != nil {
			return err
		}

		if err := seedGroups(tx, groupsFile.Groups, orgsByName, usersByEmail); err != nil {
			return err
		}

		return seedMessages(tx, messagesFile.Messages, orgsByName, usersByEmail)
	})
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

func seedUsers(tx *gorm.DB, users []UserData) (map[string]uuid.UUID, error) {
	byEmail := make(map[string]uuid.UUID, len(users))
	for _, u := range users {
		user := &models.User{Name: u.Name, Email: u.Email}
		if err := tx.Where("email = ?", u.Email).FirstOrCreate(user).Error; err != nil {
			return nil, fmt.Errorf("user %q: %w", u.Email, err)
		}
		byEmail[u.Email] = user.ID
	}
	log.Printf("Seeded %d users", len(users))
	return byEmail, nil
}

func seedOrganizations(tx *gorm.DB, orgs []OrganizationData, usersByEmail map[string]uuid.UUID) (map[string]uuid.UUID, error) {
	byName := make(map[string]uuid.UUID, len(orgs))
	for _, o := range orgs {
		org := &models.Organization{Name: o.Name}
		if err := tx.Where("name = ?", o.Name).FirstOrCreate(org).Error; err != nil {
			return nil, fmt.Errorf("organization %q: %w", o.Name, err)
		}
		byName[o.Name] = org.ID

		for _, m := range o.Members {
			userID, ok := usersByEmail[m.UserEmail]
			if !ok {
				return nil, fmt.Errorf("organization %q references unknown user %q", o.Name, m.UserEmail)
			}
			membership := &models.OrganizationMembership{
				OrganizationID: org.ID,
				UserID:         userID,
				Role:           models.MembershipRole(m.Role),
			}
			if err := tx.Where("organization_id = ? AND user_id = ?", org.ID, userID).
				FirstOrCreate(membership).Error; err != nil {
				return nil, fmt.Errorf("membership %q in %q: %w", m.UserEmail, o.Name, err)
			}
		}
	}
	log.Printf("Seeded %d organizations", len(orgs))
	return byName, nil
}

func seedCategories(tx *gorm.DB, categories []CategoryData, orgsByName map[string]uuid.UUID) (map[string]uuid.UUID, error) {
	byKey := make(map[string]uuid.UUID, len(categories))
	for _, c := range categories {
		orgID, ok := orgsByName[c.OrganizationName]
		if !ok {
			return nil, fmt.Errorf("category %q references unknown organization %q", c.Name, c.OrganizationName)
		}
		category := &models.ExpenseCategory{
			OrganizationID: orgID,
			Name:           c.Name,
			Description:    c.Description,
		}
		if err := tx.Where("organization_id = ? AND name = ?", orgID, c.Name).
			FirstOrCreate(category).Error; err != nil {
			return nil, fmt.Errorf("category %q: %w", c.Name, err)
		}
		byKey[c.OrganizationName+"/"+c.Name] = category.ID
	}
	log.Printf("Seeded %d categories", len(categories))
	return byKey, nil
}

func seedPolicies(tx *gorm.DB, policies []PolicyData, orgsByName, categoriesByKey, usersByEmail map[string]uuid.UUID) error {
	for _, p := range policies {
		orgID, ok := orgsByName[p.OrganizationName]
		if !ok {
			return fmt.Errorf("policy references unknown organization %q", p.OrganizationName)
		}
		categoryID, ok := categoriesByKey[p.OrganizationName+"/"+p.CategoryName]
		if !ok {
			return fmt.Errorf("policy references unknown category %q in %q", p.CategoryName, p.OrganizationName)
		}

		var userID *uuid.UUID
		scope := tx.Where("organization_id = ? AND category_id = ? AND user_id IS NULL", orgID, categoryID)
		if p.UserEmail != "" {
			id, ok := usersByEmail[p.UserEmail]
			if !ok {
				return fmt.Errorf("policy references unknown user %q", p.UserEmail)
			}
			userID = &id
			scope = tx.Where("organization_id = ? AND category_id = ? AND user_id = ?", orgID, categoryID, id)
		}

		policy := &models.Policy{
			OrganizationID: orgID,
			CategoryID:     categoryID,
			UserID:         userID,
			MaxAmount:      p.MaxAmount,
			Period:         models.PolicyPeriod(p.Period),
			AutoApprove:    p.AutoApprove,
		}
		if err := scope.FirstOrCreate(policy).Error; err != nil {
			return fmt.Errorf("policy for %q/%q: %w", p.OrganizationName, p.CategoryName, err)
		}
	}
	log.Printf("Seeded %d policies", len(policies))
	return nil
}

func seedGroups(tx *gorm.DB, groups []GroupData, orgsByName, usersByEmail map[string]uuid.UUID) error {
	groupsByKey := make(map[string]uuid.UUID, len(groups))

	// First pass creates the groups, second pass wires parents; a parent may
	// be declared after its child in the file.
	for _, g := range groups {
		orgID, ok := orgsByName[g.OrganizationName]
		if !ok {
			return fmt.Errorf("group %q references unknown organization %q", g.Name, g.OrganizationName)
		}
		group := &models.Group{
			OrganizationID: orgID,
			Name:           g.Name,
			Description:    g.Description,
		}
		if err := tx.Where("organization_id = ? AND name = ?", orgID, g.Name).
			FirstOrCreate(group).Error; err != nil {
			return fmt.Errorf("group %q: %w", g.Name, err)
		}
		groupsByKey[g.OrganizationName+"/"+g.Name] = group.ID
	}

	for _, g := range groups {
		groupID := groupsByKey[g.OrganizationName+"/"+g.Name]

		if g.ParentGroupName != "" {
			parentID, ok := groupsByKey[g.OrganizationName+"/"+g.ParentGroupName]
			if !ok {
				return fmt.Errorf("group %q references unknown parent %q", g.Name, g.ParentGroupName)
			}
			if err := tx.Model(&models.Group{}).Where("id = ?", groupID).
				Update("parent_group_id", parentID).Error; err != nil {
				return fmt.Errorf("group %q parent: %w", g.Name, err)
			}
		}

		for _, email := range g.MemberEmails {
			userID, ok := usersByEmail[email]
			if !ok {
				return fmt.Errorf("group %q references unknown user %q", g.Name, email)
			}
			membership := &models.GroupMembership{GroupID: groupID, UserID: userID}
			if err := tx.Where("group_id = ? AND user_id = ?", groupID, userID).
				FirstOrCreate(membership).Error; err != nil {
				return fmt.Errorf("group membership %q in %q: %w", email, g.Name, err)
			}
		}
	}
	log.Printf("Seeded %d groups", len(groups))
	return nil
}

func seedMessages(tx *gorm.DB, messages []MessageData, orgsByName, usersByEmail map[string]uuid.UUID) error {
	for _, m := range messages {
		orgID, ok := orgsByName[m.OrganizationName]
		if !ok {
			return fmt.Errorf("message references unknown organization %q", m.OrganizationName)
		}
		userID, ok := usersByEmail[m.AuthorEmail]
		if !ok {
			return fmt.Errorf("message references unknown user %q", m.AuthorEmail)
		}
		message := &models.Message{
			OrganizationID: orgID,
			UserID:         userID,
			Content:        m.Content,
		}
		if err := tx.Where("organization_id = ? AND user_id = ? AND content = ?", orgID, userID, m.Content).
			FirstOrCreate(message).Error; err != nil {
			return fmt.Errorf("message by %q: %w", m.AuthorEmail, err)
		}
	}
	log.Printf("Seeded %d messages", len(messages))
	return nil
}
