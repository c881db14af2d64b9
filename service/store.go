package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/config"
	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/model"
	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrUserExists is returned when registering an email that is already taken
var ErrUserExists = errors.New("user already exists")

// UserStore is an in-memory store for user accounts
// In production, this should be replaced with a database
type UserStore struct {
	users map[string]*model.User // keyed by email
	mu    sync.RWMutex
}

func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]*model.User),
	}
}

// Seed creates the configured startup accounts, hashing their passwords
func (s *UserStore) Seed(ctx context.Context, seeds []config.SeedUser) error {
	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		role := seed.Role
		if !model.ValidRole(role) {
			role = model.RoleAttorney
		}

		user := &model.User{
			ID:           uuid.New().String(),
			Email:        seed.Email,
			PasswordHash: string(hash),
			FirstName:    seed.FirstName,
			LastName:     seed.LastName,
			Role:         role,
			IsActive:     true,
			CreatedAt:    time.Now(),
		}

		if err := s.Create(user); err != nil {
			logger.Warn(ctx, "skipping duplicate seed user", "email", seed.Email)
			continue
		}
	}
	return nil
}

func (s *UserStore) Create(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return ErrUserExists
	}
	s.users[user.Email] = user
	return nil
}

func (s *UserStore) GetByEmail(email string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[email]
}

// VerifyPassword checks a login attempt against the stored bcrypt hash
func (s *UserStore) VerifyPassword(email, password string) *model.User {
	user := s.GetByEmail(email)
	if user == nil || !user.IsActive {
		return nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil
	}
	return user
}

func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// CompanyStore is an in-memory store for company records
type CompanyStore struct {
	companies  map[string]*model.Company
	mu         sync.RWMutex
	maxRecords int // Maximum records to keep, 0 = unlimited
}

func NewCompanyStore(cfg *config.StoreConfig) *CompanyStore {
	maxRecords := cfg.MaxRecords
	if maxRecords < 0 {
		maxRecords = 0
	}
	return &CompanyStore{
		companies:  make(map[string]*model.Company),
		maxRecords: maxRecords,
	}
}

func (s *CompanyStore) Save(company *model.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()

	company.UpdatedAt = time.Now()
	s.companies[company.ID] = company

	s.cleanupIfNeeded()
}

func (s *CompanyStore) Get(id string) *model.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.companies[id]
}

// List returns companies ordered by creation time, newest first, with offset
// pagination. The second return value is the total before pagination.
func (s *CompanyStore) List(skip, limit int) ([]*model.Company, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*model.Company, 0, len(s.companies))
	for _, c := range s.companies {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := len(all)
	if skip >= total {
		return []*model.Company{}, total
	}
	end := skip + limit
	if limit <= 0 || end > total {
		end = total
	}
	return all[skip:end], total
}

func (s *CompanyStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.companies, id)
}

func (s *CompanyStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.companies)
}

// cleanupIfNeeded removes oldest companies if store exceeds maxRecords
// Must be called with lock held
func (s *CompanyStore) cleanupIfNeeded() {
	if s.maxRecords <= 0 {
		return // Unlimited
	}

	if len(s.companies) <= s.maxRecords {
		return
	}

	companies := make([]*model.Company, 0, len(s.companies))
	for _, c := range s.companies {
		companies = append(companies, c)
	}
	sort.Slice(companies, func(i, j int) bool {
		return companies[i].CreatedAt.Before(companies[j].CreatedAt)
	})

	removeCount := len(companies) - s.maxRecords
	for i := 0; i < removeCount; i++ {
		delete(s.companies, companies[i].ID)
	}
}

// DocumentStore is an in-memory store for document records
type DocumentStore struct {
	documents  map[string]*model.Document
	mu         sync.RWMutex
	maxRecords int
}

func NewDocumentStore(cfg *config.StoreConfig) *DocumentStore {
	maxRecords := cfg.MaxRecords
	if maxRecords < 0 {
		maxRecords = 0
	}
	return &DocumentStore{
		documents:  make(map[string]*model.Document),
		maxRecords: maxRecords,
	}
}

func (s *DocumentStore) Save(doc *model.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc.UpdatedAt = time.Now()
	s.documents[doc.ID] = doc

	if s.maxRecords > 0 && len(s.documents) > s.maxRecords {
		s.removeOldest(len(s.documents) - s.maxRecords)
	}
}

func (s *DocumentStore) Get(id string) *model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documents[id]
}

func (s *DocumentStore) ListByOwner(email string) []*model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Document, 0)
	for _, d := range s.documents {
		if d.OwnerEmail == email {
			result = append(result, d)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UploadedAt.After(result[j].UploadedAt)
	})
	return result
}

// UpdateAnalysis attaches an AI analysis result to a stored document
func (s *DocumentStore) UpdateAnalysis(id string, analysis any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.documents[id]; ok {
		d.AIAnalysis = analysis
		d.UpdatedAt = time.Now()
		return true
	}
	return false
}

func (s *DocumentStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, id)
}

func (s *DocumentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

// removeOldest drops the n oldest documents. Must be called with lock held.
func (s *DocumentStore) removeOldest(n int) {
	docs := make([]*model.Document, 0, len(s.documents))
	for _, d := range s.documents {
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].UploadedAt.Before(docs[j].UploadedAt)
	})
	for i := 0; i < n && i < len(docs); i++ {
		delete(s.documents, docs[i].ID)
	}
}
