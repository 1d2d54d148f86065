package newsletter

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/ManuelReschke/Folio/app/models"
	"github.com/ManuelReschke/Folio/app/repository"
)

const (
	MessageSubscribed        = "Successfully subscribed!"
	MessageReactivated       = "Successfully reactivated subscription!"
	MessageAlreadySubscribed = "Email is already subscribed"
)

var (
	ErrInvalidEmail       = errors.New("please enter a valid email address")
	ErrAlreadySubscribed  = errors.New(MessageAlreadySubscribed)
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

// Result describes a successful subscription
type Result struct {
	Subscriber  *models.Subscriber
	Message     string
	Reactivated bool
}

// Service manages the subscriber list
type Service struct {
	repo repository.SubscriberRepository
}

// NewService creates a newsletter service
func NewService(repo repository.SubscriberRepository) *Service {
	return &Service{repo: repo}
}

// Subscribe adds email to the list or reactivates it. Only surrounding
// whitespace is removed, the address is otherwise stored as entered.
func (s *Service) Subscribe(email string) (Result, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return Result{}, ErrInvalidEmail
	}

	existing, err := s.repo.GetByEmail(email)
	switch {
	case err == nil:
		if existing.IsActive {
			return Result{}, ErrAlreadySubscribed
		}
		if err := s.repo.SetActive(existing.ID, true); err != nil {
			return Result{}, fmt.Errorf("reactivate subscriber: %w", err)
		}
		existing.IsActive = true
		return Result{Subscriber: existing, Message: MessageReactivated, Reactivated: true}, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		subscriber := &models.Subscriber{Email: email, IsActive: true}
		if err := s.repo.Create(subscriber); err != nil {
			// a concurrent request inserted the same address first
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return Result{}, ErrAlreadySubscribed
			}
			return Result{}, fmt.Errorf("create subscriber: %w", err)
		}
		return Result{Subscriber: subscriber, Message: MessageSubscribed}, nil
	default:
		return Result{}, fmt.Errorf("lookup subscriber: %w", err)
	}
}

// Deactivate marks a subscriber inactive. The row is kept so the address can
// be reactivated later.
func (s *Service) Deactivate(id uint) error {
	if err := s.repo.SetActive(id, false); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubscriberNotFound
		}
		return fmt.Errorf("deactivate subscriber: %w", err)
	}
	return nil
}

// List returns one page of subscribers, newest first, and the total count
func (s *Service) List(page, perPage int) ([]models.Subscriber, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 50
	}
	total, err := s.repo.Count()
	if err != nil {
		return nil, 0, fmt.Errorf("count subscribers: %w", err)
	}
	subscribers, err := s.repo.List((page-1)*perPage, perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("list subscribers: %w", err)
	}
	return subscribers, total, nil
}
