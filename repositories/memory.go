// File: /repositories/memory.go
package repositories

import (
	"sync"
	"time"

	"eventfdr-api/models"
)

// In-memory repository implementations. Used by the test suite and by
// the STORE=memory run mode, which serves the whole API out of process
// memory the way the original demo deployment did. A single mutex per
// store serializes writers.

type MemoryEventRepository struct {
	mu     sync.RWMutex
	events []models.Event
}

func NewMemoryEventRepository(seed []models.Event) *MemoryEventRepository {
	events := make([]models.Event, len(seed))
	copy(events, seed)
	return &MemoryEventRepository{events: events}
}

func (r *MemoryEventRepository) List() ([]models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Event, len(r.events))
	copy(out, r.events)
	return out, nil
}

func (r *MemoryEventRepository) GetByID(id string) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.events {
		if r.events[i].ID == id {
			event := r.events[i]
			return &event, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryEventRepository) ListByCategory(category string) ([]models.Event, error) {
	if category == models.CategoryAll {
		return r.List()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Event
	for _, event := range r.events {
		if event.Category == category {
			out = append(out, event)
		}
	}
	return out, nil
}

func (r *MemoryEventRepository) ListFeatured() ([]models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Event
	for _, event := range r.events {
		if event.Featured {
			out = append(out, event)
		}
	}
	return out, nil
}

func (r *MemoryEventRepository) Create(event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	r.events = append(r.events, *event)
	return nil
}

func (r *MemoryEventRepository) Update(id string, updates map[string]interface{}) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.events {
		if r.events[i].ID == id {
			applyEventUpdates(&r.events[i], updates)
			r.events[i].UpdatedAt = time.Now()
			event := r.events[i]
			return &event, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryEventRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.events {
		if r.events[i].ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryEventRepository) AddRegistered(id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.events {
		if r.events[i].ID == id {
			r.events[i].Registered += delta
			if r.events[i].Registered < 0 {
				r.events[i].Registered = 0
			}
			r.events[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

func applyEventUpdates(event *models.Event, updates map[string]interface{}) {
	for key, value := range updates {
		switch key {
		case "title":
			event.Title, _ = value.(string)
		case "description":
			event.Description, _ = value.(string)
		case "short_description":
			event.ShortDescription, _ = value.(string)
		case "category":
			event.Category, _ = value.(string)
		case "date":
			event.Date, _ = value.(string)
		case "time":
			event.Time, _ = value.(string)
		case "end_date":
			event.EndDate, _ = value.(string)
		case "end_time":
			event.EndTime, _ = value.(string)
		case "venue":
			event.Venue, _ = value.(string)
		case "address":
			event.Address, _ = value.(string)
		case "city":
			event.City, _ = value.(string)
		case "country":
			event.Country, _ = value.(string)
		case "image":
			event.Image, _ = value.(string)
		case "price":
			if v, ok := value.(float64); ok {
				event.Price = v
			}
		case "currency":
			event.Currency, _ = value.(string)
		case "capacity":
			if v, ok := value.(int); ok {
				event.Capacity = v
			}
		case "featured":
			if v, ok := value.(bool); ok {
				event.Featured = v
			}
		case "tags":
			if v, ok := value.(models.StringSlice); ok {
				event.Tags = v
			}
		case "highlights":
			if v, ok := value.(models.StringSlice); ok {
				event.Highlights = v
			}
		case "schedule":
			if v, ok := value.(models.ScheduleList); ok {
				event.Schedule = v
			}
		}
	}
}

type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{}
}

func (r *MemoryBookingRepository) Create(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	booking.UpdatedAt = booking.CreatedAt
	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *MemoryBookingRepository) GetByID(id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			booking := r.bookings[i]
			return &booking, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryBookingRepository) ListByUser(userID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Booking
	for _, booking := range r.bookings {
		if booking.UserID == userID {
			out = append(out, booking)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepository) ListByEvent(eventID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Booking
	for _, booking := range r.bookings {
		if booking.EventID == eventID {
			out = append(out, booking)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepository) UpdatePayment(id, paymentStatus, status, paymentID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].PaymentStatus = paymentStatus
			r.bookings[i].Status = status
			if paymentID != "" {
				r.bookings[i].PaymentID = paymentID
			}
			r.bookings[i].UpdatedAt = time.Now()
			booking := r.bookings[i]
			return &booking, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryBookingRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryBookingRepository) ListStalePending(cutoff time.Time) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Booking
	for _, booking := range r.bookings {
		if booking.Status == models.BookingPending &&
			booking.PaymentStatus == models.PaymentPending &&
			booking.CreatedAt.Before(cutoff) {
			out = append(out, booking)
		}
	}
	return out, nil
}

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users = append(r.users, *user)
	return nil
}

func (r *MemoryUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].Email == email {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) Update(id string, updates map[string]interface{}) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			if v, ok := updates["name"].(string); ok {
				r.users[i].Name = v
			}
			if v, ok := updates["phone"].(string); ok {
				r.users[i].Phone = v
			}
			if v, ok := updates["avatar"].(*string); ok {
				r.users[i].Avatar = v
			}
			r.users[i].UpdatedAt = time.Now()
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}
