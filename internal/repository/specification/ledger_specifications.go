package specification

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByClientID struct {
	ClientID uuid.UUID
}

func (s ByClientID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("client_id = ?", s.ClientID)
}

type BySubscriptionID struct {
	SubscriptionID uuid.UUID
}

func (s BySubscriptionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subscription_id = ?", s.SubscriptionID)
}

type ByDurationID struct {
	DurationID uuid.UUID
}

func (s ByDurationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("duration_id = ?", s.DurationID)
}

type ByCarID struct {
	CarID uuid.UUID
}

func (s ByCarID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("car_id = ?", s.CarID)
}

type ByMethodID struct {
	MethodID uuid.UUID
}

func (s ByMethodID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("method_id = ?", s.MethodID)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// DateBetween keeps rows whose date column falls inside [From, To]. A nil bound is open.
type DateBetween struct {
	Field string
	From  *time.Time
	To    *time.Time
}

func (s DateBetween) Apply(db *gorm.DB) *gorm.DB {
	field := s.Field
	if field == "" {
		field = "date"
	}
	if s.From != nil {
		db = db.Where(field+" >= ?", *s.From)
	}
	if s.To != nil {
		db = db.Where(field+" <= ?", *s.To)
	}
	return db
}

// EndingBefore matches subscriptions whose end date is strictly before At.
type EndingBefore struct {
	At time.Time
}

func (s EndingBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("end_date < ?", s.At)
}

// NameSearch is a case-insensitive substring match that works on both sqlite and postgres.
type NameSearch struct {
	Field string
	Query string
}

func (s NameSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + strings.ToLower(s.Query) + "%"
	return db.Where("LOWER("+s.Field+") LIKE ?", pattern)
}

type NumberPrefix struct {
	Prefix string
}

func (s NumberPrefix) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("number LIKE ?", s.Prefix+"%")
}

type BySubscriptionIDs struct {
	SubscriptionIDs []uuid.UUID
}

func (s BySubscriptionIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subscription_id IN ?", s.SubscriptionIDs)
}

// HasSubscription keeps payments linked to a subscription.
type HasSubscription struct{}

func (s HasSubscription) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subscription_id IS NOT NULL")
}
