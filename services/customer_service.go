package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"autoshop-backend/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Loyalty tiers, derived only from the total service count. Boundaries are
// inclusive at the lower bound.
const (
	TierNew       = "New"
	TierReturning = "Returning"
	TierRegular   = "Regular"
	TierVIP       = "VIP"
)

// Cohort filters accepted by FilterAggregates.
const (
	CohortAll      = "all"
	CohortFrequent = "frequent"
	CohortNew      = "new"
)

const aggregateCacheTTL = 10 * time.Minute

type CustomerAggregate struct {
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	TotalServices int       `json:"total_services"`
	FirstService  time.Time `json:"first_service"`
	LastService   time.Time `json:"last_service"`
	Tier          string    `json:"tier"`
}

func LoyaltyTier(count int) string {
	switch {
	case count >= 10:
		return TierVIP
	case count >= 5:
		return TierRegular
	case count >= 2:
		return TierReturning
	default:
		return TierNew
	}
}

// AggregateCustomers partitions bookings by email (case-insensitive) and
// emits one aggregate per customer, sorted by last service date descending.
// Name and phone come from the most recently created record for the email.
func AggregateCustomers(records []models.Booking) []CustomerAggregate {
	type bucket struct {
		agg       CustomerAggregate
		latestRec time.Time
	}
	buckets := map[string]*bucket{}

	for i := range records {
		r := &records[i]
		key := strings.ToLower(strings.TrimSpace(r.Email))
		if key == "" {
			continue
		}

		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				agg: CustomerAggregate{
					Email:        key,
					Name:         r.CustomerName,
					Phone:        r.Phone,
					FirstService: r.PreferredDate,
					LastService:  r.PreferredDate,
				},
				latestRec: r.CreatedAt,
			}
			buckets[key] = b
		} else {
			if r.PreferredDate.Before(b.agg.FirstService) {
				b.agg.FirstService = r.PreferredDate
			}
			if r.PreferredDate.After(b.agg.LastService) {
				b.agg.LastService = r.PreferredDate
			}
			if !r.CreatedAt.Before(b.latestRec) {
				b.agg.Name = r.CustomerName
				b.agg.Phone = r.Phone
				b.latestRec = r.CreatedAt
			}
		}
		b.agg.TotalServices++
	}

	out := make([]CustomerAggregate, 0, len(buckets))
	for _, b := range buckets {
		b.agg.Tier = LoyaltyTier(b.agg.TotalServices)
		out = append(out, b.agg)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LastService.Equal(out[j].LastService) {
			return out[i].Email < out[j].Email
		}
		return out[i].LastService.After(out[j].LastService)
	})
	return out
}

// FilterAggregates applies the free-text query (case-insensitive substring
// over name, email, phone) and the cohort predicate.
func FilterAggregates(list []CustomerAggregate, query, cohort string, now time.Time) []CustomerAggregate {
	q := strings.ToLower(strings.TrimSpace(query))
	cutoff := now.AddDate(0, 0, -30)

	out := make([]CustomerAggregate, 0, len(list))
	for _, a := range list {
		if q != "" {
			if !strings.Contains(strings.ToLower(a.Name), q) &&
				!strings.Contains(strings.ToLower(a.Email), q) &&
				!strings.Contains(strings.ToLower(a.Phone), q) {
				continue
			}
		}
		switch cohort {
		case CohortFrequent:
			if a.TotalServices < 3 {
				continue
			}
		case CohortNew:
			if a.FirstService.Before(cutoff) {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// CustomerService recomputes the aggregate view from the full booking set.
// Identical input sets short-circuit via a content hash; the snapshot is
// mirrored in Redis when a client is configured.
type CustomerService struct {
	DB    *gorm.DB
	Cache *redis.Client

	mu       sync.Mutex
	lastHash string
	lastAgg  []CustomerAggregate
}

func NewCustomerService(db *gorm.DB, cache *redis.Client) *CustomerService {
	return &CustomerService{DB: db, Cache: cache}
}

func contentHash(records []models.Booking) string {
	h := sha256.New()
	for i := range records {
		r := &records[i]
		fmt.Fprintf(h, "%s|%s|%s|%s|%d|%d\n",
			r.ID, r.Email, r.CustomerName, r.Phone,
			r.PreferredDate.Unix(), r.CreatedAt.Unix())
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Aggregates returns the full customer aggregate view.
func (s *CustomerService) Aggregates(ctx context.Context) ([]CustomerAggregate, error) {
	var records []models.Booking
	if err := s.DB.WithContext(ctx).
		Order("preferred_date DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}

	hash := contentHash(records)

	s.mu.Lock()
	if hash == s.lastHash {
		agg := s.lastAgg
		s.mu.Unlock()
		return agg, nil
	}
	s.mu.Unlock()

	cacheKey := "customers:agg:" + hash
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var agg []CustomerAggregate
			if err := json.Unmarshal(raw, &agg); err == nil {
				s.remember(hash, agg)
				return agg, nil
			}
		}
	}

	agg := AggregateCustomers(records)
	s.remember(hash, agg)

	if s.Cache != nil {
		if raw, err := json.Marshal(agg); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, raw, aggregateCacheTTL).Err(); err != nil {
				log.Printf("warning: failed to cache customer aggregates: %v", err)
			}
		}
	}
	return agg, nil
}

// Search applies the query and cohort filters on top of Aggregates.
func (s *CustomerService) Search(ctx context.Context, query, cohort string) ([]CustomerAggregate, error) {
	agg, err := s.Aggregates(ctx)
	if err != nil {
		return nil, err
	}
	return FilterAggregates(agg, query, cohort, time.Now()), nil
}

func (s *CustomerService) remember(hash string, agg []CustomerAggregate) {
	s.mu.Lock()
	s.lastHash = hash
	s.lastAgg = agg
	s.mu.Unlock()
}
