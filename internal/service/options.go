package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitlog/internal/events"
	"github.com/limbo/habitlog/internal/repository"
	"github.com/limbo/habitlog/pkg/entity"
)

type options struct {
	clock     repository.Clock
	loc       *time.Location
	publisher events.Publisher
}

type Option func(*options)

// WithClock replaces time.Now, mostly for tests
func WithClock(clock repository.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithLocation sets where calendar days start
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.loc = loc
	}
}

func WithPublisher(p events.Publisher) Option {
	return func(o *options) {
		o.publisher = p
	}
}

func buildOptions(opts []Option) options {
	o := options{
		clock:     time.Now,
		loc:       time.Local,
		publisher: events.NopPublisher{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) now() time.Time {
	return o.clock().In(o.loc)
}

func (o options) today() string {
	return o.now().Format(entity.DateLayout)
}

// userLocks hands out one mutex per user; entries are never evicted
type userLocks struct {
	m sync.Map
}

// accountLocks serializes every write to a user's keys across services
var accountLocks = &userLocks{}

func (ul *userLocks) lock(uid uuid.UUID) func() {
	mu, _ := ul.m.LoadOrStore(uid, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
	return mu.(*sync.Mutex).Unlock
}
