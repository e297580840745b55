/* Copyright 2025 Gymplan Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package plans is the single place weekly plans are fetched from. It caches
// the plan list of a user and derives the active plan and the plan for a
// date from it.
package plans

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/coocood/freecache"
	"github.com/gymplan/gymplan/pkg/cli/client"
	"github.com/gymplan/gymplan/pkg/cli/log"
	"github.com/gymplan/gymplan/pkg/cli/planner"
	"github.com/pkg/errors"
)

// DefaultTTL is how long a fetched plan list is served from the cache
const DefaultTTL = 30 * time.Second

// cacheSize is the size of the freecache arena in bytes
const cacheSize = 1024 * 1024

// ErrNoIdentity is an error for a service used without a user id
var ErrNoIdentity = errors.New("the user id is unknown. Please login again")

// API is the subset of the gym API the plan service uses
type API interface {
	planner.API
	GetPlans(ctx context.Context, userID int) ([]client.WeeklyPlan, error)
	CreatePlan(ctx context.Context, name string, week int) (client.WeeklyPlan, error)
	ActivatePlan(ctx context.Context, id int) error
}

// Service serves the weekly plans of one user
type Service struct {
	api    API
	userID int
	cache  *freecache.Cache
	ttl    time.Duration
}

// NewService returns a plan service for the given user
func NewService(api API, userID int) *Service {
	return &Service{
		api:    api,
		userID: userID,
		cache:  freecache.NewCache(cacheSize),
		ttl:    DefaultTTL,
	}
}

// WithTTL sets how long a fetched plan list is served from the cache
func (s *Service) WithTTL(ttl time.Duration) *Service {
	s.ttl = ttl
	return s
}

func (s *Service) cacheKey() []byte {
	return []byte(fmt.Sprintf("plans:%d", s.userID))
}

// List returns the plans of the user, fetching them if the cache holds none
func (s *Service) List(ctx context.Context) ([]client.WeeklyPlan, error) {
	if s.userID <= 0 {
		return nil, ErrNoIdentity
	}

	key := s.cacheKey()
	if b, err := s.cache.Get(key); err == nil {
		var ret []client.WeeklyPlan
		if err := json.Unmarshal(b, &ret); err == nil {
			return ret, nil
		}
		log.Debug("discarding undecodable cached plans\n")
	} else if err != freecache.ErrNotFound {
		return nil, errors.Wrap(err, "reading plan cache")
	}

	ret, err := s.api.GetPlans(ctx, s.userID)
	if err != nil {
		return nil, err
	}

	if err := s.store(key, ret); err != nil {
		log.Debug("caching plans: %s\n", err.Error())
	}

	return ret, nil
}

func (s *Service) store(key []byte, all []client.WeeklyPlan) error {
	// freecache treats an expiry of zero as no expiry
	if s.ttl <= 0 {
		return nil
	}
	expire := int(s.ttl / time.Second)
	if expire < 1 {
		expire = 1
	}

	b, err := json.Marshal(all)
	if err != nil {
		return errors.Wrap(err, "encoding plans")
	}

	return s.cache.Set(key, b, expire)
}

// Invalidate drops the cached plan list so that the next read refetches it
func (s *Service) Invalidate() {
	s.cache.Del(s.cacheKey())
}

// Get returns the plan with the given id
func (s *Service) Get(ctx context.Context, id int) (client.WeeklyPlan, bool, error) {
	all, err := s.List(ctx)
	if err != nil {
		return client.WeeklyPlan{}, false, err
	}

	for _, p := range all {
		if p.ID == id {
			return p, true, nil
		}
	}

	return client.WeeklyPlan{}, false, nil
}

// Active returns the active plan of the user, if any
func (s *Service) Active(ctx context.Context) (client.WeeklyPlan, bool, error) {
	all, err := s.List(ctx)
	if err != nil {
		return client.WeeklyPlan{}, false, err
	}

	p, ok := ActivePlan(all)
	return p, ok, nil
}

// ForDate returns the planned day that applies to the given date, if any
func (s *Service) ForDate(ctx context.Context, date time.Time) (client.PlannedDay, bool, error) {
	all, err := s.List(ctx)
	if err != nil {
		return client.PlannedDay{}, false, err
	}

	d, ok := DayForDate(all, date)
	return d, ok, nil
}

// Overview returns the week of the active plan
func (s *Service) Overview(ctx context.Context) (Week, error) {
	p, ok, err := s.Active(ctx)
	if err != nil {
		return Week{}, err
	}
	if !ok {
		return Week{}, nil
	}

	return WeekOf(p), nil
}

// Create creates a plan and invalidates the cache
func (s *Service) Create(ctx context.Context, name string, week int) (client.WeeklyPlan, error) {
	p, err := s.api.CreatePlan(ctx, name, week)
	if err != nil {
		return client.WeeklyPlan{}, err
	}

	s.Invalidate()
	return p, nil
}

// Activate marks the plan active and invalidates the cache
func (s *Service) Activate(ctx context.Context, id int) error {
	if err := s.api.ActivatePlan(ctx, id); err != nil {
		return err
	}

	s.Invalidate()
	return nil
}

// Assign assigns the routine to the weekday of the plan with the given id
// and invalidates the cache
func (s *Service) Assign(ctx context.Context, planID, weekday int, routine client.Routine) (client.PlannedDay, error) {
	p, ok, err := s.Get(ctx, planID)
	if err != nil {
		return client.PlannedDay{}, err
	}
	if !ok {
		return client.PlannedDay{}, errors.Errorf("weekly plan %d not found", planID)
	}

	day, err := planner.Assign(ctx, s.api, p, weekday, routine)
	if err != nil {
		return client.PlannedDay{}, err
	}

	s.Invalidate()
	return day, nil
}

// ActivePlan returns the first plan flagged active
func ActivePlan(all []client.WeeklyPlan) (client.WeeklyPlan, bool) {
	for _, p := range all {
		if p.Active {
			return p, true
		}
	}

	return client.WeeklyPlan{}, false
}

// SortByWeek returns a copy of the plans ordered by week number
func SortByWeek(all []client.WeeklyPlan) []client.WeeklyPlan {
	ret := make([]client.WeeklyPlan, len(all))
	copy(ret, all)

	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Week < ret[j].Week
	})

	return ret
}

// FindDay returns the planned day of the plan for the given ISO weekday
func FindDay(plan client.WeeklyPlan, weekday int) (client.PlannedDay, bool) {
	return planner.Lookup(plan, weekday)
}

// ISOWeekday returns the weekday of t numbered from Monday=1 to Sunday=7
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}

	return wd
}

// DayForDate resolves the planned day for the given date: the weekday of
// the date is looked up in the active plan. Dates resolve to nothing when
// no plan is active.
func DayForDate(all []client.WeeklyPlan, date time.Time) (client.PlannedDay, bool) {
	p, ok := ActivePlan(all)
	if !ok {
		return client.PlannedDay{}, false
	}

	return FindDay(p, ISOWeekday(date))
}

// Week is the seven weekday slots of a plan
type Week struct {
	Plan client.WeeklyPlan
	// Found is false when there is no plan to show
	Found bool
	// Days holds the planned day of each weekday, Monday first
	Days [7]*client.PlannedDay
}

// WeekOf returns the weekday slots of the given plan
func WeekOf(plan client.WeeklyPlan) Week {
	w := Week{Plan: plan, Found: true}
	for weekday := 1; weekday <= 7; weekday++ {
		if d, ok := FindDay(plan, weekday); ok {
			day := d
			w.Days[weekday-1] = &day
		}
	}

	return w
}
