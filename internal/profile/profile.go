// Package profile manages the learner's identity and accumulated study
// statistics. Both are persisted as JSON documents in the key-value store and
// merged over defaults on load, so records written by older versions keep
// working when fields are added.
package profile

import (
	"fmt"
	"sync"
	"time"

	"github.com/tranhn/khtn/internal/store"
)

const (
	profileKey = "userProfile"
	statsKey   = "userStats"
)

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

const (
	maleAvatar   = "https://lh3.googleusercontent.com/aida-public/AB6AXuCkjWqv77lVXjzPkIc194kK8lzlFgE7VRWCOfYdkw3dUFed5MNcvOq1H6NUeCuasaLA8xoJU8MOH6FwE32Tp90CnocdW5K8Io_kQLQbey_Q19RRvFMtG1y2YtljjO0mzEep1qd0WZJ5wFyJ0SjOlYMj0xJPFP5RfsD0sroQHpoac2Dsk2cOzvNpvClXl9QzGpqUnEzyaYqD-QDv0EAds1YWp1FKa3CpZcvpsuf85uKQHnxcp-fp0PILaTdPuKfY8gxNPz9sAtCrTQPr"
	femaleAvatar = "https://cdn-icons-png.flaticon.com/512/6997/6997662.png"
)

// UserProfile is the learner's identity card.
type UserProfile struct {
	Name          string `json:"name"`
	ID            string `json:"id"`
	Class         string `json:"class"`
	School        string `json:"school"`
	Gender        Gender `json:"gender"`
	Avatar        string `json:"avatar"`
	JoinDate      string `json:"joinDate"`
	DateOfBirth   string `json:"dateOfBirth"`
	Notifications bool   `json:"notifications"`
}

func defaultProfile() UserProfile {
	return UserProfile{
		Name:          "Nguyễn Minh Anh",
		ID:            "HS-2023-889",
		Class:         "Lớp 8A1",
		School:        "THCS Chu Văn An",
		Gender:        Male,
		Avatar:        maleAvatar,
		JoinDate:      "01/09/2023",
		DateOfBirth:   "15/08/2010",
		Notifications: true,
	}
}

// Patch describes a partial profile update. Nil fields are left unchanged.
type Patch struct {
	Name          *string
	Class         *string
	School        *string
	DateOfBirth   *string
	JoinDate      *string
	Gender        *Gender
	Notifications *bool
}

// Service loads and persists the profile and stats, and notifies subscribers
// when the profile changes.
type Service struct {
	kv store.KV

	mu   sync.Mutex
	subs map[int]func()
	next int

	now func() time.Time
}

func NewService(kv store.KV) *Service {
	return &Service{
		kv:   kv,
		subs: make(map[int]func()),
		now:  time.Now,
	}
}

// Profile returns the stored profile merged over defaults. A missing or
// unreadable record falls back to the defaults entirely.
func (s *Service) Profile() UserProfile {
	p := defaultProfile()
	stored := p
	if ok, err := s.kv.Get(profileKey, &stored); err == nil && ok {
		p = stored
		if p.Avatar == "" {
			p.Avatar = avatarFor(p.Gender)
		}
	}
	return p
}

// Update applies a partial update and persists the result. Changing gender
// swaps the avatar to the matching default image. Subscribers are notified
// after a successful save.
func (s *Service) Update(patch Patch) (UserProfile, error) {
	current := s.Profile()

	if patch.Name != nil {
		current.Name = *patch.Name
	}
	if patch.Class != nil {
		current.Class = *patch.Class
	}
	if patch.School != nil {
		current.School = *patch.School
	}
	if patch.DateOfBirth != nil {
		current.DateOfBirth = *patch.DateOfBirth
	}
	if patch.JoinDate != nil {
		current.JoinDate = *patch.JoinDate
	}
	if patch.Notifications != nil {
		current.Notifications = *patch.Notifications
	}
	if patch.Gender != nil && *patch.Gender != current.Gender {
		current.Gender = *patch.Gender
		current.Avatar = avatarFor(current.Gender)
	}

	if err := s.kv.Set(profileKey, current); err != nil {
		return current, fmt.Errorf("save profile: %w", err)
	}

	s.notify()
	return current, nil
}

// Subscribe registers a callback invoked after every profile change. The
// returned function removes the subscription.
func (s *Service) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Service) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func avatarFor(g Gender) string {
	if g == Female {
		return femaleAvatar
	}
	return maleAvatar
}
