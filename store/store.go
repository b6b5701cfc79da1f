/*
Package store implements the application state store.

PURPOSE:
  Single source of truth for every domain collection (employees, leave
  balances, leave requests, documents, messages, transient
  notifications) and the authentication flag. The presentation layer
  reads collections through copy-out accessors and mutates only through
  the operation set defined here.

LIFECYCLE:
  init:     New() loads the persisted snapshot from the sink; each
            collection absent or undecodable falls back to seed data
  operate:  every mutation runs synchronously under the store lock and
            is followed by a full-snapshot write to the sink
  teardown: nothing to release; the sink owner closes it

PERSISTENCE:
  Fire-and-forget full-document overwrite after every mutation. A failed
  save is logged and otherwise ignored; there is no retry and no
  acknowledgement. Two processes sharing a sink clobber each other -
  accepted, exactly one logical writer is assumed.

FAILURE SEMANTICS:
  Operations cannot reject a call. Unknown ids make lookups return nil
  and mutations fall through quietly; user-visible feedback is always an
  advisory notification, never an error.

SEE ALSO:
  - hr/:      entity types and derived queries
  - persist/: snapshot sinks
  - seed/:    fallback data and id generators
*/
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/blackflag/hr-platform/hr"
	"github.com/blackflag/hr-platform/persist"
	"github.com/blackflag/hr-platform/seed"
)

// DefaultNotificationTTL is how long a notification lives before it
// clears itself.
const DefaultNotificationTTL = 5 * time.Second

// Options configures optional store behavior. The zero value is valid.
type Options struct {
	Logger          *zap.Logger   // defaults to zap.NewNop()
	NotificationTTL time.Duration // defaults to DefaultNotificationTTL
	Clock           func() time.Time
	User            hr.User // defaults to seed.CurrentUser()
}

// Store owns all domain collections. Construct once at process start
// with New and inject it into the presentation layer.
type Store struct {
	mu     sync.RWMutex
	logger *zap.Logger
	sink   persist.Sink
	user   hr.User
	ttl    time.Duration
	clock  func() time.Time

	employees     []hr.Employee
	balances      []hr.LeaveBalance
	requests      []hr.LeaveRequest
	documents     []hr.Document
	messages      []hr.Message
	notifications []hr.Notification
	authenticated bool
}

// New builds a store backed by the given sink. It loads the persisted
// snapshot if one exists; a missing or corrupt snapshot is logged and
// replaced by seed data, never propagated.
func New(sink persist.Sink, opts Options) *Store {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.NotificationTTL == 0 {
		opts.NotificationTTL = DefaultNotificationTTL
	}
	if opts.Clock == nil {
		opts.Clock = func() time.Time { return time.Now().UTC() }
	}
	if opts.User.ID == "" {
		opts.User = seed.CurrentUser()
	}

	s := &Store{
		logger: opts.Logger,
		sink:   sink,
		user:   opts.User,
		ttl:    opts.NotificationTTL,
		clock:  opts.Clock,
	}
	s.load()
	return s
}

// load restores state from the sink, defaulting each absent collection
// to seed data. Parse failures degrade silently to a full seed.
func (s *Store) load() {
	fallback := seed.Snapshot()

	snap, err := s.sink.Load(context.Background())
	if err != nil {
		if !errors.Is(err, hr.ErrSnapshotNotFound) {
			s.logger.Warn("failed to load persisted snapshot, using seed data", zap.Error(err))
		}
		snap = fallback
	}

	// Per-collection defaulting: an older blob missing a field still loads.
	if snap.Employees == nil {
		snap.Employees = fallback.Employees
	}
	if snap.LeaveBalances == nil {
		snap.LeaveBalances = fallback.LeaveBalances
	}
	if snap.LeaveRequests == nil {
		snap.LeaveRequests = fallback.LeaveRequests
	}
	if snap.Documents == nil {
		snap.Documents = fallback.Documents
	}
	if snap.Messages == nil {
		snap.Messages = fallback.Messages
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyLocked(snap)
}

func (s *Store) applyLocked(snap hr.Snapshot) {
	s.employees = snap.Employees
	s.balances = snap.LeaveBalances
	s.requests = snap.LeaveRequests
	s.documents = snap.Documents
	s.messages = snap.Messages
	s.authenticated = snap.IsAuthenticated
}

// persistLocked writes the full snapshot to the sink. Called after every
// mutation with the write lock held. Failures are logged, not returned.
func (s *Store) persistLocked() {
	snap := s.snapshotLocked()
	if err := s.sink.Save(context.Background(), snap); err != nil {
		s.logger.Error("failed to persist snapshot", zap.Error(err))
	}
}

func (s *Store) snapshotLocked() hr.Snapshot {
	return hr.Snapshot{
		Employees:       s.employees,
		LeaveBalances:   s.balances,
		LeaveRequests:   s.requests,
		Documents:       s.documents,
		Messages:        s.messages,
		IsAuthenticated: s.authenticated,
	}.Clone()
}

// Snapshot returns a deep copy of the current observable state.
func (s *Store) Snapshot() hr.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Reset discards all state, reseeds, and persists the seed snapshot.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyLocked(seed.Snapshot())
	s.persistLocked()
}

// =============================================================================
// SESSION
// =============================================================================

// CurrentUser returns the fixed demo identity.
func (s *Store) CurrentUser() hr.User { return s.user }

// IsAuthenticated reports the persisted session flag.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Login succeeds iff both credentials are non-empty. There is no
// credential check; this is a demo gate, not authentication.
func (s *Store) Login(email, password string) bool {
	if email == "" || password == "" {
		return false
	}

	s.mu.Lock()
	s.authenticated = true
	s.persistLocked()
	s.mu.Unlock()

	s.AddNotification(fmt.Sprintf("Welcome back, %s!", s.user.FirstName), hr.SeveritySuccess)
	return true
}

// Logout clears the session flag.
func (s *Store) Logout() {
	s.mu.Lock()
	s.authenticated = false
	s.persistLocked()
	s.mu.Unlock()

	s.AddNotification("You have been signed out.", hr.SeverityInfo)
}

// =============================================================================
// EMPLOYEES
// =============================================================================

// Employees returns a copy of the employee collection.
func (s *Store) Employees() []hr.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]hr.Employee(nil), s.employees...)
}

// GetEmployee returns the employee with the given id, or nil.
func (s *Store) GetEmployee(id string) *hr.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.employees {
		if s.employees[i].ID == id {
			e := s.employees[i]
			return &e
		}
	}
	return nil
}

// AddEmployee appends a new active employee with a generated id and the
// next sequential employee code.
func (s *Store) AddEmployee(form hr.EmployeeForm) hr.Employee {
	now := s.clock()

	s.mu.Lock()
	emp := hr.Employee{
		ID:           seed.GenerateID("emp"),
		EmployeeCode: seed.NextEmployeeCode(s.employees),
		Email:        form.Email,
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Department:   form.Department,
		Position:     form.Position,
		Phone:        form.Phone,
		Address:      form.Address,
		Salary:       form.Salary,
		SSN:          form.SSN,
		ManagerID:    form.ManagerID,
		IsActive:     true,
		HireDate:     form.HireDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.employees = append(s.employees, emp)
	s.persistLocked()
	s.mu.Unlock()

	s.AddNotification(fmt.Sprintf("Employee %s %s added successfully.", form.FirstName, form.LastName), hr.SeveritySuccess)
	return emp
}

// UpdateEmployee merges the patch into the matching employee and bumps
// its updated timestamp. Unknown ids fall through quietly.
func (s *Store) UpdateEmployee(id string, patch hr.EmployeePatch) *hr.Employee {
	var updated *hr.Employee

	s.mu.Lock()
	for i := range s.employees {
		if s.employees[i].ID != id {
			continue
		}
		e := &s.employees[i]
		if patch.Email != nil {
			e.Email = *patch.Email
		}
		if patch.FirstName != nil {
			e.FirstName = *patch.FirstName
		}
		if patch.LastName != nil {
			e.LastName = *patch.LastName
		}
		if patch.Department != nil {
			e.Department = *patch.Department
		}
		if patch.Position != nil {
			e.Position = *patch.Position
		}
		if patch.Phone != nil {
			e.Phone = *patch.Phone
		}
		if patch.Address != nil {
			e.Address = *patch.Address
		}
		if patch.Salary != nil {
			e.Salary = *patch.Salary
		}
		if patch.ManagerID != nil {
			e.ManagerID = patch.ManagerID
		}
		if patch.IsActive != nil {
			e.IsActive = *patch.IsActive
		}
		e.UpdatedAt = s.clock()
		c := *e
		updated = &c
		break
	}
	s.persistLocked()
	s.mu.Unlock()

	if updated != nil {
		s.AddNotification("Employee updated successfully.", hr.SeveritySuccess)
	}
	return updated
}

// DeleteEmployee is a soft delete: it flips IsActive and keeps the
// record so dependent references stay resolvable. Idempotent -
// deactivating an inactive employee leaves it inactive.
func (s *Store) DeleteEmployee(id string) {
	s.mu.Lock()
	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees[i].IsActive = false
			s.employees[i].UpdatedAt = s.clock()
			break
		}
	}
	s.persistLocked()
	s.mu.Unlock()

	s.AddNotification("Employee deactivated.", hr.SeverityInfo)
}
