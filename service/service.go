// Package service is the operation surface the dashboards call. It composes
// the store, the state machines, the geofence check and the change notifier
// into the read-validate-replace-notify sequence every mutation follows.
package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"p9e.in/sitehub/config"
	"p9e.in/sitehub/notify"
	"p9e.in/sitehub/store"
	"p9e.in/sitehub/utils"
)

// Service is the domain facade. Construct it once at startup and inject it
// wherever operations are needed; independent instances (e.g. in tests) do
// not share state.
type Service struct {
	store    *store.Store
	notifier *notify.Notifier
	cfg      config.Config
	log      *logrus.Logger
	validate *validator.Validate

	// injectable for deterministic tests
	now     func() time.Time
	newID   func() string
	newCode func() (string, error)
}

// New wires a Service from its collaborators.
func New(st *store.Store, n *notify.Notifier, cfg config.Config, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
	}
	return &Service{
		store:    st,
		notifier: n,
		cfg:      cfg,
		log:      log,
		validate: validator.New(),
		now:      time.Now,
		newID:    uuid.NewString,
		newCode:  utils.GenerateEnrollmentCode,
	}
}

// Subscribe registers cb to run after every committed mutation. There is no
// payload; subscribers re-read the collections they care about. The returned
// function unsubscribes.
func (s *Service) Subscribe(cb func()) func() {
	return s.notifier.Subscribe(cb)
}

// Store exposes the underlying collections for read-only consumers such as
// report exporters.
func (s *Service) Store() *store.Store {
	return s.store
}

// WithClock overrides the service clock. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithIDFunc overrides record id generation. Intended for tests.
func (s *Service) WithIDFunc(newID func() string) *Service {
	s.newID = newID
	return s
}

// WithCodeFunc overrides enrollment code generation. Intended for tests.
func (s *Service) WithCodeFunc(newCode func() (string, error)) *Service {
	s.newCode = newCode
	return s
}

// checkPayload validates a request payload's validate tags.
func (s *Service) checkPayload(payload any) error {
	if err := s.validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// committed logs a mutation and fires the change notification. It must be
// called exactly once per successful mutating operation, after the store
// swap and outside any collection lock.
func (s *Service) committed(entity, id, event string) {
	s.log.WithFields(logrus.Fields{
		"entity": entity,
		"id":     id,
		"event":  event,
	}).Info("mutation committed")
	s.notifier.Notify()
}
