package service

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"p9e.in/sitehub/config"
	"p9e.in/sitehub/notify"
	"p9e.in/sitehub/store"
)

var testNow = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func testConfig() config.Config {
	return config.Config{
		MaterialApprovalCeiling: 50000,
		PermitOTPLength:         4,
		VarianceWarningPct:      5,
		VarianceAlertPct:        15,
		DefaultSiteRadiusMeters: 100,
	}
}

// newTestService builds a seeded service with a frozen clock, sequential
// ids, and silenced logging.
func newTestService(t *testing.T) *Service {
	t.Helper()
	st := store.New()
	store.Seed(st, testNow)

	log := logrus.New()
	log.SetOutput(io.Discard)

	svc := New(st, notify.New(), testConfig(), log)
	seq := 0
	svc.WithIDFunc(func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	})
	svc.WithClock(func() time.Time { return testNow })
	return svc
}

// countNotifications subscribes a counter and returns a pointer to it.
func countNotifications(svc *Service) *int {
	n := 0
	svc.Subscribe(func() { n++ })
	return &n
}
