package health

import (
	"context"
	"time"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Service encapsulates health-related checks.
type Service struct {
	DB        Pinger
	Templates func() []string
	Timeout   time.Duration
}

// NewService constructs a new health service. db may be nil when the
// process runs on in-memory repositories.
func NewService(db Pinger, templates func() []string) *Service {
	return &Service{DB: db, Templates: templates, Timeout: 2 * time.Second}
}

// Status is the health payload.
type Status struct {
	OK        bool   `json:"ok"`
	Storage   string `json:"storage"`
	Templates int    `json:"templates"`
}

// Status reports storage reachability and how many templates are
// registered. ok is false when the database is configured but unreachable
// or no template is registered.
func (s *Service) Status(ctx context.Context) Status {
	st := Status{OK: true, Storage: "memory"}
	if s.DB != nil {
		timeout := s.Timeout
		if timeout <= 0 {
			timeout = 2 * time.Second
		}
		pingCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if err := s.DB.PingContext(pingCtx); err != nil {
			st.OK = false
			st.Storage = "unreachable"
		} else {
			st.Storage = "postgres"
		}
	}
	if s.Templates != nil {
		st.Templates = len(s.Templates())
	}
	if st.Templates == 0 {
		st.OK = false
	}
	return st
}
