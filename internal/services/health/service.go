package health

import "sort"

// Check reports an error when a dependency is not usable.
type Check func() error

// Status is the /health payload.
type Status struct {
	OK      bool     `json:"ok"`
	Failing []string `json:"failing,omitempty"`
}

// Service runs named readiness checks.
type Service struct {
	checks map[string]Check
}

// NewService constructs a health service; nil checks are ignored.
func NewService(checks map[string]Check) *Service {
	s := &Service{checks: make(map[string]Check, len(checks))}
	for name, c := range checks {
		if c != nil {
			s.checks[name] = c
		}
	}
	return s
}

// Status runs every check and lists the failing ones by name.
func (s *Service) Status() Status {
	var failing []string
	if s != nil {
		for name, check := range s.checks {
			if err := check(); err != nil {
				failing = append(failing, name)
			}
		}
	}
	sort.Strings(failing)
	return Status{OK: len(failing) == 0, Failing: failing}
}
