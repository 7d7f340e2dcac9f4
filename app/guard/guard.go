// Package guard decides whether a session may open a page.
package guard

import (
	"github.com/dimasdaffa/fe-rembugwarga/app/models"
	"github.com/dimasdaffa/fe-rembugwarga/app/session"
)

const (
	LoginPath    = "/login"
	DeniedNotice = "Anda tidak memiliki akses ke halaman ini."
)

type Outcome int

const (
	Allowed Outcome = iota
	Unauthenticated
	Unauthorized
)

func (o Outcome) String() string {
	switch o {
	case Allowed:
		return "allowed"
	case Unauthenticated:
		return "unauthenticated"
	case Unauthorized:
		return "unauthorized"
	}
	return "unknown"
}

// Decision is the result of Enforce. Target and Notice are set unless Allowed.
type Decision struct {
	Outcome Outcome
	Target  string
	Notice  string
}

func (d Decision) Allowed() bool { return d.Outcome == Allowed }

// Enforce checks the session once per page activation. An empty required role
// only demands a token.
func Enforce(sess session.Session, required models.Role) Decision {
	if !sess.Authenticated() {
		return Decision{Outcome: Unauthenticated, Target: LoginPath}
	}
	if required != "" && sess.Role != required {
		return Decision{
			Outcome: Unauthorized,
			Target:  sess.Role.LandingPath(),
			Notice:  DeniedNotice,
		}
	}
	return Decision{Outcome: Allowed}
}
