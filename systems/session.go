package systems

import (
	"math"
	"time"

	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateSession creates the session resolver. It accrues time-driven
// score, decides win/lose, and fires exactly one of the callbacks a
// short beat after the terminal state so the outcome reads on screen
// before the scene changes.
func NewUpdateSession(onWin, onLose func(*components.SessionData)) ecs.System {
	return func(e *ecs.ECS) {
		session := GetSession(e)
		if session == nil {
			return
		}
		now := GetOrCreateClock(e).Now

		if session.Running {
			accrueScore(session, now)

			switch {
			case session.Hearts <= 0:
				finishSession(e, session, now, components.OutcomeLost)

			case session.Variant.Win == cfg.WinOnScore && session.Score >= session.Variant.TargetScore:
				finishSession(e, session, now, components.OutcomeWon)

			case session.Expired(now):
				if session.Variant.Win == cfg.WinOnSurvive {
					finishSession(e, session, now, components.OutcomeWon)
				} else {
					finishSession(e, session, now, components.OutcomeLost)
				}
			}
		}

		if !session.Running && !session.Resolved && !now.Before(session.ResolveAt) {
			session.Resolved = true
			switch session.Outcome {
			case components.OutcomeWon:
				if onWin != nil {
					onWin(session)
				}
			case components.OutcomeLost:
				if onLose != nil {
					onLose(session)
				}
			}
		}
	}
}

// accrueScore applies the time-driven policy: score is a pure function
// of elapsed time, floored, clamped to the session duration so the final
// tick lands exactly on duration * rate.
func accrueScore(session *components.SessionData, now time.Time) {
	if session.Variant.Accrual != cfg.AccruePerSecond {
		return
	}
	elapsed := session.Elapsed(now)
	if elapsed > session.Variant.Duration {
		elapsed = session.Variant.Duration
	}
	session.Score = int(math.Floor(elapsed.Seconds() * session.Variant.PointsPerSecond))
}

func finishSession(e *ecs.ECS, session *components.SessionData, now time.Time, outcome components.OutcomeID) {
	session.Running = false
	session.Outcome = outcome
	session.ResolveAt = now.Add(cfg.Session.ResolveDelay)

	if outcome == components.OutcomeWon {
		PlaySFX(e, cfg.SoundWin)
	} else {
		PlaySFX(e, cfg.SoundLose)
	}
}
