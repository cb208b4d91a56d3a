package systems

import (
	"math"

	"github.com/pthm-cable/asteroids/components"
)

// timerEpsilon absorbs float drift when summing many dt steps.
const timerEpsilon = 1e-9

// AdvanceLifetime ticks a lifetime by dt and reports whether it has expired.
// Once expired it stays expired.
func AdvanceLifetime(l *components.Lifetime, dt float64) bool {
	if l.Expired {
		return true
	}
	l.Elapsed += dt
	if l.Elapsed+timerEpsilon >= l.Duration {
		l.Expired = true
	}
	return l.Expired
}

// TicksToExpire returns how many ticks of dt a fresh lifetime of duration lasts.
func TicksToExpire(duration, dt float64) int {
	return int(math.Ceil(duration/dt - timerEpsilon))
}
