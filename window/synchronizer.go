package window

import "time"

// TimeSynchronizer paces the render loop to a target FPS. Best effort only:
// if an iteration overruns its frame period, MaySleep returns immediately.
type TimeSynchronizer struct {
	prevTime   time.Time
	usPerFrame int
}

func NewTimeSynchronizer(targetFPS int) *TimeSynchronizer {
	return &TimeSynchronizer{
		prevTime:   time.Now(),
		usPerFrame: 1000000 / targetFPS,
	}
}

func (ts *TimeSynchronizer) MaySleep() {
	curTime := time.Now()
	dur := curTime.Sub(ts.prevTime)
	diff := ts.usPerFrame - int(dur.Microseconds())
	if diff > 0 {
		time.Sleep(time.Duration(diff) * time.Microsecond)
	}
	ts.prevTime = curTime
}
