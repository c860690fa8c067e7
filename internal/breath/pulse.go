package breath

import "time"

// PulsePeriod is the length of one ring pulse loop. It is cosmetic and does
// not follow the 4-7-8 phase timers.
const PulsePeriod = 19 * time.Second

type keyframe struct {
	at    float64 // fraction of the loop
	scale float64
}

var pulseFrames = []keyframe{
	{at: 0, scale: 1},
	{at: 0.21, scale: 1.15},
	{at: 0.50, scale: 0.95},
	{at: 0.79, scale: 1.08},
	{at: 1, scale: 1},
}

// Pulse returns the ring scale at elapsed time into the loop, linearly
// interpolated between keyframes.
func Pulse(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	t := float64(elapsed%PulsePeriod) / float64(PulsePeriod)

	for i := 1; i < len(pulseFrames); i++ {
		prev, next := pulseFrames[i-1], pulseFrames[i]
		if t <= next.at {
			f := (t - prev.at) / (next.at - prev.at)
			return prev.scale + (next.scale-prev.scale)*f
		}
	}
	return 1
}
