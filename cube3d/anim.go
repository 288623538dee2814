package cube3d

const (
	// DefaultAngularSpeed is in radians per second.
	DefaultAngularSpeed = 2.0
	// DefaultFrameRate is the fixed-step tick rate in Hz.
	DefaultFrameRate = 30
)

// AnimationState is the accumulated rotation angle. It is never wrapped.
type AnimationState struct {
	Angle float64
}

// Advance returns the state after dt seconds at angularSpeed rad/s.
func (s AnimationState) Advance(dt, angularSpeed float64) AnimationState {
	return AnimationState{Angle: s.Angle + angularSpeed*dt}
}
