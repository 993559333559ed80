package scrollscene

import "fmt"

// MotionPreference is the user's preference for on-screen motion.
type MotionPreference int

const (
	MotionNoPreference MotionPreference = iota // Motion is fine
	MotionReduce                               // The user asked for as little motion as possible
)

func (m MotionPreference) String() string {
	switch m {
	case MotionNoPreference:
		return "no-preference"
	case MotionReduce:
		return "reduce"
	}
	return fmt.Sprintf("MotionPreference(%d)", int(m))
}

// SetupFunc installs behavior for a matched preference.
type SetupFunc func() error

// MotionGate picks which setup to run based on the current motion preference.
type MotionGate struct {
	// Preference reports the current preference. A nil Preference means MotionNoPreference.
	Preference func() MotionPreference
}

// StaticPreference returns a preference func that always reports pref.
func StaticPreference(pref MotionPreference) func() MotionPreference {
	return func() MotionPreference { return pref }
}

// Current returns the current motion preference.
func (gate MotionGate) Current() MotionPreference {
	if gate.Preference == nil {
		return MotionNoPreference
	}
	return gate.Preference()
}

// Match runs the setup registered for the current preference and reports whether one ran.
func (gate MotionGate) Match(setups map[MotionPreference]SetupFunc) (bool, error) {
	setup, ok := setups[gate.Current()]
	if !ok || setup == nil {
		return false, nil
	}
	return true, setup()
}
