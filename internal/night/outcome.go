package night

// Outcome is how a night ended.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeSurvived
	OutcomeCaught
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeSurvived:
		return "survived"
	case OutcomeCaught:
		return "caught"
	default:
		return "unknown"
	}
}

// hourLabels are the clock faces shown across a night.
var hourLabels = [...]string{"12 AM", "1 AM", "2 AM", "3 AM", "4 AM", "5 AM", "6 AM"}

// HourLabel maps elapsed night time to the clock shown on the HUD.
func HourLabel(elapsed, nightSeconds float64) string {
	if nightSeconds <= 0 {
		return hourLabels[0]
	}
	h := int(elapsed / nightSeconds * 6)
	h = max(0, min(len(hourLabels)-1, h))
	return hourLabels[h]
}
