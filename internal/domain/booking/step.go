package booking

type Step int

const (
	StepService Step = iota + 1
	StepProvider
	StepDateTime
	StepDetails
	StepPayment
	StepComplete
)

// IndicatorSteps are the steps shown in the progress indicator.
var IndicatorSteps = []Step{StepService, StepProvider, StepDateTime, StepDetails, StepPayment}

func (s Step) Label() string {
	switch s {
	case StepService:
		return "Service"
	case StepProvider:
		return "Provider"
	case StepDateTime:
		return "Date & Time"
	case StepDetails:
		return "Details"
	case StepPayment:
		return "Payment"
	case StepComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

func (s Step) Valid() bool {
	return s >= StepService && s <= StepComplete
}

type StepStatus string

const (
	StepStatusCompleted StepStatus = "completed"
	StepStatusCurrent   StepStatus = "current"
	StepStatusUpcoming  StepStatus = "upcoming"
)

type StepView struct {
	Step      Step
	Label     string
	Status    StepStatus
	Clickable bool
}
