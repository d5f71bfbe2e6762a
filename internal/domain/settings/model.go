package settings

import "time"

// ReminderTimes es la franja en la que se recuerdan las tomas.
// @Enum morning, afternoon, evening, both
type ReminderTimes string

const (
	TimesMorning   ReminderTimes = "morning"
	TimesAfternoon ReminderTimes = "afternoon"
	TimesEvening   ReminderTimes = "evening"
	TimesBoth      ReminderTimes = "both" // mañana y noche
)

func (t ReminderTimes) Valid() bool {
	switch t {
	case TimesMorning, TimesAfternoon, TimesEvening, TimesBoth:
		return true
	}
	return false
}

// Clock devuelve las horas HH:MM que corresponden a la franja.
func (t ReminderTimes) Clock() []string {
	switch t {
	case TimesMorning:
		return []string{"08:00"}
	case TimesAfternoon:
		return []string{"13:00"}
	case TimesEvening:
		return []string{"20:00"}
	case TimesBoth:
		return []string{"08:00", "20:00"}
	}
	return nil
}

// Method es el canal de notificación preferido.
// @Enum push, email, both
type Method string

const (
	MethodPush  Method = "push"
	MethodEmail Method = "email"
	MethodBoth  Method = "both"
)

func (m Method) Valid() bool {
	switch m {
	case MethodPush, MethodEmail, MethodBoth:
		return true
	}
	return false
}

// ReminderSettings son las preferencias de recordatorio (un único documento).
type ReminderSettings struct {
	ReminderTimes ReminderTimes
	Method        Method
	UpdatedAt     time.Time
}

func Defaults() ReminderSettings {
	return ReminderSettings{
		ReminderTimes: TimesBoth,
		Method:        MethodBoth,
	}
}
