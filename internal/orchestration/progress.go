package orchestration

import "github.com/agbru/consolekata/internal/routine"

// StatusReporter displays transient status while a routine runs, such as a
// spinner on stderr during a paced countdown.
type StatusReporter interface {
	Start(routine string)
	Update(msg string)
	Stop()
}

// NullStatusReporter discards all status updates.
type NullStatusReporter struct{}

func (NullStatusReporter) Start(string)  {}
func (NullStatusReporter) Update(string) {}
func (NullStatusReporter) Stop()         {}

// AttachStatus starts rep for name and routes env.Status to it. The returned
// function stops the reporter and must be called once the run ends.
func AttachStatus(env routine.Env, name string, rep StatusReporter) (routine.Env, func()) {
	if rep == nil {
		rep = NullStatusReporter{}
	}
	rep.Start(name)
	env.Status = rep.Update
	return env, rep.Stop
}
