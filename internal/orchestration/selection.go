package orchestration

import "github.com/agbru/consolekata/internal/routine"

// AllRoutines is the pseudo-name selecting every registered routine.
const AllRoutines = "all"

// RoutinesToRun resolves name against factory. AllRoutines yields every
// registered routine in sorted order.
func RoutinesToRun(name string, factory routine.Factory) ([]routine.Routine, error) {
	if name == AllRoutines {
		return factory.GetAll(), nil
	}
	r, err := factory.Get(name)
	if err != nil {
		return nil, err
	}
	return []routine.Routine{r}, nil
}
