package sweepctl

import (
	"io"
	"os"

	"k8s.io/apimachinery/pkg/util/clock"

	"github.com/sweepproject/sweep/internal/scheduler"
	"github.com/sweepproject/sweep/internal/sweep"
)

// App is the sweepctl application object. Command-line handlers should not
// interact with the scheduler directly but only through an App; operator
// output goes to App.Out so commands are testable against a buffer.
type App struct {
	Params *Params
	Out    io.Writer
	Clock  clock.Clock
}

// Params groups the dependencies a command needs: the scheduler submitter
// and the dispatch configuration. Commands populate it from config before
// running.
type Params struct {
	Submitter scheduler.Submitter
	Dispatch  *sweep.Config
}

func New() *App {
	return &App{
		Params: &Params{Dispatch: &sweep.Config{}},
		Out:    os.Stdout,
		Clock:  clock.RealClock{},
	}
}

func (a *App) dispatcher() *sweep.Dispatcher {
	return sweep.NewDispatcher(a.Params.Submitter, a.Params.Dispatch, a.Clock, a.Out)
}
