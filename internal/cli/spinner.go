package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// progressSpinner shows check progress on a terminal.
type progressSpinner struct {
	s *spinner.Spinner
}

func newProgressSpinner(f *os.File) *progressSpinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(f))
	s.Suffix = " Checking files..."
	return &progressSpinner{s: s}
}

func (p *progressSpinner) start() {
	p.s.Start()
}

func (p *progressSpinner) stop() {
	p.s.Stop()
}

// update is safe to call from several goroutines.
func (p *progressSpinner) update(done, total int) {
	p.s.Lock()
	p.s.Suffix = fmt.Sprintf(" Checking files... %d/%d", done, total)
	p.s.Unlock()
}
