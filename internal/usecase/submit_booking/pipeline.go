package submit_booking

import (
	"context"
	"sync"
	"time"

	"github.com/glamnails/salon-gateway/internal/domain"
	"github.com/glamnails/salon-gateway/internal/service/catalog"
)

// State is the booking form's lifecycle state.
type State string

const (
	StateLoading    State = "loading"
	StateForm       State = "form"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
)

// Submitter runs the actual submission; satisfied by *UseCase.
type Submitter interface {
	Execute(ctx context.Context, req *Request) (*Response, error)
}

// Pipeline drives one booking form session:
//
//	Loading -> Form -> Submitting -> Success
//	                      |
//	                      +-> Form (error kept, draft untouched)
//
// Success is terminal until Reset, which returns to Form with an empty
// draft. A failed submission never clears user input. After Close, results
// of still-outstanding loads are discarded instead of mutating the session.
type Pipeline struct {
	mu sync.Mutex

	state   State
	draft   domain.BookingDraft
	catalog *catalog.BookingCatalog
	lastErr error
	closed  bool

	loader       CatalogLoader
	submitter    Submitter
	timeProvider TimeProvider
	logger       Logger
}

func NewPipeline(loader CatalogLoader, submitter Submitter, logger Logger) *Pipeline {
	return &Pipeline{
		state:        StateLoading,
		loader:       loader,
		submitter:    submitter,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// LoadCatalog fetches the service and artist options and moves the form out
// of its loading state. If the session was closed while the fetch was
// outstanding, the result is dropped.
func (p *Pipeline) LoadCatalog(ctx context.Context) error {
	loaded, err := p.loader.LoadBookingCatalog(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		p.logger.Info("BookingPipeline: session closed, discarding catalog result")
		return nil
	}
	if err != nil {
		p.lastErr = err
		p.state = StateForm
		return err
	}
	p.catalog = loaded
	p.lastErr = nil
	p.state = StateForm
	return nil
}

// UpdateField replaces one draft field, leaving the others untouched.
// Nothing is validated here; errors only appear when booking is attempted.
func (p *Pipeline) UpdateField(field domain.DraftField, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.draft.Set(field, value)
}

// Submit validates and delivers the draft. On success the draft is cleared
// and the state becomes Success; on failure the state returns to Form with
// the error recorded and every draft field exactly as the user left it.
func (p *Pipeline) Submit(ctx context.Context) (*Response, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrInternal
	}
	p.state = StateSubmitting
	req := FromDraft(p.draft)
	p.mu.Unlock()

	resp, err := p.submitter.Execute(ctx, req)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return resp, err
	}
	if err != nil {
		p.state = StateForm
		p.lastErr = err
		return nil, err
	}
	p.draft.Reset()
	p.lastErr = nil
	p.state = StateSuccess
	return resp, nil
}

// Reset leaves the Success state and starts over with an empty draft.
func (p *Pipeline) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.draft.Reset()
	p.lastErr = nil
	p.state = StateForm
}

// Close ends the session. Outstanding async results are discarded.
func (p *Pipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

// IsDateSelectable reports whether a date may be picked: today or later.
func (p *Pipeline) IsDateSelectable(date time.Time) bool {
	return domain.IsDateSelectable(date, p.timeProvider.Now())
}

// TimeSlots exposes the fixed slot grid the form offers.
func (p *Pipeline) TimeSlots() []string {
	return domain.TimeSlots()
}

func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Pipeline) Draft() domain.BookingDraft {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.draft
}

func (p *Pipeline) Catalog() *catalog.BookingCatalog {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.catalog
}

func (p *Pipeline) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}
