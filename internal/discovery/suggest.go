package discovery

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/donaldgifford/storefront-discovery/internal/metrics"
	domain "github.com/donaldgifford/storefront-discovery/pkg/types"
)

// SuggestStatus is the lifecycle of the suggestion list.
type SuggestStatus int

// Suggestion statuses.
const (
	SuggestIdle SuggestStatus = iota
	SuggestLoading
	SuggestSuccess
	SuggestError
)

func (s SuggestStatus) String() string {
	switch s {
	case SuggestLoading:
		return "loading"
	case SuggestSuccess:
		return "success"
	case SuggestError:
		return "error"
	default:
		return "idle"
	}
}

// Direction moves the active suggestion.
type Direction int

// Directions.
const (
	NavNext Direction = iota + 1
	NavPrev
)

// SuggestionState is what a rendering surface shows under the search box.
type SuggestionState struct {
	Status      SuggestStatus
	Items       []domain.Product
	ActiveIndex int
	Err         string
	// Seq increases with every published state. A state with a lower Seq
	// than one already rendered is stale.
	Seq uint64
}

func idleSuggestions() SuggestionState {
	return SuggestionState{Status: SuggestIdle, ActiveIndex: -1}
}

// Navigate moves ActiveIndex with wraparound. It is a no-op on an empty list.
func (s SuggestionState) Navigate(dir Direction) SuggestionState {
	n := len(s.Items)
	if n == 0 {
		return s
	}
	switch dir {
	case NavNext:
		if s.ActiveIndex < 0 || s.ActiveIndex >= n-1 {
			s.ActiveIndex = 0
		} else {
			s.ActiveIndex++
		}
	case NavPrev:
		if s.ActiveIndex <= 0 || s.ActiveIndex >= n {
			s.ActiveIndex = n - 1
		} else {
			s.ActiveIndex--
		}
	}
	return s
}

// Active returns the highlighted product, if any.
func (s SuggestionState) Active() (domain.Product, bool) {
	if s.ActiveIndex < 0 || s.ActiveIndex >= len(s.Items) {
		return domain.Product{}, false
	}
	return s.Items[s.ActiveIndex], true
}

func (s SuggestionState) clone() SuggestionState {
	s.Items = slices.Clone(s.Items)
	return s
}

// Suggester turns typed text into a debounced list of candidate products.
// Only the response of the most recent lookup is ever applied.
type Suggester struct {
	lister   ProductLister
	clock    Clock
	delay    time.Duration
	limit    int
	logger   *slog.Logger
	out      *notifier[SuggestionState]
	onSelect func(domain.Product)

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	query  Query
	state  SuggestionState
	timer  Timer
	seq    uint64
	closed bool
}

// NewSuggester creates a Suggester that looks products up through lister.
func NewSuggester(lister ProductLister, opts ...Option) *Suggester {
	o := buildOptions(opts)
	ctx, cancel := context.WithCancel(context.Background())
	return &Suggester{
		lister:   lister,
		clock:    o.clock,
		delay:    o.debounce,
		limit:    o.suggestLimit,
		logger:   o.logger,
		out:      newNotifier(o.onSuggestions),
		onSelect: o.onSelect,
		ctx:      ctx,
		cancel:   cancel,
		state:    idleSuggestions(),
	}
}

// SetQuery records typed text. Blank text resets to idle at once; anything
// else restarts the debounce.
func (s *Suggester) SetQuery(text string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	q, eff := s.query.Type(text)
	s.query = q
	s.applyTimerLocked(eff)

	if eff.Arm {
		s.mu.Unlock()
		return
	}

	s.state = idleSuggestions()
	s.publishLocked()
	s.mu.Unlock()
	s.out.drain()
}

// Flush fires a pending debounce immediately. It is a no-op when nothing
// is pending.
func (s *Suggester) Flush() {
	s.mu.Lock()
	token, ok := s.query.Pending()
	s.mu.Unlock()
	if ok {
		s.fire(token)
	}
}

func (s *Suggester) applyTimerLocked(eff DebounceEffect) {
	if eff.Cancel && s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if eff.Arm {
		token := eff.Token
		s.timer = s.clock.AfterFunc(s.delay, func() { s.fire(token) })
	}
}

func (s *Suggester) fire(token uint64) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	q, gen, ok := s.query.Fire(token)
	if !ok {
		s.mu.Unlock()
		return
	}
	s.query = q
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state.Status = SuggestLoading
	s.state.Err = ""
	text := strings.TrimSpace(q.Text)
	s.wg.Add(1)
	s.publishLocked()
	s.mu.Unlock()

	s.out.drain()
	go s.lookup(gen, text)
}

func (s *Suggester) lookup(gen uint64, text string) {
	defer s.wg.Done()

	metrics.SuggestLookupsTotal.Inc()
	start := time.Now()
	page, err := s.lister.ListProducts(s.ctx, &domain.ProductQuery{
		Page:   1,
		Limit:  s.limit,
		Search: text,
	})
	metrics.SuggestLookupDuration.Observe(time.Since(start).Seconds())

	s.mu.Lock()
	if !s.query.Accepts(gen) {
		s.mu.Unlock()
		metrics.SuggestStaleTotal.Inc()
		s.logger.Debug("discarding stale suggestions",
			"generation", gen,
			"query", text,
		)
		return
	}

	if err != nil {
		metrics.SuggestFailuresTotal.Inc()
		s.logger.Warn("suggestion lookup failed",
			"generation", gen,
			"query", text,
			"error", err,
		)
		s.state = SuggestionState{
			Status:      SuggestError,
			ActiveIndex: -1,
			Err:         err.Error(),
		}
	} else {
		items := page.Products
		if len(items) > s.limit {
			items = items[:s.limit]
		}
		s.state = SuggestionState{
			Status:      SuggestSuccess,
			Items:       slices.Clone(items),
			ActiveIndex: -1,
		}
		s.logger.Debug("suggestions updated",
			"generation", gen,
			"query", text,
			"count", len(items),
		)
	}
	s.publishLocked()
	s.mu.Unlock()

	s.out.drain()
}

// Navigate moves the highlighted suggestion with wraparound.
func (s *Suggester) Navigate(dir Direction) {
	s.mu.Lock()
	next := s.state.Navigate(dir)
	if next.ActiveIndex == s.state.ActiveIndex {
		s.mu.Unlock()
		return
	}
	s.state = next
	s.publishLocked()
	s.mu.Unlock()
	s.out.drain()
}

// Select emits the product at index i and clears the query. It reports
// false when i does not name a suggestion.
func (s *Suggester) Select(i int) (domain.Product, bool) {
	s.mu.Lock()
	if i < 0 || i >= len(s.state.Items) {
		s.mu.Unlock()
		return domain.Product{}, false
	}
	p := s.state.Items[i]
	s.resetLocked()
	s.mu.Unlock()

	s.out.drain()
	if s.onSelect != nil {
		s.onSelect(p)
	}
	return p, true
}

// SelectActive is Select(ActiveIndex).
func (s *Suggester) SelectActive() (domain.Product, bool) {
	s.mu.Lock()
	i := s.state.ActiveIndex
	s.mu.Unlock()
	return s.Select(i)
}

// Clear resets to idle and cancels any pending lookup.
func (s *Suggester) Clear() {
	s.mu.Lock()
	s.resetLocked()
	s.mu.Unlock()
	s.out.drain()
}

func (s *Suggester) resetLocked() {
	q, eff := s.query.Retire()
	s.query = q
	s.applyTimerLocked(eff)
	s.state = idleSuggestions()
	s.publishLocked()
}

// publishLocked stamps the next sequence number and queues a snapshot for
// the observer.
func (s *Suggester) publishLocked() {
	s.seq++
	s.state.Seq = s.seq
	s.out.push(s.state.clone())
}

// State returns a snapshot of the suggestion list.
func (s *Suggester) State() SuggestionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Query returns the current query.
func (s *Suggester) Query() Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Wait blocks until every issued lookup has settled.
func (s *Suggester) Wait() {
	s.wg.Wait()
}

// Close cancels the pending debounce and any in-flight lookups.
func (s *Suggester) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	q, eff := s.query.Retire()
	s.query = q
	s.applyTimerLocked(eff)
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}
