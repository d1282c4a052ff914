package discovery

import "strings"

// DebounceEffect tells the runtime what to do with its timer after
// Query.Type.
type DebounceEffect struct {
	// Cancel stops the previously armed timer.
	Cancel bool
	// Arm starts a new timer that must call Fire with Token.
	Arm   bool
	Token uint64
}

// Query is the suggestion input together with its debounce and request
// generation bookkeeping.
type Query struct {
	Text string
	// Generation identifies the latest lookup; only its response may be
	// applied.
	Generation uint64

	token uint64
	armed bool
}

// Type records a keystroke. Blank text cancels any pending debounce and
// retires in-flight lookups; anything else re-arms the debounce.
func (q Query) Type(text string) (Query, DebounceEffect) {
	eff := DebounceEffect{Cancel: q.armed}
	q.Text = text

	if strings.TrimSpace(text) == "" {
		q.armed = false
		q.Generation++
		return q, eff
	}

	q.token++
	q.armed = true
	eff.Arm = true
	eff.Token = q.token
	return q, eff
}

// Fire is called when the timer armed with token expires. It reports false
// when that timer has since been replaced or cancelled; otherwise it returns
// the generation of the lookup to issue.
func (q Query) Fire(token uint64) (Query, uint64, bool) {
	if !q.armed || token != q.token {
		return q, 0, false
	}
	q.armed = false
	q.Generation++
	return q, q.Generation, true
}

// Pending returns the token of the armed timer, if any.
func (q Query) Pending() (uint64, bool) {
	return q.token, q.armed
}

// Accepts reports whether a lookup issued under gen is still current.
func (q Query) Accepts(gen uint64) bool {
	return gen == q.Generation
}

// Retire clears the text, disarms the debounce and invalidates every
// in-flight lookup. The returned effect cancels the timer when one was
// armed.
func (q Query) Retire() (Query, DebounceEffect) {
	eff := DebounceEffect{Cancel: q.armed}
	q.Text = ""
	q.armed = false
	q.Generation++
	return q, eff
}
