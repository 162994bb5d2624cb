package message

import "sync"

// Recorder is an Endpoint that keeps every posted message.
type Recorder struct {
	mu   sync.Mutex
	msgs []Message
}

// Post implements Endpoint.
func (r *Recorder) Post(msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return nil
}

// Listen records same-window broadcasts; pass it to Bus.Subscribe.
func (r *Recorder) Listen(msg Message) {
	_ = r.Post(msg)
}

// Messages returns a copy of the recorded messages.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.msgs...)
}

// Of returns the recorded messages of one type.
func (r *Recorder) Of(t Type) []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Message
	for _, m := range r.msgs {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

// Len returns the number of recorded messages.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.msgs)
}

// Reset discards the recorded messages.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = nil
}
