package presenter

// registry maps task id to its presenter and remembers render order.
type registry struct {
	order []string
	byID  map[string]*Task
}

func newRegistry() *registry {
	return &registry{byID: map[string]*Task{}}
}

// insert registers p under id. A presenter already registered under id is destroyed.
func (r *registry) insert(id string, p *Task) {
	if old, ok := r.byID[id]; ok {
		old.Destroy()
		r.removeOrder(id)
	}
	r.byID[id] = p
	r.order = append(r.order, id)
}

func (r *registry) get(id string) (*Task, bool) {
	p, ok := r.byID[id]
	return p, ok
}

func (r *registry) remove(id string) {
	if _, ok := r.byID[id]; !ok {
		return
	}
	delete(r.byID, id)
	r.removeOrder(id)
}

func (r *registry) removeOrder(id string) {
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			return
		}
	}
}

func (r *registry) each(fn func(*Task)) {
	for _, id := range append([]string(nil), r.order...) {
		if p, ok := r.byID[id]; ok {
			fn(p)
		}
	}
}

func (r *registry) len() int { return len(r.order) }

func (r *registry) clear() {
	r.order = nil
	r.byID = map[string]*Task{}
}
