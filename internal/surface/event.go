package surface

import "strconv"

// Category is a physical event category.
type Category int

const (
	Click Category = iota
	HoverStart
	HoverEnd
	Submit
)

// String returns the category name used in logs.
func (c Category) String() string {
	switch c {
	case Click:
		return "click"
	case HoverStart:
		return "hoverStart"
	case HoverEnd:
		return "hoverEnd"
	case Submit:
		return "submit"
	default:
		return "unknown"
	}
}

// Bounds is the on-screen rectangle of the element an event originated from.
type Bounds struct {
	X, Y, W, H int
}

// Node is one element on an origin chain.
type Node struct {
	Zone   string
	Attrs  map[string]string
	Bounds Bounds
}

// Origin is the chain of zones under the pointer, innermost first.
// An empty Origin means the event landed outside every registered zone.
type Origin []Node

// Matches reports whether the innermost zone is zone.
func (o Origin) Matches(zone string) bool {
	return len(o) > 0 && o[0].Zone == zone
}

// Within reports whether zone appears anywhere on the chain.
func (o Origin) Within(zone string) bool {
	_, ok := o.Closest(zone)
	return ok
}

// Closest returns the innermost node with the given zone.
func (o Origin) Closest(zone string) (Node, bool) {
	for _, n := range o {
		if n.Zone == zone {
			return n, true
		}
	}
	return Node{}, false
}

// Attr returns the nearest value of the named attribute, walking outward.
func (o Origin) Attr(name string) (string, bool) {
	for _, n := range o {
		if v, ok := n.Attrs[name]; ok {
			return v, true
		}
	}
	return "", false
}

// IntAttr is Attr parsed as an integer.
func (o Origin) IntAttr(name string) (int, bool) {
	v, ok := o.Attr(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Zones returns the zone names on the chain, innermost first.
func (o Origin) Zones() []string {
	out := make([]string, len(o))
	for i, n := range o {
		out[i] = n.Zone
	}
	return out
}

// Event is one input event delivered to the core.
type Event struct {
	Category Category
	Origin   Origin
	// Scroll is the board's vertical scroll offset when the event fired.
	Scroll int
}

// Handler receives events of one category.
type Handler func(Event)

// EventSource lets the core subscribe one handler per category.
type EventSource interface {
	OnEvent(cat Category, h Handler)
}

// Dispatcher fans events out to the handlers subscribed to their category.
// Handlers run synchronously, in subscription order.
type Dispatcher struct {
	handlers map[Category][]Handler
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Category][]Handler)}
}

// OnEvent subscribes h to events of category cat.
func (d *Dispatcher) OnEvent(cat Category, h Handler) {
	d.handlers[cat] = append(d.handlers[cat], h)
}

// Emit delivers ev to every handler of its category.
// Returns false if nothing was subscribed.
func (d *Dispatcher) Emit(ev Event) bool {
	hs := d.handlers[ev.Category]
	for _, h := range hs {
		h(ev)
	}
	return len(hs) > 0
}
