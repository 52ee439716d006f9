package notes

// DefaultColor is the color assigned to newly created notes.
const DefaultColor = "white"

// Note represents a single note card.
type Note struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
	Color string `json:"color"`
}

// IsEmpty reports whether the note has neither a title nor text.
func (n Note) IsEmpty() bool {
	return n.Title == "" && n.Text == ""
}

// Store holds the ordered note collection in memory.
// Insertion order is display order. Every mutation replaces the backing
// slice instead of editing it in place, so snapshots returned by All stay
// valid across later mutations.
type Store struct {
	notes []Note
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// nextID returns max existing id + 1, or 1 for an empty store.
func (s *Store) nextID() int {
	maxID := 0
	for _, n := range s.notes {
		if n.ID > maxID {
			maxID = n.ID
		}
	}
	return maxID + 1
}

// Create appends a new white note and returns it.
// Empty title and text are accepted here; callers filter them.
func (s *Store) Create(title, text string) Note {
	note := Note{
		ID:    s.nextID(),
		Title: title,
		Text:  text,
		Color: DefaultColor,
	}

	next := make([]Note, 0, len(s.notes)+1)
	next = append(next, s.notes...)
	s.notes = append(next, note)
	return note
}

// EditText replaces the title and text of the note with the given id.
// Unknown ids are ignored.
func (s *Store) EditText(id int, title, text string) {
	s.notes = mapNotes(s.notes, id, func(n Note) Note {
		n.Title = title
		n.Text = text
		return n
	})
}

// EditColor replaces the color of the note with the given id.
// The color is stored verbatim; see IsPaletteColor for boundary checks.
func (s *Store) EditColor(id int, color string) {
	s.notes = mapNotes(s.notes, id, func(n Note) Note {
		n.Color = color
		return n
	})
}

// Delete removes the note with the given id. Unknown ids are ignored.
func (s *Store) Delete(id int) {
	next := make([]Note, 0, len(s.notes))
	for _, n := range s.notes {
		if n.ID != id {
			next = append(next, n)
		}
	}
	s.notes = next
}

// All returns a snapshot of the collection in display order.
func (s *Store) All() []Note {
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Get returns the note with the given id.
func (s *Store) Get(id int) (Note, bool) {
	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// Len returns the number of notes.
func (s *Store) Len() int { return len(s.notes) }

// mapNotes rebuilds notes, applying fn to the entry matching id.
func mapNotes(notes []Note, id int, fn func(Note) Note) []Note {
	next := make([]Note, len(notes))
	for i, n := range notes {
		if n.ID == id {
			n = fn(n)
		}
		next[i] = n
	}
	return next
}
