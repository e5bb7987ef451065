package skills

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is the canonical skills found for one category.
type Entry struct {
	Category string
	Skills   []string
}

// Skills maps categories to the canonical skills found, in taxonomy order.
// Categories with no skills are never stored. It encodes as a JSON object
// whose keys keep that order.
type Skills struct {
	entries []Entry
	index   map[string]int
}

// NewSkills builds a Skills value from entries, dropping empty ones and
// merging repeated categories.
func NewSkills(entries ...Entry) Skills {
	var s Skills
	for _, e := range entries {
		s.add(e.Category, e.Skills)
	}
	return s
}

func (s *Skills) add(category string, skills []string) {
	if len(skills) == 0 {
		return
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[category]; ok {
		s.entries[i].Skills = append(s.entries[i].Skills, skills...)
		return
	}
	s.index[category] = len(s.entries)
	s.entries = append(s.entries, Entry{Category: category, Skills: append([]string(nil), skills...)})
}

// Entries returns the categories and their skills in order.
func (s Skills) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = Entry{Category: e.Category, Skills: append([]string(nil), e.Skills...)}
	}
	return out
}

// Categories returns the category names present, in order.
func (s Skills) Categories() []string {
	out := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Category)
	}
	return out
}

// Get returns the skills of a category, or nil when absent.
func (s Skills) Get(category string) []string {
	i, ok := s.index[category]
	if !ok {
		return nil
	}
	return append([]string(nil), s.entries[i].Skills...)
}

// Len is the number of categories present.
func (s Skills) Len() int { return len(s.entries) }

// IsEmpty reports whether no category is present.
func (s Skills) IsEmpty() bool { return len(s.entries) == 0 }

// Total is the number of skills across all categories.
func (s Skills) Total() int {
	n := 0
	for _, e := range s.entries {
		n += len(e.Skills)
	}
	return n
}

// All returns every skill in category order, duplicates across categories kept.
func (s Skills) All() []string {
	out := make([]string, 0, s.Total())
	for _, e := range s.entries {
		out = append(out, e.Skills...)
	}
	return out
}

// MarshalJSON encodes the categories as an object in order.
func (s Skills) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Category)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Skills)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object of category to skill list, keeping key order.
func (s *Skills) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = Skills{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("skills: expected object, got %v", tok)
	}
	var out Skills
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("skills: unexpected key %v", keyTok)
		}
		var list []string
		if err := dec.Decode(&list); err != nil {
			return fmt.Errorf("skills: category %q: %w", key, err)
		}
		out.add(key, list)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}
