package domain

import "encoding/json"

// Service is a laundry service offering. Only the title is a first-class
// field; everything else (price, image, description, ...) is supplied by
// the admin who created it and carried verbatim in Extra.
type Service struct {
	ID    string
	Title string
	Extra map[string]any
}

func (s Service) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Extra)+2)
	for k, v := range s.Extra {
		out[k] = v
	}
	if s.ID != "" {
		out["id"] = s.ID
	}
	if s.Title != "" {
		out["title"] = s.Title
	}
	return json.Marshal(out)
}

func (s *Service) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	s.ID = popString(m, "id")
	s.Title = popString(m, "title")
	s.Extra = remaining(m)
	return nil
}
