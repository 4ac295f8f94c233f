package domain

import "encoding/json"

// Review is a customer review of a service. Service holds the reviewed
// service id as a plain string; no referential integrity is enforced
// against the services table.
type Review struct {
	ID      string
	Email   string
	Service string
	Message string
	Extra   map[string]any
}

func (r Review) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Extra)+4)
	for k, v := range r.Extra {
		out[k] = v
	}
	if r.ID != "" {
		out["id"] = r.ID
	}
	if r.Email != "" {
		out["email"] = r.Email
	}
	if r.Service != "" {
		out["service"] = r.Service
	}
	if r.Message != "" {
		out["message"] = r.Message
	}
	return json.Marshal(out)
}

func (r *Review) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	r.ID = popString(m, "id")
	r.Email = popString(m, "email")
	r.Service = popString(m, "service")
	r.Message = popString(m, "message")
	r.Extra = remaining(m)
	return nil
}

// popString removes key from m and returns its value if it is a string.
func popString(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	delete(m, key)
	s, _ := v.(string)
	return s
}

// remaining returns m itself, or nil when nothing is left in it.
func remaining(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	return m
}
