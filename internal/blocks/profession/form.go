package profession

import "strings"

// FormData is the subset of the business profile form the injector reads.
type FormData struct {
	Phone        string       `json:"phone" yaml:"phone"`
	Services     []string     `json:"services" yaml:"services"`
	Availability Availability `json:"availability" yaml:"availability"`
	EcoFriendly  bool         `json:"ecoFriendly" yaml:"ecoFriendly"`
	Labels       []string     `json:"labels" yaml:"labels"`
}

// Availability describes opening hours flags.
type Availability struct {
	Is24x7 bool `json:"is24x7" yaml:"is24x7"`
}

// FormDataFromMap reads FormData from loosely typed form input.
// Missing or mistyped fields are left at their zero value.
func FormDataFromMap(raw map[string]any) FormData {
	var fd FormData
	if raw == nil {
		return fd
	}
	if phone, ok := raw["phone"].(string); ok {
		fd.Phone = phone
	}
	fd.Services = stringSlice(raw["services"])
	fd.Labels = stringSlice(raw["labels"])
	if eco, ok := raw["ecoFriendly"].(bool); ok {
		fd.EcoFriendly = eco
	}
	if avail, ok := raw["availability"].(map[string]any); ok {
		if v, ok := avail["is24x7"].(bool); ok {
			fd.Availability.Is24x7 = v
		}
	}
	return fd
}

func stringSlice(v any) []string {
	switch items := v.(type) {
	case []string:
		return append([]string(nil), items...)
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func (fd FormData) offersService(keyword string) bool {
	keyword = strings.ToLower(keyword)
	for _, s := range fd.Services {
		if strings.Contains(strings.ToLower(s), keyword) {
			return true
		}
	}
	return false
}

func (fd FormData) hasLabel(label string) bool {
	for _, l := range fd.Labels {
		if l == label {
			return true
		}
	}
	return false
}

func (fd FormData) withPhone(props map[string]any) map[string]any {
	if fd.Phone != "" {
		props["phoneNumber"] = fd.Phone
	}
	return props
}
