package poly1d

import (
	"encoding/json"
	"fmt"
)

// ============================================================
// JSON Serialization
// ============================================================

type polyJSON struct {
	Type   string    `json:"type"`
	Coeffs []float64 `json:"coeffs"`
	Var    string    `json:"var,omitempty"`
}

func (p *Poly) MarshalJSON() ([]byte, error) {
	return json.Marshal(polyJSON{Type: "poly", Coeffs: p.coeffs, Var: p.variable})
}

// UnmarshalJSON decodes {"type":"poly","coeffs":[...],"var":"x"}. The
// coefficients are normalized as by New.
func (p *Poly) UnmarshalJSON(data []byte) error {
	var raw polyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Type != "" && raw.Type != "poly" {
		return fmt.Errorf("poly1d: unexpected type %q", raw.Type)
	}
	*p = *newVar(raw.Coeffs, raw.Var)
	return nil
}

func (p *Poly) toJSON() map[string]interface{} {
	coeffs := make([]interface{}, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = c
	}
	return map[string]interface{}{"type": "poly", "coeffs": coeffs, "var": p.variable}
}

func ToJSON(p *Poly) (string, error) {
	b, err := json.Marshal(p)
	return string(b), err
}

// FromJSON builds a polynomial from a decoded JSON object. A bare array of
// numbers is also accepted as the coefficient list.
func FromJSON(data interface{}) (*Poly, error) {
	switch v := data.(type) {
	case []interface{}:
		coeffs, err := toFloats(v, "coeffs")
		if err != nil {
			return nil, err
		}
		return New(coeffs), nil
	case map[string]interface{}:
		if typ, ok := v["type"]; ok && typ != "poly" {
			return nil, fmt.Errorf("poly: unexpected type %v", typ)
		}
		rawCoeffs, ok := v["coeffs"]
		if !ok {
			return nil, fmt.Errorf("poly: missing \"coeffs\"")
		}
		arr, ok := rawCoeffs.([]interface{})
		if !ok {
			return nil, fmt.Errorf("poly: \"coeffs\" must be an array")
		}
		coeffs, err := toFloats(arr, "coeffs")
		if err != nil {
			return nil, err
		}
		variable := ""
		if rv, ok := v["var"]; ok {
			if variable, ok = rv.(string); !ok {
				return nil, fmt.Errorf("poly: \"var\" must be a string")
			}
		}
		return newVar(coeffs, variable), nil
	case nil:
		return nil, fmt.Errorf("polynomial must be an object or array")
	}
	return nil, fmt.Errorf("polynomial must be an object or array, got %T", data)
}

func toFloats(raw []interface{}, field string) ([]float64, error) {
	out := make([]float64, len(raw))
	for i, r := range raw {
		f, ok := r.(float64)
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be a number", field, i)
		}
		out[i] = f
	}
	return out, nil
}
