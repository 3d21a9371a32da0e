package poly1d

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// ============================================================
// MCP Tool Interface
// ============================================================

// maxToolOrder caps the repeat count m accepted by the deriv and integ tools.
const maxToolOrder = 1024

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// ToolOptions holds defaults applied by HandleToolCallWith when a request
// leaves them out.
type ToolOptions struct {
	// Epsilon is the real-root tolerance for real_roots.
	Epsilon float64
	// Variable is the display symbol for polynomials given without "var".
	Variable string
}

func HandleToolCall(req ToolRequest) ToolResponse {
	return HandleToolCallWith(req, ToolOptions{Epsilon: Epsilon, Variable: DefaultVariable})
}

func HandleToolCallWith(req ToolRequest, opts ToolOptions) ToolResponse {
	getPoly := func(key string) (*Poly, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		p, err := FromJSON(v)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", key, err)
		}
		if m, ok := v.(map[string]interface{}); !ok || m["var"] == nil {
			p = p.WithVariable(opts.Variable)
		}
		return p, nil
	}
	getNumber := func(key string) (float64, error) {
		v, ok := req.Params[key]
		if !ok {
			return 0, fmt.Errorf("missing param: %s", key)
		}
		f, ok := v.(float64)
		if !ok {
			return 0, fmt.Errorf("param %s must be a number", key)
		}
		return f, nil
	}
	getOptNumber := func(key string, def float64) (float64, error) {
		if _, ok := req.Params[key]; !ok {
			return def, nil
		}
		return getNumber(key)
	}
	getInt := func(key string) (int, error) {
		f, err := getNumber(key)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
			return 0, fmt.Errorf("param %s out of range: %g", key, f)
		}
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("param %s must be an integer", key)
		}
		return int(f), nil
	}
	getOrder := func() (int, error) {
		if _, ok := req.Params["m"]; !ok {
			return 1, nil
		}
		m, err := getInt("m")
		if err != nil {
			return 0, err
		}
		if m > maxToolOrder {
			return 0, fmt.Errorf("param m must be at most %d, got %d", maxToolOrder, m)
		}
		return m, nil
	}
	getNumbers := func(key string) ([]float64, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("param %s must be array", key)
		}
		return toFloats(raw, key)
	}
	getPair := func() (*Poly, *Poly, error) {
		a, err := getPoly("a")
		if err != nil {
			return nil, nil, err
		}
		b, err := getPoly("b")
		if err != nil {
			return nil, nil, err
		}
		return a, b, nil
	}
	respond := func(p *Poly) ToolResponse {
		return ToolResponse{Result: p.toJSON(), LaTeX: p.LaTeX(), String: p.String()}
	}
	fail := func(err error) ToolResponse { return ToolResponse{Error: err.Error()} }
	respondNumbers := func(xs []float64) ToolResponse {
		strs := make([]string, len(xs))
		for i, x := range xs {
			strs[i] = fmt.Sprintf("%g", x)
		}
		if xs == nil {
			xs = []float64{}
		}
		return ToolResponse{Result: xs, String: strings.Join(strs, ", ")}
	}

	switch req.Tool {
	case "format":
		p, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		return respond(p)

	case "eval":
		p, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		x, err := getNumber("x")
		if err != nil {
			return fail(err)
		}
		y := p.Eval(x)
		return ToolResponse{Result: y, String: fmt.Sprintf("%g", y)}

	case "degree":
		p, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: p.Degree(), String: fmt.Sprintf("%d", p.Degree())}

	case "coeff":
		p, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		n, err := getInt("n")
		if err != nil {
			return fail(err)
		}
		c := p.Coeff(n)
		return ToolResponse{Result: c, String: fmt.Sprintf("%g", c)}

	case "neg":
		p, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		return respond(p.Neg())

	case "scale":
		p, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		c, err := getNumber("c")
		if err != nil {
			return fail(err)
		}
		return respond(p.Scale(c))

	case "add", "sub", "mul":
		a, b, err := getPair()
		if err != nil {
			return fail(err)
		}
		switch req.Tool {
		case "add":
			return respond(a.Add(b))
		case "sub":
			return respond(a.Sub(b))
		}
		return respond(a.Mul(b))

	case "divmod":
		a, b, err := getPair()
		if err != nil {
			return fail(err)
		}
		q, r, err := a.DivMod(b)
		if err != nil {
			return fail(err)
		}
		return ToolResponse{
			Result: map[string]interface{}{"quotient": q.toJSON(), "remainder": r.toJSON()},
			LaTeX:  q.LaTeX() + ",\\ " + r.LaTeX(),
			String: "quotient: " + q.String() + ", remainder: " + r.String(),
		}

	case "div_scalar":
		p, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		v, err := getNumber("c")
		if err != nil {
			return fail(err)
		}
		out, err := p.DivScalar(v)
		if err != nil {
			return fail(err)
		}
		return respond(out)

	case "deriv":
		p, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		m, err := getOrder()
		if err != nil {
			return fail(err)
		}
		out, err := p.Deriv(m)
		if err != nil {
			return fail(err)
		}
		return respond(out)

	case "integ":
		p, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		m, err := getOrder()
		if err != nil {
			return fail(err)
		}
		var out *Poly
		if _, ok := req.Params["ks"]; ok {
			ks, err := getNumbers("ks")
			if err != nil {
				return fail(err)
			}
			out, err = p.IntegConsts(m, ks)
			if err != nil {
				return fail(err)
			}
			return respond(out)
		}
		k, err := getOptNumber("k", 0)
		if err != nil {
			return fail(err)
		}
		out, err = p.Integ(m, k)
		if err != nil {
			return fail(err)
		}
		return respond(out)

	case "from_roots":
		roots, err := getNumbers("roots")
		if err != nil {
			return fail(err)
		}
		return respond(FromRoots(roots...).WithVariable(opts.Variable))

	case "roots":
		p, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		roots, err := p.Roots()
		if err != nil {
			return fail(err)
		}
		pairs := make([][2]float64, len(roots))
		strs := make([]string, len(roots))
		for i, r := range roots {
			pairs[i] = [2]float64{real(r), imag(r)}
			strs[i] = fmt.Sprintf("%g", r)
		}
		return ToolResponse{Result: pairs, String: strings.Join(strs, ", ")}

	case "real_roots":
		p, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		eps, err := getOptNumber("epsilon", opts.Epsilon)
		if err != nil {
			return fail(err)
		}
		roots, err := p.RealRoots(eps)
		if err != nil {
			return fail(err)
		}
		return respondNumbers(roots)

	case "nearest_point":
		p, err := getPoly("poly")
		if err != nil {
			return fail(err)
		}
		x, err := getNumber("x")
		if err != nil {
			return fail(err)
		}
		y, err := getNumber("y")
		if err != nil {
			return fail(err)
		}
		n, err := p.NearestPoint(Point{X: x, Y: y})
		if err != nil {
			return fail(err)
		}
		return ToolResponse{
			Result: map[string]interface{}{"x": n.Point.X, "y": n.Point.Y, "t": n.T, "distance": n.Distance},
			String: fmt.Sprintf("(%g, %g) at distance %g", n.Point.X, n.Point.Y, n.Distance),
		}

	case "mcp_spec":
		return ToolResponse{String: MCPToolSpec()}
	}
	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// ============================================================
// MCP spec
// ============================================================

func MCPToolSpec() string {
	poly := map[string]string{"poly": "object"}
	tools := []map[string]interface{}{
		ts("format", "Render a polynomial as text and LaTeX", []string{"poly"}, poly),
		ts("eval", "Evaluate poly at x", []string{"poly", "x"}, map[string]string{"poly": "object", "x": "number"}),
		ts("degree", "Polynomial degree", []string{"poly"}, poly),
		ts("coeff", "Coefficient of x^n (0 outside the stored range)", []string{"poly", "n"}, map[string]string{"poly": "object", "n": "integer"}),
		ts("neg", "Negate a polynomial", []string{"poly"}, poly),
		ts("scale", "Multiply a polynomial by a scalar c", []string{"poly", "c"}, map[string]string{"poly": "object", "c": "number"}),
		ts("add", "Sum a + b", []string{"a", "b"}, map[string]string{"a": "object", "b": "object"}),
		ts("sub", "Difference a - b", []string{"a", "b"}, map[string]string{"a": "object", "b": "object"}),
		ts("mul", "Product a * b", []string{"a", "b"}, map[string]string{"a": "object", "b": "object"}),
		ts("divmod", "Long division a / b with remainder", []string{"a", "b"}, map[string]string{"a": "object", "b": "object"}),
		ts("div_scalar", "Divide a polynomial by a scalar c", []string{"poly", "c"}, map[string]string{"poly": "object", "c": "number"}),
		ts("deriv", fmt.Sprintf("m-th derivative (default m=1, at most %d)", maxToolOrder), []string{"poly"}, map[string]string{"poly": "object", "m": "integer"}),
		ts("integ", fmt.Sprintf("m-th integral (default m=1, at most %d) with constant k or constants ks", maxToolOrder), []string{"poly"}, map[string]string{"poly": "object", "m": "integer", "k": "number", "ks": "array"}),
		ts("from_roots", "Monic polynomial with the given real roots", []string{"roots"}, map[string]string{"roots": "array"}),
		ts("roots", "All complex roots as [re, im] pairs", []string{"poly"}, poly),
		ts("real_roots", "Real roots. Optional: epsilon", []string{"poly"}, map[string]string{"poly": "object", "epsilon": "number"}),
		ts("nearest_point", "Closest point on y = poly(x) to (x, y)", []string{"poly", "x", "y"}, map[string]string{"poly": "object", "x": "number", "y": "number"}),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
