// Problem model: knowns + target, input validation, and the JSON wire
// codec shared by the CLI and any transport collaborator.

package solver

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/compass/geom"
)

// Known is a user-labelled input primitive. The id is reused verbatim in
// step reports.
type Known struct {
	ID        string
	Primitive geom.Primitive
}

// Problem is a self-contained solve request: ordered knowns and a single
// target primitive used only for matching.
type Problem struct {
	Knowns []Known
	Target geom.Primitive
}

// validated is the pre-chewed form of a Problem the engine runs on.
type validated struct {
	ids      []string         // user ids, input order
	prims    []geom.Primitive // raw primitives, input order
	primIDs  []geom.ID        // canonical identities, input order
	target   geom.Primitive
	targetID geom.ID
}

// validate checks the problem shape and computes canonical identities.
//
// Checks (in order):
//  1. At least one known (ErrNoKnowns).
//  2. Per known: non-empty id (ErrEmptyID), unique id (ErrDuplicateID),
//     non-nil primitive (ErrNilPrimitive), valid attributes (wrapped geom
//     sentinels: ErrNonFinite / ErrUnnormalizable / ErrDegenerate).
//  3. Target present (ErrNilTarget) and valid (wrapped geom sentinels).
//  4. Pairwise-distinct canonical identities among knowns
//     (ErrDegenerateKnowns).
func (p Problem) validate() (validated, error) {
	if len(p.Knowns) == 0 {
		return validated{}, ErrNoKnowns
	}

	v := validated{
		ids:     make([]string, 0, len(p.Knowns)),
		prims:   make([]geom.Primitive, 0, len(p.Knowns)),
		primIDs: make([]geom.ID, 0, len(p.Knowns)),
	}
	seen := make(map[string]struct{}, len(p.Knowns))

	var k Known
	for _, k = range p.Knowns {
		if k.ID == "" {
			return validated{}, ErrEmptyID
		}
		if _, dup := seen[k.ID]; dup {
			return validated{}, fmt.Errorf("%w: %q", ErrDuplicateID, k.ID)
		}
		seen[k.ID] = struct{}{}

		if k.Primitive == nil {
			return validated{}, fmt.Errorf("%w: known %q", ErrNilPrimitive, k.ID)
		}
		prim := k.Primitive
		// The kernels assume unit-normal lines; renormalize rather than
		// trust the caller's coefficients.
		if l, isLine := prim.(geom.Line); isLine {
			nl, nerr := geom.NewLine(l.A, l.B, l.C)
			if nerr != nil {
				return validated{}, fmt.Errorf("solver: known %q: %w", k.ID, nerr)
			}
			prim = nl
		}
		id, err := geom.IdentityOf(prim)
		if err != nil {
			return validated{}, fmt.Errorf("solver: known %q: %w", k.ID, err)
		}

		v.ids = append(v.ids, k.ID)
		v.prims = append(v.prims, prim)
		v.primIDs = append(v.primIDs, id)
	}

	if p.Target == nil {
		return validated{}, ErrNilTarget
	}
	target := p.Target
	if l, isLine := target.(geom.Line); isLine {
		nl, nerr := geom.NewLine(l.A, l.B, l.C)
		if nerr != nil {
			return validated{}, fmt.Errorf("solver: target: %w", nerr)
		}
		target = nl
	}
	targetID, err := geom.IdentityOf(target)
	if err != nil {
		return validated{}, fmt.Errorf("solver: target: %w", err)
	}
	v.target = target
	v.targetID = targetID

	// Identity collisions among knowns make the root state ill-formed.
	var i, j int
	for i = 0; i < len(v.primIDs); i++ {
		for j = i + 1; j < len(v.primIDs); j++ {
			if v.primIDs[i] == v.primIDs[j] {
				return validated{}, fmt.Errorf("%w: %q and %q", ErrDegenerateKnowns, v.ids[i], v.ids[j])
			}
		}
	}

	return v, nil
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// JSON wire codec
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// definitionWire carries the kind-specific attribute block.
type definitionWire struct {
	Coeffs []float64 `json:"coeffs,omitempty"`
	Center []float64 `json:"center,omitempty"`
	Radius float64   `json:"radius,omitempty"`
}

// primitiveWire is the transport form of a primitive:
//
//	{ "type": "point",  "coords": [x, y] }
//	{ "type": "line",   "definition": { "coeffs": [a, b, c] } }
//	{ "type": "circle", "definition": { "center": [cx, cy], "radius": r } }
type primitiveWire struct {
	Type       string          `json:"type"`
	Coords     []float64       `json:"coords,omitempty"`
	Definition *definitionWire `json:"definition,omitempty"`
}

type knownWire struct {
	ID        string        `json:"id"`
	Primitive primitiveWire `json:"primitive"`
}

type problemWire struct {
	Knowns []knownWire   `json:"knowns"`
	Target primitiveWire `json:"target"`
}

// decodePrimitive maps a wire primitive onto the geom sum. Attribute
// validity (finiteness, normalizability) is deliberately left to validate;
// this layer only checks shape.
func decodePrimitive(w primitiveWire) (geom.Primitive, error) {
	switch w.Type {
	case "point":
		if len(w.Coords) != 2 {
			return nil, fmt.Errorf("%w: point needs coords [x, y]", ErrBadEncoding)
		}

		return geom.Point{X: w.Coords[0], Y: w.Coords[1]}, nil

	case "line":
		if w.Definition == nil || len(w.Definition.Coeffs) != 3 {
			return nil, fmt.Errorf("%w: line needs definition.coeffs [a, b, c]", ErrBadEncoding)
		}
		c := w.Definition.Coeffs

		return geom.Line{A: c[0], B: c[1], C: c[2]}, nil

	case "circle":
		if w.Definition == nil || len(w.Definition.Center) != 2 {
			return nil, fmt.Errorf("%w: circle needs definition.center [cx, cy] and definition.radius", ErrBadEncoding)
		}

		return geom.Circle{
			CX: w.Definition.Center[0],
			CY: w.Definition.Center[1],
			R:  w.Definition.Radius,
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown primitive type %q", ErrBadEncoding, w.Type)
	}
}

// encodePrimitive maps a geom primitive onto its wire form.
func encodePrimitive(p geom.Primitive) primitiveWire {
	switch v := p.(type) {
	case geom.Point:
		return primitiveWire{Type: "point", Coords: []float64{v.X, v.Y}}
	case geom.Line:
		return primitiveWire{Type: "line", Definition: &definitionWire{Coeffs: []float64{v.A, v.B, v.C}}}
	case geom.Circle:
		return primitiveWire{Type: "circle", Definition: &definitionWire{Center: []float64{v.CX, v.CY}, Radius: v.R}}
	default:
		return primitiveWire{}
	}
}

// UnmarshalJSON decodes the transport shape into a Problem.
func (p *Problem) UnmarshalJSON(data []byte) error {
	var w problemWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}

	knowns := make([]Known, 0, len(w.Knowns))
	for _, kw := range w.Knowns {
		prim, err := decodePrimitive(kw.Primitive)
		if err != nil {
			return fmt.Errorf("known %q: %w", kw.ID, err)
		}
		knowns = append(knowns, Known{ID: kw.ID, Primitive: prim})
	}

	target, err := decodePrimitive(w.Target)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}

	p.Knowns = knowns
	p.Target = target

	return nil
}

// MarshalJSON encodes a Problem back into the transport shape.
func (p Problem) MarshalJSON() ([]byte, error) {
	w := problemWire{
		Knowns: make([]knownWire, 0, len(p.Knowns)),
		Target: encodePrimitive(p.Target),
	}
	for _, k := range p.Knowns {
		w.Knowns = append(w.Knowns, knownWire{ID: k.ID, Primitive: encodePrimitive(k.Primitive)})
	}

	return json.Marshal(w)
}
