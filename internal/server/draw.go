package server

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/seedable/pseudorandom/random"
	"github.com/seedable/pseudorandom/seed"
)

// DrawRequest asks for a sequence of operations evaluated against one
// generator seeded from Seed. The (seed, operation-order) → output mapping
// is the same contract the library exposes; results are reproducible across
// connections and server restarts.
type DrawRequest struct {
	// Seed is any JSON value; absent means the null seed.
	Seed json.RawMessage `json:"seed,omitempty"`

	// Encoder optionally pins the derivation path: "reference" or
	// "accelerated".
	Encoder string `json:"encoder,omitempty"`

	Ops []DrawOp `json:"ops"`
}

// DrawOp is a single operation: hex, alphabetic, alphanumeric, int or
// float.
type DrawOp struct {
	Op     string `json:"op"`
	Length int    `json:"length,omitempty"`
	Max    int64  `json:"max,omitempty"`
}

// DrawResponse carries the derived seed and one result per operation.
type DrawResponse struct {
	Seed    uint32 `json:"seed,omitempty"`
	Results []any  `json:"results,omitempty"`
	Error   string `json:"error,omitempty"`
}

func evaluate(req DrawRequest, maxOps int) DrawResponse {
	if len(req.Ops) > maxOps {
		return DrawResponse{Error: fmt.Sprintf("too many operations: %d > %d", len(req.Ops), maxOps)}
	}

	var opts []random.Option
	switch req.Encoder {
	case "", "accelerated":
	case "reference":
		opts = append(opts, random.WithEncoder(seed.Reference))
	default:
		return DrawResponse{Error: fmt.Sprintf("unknown encoder %q", req.Encoder)}
	}

	seedValue, err := decodeSeed(req.Seed)
	if err != nil {
		return DrawResponse{Error: err.Error()}
	}
	g := random.New(seedValue, opts...)

	results := make([]any, 0, len(req.Ops))
	for i, op := range req.Ops {
		v, err := runOp(g, op)
		if err != nil {
			return DrawResponse{Seed: g.Seed(), Error: fmt.Sprintf("op %d (%s): %v", i, op.Op, err)}
		}
		results = append(results, v)
	}
	return DrawResponse{Seed: g.Seed(), Results: results}
}

// decodeSeed turns the raw JSON seed into a value tree. Numbers decode via
// json.Number so integer seeds stay integers; 42 and 42.0 derive different
// seeds.
func decodeSeed(raw json.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return v, nil
}

func runOp(g *random.Generator, op DrawOp) (any, error) {
	switch op.Op {
	case "hex":
		return g.Hex(op.Length)
	case "alphabetic":
		return g.Alphabetic(op.Length)
	case "alphanumeric":
		return g.Alphanumeric(op.Length)
	case "int":
		return g.IntN(op.Max)
	case "float":
		return g.Float64(), nil
	default:
		return nil, fmt.Errorf("unknown op %q", op.Op)
	}
}
