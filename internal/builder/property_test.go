package builder

import (
	"context"
	"fmt"
	"testing"

	"github.com/specialistvlad/schematic/internal/category"
	schemaerr "github.com/specialistvlad/schematic/internal/errors"
	"github.com/specialistvlad/schematic/internal/registry"
	"pgregory.net/rapid"
)

type token struct{ key string }

func tokenStrategy(deps []any, params map[string]any) (any, error) {
	return &token{key: params["key"].(string)}, nil
}

func declareTokens(t *rapid.T, r *registry.Registry, names []string, deps func(i int) []string) {
	r.MustRegisterStrategy("token", category.Module, registry.TypeOf[*token](), tokenStrategy)
	for i, name := range names {
		r.MustRegisterComponent(name, category.Module, map[string]any{"key": name}, deps(i)...)
		if err := r.Link(name, category.Module, "token", nil); err != nil {
			t.Fatalf("link %s: %v", name, err)
		}
	}
}

// Every component of a random acyclic graph builds to the same instance on
// repeated calls within one epoch.
func TestProperty_MemoizedIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 10).Draw(t, "n")
		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("c%d", i)
		}
		// Edges only point to lower indexes, so the graph is acyclic.
		edges := make([][]string, n)
		for i := 1; i < n; i++ {
			targets := rapid.SliceOfDistinct(rapid.IntRange(0, i-1), rapid.ID[int]).Draw(t, fmt.Sprintf("deps%d", i))
			for _, j := range targets {
				edges[i] = append(edges[i], "module."+names[j])
			}
		}

		r := registry.New(registry.WithCategories(category.Module))
		declareTokens(t, r, names, func(i int) []string { return edges[i] })
		b := New(r)
		ctx := context.Background()

		order := rapid.Permutation(names).Draw(t, "order")
		first := make(map[string]any, n)
		for _, name := range order {
			v, err := b.Build(ctx, name, category.Module)
			if err != nil {
				t.Fatalf("build %s: %v", name, err)
			}
			first[name] = v
		}
		for _, name := range names {
			v, err := b.Build(ctx, name, category.Module)
			if err != nil {
				t.Fatalf("rebuild %s: %v", name, err)
			}
			if v != first[name] {
				t.Fatalf("%s: got a new instance on the second build", name)
			}
		}
		if b.Len() != n {
			t.Fatalf("expected %d cached values, got %d", n, b.Len())
		}
	})
}

// A ring of k components reports exactly the ring, starting and ending at
// the requested root.
func TestProperty_CycleChain(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.IntRange(1, 8).Draw(t, "k")
		root := rapid.IntRange(0, k-1).Draw(t, "root")
		names := make([]string, k)
		for i := range names {
			names[i] = fmt.Sprintf("r%d", i)
		}

		r := registry.New(registry.WithCategories(category.Module))
		declareTokens(t, r, names, func(i int) []string {
			return []string{"module." + names[(i+1)%k]}
		})

		_, err := New(r).Build(context.Background(), names[root], category.Module)
		chain, ok := schemaerr.CycleChain(err)
		if !ok {
			t.Fatalf("expected a cycle error, got %v", err)
		}
		if len(chain) != k+1 {
			t.Fatalf("chain %v: expected %d entries", chain, k+1)
		}
		for i := 0; i <= k; i++ {
			want := "module." + names[(root+i)%k]
			if chain[i] != want {
				t.Fatalf("chain %v: position %d is %s, want %s", chain, i, chain[i], want)
			}
		}
	})
}
