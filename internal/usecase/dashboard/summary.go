// Package dashboard builds the home page summary.
package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Counter reports the size of one collection.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// Tile is the count of one collection. Err is set when that count failed;
// other tiles are still filled.
type Tile struct {
	Name  string
	Href  string
	Count int
	Err   error
}

// Source is one collection shown on the home page.
type Source struct {
	Name    string
	Href    string
	Counter Counter
}

// Summary counts every source concurrently. It never fails as a whole.
func Summary(ctx context.Context, sources []Source) []Tile {
	tiles := make([]Tile, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		tiles[i] = Tile{Name: src.Name, Href: src.Href}
		g.Go(func() error {
			n, err := src.Counter.Count(gctx)
			tiles[i].Count, tiles[i].Err = n, err
			return nil
		})
	}
	_ = g.Wait()
	return tiles
}
