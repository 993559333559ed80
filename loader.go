package scrollscene

import (
	"context"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultLoadConcurrency is how many assets a Pipeline fetches at once unless told otherwise.
const DefaultLoadConcurrency = 4

// Placement is the fixed transform applied to a loaded model's root.
type Placement struct {
	Rotation mgl64.Vec3
	Position mgl64.Vec3
}

// Apply sets the node's rotation and position to the placement's.
func (p Placement) Apply(node Node) {
	node.SetRotation(p.Rotation)
	node.SetPosition(p.Position)
}

// AssetRequest names a model to load, where to load it from, and where to put it once loaded.
type AssetRequest struct {
	Name      string // Unique key the loaded model is registered under
	Source    string // Path to the asset
	Placement Placement
}

// Fetcher loads the asset at source and returns the root of its node tree.
type Fetcher interface {
	Fetch(ctx context.Context, source string) (Node, error)
}

// Completion is what a Pipeline reports once every request has settled.
type Completion struct {
	Registry *Registry
	Err      error // Joined errors of every request that failed; nil if all succeeded
}

// Pipeline loads a fixed list of assets concurrently and attaches each one to the scene as it arrives. Fetches run on
// their own goroutines; everything touching the scene happens in Poll, on the caller's goroutine.
type Pipeline struct {
	// Concurrency is the maximum number of fetches running at once. Values <= 0 use DefaultLoadConcurrency.
	Concurrency int

	requests []AssetRequest
	fetcher  Fetcher
	scene    Scene
	newGroup GroupFactory
	registry *Registry

	futures  []*Future[Node]
	all      *Future[[]Node]
	attached []bool

	loaded, failed int
	started        bool
	completed      bool
}

// NewPipeline creates a Pipeline for the given requests. The request list must be non-empty and its names unique.
func NewPipeline(requests []AssetRequest, fetcher Fetcher, scene Scene, newGroup GroupFactory) (*Pipeline, error) {

	if len(requests) == 0 {
		return nil, ErrNoAssets
	}

	seen := map[string]bool{}
	for _, req := range requests {
		if seen[req.Name] {
			return nil, errors.Wrapf(ErrDuplicateAsset, "asset %q", req.Name)
		}
		seen[req.Name] = true
	}

	pipeline := &Pipeline{
		Concurrency: DefaultLoadConcurrency,
		requests:    append([]AssetRequest(nil), requests...),
		fetcher:     fetcher,
		scene:       scene,
		newGroup:    newGroup,
		registry:    NewRegistry(),
		futures:     make([]*Future[Node], len(requests)),
		attached:    make([]bool, len(requests)),
	}

	for i := range pipeline.futures {
		pipeline.futures[i] = newFuture[Node]()
	}
	pipeline.all = All(pipeline.futures...)

	return pipeline, nil

}

// Start begins fetching every request. Each asset is tried once. Calling Start again does nothing.
func (p *Pipeline) Start(ctx context.Context) {

	if p.started {
		return
	}
	p.started = true

	limit := p.Concurrency
	if limit <= 0 {
		limit = DefaultLoadConcurrency
	}

	Logger().Info("loading assets", "count", len(p.requests))

	// Go blocks once the limit is reached, so the fan-out itself runs off the caller's goroutine.
	go func() {
		var group errgroup.Group
		group.SetLimit(limit)
		for i, req := range p.requests {
			group.Go(func() error {
				node, err := p.fetcher.Fetch(ctx, req.Source)
				if err == nil && node == nil {
					err = errors.New("fetcher returned no node")
				}
				if err != nil {
					err = errors.Wrapf(err, "loading asset %q from %s", req.Name, req.Source)
				}
				p.futures[i].resolve(node, err)
				return err
			})
		}
		_ = group.Wait()
	}()

}

// Poll attaches every asset that finished loading since the last call. Once all requests have settled, Poll returns
// the Completion and true, exactly once; every other call returns false.
func (p *Pipeline) Poll() (Completion, bool) {

	// Checked first so that every future counted as settled below has been attached before completion is reported.
	allSettled := p.all.Ready()

	for i, future := range p.futures {

		if p.attached[i] || !future.Ready() {
			continue
		}
		p.attached[i] = true

		req := p.requests[i]
		node, err := future.Result()
		if err != nil {
			p.failed++
			Logger().Error("asset failed to load", "asset", req.Name, "source", req.Source, "error", err.Error())
			continue
		}

		p.attach(req, node)
		p.loaded++

	}

	if !allSettled || p.completed {
		return Completion{}, false
	}

	p.completed = true
	_, err := p.all.Result()

	Logger().Info("assets settled", "loaded", p.loaded, "failed", p.failed)

	return Completion{Registry: p.registry, Err: err}, true

}

func (p *Pipeline) attach(req AssetRequest, node Node) {

	Walk(node, func(n Node) {
		if mesh, ok := n.(Mesh); ok {
			mesh.SetCastShadow(true)
			mesh.SetReceiveShadow(true)
		}
	})

	req.Placement.Apply(node)

	group := p.newGroup(req.Name)
	group.Add(node)
	p.scene.Add(group)

	// Names are unique, so this only fails if the registry was tampered with.
	if err := p.registry.Register(req.Name, group); err != nil {
		Logger().Error("could not register model", "asset", req.Name, "error", err.Error())
		return
	}

	Logger().Info("asset loaded", "asset", req.Name, "source", req.Source)

}

// Progress returns how many assets have been attached and how many were requested.
func (p *Pipeline) Progress() (loaded, total int) {
	return p.loaded, len(p.requests)
}

// Failed returns how many assets failed to load so far.
func (p *Pipeline) Failed() int {
	return p.failed
}

// Done returns true once Poll has reported completion.
func (p *Pipeline) Done() bool {
	return p.completed
}

// Registry returns the pipeline's registry. Entries appear as Poll attaches assets.
func (p *Pipeline) Registry() *Registry {
	return p.registry
}
