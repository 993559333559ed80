package scrollscene

import (
	"context"

	"github.com/pkg/errors"
)

// Collaborators are the engine pieces a Presenter drives.
type Collaborators struct {
	Scene     Scene
	Camera    Camera
	Renderer  Renderer
	Container Container
	Fetcher   Fetcher
	NewGroup  GroupFactory
	Motion    MotionGate
}

// Presenter runs the presentation: it sizes the viewport, renders frames, loads assets and binds the scroll
// animation once they're in. All of its methods are meant to be called from the same goroutine.
type Presenter struct {
	Config   Config
	Sizer    *Sizer
	Frames   *FrameDriver
	Pipeline *Pipeline
	Binder   *Binder
	Page     *Page

	queue   []Event
	loaded  bool
	loadErr error
}

// NewPresenter creates a Presenter from the configuration and collaborators.
func NewPresenter(cfg Config, c Collaborators) (*Presenter, error) {

	pipeline, err := NewPipeline(cfg.Requests(), c.Fetcher, c.Scene, c.NewGroup)
	if err != nil {
		return nil, errors.Wrap(err, "creating asset pipeline")
	}

	sizer := NewSizer(c.Container, c.Camera, c.Renderer, cfg.Camera.Projection())
	sizer.MaxPixelRatio = cfg.Renderer.MaxPixelRatio

	page := cfg.NewPage()

	return &Presenter{
		Config:   cfg,
		Sizer:    sizer,
		Frames:   NewFrameDriver(c.Scene, c.Camera, c.Renderer, cfg.Camera.Target),
		Pipeline: pipeline,
		Binder:   NewBinder(page, c.Motion, cfg.Animation),
		Page:     page,
	}, nil

}

// Start sizes the viewport and begins loading assets.
func (p *Presenter) Start(ctx context.Context) {
	p.resize()
	p.Pipeline.Start(ctx)
}

// Post queues an event to be handled on the next Dispatch.
func (p *Presenter) Post(event Event) {
	p.queue = append(p.queue, event)
}

// Scroll scrolls the page by delta pixels and queues the resulting scroll event.
func (p *Presenter) Scroll(delta float64) {
	before := p.Page.Offset()
	if after := p.Page.ScrollBy(delta); after != before {
		p.Post(ScrollPositionChanged{Offset: after})
	}
}

// ScrollTo scrolls the page to offset and queues the resulting scroll event.
func (p *Presenter) ScrollTo(offset float64) {
	before := p.Page.Offset()
	if after := p.Page.ScrollTo(offset); after != before {
		p.Post(ScrollPositionChanged{Offset: after})
	}
}

// Dispatch handles every queued event in order, including any queued while dispatching.
func (p *Presenter) Dispatch() {
	for len(p.queue) > 0 {
		event := p.queue[0]
		p.queue = p.queue[1:]
		p.handle(event)
	}
}

func (p *Presenter) handle(event Event) {

	switch ev := event.(type) {

	case ResizeEvent:
		p.resize()
		p.Binder.Handle(ev)

	case ScrollPositionChanged:
		p.Binder.Handle(ev)

	case AssetsLoaded:
		p.loaded = true
		if ev.Err != nil {
			p.loadErr = ev.Err
			Logger().Error("some assets failed to load", "error", ev.Err.Error())
		}
		// Models that did load are still animated; a keyframe on a missing one fails setup instead.
		if err := p.Binder.Setup(ev.Registry); err != nil {
			Logger().Error("could not bind scroll animation", "error", err.Error())
		}

	}

}

func (p *Presenter) resize() {
	if p.Sizer.Resize() {
		p.Page.SetViewportHeight(float64(p.Sizer.Viewport().Height))
	}
}

// Update runs one logic step: it collects finished asset loads, handles queued events and advances the animation
// by dt seconds.
func (p *Presenter) Update(dt float64) {
	if completion, ok := p.Pipeline.Poll(); ok {
		p.Post(AssetsLoaded{Registry: completion.Registry, Err: completion.Err})
	}
	p.Dispatch()
	p.Binder.Update(dt)
}

// Draw renders one frame.
func (p *Presenter) Draw() {
	p.Frames.Step()
}

// Loaded returns true once every asset has settled, and the joined load error, if any.
func (p *Presenter) Loaded() (bool, error) {
	return p.loaded, p.loadErr
}
