package timeline

import (
	"sort"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// track is one scheduled leaf. Times are milliseconds on the root's clock.
type track struct {
	spec    Spec
	start   float32
	length  float32
	tween   *gween.Tween
	started bool
	done    bool
}

type cue struct {
	end   float32
	fn    func()
	fired bool
}

// Player evaluates one root timeline at a time. It never reads a clock:
// whoever owns the frame loop calls Advance with the elapsed time.
type Player struct {
	root    *Timeline
	clock   *gween.Tween
	total   float32
	elapsed float32
	tracks  []*track
	cues    []*cue
}

func NewPlayer() *Player {
	return &Player{}
}

// Play installs root, replacing anything still playing. Exclusivity is the
// caller's concern.
func (p *Player) Play(root *Timeline) {
	p.root = root
	p.total = millis(root.Duration())
	p.elapsed = 0
	p.clock = gween.New(0, p.total, p.total, root.Easing().Tween())
	p.tracks = p.tracks[:0]
	p.cues = p.cues[:0]
	p.schedule(root, 0)
	sort.SliceStable(p.cues, func(i, j int) bool {
		return p.cues[i].end < p.cues[j].end
	})
}

// schedule lays out n starting at start and returns its end time. Cues are
// appended in post-order so children fire before their parents on ties.
func (p *Player) schedule(n *Timeline, start float32) float32 {
	end := start
	switch n.kind {
	case KindLeaf:
		length := millis(n.spec.Duration)
		p.tracks = append(p.tracks, &track{
			spec:   n.spec,
			start:  start,
			length: length,
			tween:  gween.New(float32(n.spec.From), float32(n.spec.To), length, ease.Linear),
		})
		end = start + length
	case KindSequential:
		for _, c := range n.children {
			end = p.schedule(c, end)
		}
	case KindParallel:
		for _, c := range n.children {
			if e := p.schedule(c, start); e > end {
				end = e
			}
		}
	}
	if n.onComplete != nil {
		p.cues = append(p.cues, &cue{end: end, fn: n.onComplete})
	}
	return end
}

// Live reports whether a root is installed and unfinished.
func (p *Player) Live() bool {
	return p.root != nil
}

// Root returns the playing timeline, nil when idle.
func (p *Player) Root() *Timeline {
	return p.root
}

// Progress is the un-eased fraction of the root's duration already played.
func (p *Player) Progress() float64 {
	if p.root == nil {
		return 0
	}
	if p.total <= 0 {
		return 1
	}
	return clamp01(float64(p.elapsed / p.total))
}

// Advance moves the root forward by dt and reports whether it finished on
// this call. Completion callbacks run after the player has gone idle, so a
// callback may safely Play a new timeline.
func (p *Player) Advance(dt time.Duration) bool {
	if p.root == nil {
		return false
	}
	step := millis(dt)
	p.elapsed += step
	now, finished := p.clock.Update(step)
	if p.total <= 0 {
		finished = true
	}
	if finished {
		now = p.total
	}

	for _, tr := range p.tracks {
		if tr.done || now < tr.start {
			continue
		}
		if !tr.started {
			tr.started = true
			if tr.spec.Property.IsRotation() {
				tr.spec.Target.SetPivot(tr.spec.Pivot)
			}
		}
		local := now - tr.start
		if finished || tr.length <= 0 || local >= tr.length {
			tr.spec.Target.Set(tr.spec.Property, tr.spec.To)
			tr.done = true
			continue
		}
		v, _ := tr.tween.Set(local)
		tr.spec.Target.Set(tr.spec.Property, float64(v))
	}

	var due []func()
	for _, c := range p.cues {
		if !c.fired && (finished || now >= c.end) {
			c.fired = true
			due = append(due, c.fn)
		}
	}
	if finished {
		p.root = nil
		p.clock = nil
	}
	for _, fn := range due {
		fn()
	}
	return finished
}

func millis(d time.Duration) float32 {
	return float32(d) / float32(time.Millisecond)
}
