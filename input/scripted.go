package input

// Scripted replays a fixed list of samples, one per poll. Once the list
// runs out it reports a disconnected controller.
type Scripted struct {
	samples []Sample
	next    int
}

var _ Device = (*Scripted)(nil)

func NewScripted(samples ...Sample) *Scripted {
	return &Scripted{samples: append([]Sample(nil), samples...)}
}

func (d *Scripted) Name() string {
	return "scripted"
}

func (d *Scripted) Poll(float64) Sample {
	if d.next >= len(d.samples) {
		return Sample{Status: StatusDisconnected}
	}
	s := d.samples[d.next]
	d.next++
	return s
}

// Done reports whether every sample has been replayed.
func (d *Scripted) Done() bool {
	return d.next >= len(d.samples)
}
