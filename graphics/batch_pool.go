package graphics

// buffersPool recycles the three fixed-capacity buffer-set kinds across
// frames instead of allocating fresh GPU buffers every frame.
type buffersPool struct {
	tri []*triBatchBuffers
	pts []*ptsBatchBuffers
	lns []*lnsBatchBuffers
}

func (p *buffersPool) getTri() *triBatchBuffers {
	if n := len(p.tri); n > 0 {
		b := p.tri[n-1]
		p.tri = p.tri[:n-1]
		return b
	}
	return newTriBatchBuffers()
}

func (p *buffersPool) putTri(b *triBatchBuffers) {
	b.clear()
	p.tri = append(p.tri, b)
}

func (p *buffersPool) getPts() *ptsBatchBuffers {
	if n := len(p.pts); n > 0 {
		b := p.pts[n-1]
		p.pts = p.pts[:n-1]
		return b
	}
	return newPtsBatchBuffers()
}

func (p *buffersPool) putPts(b *ptsBatchBuffers) {
	b.clear()
	p.pts = append(p.pts, b)
}

func (p *buffersPool) getLns() *lnsBatchBuffers {
	if n := len(p.lns); n > 0 {
		b := p.lns[n-1]
		p.lns = p.lns[:n-1]
		return b
	}
	return newLnsBatchBuffers()
}

func (p *buffersPool) putLns(b *lnsBatchBuffers) {
	b.clear()
	p.lns = append(p.lns, b)
}

// byteSize returns the total preallocated GPU-side size of every buffer
// set currently parked in the pool (not counting ones in active use by a
// render call this frame).
func (p *buffersPool) byteSize() int {
	return len(p.tri)*triBatchByteSize + len(p.pts)*ptsBatchByteSize + len(p.lns)*lnsBatchByteSize
}
