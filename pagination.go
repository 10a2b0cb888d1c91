package main

// pageSizes is the closed set of allowed items-per-page values. The
// controller rejects anything else.
var pageSizes = []int{10, 15, 20, 50, 100, 200, 500}

const defaultPageSizeIndex = 1

// pageController owns the page index and page size. It re-clamps the
// index against the latest filtered-row count on every recomputation, so
// a shrinking result set can never leave the index past the last page.
type pageController struct {
	index int
	size  int
	count int
}

func newPageController() *pageController {
	return &pageController{size: pageSizes[defaultPageSizeIndex]}
}

func (p *pageController) Index() int { return p.index }
func (p *pageController) Size() int  { return p.size }

func (p *pageController) State() PaginationState {
	return PaginationState{Index: p.index, Size: p.size}
}

// LastPage is the highest valid page index for the current count, never
// negative.
func (p *pageController) LastPage() int {
	if p.count <= 0 || p.size <= 0 {
		return 0
	}
	last := (p.count + p.size - 1) / p.size
	if last < 1 {
		return 0
	}
	return last - 1
}

// SetCount records the latest filtered-row count and clamps the index.
func (p *pageController) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	p.count = count
	p.clamp()
}

func (p *pageController) NextPage() {
	p.index++
	p.clamp()
}

func (p *pageController) PrevPage() {
	p.index--
	p.clamp()
}

func (p *pageController) JumpTo(index int) {
	p.index = index
	p.clamp()
}

// SetSize switches to a new page size if it is in the allowed set;
// anything else is ignored.
func (p *pageController) SetSize(size int) bool {
	for _, allowed := range pageSizes {
		if allowed == size {
			p.size = size
			p.clamp()
			return true
		}
	}
	return false
}

// GrowSize steps to the next allowed page size, if any.
func (p *pageController) GrowSize() {
	if idx := p.sizeIndex(); idx >= 0 && idx+1 < len(pageSizes) {
		p.size = pageSizes[idx+1]
		p.clamp()
	}
}

// ShrinkSize steps to the previous allowed page size, if any.
func (p *pageController) ShrinkSize() {
	if idx := p.sizeIndex(); idx > 0 {
		p.size = pageSizes[idx-1]
		p.clamp()
	}
}

func (p *pageController) sizeIndex() int {
	for i, allowed := range pageSizes {
		if allowed == p.size {
			return i
		}
	}
	return -1
}

func (p *pageController) clamp() {
	if last := p.LastPage(); p.index > last {
		p.index = last
	}
	if p.index < 0 {
		p.index = 0
	}
}
