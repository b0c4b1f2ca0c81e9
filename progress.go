package main

import (
	"io"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// _Progress draws a status line of scanned rows, at most once a second.
type _Progress struct {
	mu      sync.Mutex
	w       io.Writer
	total   int64
	limiter *rate.Limiter
	shown   bool
}

func _newProgress(w io.Writer, total int64) *_Progress {
	return &_Progress{
		w:       w,
		total:   total,
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

func (p *_Progress) Update(rows int64) {
	if !p.limiter.Allow() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fprint(p.w, "\033[1K\r")
	fprintf(p.w, "scanning... %v%% (%v/%v rows)", rows*100/p.total, rows, p.total)
	p.shown = true
}

// Clear erases the status line, if one was drawn.
func (p *_Progress) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shown {
		fprint(p.w, "\033[1K\r")
		p.shown = false
	}
}
