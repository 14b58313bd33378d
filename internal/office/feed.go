package office

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/night-shift/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedPanelWidth = 340
	feedMaxEntries = 48
	feedLineHeight = 14
)

// FeedEntry is a single line in the security feed.
type FeedEntry struct {
	Tick     int
	Actor    string
	Category string
	Message  string
}

// SecurityFeed is a ring buffer of recent session events rendered on-screen.
type SecurityFeed struct {
	entries []FeedEntry
	head    int
	count   int
	seen    int // session log entries already forwarded
}

// NewSecurityFeed creates a feed with a fixed capacity.
func NewSecurityFeed() *SecurityFeed {
	return &SecurityFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry to the feed.
func (f *SecurityFeed) Add(tick int, actor, category, msg string) {
	f.entries[f.head] = FeedEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Message:  msg,
	}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Pull forwards session log entries recorded since the last call. Input
// echoes are skipped.
func (f *SecurityFeed) Pull(log *game.SimLog) int {
	if log == nil {
		return 0
	}
	fresh := log.Since(f.seen)
	f.seen += len(fresh)
	n := 0
	for _, e := range fresh {
		if e.Category == game.CatInput {
			continue
		}
		f.Add(e.Tick, e.Actor, e.Category, fmt.Sprintf("%s %s", e.Key, e.Value))
		n++
	}
	return n
}

// Reset clears the feed for a new night.
func (f *SecurityFeed) Reset() {
	f.head = 0
	f.count = 0
	f.seen = 0
}

// Recent returns entries in chronological order (oldest first).
func (f *SecurityFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// categoryColor picks the line colour for a log category.
func categoryColor(cat string) color.RGBA {
	switch cat {
	case game.CatPower:
		return color.RGBA{R: 255, G: 200, B: 60, A: 255}
	case game.CatDoor, game.CatLight:
		return color.RGBA{R: 140, G: 200, B: 255, A: 255}
	case game.CatCamera:
		return color.RGBA{R: 120, G: 230, B: 140, A: 255}
	case game.CatJumpscare:
		return color.RGBA{R: 255, G: 70, B: 70, A: 255}
	case game.CatTask, game.CatAid:
		return color.RGBA{R: 200, G: 150, B: 255, A: 255}
	default:
		return color.RGBA{R: 170, G: 170, B: 160, A: 255}
	}
}

// Draw renders the feed panel on the right side of the screen.
func (f *SecurityFeed) Draw(screen *ebiten.Image, face text.Face, panelX, panelH int) {
	vector.DrawFilledRect(screen, float32(panelX), 0, float32(feedPanelWidth), float32(panelH), color.RGBA{R: 8, G: 9, B: 12, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 55, B: 80, A: 255}, false)

	vector.DrawFilledRect(screen, float32(panelX), 0, float32(feedPanelWidth), 18, color.RGBA{R: 18, G: 20, B: 32, A: 255}, false)
	drawText(screen, face, "SECURITY FEED", panelX+8, 2, color.RGBA{R: 200, G: 200, B: 220, A: 255})
	vector.StrokeLine(screen, float32(panelX), 18, float32(panelX+feedPanelWidth), 18, 1.0, color.RGBA{R: 50, G: 55, B: 90, A: 200}, false)

	// Newest at the bottom.
	entries := f.Recent()
	y := panelH - feedLineHeight - 4
	for i := len(entries) - 1; i >= 0 && y > 20; i-- {
		e := entries[i]
		line := fmt.Sprintf("%05d %-3s %s", e.Tick, e.Actor, e.Message)
		drawText(screen, face, line, panelX+6, y, categoryColor(e.Category))
		y -= feedLineHeight
	}
}
