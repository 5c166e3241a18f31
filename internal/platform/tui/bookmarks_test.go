package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vovakirdan/tileflip/internal/tileflip"
)

func testBookmarks(n int) []tileflip.Bookmark {
	marks := make([]tileflip.Bookmark, n)
	for i := range marks {
		marks[i] = tileflip.Bookmark{Name: fmt.Sprintf("mark-%02d", i+1), Seed: int32(100 + i)}
	}
	return marks
}

func TestBookmarkPickerShowsEveryRow(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5} {
		t.Run(fmt.Sprintf("%d bookmarks", n), func(t *testing.T) {
			marks := testBookmarks(n)
			p := newBookmarkPicker(5, marks, 0, 80, 28)

			view := p.View(80, 28)
			for _, b := range marks {
				if !strings.Contains(view, b.Name) {
					t.Errorf("picker view missing %q:\n%s", b.Name, view)
				}
			}
		})
	}
}

func TestBookmarkPickerResizeKeepsRows(t *testing.T) {
	marks := testBookmarks(3)
	p := newBookmarkPicker(5, marks, -1, 80, 10)
	p.Resize(28)

	view := p.View(80, 28)
	for _, b := range marks {
		if !strings.Contains(view, b.Name) {
			t.Errorf("resized picker missing %q", b.Name)
		}
	}
}

func TestBookmarkPickerSelectsActive(t *testing.T) {
	marks := testBookmarks(3)
	p := newBookmarkPicker(5, marks, 2, 80, 28)

	got, ok := p.Selected()
	if !ok || got != marks[2] {
		t.Errorf("Selected() = %+v, %v; want %+v", got, ok, marks[2])
	}
}
