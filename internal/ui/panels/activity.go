// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package panels

import (
	"context"
	"strings"
	"time"

	"github.com/jeranaias/sidekick-tui/internal/activity"
	"github.com/jeranaias/sidekick-tui/internal/ui/styles"
	"github.com/jeranaias/sidekick-tui/internal/util"
)

// =============================================================================
// ACTIVITY PANEL
// =============================================================================

// ActivityPanel shows recent events from the activity log.
type ActivityPanel struct {
	store *activity.Store
	limit int
}

// NewActivityPanel creates the activity panel. limit caps how many
// events are shown; non-positive uses 20.
func NewActivityPanel(store *activity.Store, limit int) *ActivityPanel {
	if limit <= 0 {
		limit = 20
	}
	return &ActivityPanel{store: store, limit: limit}
}

// Key implements Panel.
func (p *ActivityPanel) Key() string { return "activity" }

// Title implements Panel.
func (p *ActivityPanel) Title() string { return "Activity" }

// Load reads recent events from the store.
func (p *ActivityPanel) Load(ctx context.Context) (any, error) {
	if p.store == nil {
		return []activity.Event{}, nil
	}
	return p.store.Recent(p.limit)
}

// Render implements Panel.
func (p *ActivityPanel) Render(content any, width int, theme *styles.Theme) string {
	events, _ := content.([]activity.Event)
	title := theme.PanelTitle.Render("Activity")

	if len(events) == 0 {
		return theme.PanelFrame.Width(width).Render(title + "\n\n" + theme.Muted.Render("No activity yet."))
	}

	now := time.Now()
	var sb strings.Builder
	for i, e := range events {
		if i > 0 {
			sb.WriteByte('\n')
		}
		kind := theme.ShortcutKey.Render("[" + e.Kind + "]")
		when := theme.Muted.Render(util.FormatRelative(e.CreatedAt, now))
		detail := util.TruncateRunes(util.FirstLine(e.Detail), 60)
		sb.WriteString(kind + " " + detail + " " + when)
	}

	return theme.PanelFrame.Width(width).Render(title + "\n\n" + sb.String())
}
