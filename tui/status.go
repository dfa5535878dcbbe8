package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing the
// selected quest, its item count, the inventory size, and player state.
func (m Model) renderStatusBar() string {
	eng := m.session.Engine

	questName := "no quest"
	itemCount := 0
	if q := m.session.Current(); q != nil {
		questName = q.Name
		itemCount = len(q.Symbols)
	}

	left := fmt.Sprintf(" %s | Items: %d", questName, itemCount)
	right := fmt.Sprintf("Inv: %d | Lvl %d | Region %+d ",
		eng.Inventory.Len(), eng.Player.Level, eng.Player.RegionPriceAdjustment)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
