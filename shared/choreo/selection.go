package choreo

import "github.com/automoto/foldmenu/shared/timeline"

// selection is the laid-out collapse onto one item.
type selection struct {
	index int
	// above and below are ordered nearest to the chosen item first.
	above []itemGroup
	below []itemGroup
	// aboveLonger is true when the above chain gates the chosen item's fold;
	// ties go to above.
	aboveLonger bool
	chosen      itemGroup
	root        *timeline.Timeline
}

func (s selection) longer() []itemGroup {
	if s.aboveLonger {
		return s.above
	}
	return s.below
}

// planSelection folds the items above the chosen one toward the top, the ones
// below toward the bottom, and closes the chosen item like an anchor once the
// longer of the two chains is done.
func (m *Menu) planSelection(i int) selection {
	b := m.builder()
	s := selection{index: i}

	for j := i - 1; j >= 0; j-- {
		it := m.items[j]
		b.resetFollower(it.Icon, true, false)
		s.above = append(s.above, b.group(it, roleCloseFollower, true))
	}
	for j := i + 1; j < len(m.items); j++ {
		it := m.items[j]
		b.resetFollower(it.Icon, false, false)
		s.below = append(s.below, b.group(it, roleCloseFollower, false))
	}

	chosen := m.items[i]
	b.resetAnchor(chosen.Icon, false)
	s.chosen = b.group(chosen, roleCloseAnchor, false)
	s.aboveLonger = len(s.above) >= len(s.below)

	aboveIcons, aboveLabels := chain(s.above)
	belowIcons, belowLabels := chain(s.below)
	if !s.aboveLonger {
		aboveIcons, belowIcons = belowIcons, aboveIcons
		aboveLabels, belowLabels = belowLabels, aboveLabels
	}

	// The shorter chain sits inside the longer one's span, so the chosen
	// item waits on the longer chain only.
	icons := timeline.Sequential(timeline.Parallel(aboveIcons, belowIcons), s.chosen.icon)
	labels := timeline.Sequential(timeline.Parallel(aboveLabels, belowLabels), s.chosen.label)
	s.root = timeline.Parallel(icons, labels).WithEasing(m.curve)
	return s
}
