package application

import (
	"go.uber.org/zap"

	"cardsort/internal/domain"
	"cardsort/internal/ports"
)

// GestureState is the phase of the drag gesture
type GestureState int

const (
	GestureIdle GestureState = iota
	GestureDragging
)

func (s GestureState) String() string {
	switch s {
	case GestureDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// GestureController turns drag start/hover/drop events into store
// operations. Hovering commits the card's new position immediately so the
// lists reflow while the pointer moves; dropping only confirms it, except
// inside the unfiled list where the drop settles the final order.
type GestureController struct {
	store  ports.BoardStore
	logger *zap.Logger
	state  GestureState
	active string
}

// NewGestureController creates an idle controller driving store
func NewGestureController(store ports.BoardStore, logger *zap.Logger) *GestureController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GestureController{
		store:  store,
		logger: logger,
	}
}

// State returns the current gesture phase
func (c *GestureController) State() GestureState {
	return c.state
}

// ActiveID returns the card being dragged, if any
func (c *GestureController) ActiveID() (string, bool) {
	if c.state != GestureDragging {
		return "", false
	}
	return c.active, true
}

// Start begins dragging itemID. Starting on a card that is not on the board
// leaves the controller idle. A new start replaces any gesture in progress.
func (c *GestureController) Start(itemID string) bool {
	if _, _, ok := c.store.Snapshot().Locate(itemID); !ok {
		c.logger.Debug("drag start ignored", zap.String("item", itemID), zap.String("reason", "unknown card"))
		c.reset()
		return false
	}
	c.state = GestureDragging
	c.active = itemID
	c.logger.Debug("drag started", zap.String("item", itemID))
	return true
}

// Hover provisionally places the dragged card in the container designated by
// targetID: a category, domain.UnfiledID, or a card (meaning the container
// holding that card). indexHint positions the card; NoIndex appends it, also
// within the card's own category. Hovering the unfiled list a card is
// already in without a position leaves it in place. Reports whether the
// board changed.
func (c *GestureController) Hover(itemID, targetID string, indexHint int) bool {
	if !c.owns(itemID, "hover") {
		return false
	}

	board := c.store.Snapshot()
	from, fromIndex, ok := board.Locate(itemID)
	if !ok {
		// The card vanished mid-drag, e.g. deleted by a stray click
		c.logger.Debug("drag abandoned", zap.String("item", itemID), zap.String("reason", "card no longer on board"))
		c.reset()
		return false
	}

	to, ok := board.ResolveTarget(targetID)
	if !ok {
		c.logger.Debug("hover ignored", zap.String("item", itemID), zap.String("target", targetID))
		return false
	}

	index := indexHint
	if from == to && to == domain.UnfiledID && indexHint == NoIndex {
		// Only an explicit position moves a card within the unfiled list
		return false
	}
	if from == to && indexHint == fromIndex {
		return false
	}
	if target, _ := board.Container(to); index == NoIndex || index > len(target) {
		index = len(target)
	}

	return c.store.MoveItem(itemID, from, to, index)
}

// Drop ends the gesture. A drop onto another unfiled card settles the
// dragged card at that card's position when both are unfiled. Any other
// drop, including one with an empty targetID or onto the card itself,
// keeps the placement made while hovering.
func (c *GestureController) Drop(itemID, targetID string) bool {
	if !c.owns(itemID, "drop") {
		return false
	}
	c.reset()

	if targetID == "" || targetID == itemID {
		return false
	}

	board := c.store.Snapshot()
	from, fromIndex, ok := board.Locate(itemID)
	if !ok {
		c.logger.Debug("drop ignored", zap.String("item", itemID), zap.String("reason", "card no longer on board"))
		return false
	}
	if from != domain.UnfiledID {
		return false
	}

	over, overIndex, ok := board.Locate(targetID)
	if !ok || over != domain.UnfiledID {
		return false
	}
	return c.store.Reorder(domain.UnfiledID, fromIndex, overIndex)
}

// Cancel abandons the gesture without touching the board. Placements made
// while hovering stay where they are.
func (c *GestureController) Cancel() {
	if c.state == GestureDragging {
		c.logger.Debug("drag cancelled", zap.String("item", c.active))
	}
	c.reset()
}

// owns reports whether an event for itemID belongs to the gesture in progress
func (c *GestureController) owns(itemID, event string) bool {
	if c.state != GestureDragging || c.active != itemID {
		c.logger.Debug(event+" ignored",
			zap.String("item", itemID),
			zap.String("state", c.state.String()),
			zap.String("active", c.active))
		return false
	}
	return true
}

func (c *GestureController) reset() {
	c.state = GestureIdle
	c.active = ""
}
