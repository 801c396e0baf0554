// Package lifecycle turns a backend order status into the progress tracker shown to viewers
// and decides which status transition each role may trigger next.
package lifecycle

import "github.com/polkiloo/foodfront/internal/domain/model"

// Step is one entry of the five-step progress tracker.
type Step struct {
	Key       model.OrderStatus
	Label     string
	Icon      string
	Completed bool
	Active    bool
}

// Tracker is the full progress view for one order.
type Tracker struct {
	Status    model.OrderStatus
	Label     string
	Color     string
	Icon      string
	Cancelled bool
	Steps     []Step
}

type stepMeta struct {
	label string
	icon  string
	color string
}

var meta = map[model.OrderStatus]stepMeta{
	model.OrderStatusPlaced:         {label: "Order Placed", icon: "shopping-bag", color: "#feca57"},
	model.OrderStatusConfirmed:      {label: "Confirmed", icon: "check-circle", color: "#4ecdc4"},
	model.OrderStatusPreparing:      {label: "Preparing", icon: "chef-hat", color: "#667eea"},
	model.OrderStatusOutForDelivery: {label: "Out for Delivery", icon: "truck", color: "#ff6b6b"},
	model.OrderStatusDelivered:      {label: "Delivered", icon: "check-circle", color: "#44a08d"},
	model.OrderStatusCancelled:      {label: "Cancelled", icon: "x-circle", color: "#8b92a8"},
}

const unknownColor = "#8b92a8"

// Label returns the human readable name of a status.
func Label(status model.OrderStatus) string {
	if m, ok := meta[status]; ok {
		return m.label
	}
	return string(status)
}

// Steps builds the canonical step sequence. Every step up to the current status is completed
// and only the current one is active. CANCELLED and unknown values mark nothing.
func Steps(status model.OrderStatus) []Step {
	current := status.Rank()
	steps := make([]Step, 0, len(model.OrderStatusSequence))
	for i, key := range model.OrderStatusSequence {
		m := meta[key]
		steps = append(steps, Step{
			Key:       key,
			Label:     m.label,
			Icon:      m.icon,
			Completed: current >= 0 && i <= current,
			Active:    i == current,
		})
	}
	return steps
}

// Track renders the tracker for a status. A cancelled order gets the terminal indicator
// and no steps at all.
func Track(status model.OrderStatus) Tracker {
	t := Tracker{Status: status, Label: Label(status), Color: unknownColor, Icon: "package"}
	if m, ok := meta[status]; ok {
		t.Color = m.color
		t.Icon = m.icon
	}
	if status == model.OrderStatusCancelled {
		t.Cancelled = true
		return t
	}
	t.Steps = Steps(status)
	return t
}

// CompletedCount is the number of completed steps for a status.
func CompletedCount(status model.OrderStatus) int {
	return status.Rank() + 1
}
