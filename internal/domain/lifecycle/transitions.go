package lifecycle

import "github.com/polkiloo/foodfront/internal/domain/model"

// Action is a status change a viewer may request.
type Action struct {
	Target model.OrderStatus
	Label  string
}

type transitionKey struct {
	role   model.Role
	status model.OrderStatus
}

var transitions = map[transitionKey]model.OrderStatus{
	{model.RoleRestaurantOwner, model.OrderStatusPlaced}:    model.OrderStatusConfirmed,
	{model.RoleRestaurantOwner, model.OrderStatusConfirmed}: model.OrderStatusPreparing,
	{model.RoleRestaurantOwner, model.OrderStatusPreparing}: model.OrderStatusOutForDelivery,

	{model.RoleDeliveryPartner, model.OrderStatusOutForDelivery}: model.OrderStatusDelivered,

	{model.RoleAdmin, model.OrderStatusPlaced}:         model.OrderStatusConfirmed,
	{model.RoleAdmin, model.OrderStatusConfirmed}:      model.OrderStatusPreparing,
	{model.RoleAdmin, model.OrderStatusPreparing}:      model.OrderStatusOutForDelivery,
	{model.RoleAdmin, model.OrderStatusOutForDelivery}: model.OrderStatusDelivered,
}

var actionLabels = map[model.OrderStatus]string{
	model.OrderStatusConfirmed:      "Confirm Order",
	model.OrderStatusPreparing:      "Start Preparing",
	model.OrderStatusOutForDelivery: "Out for Delivery",
	model.OrderStatusDelivered:      "Mark Delivered",
	model.OrderStatusCancelled:      "Cancel Order",
}

func newAction(target model.OrderStatus) Action {
	return Action{Target: target, Label: actionLabels[target]}
}

// NextAction returns the single forward transition the role may trigger from status.
func NextAction(role model.Role, status model.OrderStatus) (Action, bool) {
	target, ok := transitions[transitionKey{role: role, status: status}]
	if !ok {
		return Action{}, false
	}
	return newAction(target), true
}

// CanCancel reports whether the role may cancel an order in the given status.
func CanCancel(role model.Role, status model.OrderStatus) bool {
	if !status.IsValid() || status.IsTerminal() {
		return false
	}
	switch role {
	case model.RoleRestaurantOwner, model.RoleDeliveryPartner, model.RoleAdmin:
		return true
	default:
		return false
	}
}

// Actions lists every button to render: the forward action first, then cancellation.
func Actions(role model.Role, status model.OrderStatus) []Action {
	var actions []Action
	if next, ok := NextAction(role, status); ok {
		actions = append(actions, next)
	}
	if CanCancel(role, status) {
		actions = append(actions, newAction(model.OrderStatusCancelled))
	}
	return actions
}

// Permits reports whether role may move an order from status to target.
func Permits(role model.Role, status, target model.OrderStatus) bool {
	if target == model.OrderStatusCancelled {
		return CanCancel(role, status)
	}
	next, ok := NextAction(role, status)
	return ok && next.Target == target
}
