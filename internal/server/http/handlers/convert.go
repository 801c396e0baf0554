package handlers

import (
	"github.com/polkiloo/foodfront/internal/domain/lifecycle"
	"github.com/polkiloo/foodfront/internal/domain/model"
	"github.com/polkiloo/foodfront/internal/server/http/dto"
	"github.com/polkiloo/foodfront/internal/store"
	"github.com/polkiloo/foodfront/internal/usecase"
)

func toSessionResponse(s *model.Session) dto.SessionResponse {
	return dto.SessionResponse{Name: s.Name, Email: s.Email, Role: string(s.Role), ExpiresAt: s.ExpiresAt}
}

func toNotificationResponses(ns []store.Notification) []dto.NotificationResponse {
	resp := make([]dto.NotificationResponse, 0, len(ns))
	for _, n := range ns {
		resp = append(resp, dto.NotificationResponse{ID: n.ID, Type: string(n.Level), Message: n.Message, CreatedAt: n.CreatedAt})
	}
	return resp
}

func toSnapshotResponse(m model.MenuItemSnapshot) dto.MenuItemSnapshotResponse {
	return dto.MenuItemSnapshotResponse{ID: m.ID, Name: m.Name, Price: m.Price, Veg: m.Veg}
}

func toCartResponse(snap store.CartSnapshot) dto.CartResponse {
	resp := dto.CartResponse{State: string(snap.State), ItemCount: snap.ItemCount, Items: []dto.LineResponse{}}
	if snap.Cart == nil {
		return resp
	}
	resp.ID = snap.Cart.ID
	resp.TotalAmount = snap.Cart.TotalAmount
	for _, line := range snap.Cart.Items {
		resp.Items = append(resp.Items, dto.LineResponse{
			ID:       line.ID,
			MenuItem: toSnapshotResponse(line.MenuItem),
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}
	return resp
}

func toActionResponse(a lifecycle.Action) dto.ActionResponse {
	return dto.ActionResponse{Target: string(a.Target), Label: a.Label}
}

func toTrackerResponse(t lifecycle.Tracker) dto.TrackerResponse {
	resp := dto.TrackerResponse{
		Label:     t.Label,
		Color:     t.Color,
		Icon:      t.Icon,
		Cancelled: t.Cancelled,
		Steps:     make([]dto.StepResponse, 0, len(t.Steps)),
	}
	for _, s := range t.Steps {
		if s.Completed {
			resp.Completed++
		}
		resp.Steps = append(resp.Steps, dto.StepResponse{
			Key:       string(s.Key),
			Label:     s.Label,
			Icon:      s.Icon,
			Completed: s.Completed,
			Active:    s.Active,
		})
	}
	return resp
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:                    o.ID,
		Restaurant:            dto.RestaurantRefResponse{ID: o.Restaurant.ID, Name: o.Restaurant.Name, CuisineType: o.Restaurant.CuisineType},
		Address:               toAddressResponse(o.Address),
		Items:                 make([]dto.LineResponse, 0, len(o.Items)),
		TotalAmount:           o.TotalAmount,
		Status:                string(o.Status),
		PaymentStatus:         o.PaymentStatus,
		PaymentMethod:         string(o.PaymentMethod),
		CreatedAt:             o.CreatedAt,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		DeliveredAt:           o.DeliveredAt,
		Actions:               []dto.ActionResponse{},
	}
	for _, line := range o.Items {
		resp.Items = append(resp.Items, dto.LineResponse{
			ID:       line.ID,
			MenuItem: toSnapshotResponse(line.MenuItem),
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}
	return resp
}

func toOrderViewResponse(v store.OrderView) dto.OrderResponse {
	resp := toOrderResponse(v.Order)
	resp.Tracker = toTrackerResponse(v.Tracker)
	resp.CanCancel = v.CanCancel
	if v.NextAction != nil {
		next := toActionResponse(*v.NextAction)
		resp.NextAction = &next
	}
	for _, a := range v.Actions {
		resp.Actions = append(resp.Actions, toActionResponse(a))
	}
	return resp
}

func toRestaurantResponse(r model.Restaurant) dto.RestaurantResponse {
	return dto.RestaurantResponse{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Address:      r.Address,
		CuisineType:  r.CuisineType,
		ImageURL:     r.ImageURL,
		AvgRating:    r.AvgRating,
		DeliveryTime: r.DeliveryTime,
		Active:       r.Active,
	}
}

func toMenuItemResponse(m model.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Veg:         m.Veg,
		Available:   m.Available,
		ImageURL:    m.ImageURL,
		Category:    m.Category,
	}
}

func toMenuResponses(items []model.MenuItem) []dto.MenuItemResponse {
	resp := make([]dto.MenuItemResponse, 0, len(items))
	for _, m := range items {
		resp = append(resp, toMenuItemResponse(m))
	}
	return resp
}

func toDashboardResponse(boards []usecase.RestaurantDashboard) []dto.DashboardEntryResponse {
	resp := make([]dto.DashboardEntryResponse, 0, len(boards))
	for _, b := range boards {
		entry := dto.DashboardEntryResponse{
			Restaurant: toRestaurantResponse(b.Restaurant),
			Menu:       toMenuResponses(b.Menu),
			Orders:     make([]dto.OrderResponse, 0, len(b.Orders)),
		}
		for _, o := range b.Orders {
			entry.Orders = append(entry.Orders, toOrderResponse(o))
		}
		resp = append(resp, entry)
	}
	return resp
}

func toProfileResponse(p *model.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{ID: p.ID, Name: p.Name, Email: p.Email, Phone: p.Phone, ImageURL: p.ImageURL, Role: string(p.Role)}
}

func toAddressResponse(a model.Address) dto.AddressResponse {
	return dto.AddressResponse{
		ID:          a.ID,
		AddressLine: a.AddressLine,
		City:        a.City,
		State:       a.State,
		Pincode:     a.Pincode,
		IsDefault:   a.IsDefault,
	}
}

func fromMenuItemRequest(req dto.MenuItemRequest) model.MenuItem {
	item := model.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Veg:         req.Veg,
		Available:   true,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	return item
}

func fromAddressRequest(req dto.AddressRequest) model.Address {
	return model.Address{
		AddressLine: req.AddressLine,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		IsDefault:   req.IsDefault,
	}
}
