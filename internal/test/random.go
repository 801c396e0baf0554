package test

import (
	"sync"
	"time"

	"github.com/jaswdr/faker"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/foodfront/internal/domain/model"
)

var (
	fakeMu sync.Mutex
	fake   = faker.New()
)

// RandomName returns a person name.
func RandomName() string {
	fakeMu.Lock()
	defer fakeMu.Unlock()
	return fake.Person().Name()
}

// RandomEmail returns a syntactically valid email address.
func RandomEmail() string {
	fakeMu.Lock()
	defer fakeMu.Unlock()
	return fake.Internet().Email()
}

// RandomID returns a positive identifier within the provided bounds.
func RandomID(minID, maxID int) int64 {
	fakeMu.Lock()
	defer fakeMu.Unlock()
	return int64(fake.IntBetween(minID, maxID))
}

// RandomMenuItem builds an available menu item with a whole-rupee price.
func RandomMenuItem() model.MenuItem {
	fakeMu.Lock()
	defer fakeMu.Unlock()
	return model.MenuItem{
		ID:          int64(fake.IntBetween(1, 1_000_000)),
		Name:        fake.Lorem().Word(),
		Description: fake.Lorem().Sentence(8),
		Price:       decimal.NewFromInt(int64(fake.IntBetween(40, 600))),
		Veg:         fake.Bool(),
		Available:   true,
		Category:    fake.Lorem().Word(),
	}
}

// RandomRestaurant builds an active restaurant listing.
func RandomRestaurant() model.Restaurant {
	fakeMu.Lock()
	defer fakeMu.Unlock()
	return model.Restaurant{
		ID:           int64(fake.IntBetween(1, 1_000_000)),
		Name:         fake.Company().Name(),
		Description:  fake.Lorem().Sentence(10),
		Address:      fake.Address().City(),
		CuisineType:  fake.Lorem().Word(),
		AvgRating:    float64(fake.IntBetween(10, 50)) / 10,
		DeliveryTime: fake.IntBetween(15, 60),
		Active:       true,
	}
}

// RandomAddress builds a delivery address.
func RandomAddress() model.Address {
	fakeMu.Lock()
	defer fakeMu.Unlock()
	return model.Address{
		ID:          int64(fake.IntBetween(1, 1_000_000)),
		AddressLine: fake.Address().StreetAddress(),
		City:        fake.Address().City(),
		State:       fake.Address().State(),
		Pincode:     fake.Address().PostCode(),
	}
}

// CartWithQuantities builds a cart holding one line per quantity, priced consistently.
func CartWithQuantities(quantities ...int) *model.Cart {
	cart := &model.Cart{ID: RandomID(1, 1000)}
	for i, qty := range quantities {
		item := RandomMenuItem()
		line := model.CartLine{
			ID:       int64(i + 1),
			MenuItem: model.MenuItemSnapshot{ID: item.ID, Name: item.Name, Price: item.Price, Veg: item.Veg},
			Quantity: qty,
			Price:    item.Price.Mul(decimal.NewFromInt(int64(qty))),
		}
		cart.Items = append(cart.Items, line)
		cart.TotalAmount = cart.TotalAmount.Add(line.Price)
	}
	return cart
}

// RandomOrder builds an order in the given status.
func RandomOrder(id int64, status model.OrderStatus) model.Order {
	r := RandomRestaurant()
	item := RandomMenuItem()
	qty := int(RandomID(1, 3))
	price := item.Price.Mul(decimal.NewFromInt(int64(qty)))
	return model.Order{
		ID:         id,
		Restaurant: model.RestaurantRef{ID: r.ID, Name: r.Name, CuisineType: r.CuisineType},
		Address:    RandomAddress(),
		Items: []model.OrderLine{{
			ID:       1,
			MenuItem: model.MenuItemSnapshot{ID: item.ID, Name: item.Name, Price: item.Price, Veg: item.Veg},
			Quantity: qty,
			Price:    price,
		}},
		TotalAmount:   price,
		Status:        status,
		PaymentStatus: "PENDING",
		PaymentMethod: model.PaymentMethodCOD,
		CreatedAt:     time.Now().Add(-time.Duration(id) * time.Minute),
	}
}
