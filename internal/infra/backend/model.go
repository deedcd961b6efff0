package backend

import (
	"bytes"
	"encoding/json"
	"time"

	"storefront/internal/domain/entity"
)

// The backend identifies documents by "_id" and sometimes inlines referenced
// documents where an id is expected. The types below absorb both forms.

type productDTO struct {
	ID            string    `json:"_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice"`
	Category      string    `json:"category"`
	Brand         string    `json:"brand"`
	Images        []string  `json:"productImages"`
	Stock         int       `json:"stock"`
	AverageRating float64   `json:"averageRating"`
	ReviewCount   int       `json:"reviewCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (p productDTO) toEntity() entity.Product {
	return entity.Product{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Category:      p.Category,
		Brand:         p.Brand,
		Images:        p.Images,
		Stock:         p.Stock,
		AverageRating: p.AverageRating,
		ReviewCount:   p.ReviewCount,
		CreatedAt:     p.CreatedAt,
	}
}

func toProducts(list []productDTO) []entity.Product {
	products := make([]entity.Product, 0, len(list))
	for _, p := range list {
		products = append(products, p.toEntity())
	}

	return products
}

// productRef is either a bare product id or an inlined product.
type productRef struct {
	ID      string
	Product *productDTO
}

func (r *productRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		return json.Unmarshal(data, &r.ID)
	}

	var product productDTO
	if err := json.Unmarshal(data, &product); err != nil {
		return err
	}
	r.ID = product.ID
	r.Product = &product

	return nil
}

type userDTO struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Avatar string `json:"profileImage"`
	Role   string `json:"role"`
}

func (u userDTO) toEntity() entity.User {
	return entity.User{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Avatar: u.Avatar,
		Role:   entity.RoleFromString(u.Role),
	}
}

// userRef is either a bare user id or an inlined user.
type userRef struct {
	ID   string
	User *userDTO
}

func (r *userRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		return json.Unmarshal(data, &r.ID)
	}

	var user userDTO
	if err := json.Unmarshal(data, &user); err != nil {
		return err
	}
	r.ID = user.ID
	r.User = &user

	return nil
}

type cartItemDTO struct {
	Product  productRef `json:"productId"`
	Quantity int        `json:"quantity"`
	Price    float64    `json:"priceAtAddTime"`
}

func toCartLines(items []cartItemDTO) []entity.CartLine {
	lines := make([]entity.CartLine, 0, len(items))
	for _, item := range items {
		line := entity.CartLine{
			ProductID:  item.Product.ID,
			Quantity:   item.Quantity,
			PriceAtAdd: item.Price,
		}
		if item.Product.Product != nil {
			product := item.Product.Product.toEntity()
			line.Product = &product
		}
		lines = append(lines, line)
	}

	return lines
}

type addressDTO struct {
	ID        string `json:"_id,omitempty"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

func (a addressDTO) toEntity() entity.Address {
	return entity.Address{
		ID:        a.ID,
		Name:      a.Name,
		Phone:     a.Phone,
		Street:    a.Street,
		City:      a.City,
		State:     a.State,
		Pincode:   a.Pincode,
		Country:   a.Country,
		IsDefault: a.IsDefault,
	}
}

func fromAddressFields(fields entity.AddressFields) addressDTO {
	fields = fields.Normalize()

	return addressDTO{
		Name:      fields.Name,
		Phone:     fields.Phone,
		Street:    fields.Street,
		City:      fields.City,
		State:     fields.State,
		Pincode:   fields.Pincode,
		Country:   fields.Country,
		IsDefault: fields.IsDefault,
	}
}

func toAddresses(list []addressDTO) []entity.Address {
	addresses := make([]entity.Address, 0, len(list))
	for _, a := range list {
		addresses = append(addresses, a.toEntity())
	}

	return addresses
}

type reviewDTO struct {
	ID        string     `json:"_id"`
	Product   productRef `json:"productId"`
	User      userRef    `json:"userId"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (r reviewDTO) toEntity() entity.Review {
	review := entity.Review{
		ID:        r.ID,
		ProductID: r.Product.ID,
		UserID:    r.User.ID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
	if r.Product.Product != nil {
		review.ProductTitle = r.Product.Product.Title
	}
	if r.User.User != nil {
		review.UserName = r.User.User.Name
	}

	return review
}

func toReviews(list []reviewDTO) []entity.Review {
	reviews := make([]entity.Review, 0, len(list))
	for _, r := range list {
		reviews = append(reviews, r.toEntity())
	}

	return reviews
}

type orderItemDTO struct {
	Product  productRef `json:"productId"`
	Quantity int        `json:"quantity"`
	Price    float64    `json:"priceAtOrder"`
}

type paymentInfoDTO struct {
	ID     string `json:"razorpay_payment_id"`
	Status string `json:"status"`
}

type orderDTO struct {
	ID              string         `json:"_id"`
	Items           []orderItemDTO `json:"items"`
	ShippingAddress addressDTO     `json:"shippingAddress"`
	TotalAmount     float64        `json:"totalAmount"`
	PaymentInfo     paymentInfoDTO `json:"paymentInfo"`
	OrderStatus     string         `json:"orderStatus"`
	User            userRef        `json:"userId"`
	CreatedAt       time.Time      `json:"createdAt"`
}

func (o orderDTO) toEntity() entity.Order {
	order := entity.Order{
		ID:              o.ID,
		Items:           make([]entity.OrderItem, 0, len(o.Items)),
		ShippingAddress: o.ShippingAddress.toEntity(),
		TotalAmount:     o.TotalAmount,
		PaymentID:       o.PaymentInfo.ID,
		PaymentStatus:   entity.PaymentStatus(o.PaymentInfo.Status),
		Status:          entity.OrderStatus(o.OrderStatus),
		CreatedAt:       o.CreatedAt,
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = entity.PaymentStatusPending
	}
	if order.Status == "" {
		order.Status = entity.OrderStatusProcessing
	}
	if o.User.User != nil {
		customer := o.User.User.toEntity()
		order.Customer = &customer
	}
	for _, item := range o.Items {
		line := entity.OrderItem{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if p := item.Product.Product; p != nil {
			line.Title = p.Title
			if len(p.Images) > 0 {
				line.Image = p.Images[0]
			}
		}
		order.Items = append(order.Items, line)
	}

	return order
}

func toOrders(list []orderDTO) []entity.Order {
	orders := make([]entity.Order, 0, len(list))
	for _, o := range list {
		orders = append(orders, o.toEntity())
	}

	return orders
}

type productInputDTO struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand,omitempty"`
	Images        []string `json:"productImages,omitempty"`
	Stock         int      `json:"stock"`
}

func fromProductInput(in entity.ProductInput) productInputDTO {
	return productInputDTO(in)
}

type homeDTO struct {
	Trending    []productDTO `json:"trending"`
	NewArrivals []productDTO `json:"newArrivals"`
	TopRated    []productDTO `json:"topRated"`
	BestDeals   []productDTO `json:"bestDeals"`
}

func (h homeDTO) toEntity() *entity.HomeData {
	return &entity.HomeData{
		Trending:    toProducts(h.Trending),
		NewArrivals: toProducts(h.NewArrivals),
		TopRated:    toProducts(h.TopRated),
		BestDeals:   toProducts(h.BestDeals),
	}
}

type dashboardDTO struct {
	Stats struct {
		TotalUsers        int     `json:"totalUsers"`
		TotalProducts     int     `json:"totalProducts"`
		TotalOrders       int     `json:"totalOrders"`
		RevenueLast30Days float64 `json:"revenueLast30Days"`
		PendingOrders     int     `json:"pendingOrders"`
		DeliveredOrders   int     `json:"deliveredOrders"`
		LowStockCount     int     `json:"lowStockCount"`
	} `json:"stats"`
	SalesGraph *struct {
		Dates   []string  `json:"dates"`
		Revenue []float64 `json:"revenue"`
		Orders  []int     `json:"orders"`
	} `json:"salesGraph"`
}

func (d dashboardDTO) toEntity() *entity.DashboardStats {
	stats := &entity.DashboardStats{
		TotalUsers:        d.Stats.TotalUsers,
		TotalProducts:     d.Stats.TotalProducts,
		TotalOrders:       d.Stats.TotalOrders,
		RevenueLast30Days: d.Stats.RevenueLast30Days,
		PendingOrders:     d.Stats.PendingOrders,
		DeliveredOrders:   d.Stats.DeliveredOrders,
		LowStockCount:     d.Stats.LowStockCount,
	}
	if d.SalesGraph == nil {
		return stats
	}
	for i, date := range d.SalesGraph.Dates {
		point := entity.SalesPoint{Date: date}
		if i < len(d.SalesGraph.Revenue) {
			point.Revenue = d.SalesGraph.Revenue[i]
		}
		if i < len(d.SalesGraph.Orders) {
			point.Orders = d.SalesGraph.Orders[i]
		}
		stats.SalesGraph = append(stats.SalesGraph, point)
	}

	return stats
}
