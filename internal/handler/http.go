package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/StefanMagureanu25/AWBD/internal/entities"
	"github.com/StefanMagureanu25/AWBD/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, userID, shippingAddress, billingAddress, notes string) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error

	AddItem(ctx context.Context, orderID, productID string, quantity int) (entities.Order, error)
	RemoveItem(ctx context.Context, orderID, itemID string) (entities.Order, error)
	UpdateItemQuantity(ctx context.Context, orderID, itemID string, newQuantity int) (entities.Order, error)

	ConfirmOrder(ctx context.Context, orderID string) (entities.Order, error)
	ShipOrder(ctx context.Context, orderID string) (entities.Order, error)
	DeliverOrder(ctx context.Context, orderID string) (entities.Order, error)
	CancelOrder(ctx context.Context, orderID string) (entities.Order, error)

	UpdateShippingAddress(ctx context.Context, orderID, address string) (entities.Order, error)
	UpdateBillingAddress(ctx context.Context, orderID, address string) (entities.Order, error)
	UpdateNotes(ctx context.Context, orderID, notes string) (entities.Order, error)

	ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error)
	ListOrdersByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
	ListRecentOrders(ctx context.Context, limit int) ([]entities.Order, error)

	Revenue(ctx context.Context, f entities.RevenueFilter) (entities.Money, error)
	AverageOrderValue(ctx context.Context, f entities.RevenueFilter) (int64, error)
	CountByStatus(ctx context.Context, status entities.OrderStatus) (int64, error)
}

type ProductService interface {
	CreateProduct(ctx context.Context, name, description string, price entities.Money, stockQuantity int) (entities.Product, error)
	GetProduct(ctx context.Context, productID string) (entities.Product, error)
	Restock(ctx context.Context, productID string, stockQuantity int) error
	AvailableStock(ctx context.Context, productID string) (int, error)
	ListLowStock(ctx context.Context, threshold int) ([]entities.Product, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderService
	products ProductService
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, products ProductService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		orders:   orders,
		products: products,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)
		r.Get("/number/{order_number}", h.GetOrderByNumber)

		r.Route("/{order_id}", func(r chi.Router) {
			r.Get("/", h.GetOrderByID)
			r.Delete("/", h.DeleteOrder)

			r.Post("/items", h.AddItem)
			r.Patch("/items/{item_id}", h.UpdateItemQuantity)
			r.Delete("/items/{item_id}", h.RemoveItem)

			r.Post("/confirm", h.ConfirmOrder)
			r.Post("/ship", h.ShipOrder)
			r.Post("/deliver", h.DeliverOrder)
			r.Post("/cancel", h.CancelOrder)

			r.Put("/shipping-address", h.UpdateShippingAddress)
			r.Put("/billing-address", h.UpdateBillingAddress)
			r.Put("/notes", h.UpdateNotes)
		})
	})

	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.CreateProduct)
		r.Get("/low-stock", h.ListLowStock)
		r.Get("/{product_id}", h.GetProduct)
		r.Get("/{product_id}/stock", h.AvailableStock)
		r.Put("/{product_id}/stock", h.Restock)
	})

	r.Route("/stats", func(r chi.Router) {
		r.Get("/revenue", h.Revenue)
		r.Get("/average-order-value", h.AverageOrderValue)
		r.Get("/orders/count", h.CountOrders)
	})
}

func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), req.UserID, req.ShippingAddress, req.BillingAddress, req.Notes)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetOrderByID(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) GetOrderByNumber(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetOrderByNumber(r.Context(), chi.URLParam(r, "order_number"))
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.DeleteOrder(r.Context(), chi.URLParam(r, "order_id")); err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	switch {
	case q.Get("user_id") != "":
		orders, err := h.orders.ListOrdersByUser(ctx, q.Get("user_id"))
		if err != nil {
			h.writeDomainError(ctx, w, err)
			return
		}
		utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
	case q.Get("status") != "":
		status := entities.OrderStatus(q.Get("status"))
		if !status.Valid() {
			utils.WriteError(w, "unknown order status", http.StatusBadRequest)
			return
		}
		orders, err := h.orders.ListOrdersByStatus(ctx, status)
		if err != nil {
			h.writeDomainError(ctx, w, err)
			return
		}
		utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
	default:
		limit := 20
		if raw := q.Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				utils.WriteError(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = parsed
		}
		orders, err := h.orders.ListRecentOrders(ctx, limit)
		if err != nil {
			h.writeDomainError(ctx, w, err)
			return
		}
		utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
	}
}

func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.AddItem(r.Context(), chi.URLParam(r, "order_id"), req.ProductID, req.Quantity)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.UpdateItemQuantity(r.Context(),
		chi.URLParam(r, "order_id"), chi.URLParam(r, "item_id"), req.Quantity)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.RemoveItem(r.Context(),
		chi.URLParam(r, "order_id"), chi.URLParam(r, "item_id"))
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.ConfirmOrder(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	ordersConfirmed.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) ShipOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.ShipOrder(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) DeliverOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.DeliverOrder(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.CancelOrder(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	ordersCancelled.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) UpdateShippingAddress(w http.ResponseWriter, r *http.Request) {
	h.updateDetails(w, r, h.orders.UpdateShippingAddress)
}

func (h *HTTPHandler) UpdateBillingAddress(w http.ResponseWriter, r *http.Request) {
	h.updateDetails(w, r, h.orders.UpdateBillingAddress)
}

func (h *HTTPHandler) updateDetails(w http.ResponseWriter, r *http.Request,
	update func(ctx context.Context, orderID, value string) (entities.Order, error)) {

	var req UpdateAddressRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := update(r.Context(), chi.URLParam(r, "order_id"), req.Address)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	var req UpdateNotesRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.orders.UpdateNotes(r.Context(), chi.URLParam(r, "order_id"), req.Notes)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	price, err := entities.MoneyFromString(req.Price)
	if err != nil {
		utils.WriteError(w, "invalid price", http.StatusBadRequest)
		return
	}

	product, err := h.products.CreateProduct(r.Context(), req.Name, req.Description, price, req.StockQuantity)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusCreated)
}

func (h *HTTPHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.GetProduct(r.Context(), chi.URLParam(r, "product_id"))
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

func (h *HTTPHandler) AvailableStock(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	available, err := h.products.AvailableStock(r.Context(), productID)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, AvailableStock{ProductID: productID, Available: available}, http.StatusOK)
}

func (h *HTTPHandler) Restock(w http.ResponseWriter, r *http.Request) {
	var req RestockRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	productID := chi.URLParam(r, "product_id")
	if err := h.products.Restock(r.Context(), productID, req.StockQuantity); err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	product, err := h.products.GetProduct(r.Context(), productID)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

func (h *HTTPHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	threshold := 10
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.WriteError(w, "invalid threshold", http.StatusBadRequest)
			return
		}
		threshold = parsed
	}

	products, err := h.products.ListLowStock(r.Context(), threshold)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	result := make([]Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductEntityToJSON(p))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *HTTPHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.revenueFilter(w, r)
	if !ok {
		return
	}

	total, err := h.orders.Revenue(r.Context(), filter)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, Revenue{Status: string(filter.Status), Total: total.String()}, http.StatusOK)
}

func (h *HTTPHandler) AverageOrderValue(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.revenueFilter(w, r)
	if !ok {
		return
	}

	avg, err := h.orders.AverageOrderValue(r.Context(), filter)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, AverageOrderValue{Status: string(filter.Status), Average: avg}, http.StatusOK)
}

func (h *HTTPHandler) CountOrders(w http.ResponseWriter, r *http.Request) {
	status := entities.OrderStatus(r.URL.Query().Get("status"))
	if !status.Valid() {
		utils.WriteError(w, "unknown order status", http.StatusBadRequest)
		return
	}

	count, err := h.orders.CountByStatus(r.Context(), status)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, OrderCount{Status: string(status), Count: count}, http.StatusOK)
}

func (h *HTTPHandler) revenueFilter(w http.ResponseWriter, r *http.Request) (entities.RevenueFilter, bool) {
	q := r.URL.Query()

	status := entities.OrderStatus(q.Get("status"))
	if !status.Valid() {
		utils.WriteError(w, "unknown order status", http.StatusBadRequest)
		return entities.RevenueFilter{}, false
	}
	filter := entities.RevenueFilter{Status: status, UserID: q.Get("user_id")}

	for name, dst := range map[string]**time.Time{"from": &filter.From, "to": &filter.To} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.WriteError(w, "invalid "+name+" timestamp", http.StatusBadRequest)
			return entities.RevenueFilter{}, false
		}
		*dst = &parsed
	}
	return filter, true
}

// writeDomainError translates core errors into responses; the core itself
// never formats user-facing text.
func (h *HTTPHandler) writeDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	var insufficient *entities.InsufficientStockError
	var transition *entities.InvalidTransitionError

	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderItemNotFound):
		utils.WriteError(w, "order item not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
	case errors.As(err, &insufficient):
		oversellRejected.Inc()
		utils.WriteJSON(w, insufficientStockResponse{
			Message:   "insufficient stock",
			ProductID: insufficient.ProductID,
			Available: insufficient.Available,
			Requested: insufficient.Requested,
		}, http.StatusConflict)
	case errors.As(err, &transition):
		utils.WriteError(w, transition.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidQuantity):
		utils.WriteError(w, "invalid quantity", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidAmount):
		utils.WriteError(w, "invalid amount", http.StatusBadRequest)
	case errors.Is(err, entities.ErrOverRelease), errors.Is(err, entities.ErrReservationNotFound):
		h.logger.ErrorContext(ctx, "stock ledger inconsistency", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		h.logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

type insufficientStockResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
	Available int    `json:"available"`
	Requested int    `json:"requested"`
}
